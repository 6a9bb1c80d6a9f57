package console

import (
	"context"
	"time"

	"github.com/BlessingsBlessedChongo/AirportSimulationSystem/internal/simulation"
	"github.com/BlessingsBlessedChongo/AirportSimulationSystem/pkg/logger"
)

const keyInterrupt = 0x03 // Ctrl-C arrives as a byte in raw mode

type view int

const (
	viewNone view = iota
	viewFlights
	viewPassengers
	viewWeather
)

// Driver runs the interactive loop: one keypress check, one simulation
// step and one redraw per tick.
type Driver struct {
	sim      *simulation.Service
	render   *Renderer
	keys     <-chan byte
	interval time.Duration
	logger   *logger.Logger

	running bool
	paused  bool
	pending view
}

// NewDriver creates a driver. keys may be nil, in which case only context
// cancellation ends the loop.
func NewDriver(sim *simulation.Service, render *Renderer, keys <-chan byte, interval time.Duration, logger *logger.Logger) *Driver {
	return &Driver{
		sim:      sim,
		render:   render,
		keys:     keys,
		interval: interval,
		logger:   logger.Named("console"),
	}
}

// Run loops until the exit key is pressed or ctx is cancelled
func (d *Driver) Run(ctx context.Context) error {
	d.logger.Info("Starting simulation loop", logger.Duration("interval", d.interval))

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.running = true
	for d.running {
		select {
		case key, ok := <-d.keys:
			d.receive(key, ok)
		default:
		}

		if d.paused {
			d.showPending()
			select {
			case <-ctx.Done():
				return d.stop(ctx)
			case key, ok := <-d.keys:
				d.receive(key, ok)
			}
			continue
		}

		d.render.Frame()
		d.sim.Step()
		d.render.Rows(d.sim.Snapshots())
		d.render.FrameEnd()
		d.showPending()

		if !d.running {
			break
		}
		select {
		case <-ctx.Done():
			return d.stop(ctx)
		case <-ticker.C:
		}
	}

	d.logger.Info("Simulation loop exited", logger.Int("ticks", d.sim.Ticks()))
	return nil
}

func (d *Driver) stop(ctx context.Context) error {
	d.logger.Info("Simulation loop cancelled",
		logger.Int("ticks", d.sim.Ticks()),
		logger.Error(ctx.Err()))
	return nil
}

// receive handles one read from the key channel
func (d *Driver) receive(key byte, ok bool) {
	if !ok {
		// Input closed; keep running until the context ends.
		d.keys = nil
		d.logger.Debug("Keyboard input closed")
		return
	}
	d.handleKey(key)
}

func (d *Driver) handleKey(key byte) {
	switch key {
	case 'p', 'P':
		d.paused = !d.paused
		d.render.Paused(d.paused)
		d.logger.Info("Pause toggled", logger.Bool("paused", d.paused))
	case 'e', 'E', keyInterrupt:
		d.running = false
		d.logger.Info("Exit requested")
	case 'f', 'F':
		d.pending = viewFlights
	case 's', 'S':
		d.pending = viewPassengers
	case 'w', 'W':
		d.pending = viewWeather
	default:
		d.logger.Debug("Ignoring key", logger.Int("key", int(key)))
	}
}

func (d *Driver) showPending() {
	switch d.pending {
	case viewFlights:
		d.render.Flights(d.sim.Snapshots())
	case viewPassengers:
		d.render.Passengers(d.sim.Rosters())
	case viewWeather:
		d.render.Weather(d.sim.Weather())
	}
	d.pending = viewNone
}

package console

import (
	"fmt"
	"io"

	"github.com/BlessingsBlessedChongo/AirportSimulationSystem/internal/fleet"
	"github.com/BlessingsBlessedChongo/AirportSimulationSystem/internal/simulation"
)

const (
	clearSequence = "\033[H\033[2J"

	bannerTitle = "Hello, welcome to the Airport Simulation system"
	bannerKeys  = "To pause or resume - press 'p', to exit - press 'e', to show flight details - press 'f', " +
		"to show passengers - press 's', to show weather - press 'w'."
)

// Renderer draws the simulation tables to a terminal
type Renderer struct {
	out   io.Writer
	clear bool
}

// NewRenderer creates a renderer writing to out. When clear is set every
// frame starts by clearing the screen.
func NewRenderer(out io.Writer, clear bool) *Renderer {
	return &Renderer{out: out, clear: clear}
}

// Frame draws the banner and the table top; rows follow via Rows
func (r *Renderer) Frame() {
	if r.clear {
		fmt.Fprint(r.out, clearSequence)
	}
	fmt.Fprintln(r.out, bannerTitle)
	fmt.Fprintln(r.out, bannerKeys)
	fmt.Fprintln(r.out, fleet.TableRule())
	fmt.Fprintln(r.out, fleet.TableHeader())
	fmt.Fprintln(r.out, fleet.TableRule())
}

func (r *Renderer) Rows(snaps []fleet.AirplaneSnapshot) {
	for _, s := range snaps {
		fmt.Fprintln(r.out, fleet.FormatRow(s))
	}
}

func (r *Renderer) FrameEnd() {
	fmt.Fprintln(r.out, fleet.TableRule())
}

// Flights draws a standalone flight table
func (r *Renderer) Flights(snaps []fleet.AirplaneSnapshot) {
	fmt.Fprintln(r.out, fleet.TableRule())
	fmt.Fprintln(r.out, fleet.TableHeader())
	fmt.Fprintln(r.out, fleet.TableRule())
	r.Rows(snaps)
	fmt.Fprintln(r.out, fleet.TableRule())
}

func (r *Renderer) Passengers(rosters []simulation.Roster) {
	for _, roster := range rosters {
		fmt.Fprintf(r.out, "Flight %s passengers:\n", roster.Flight)
		fmt.Fprint(r.out, fleet.FormatPassengers(roster.Passengers))
	}
}

func (r *Renderer) Weather(list []simulation.FlightWeather) {
	for _, w := range list {
		fmt.Fprintf(r.out, "Flight %s weather: %s\n", w.Flight, w.Weather)
	}
}

func (r *Renderer) Paused(paused bool) {
	if paused {
		fmt.Fprintln(r.out, "Simulation paused - press 'p' to resume.")
	} else {
		fmt.Fprintln(r.out, "Simulation resumed.")
	}
}

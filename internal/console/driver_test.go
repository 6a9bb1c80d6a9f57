package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/BlessingsBlessedChongo/AirportSimulationSystem/internal/fleet"
	"github.com/BlessingsBlessedChongo/AirportSimulationSystem/internal/rand"
	"github.com/BlessingsBlessedChongo/AirportSimulationSystem/internal/simulation"
	"github.com/BlessingsBlessedChongo/AirportSimulationSystem/pkg/logger"
)

func newTestDriver(keys string) (*Driver, *simulation.Service, *bytes.Buffer) {
	ch := make(chan byte, len(keys))
	for i := 0; i < len(keys); i++ {
		ch <- keys[i]
	}

	var out bytes.Buffer
	sim := simulation.NewService(fleet.Standard(rand.New()), logger.NewNop())
	d := NewDriver(sim, NewRenderer(&out, false), ch, time.Millisecond, logger.NewNop())
	return d, sim, &out
}

func runDriver(t *testing.T, d *Driver) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatalf("driver did not exit on its own")
	}
}

func TestExitAfterCurrentIteration(t *testing.T) {
	d, sim, out := newTestDriver("e")
	runDriver(t, d)

	if sim.Ticks() != 1 {
		t.Errorf("expected 1 tick before exit, got %d", sim.Ticks())
	}
	if !strings.Contains(out.String(), bannerTitle) || !strings.Contains(out.String(), "ZFGB234") {
		t.Errorf("frame not drawn:\n%s", out.String())
	}
}

func TestInterruptKeyExits(t *testing.T) {
	d, sim, _ := newTestDriver(string([]byte{keyInterrupt}))
	runDriver(t, d)
	if sim.Ticks() != 1 {
		t.Errorf("expected 1 tick, got %d", sim.Ticks())
	}
}

func TestPauseSkipsTicks(t *testing.T) {
	d, sim, out := newTestDriver("pPE")
	runDriver(t, d)

	if sim.Ticks() != 1 {
		t.Errorf("expected 1 tick, got %d", sim.Ticks())
	}
	if !strings.Contains(out.String(), "paused") || !strings.Contains(out.String(), "resumed") {
		t.Errorf("pause messages missing:\n%s", out.String())
	}
}

func TestExitWhilePaused(t *testing.T) {
	d, sim, _ := newTestDriver("pe")
	runDriver(t, d)
	if sim.Ticks() != 0 {
		t.Errorf("paused driver should not tick, got %d", sim.Ticks())
	}
}

func TestViews(t *testing.T) {
	d, sim, out := newTestDriver("sWfxe")
	runDriver(t, d)

	if sim.Ticks() != 5 {
		t.Errorf("expected 5 ticks, got %d", sim.Ticks())
	}
	s := out.String()
	for _, want := range []string{
		"Flight ZYB234 passengers:",
		"Passenger40",
		"Flight ZEDB234 weather: ",
		"Flight ZFGB234 weather: ",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q", want)
		}
	}
	// five frames plus the standalone flight table
	if n := strings.Count(s, fleet.TableHeader()); n != 6 {
		t.Errorf("expected 6 flight table headers, got %d", n)
	}
}

func TestContextCancelStopsLoop(t *testing.T) {
	d, sim, _ := newTestDriver("")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	deadline := time.Now().Add(5 * time.Second)
	for sim.Ticks() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("driver ignored cancellation")
	}
}

func TestClosedKeysKeepRunning(t *testing.T) {
	ch := make(chan byte)
	close(ch)

	sim := simulation.NewService(fleet.Standard(rand.New()), logger.NewNop())
	d := NewDriver(sim, NewRenderer(&bytes.Buffer{}, false), ch, time.Millisecond, logger.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := d.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sim.Ticks() < 2 {
		t.Errorf("expected the loop to keep ticking, got %d ticks", sim.Ticks())
	}
}

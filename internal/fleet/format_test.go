package fleet

import (
	"strings"
	"testing"
)

func TestFormatRowWidths(t *testing.T) {
	width := len(TableRule())
	if len(TableHeader()) != width {
		t.Errorf("header width %d, rule width %d", len(TableHeader()), width)
	}

	for _, s := range []AirplaneSnapshot{
		{ID: "ZEDB234", PassengerCount: 20, Status: Idle, Fuel: 100, ETA: 120},
		{ID: "ZYB234", PassengerCount: 40, Status: TakingOff, Fuel: 9.5, Speed: 630, Distance: 1234.5, ETA: 150, Delayed: true, Weather: Stormy},
		{ID: "ZFGB234", PassengerCount: 40, Status: Maintenance, Fuel: 0, ETA: 99999, Weather: Rainy},
		{ID: "ZFGB234", PassengerCount: 40, Status: InFlight, Speed: 900, Distance: 100000, ETA: 100000},
		{ID: "ZFGB234", PassengerCount: 40, Status: Landing, Speed: 450, Distance: 9999999.9, ETA: 9999999, Delayed: true, Weather: Stormy},
	} {
		row := FormatRow(s)
		if len(row) != width {
			t.Errorf("row width %d, expected %d:\n%s\n%s", len(row), width, TableRule(), row)
		}
	}
}

func TestFormatRowContent(t *testing.T) {
	row := FormatRow(AirplaneSnapshot{
		ID: "ZEDB234", PassengerCount: 20, Status: InFlight, Fuel: 87.256,
		Speed: 612.34, Distance: 45.6, ETA: 130, Delayed: true, Weather: Stormy,
	})
	want := "|  ZEDB234 |         20 |  87.26% | 612.3 km/h |    In Flight |      45.6 km |     130 min | Delayed | Stormy  |"
	if row != want {
		t.Errorf("got\n%s\nexpected\n%s", row, want)
	}

	row = FormatRow(AirplaneSnapshot{ID: "ZYB234", Status: Idle, Fuel: 100})
	if !strings.Contains(row, "On Time") || !strings.Contains(row, "Clear") {
		t.Errorf("row missing on-time or clear markers: %s", row)
	}
}

func TestFormatPassengers(t *testing.T) {
	out := FormatPassengers([]Passenger{
		{Name: "Passenger1", Class: First, BaggageKG: 12.345},
		{Name: "Passenger12", Class: Economy, BaggageKG: 49.9},
	})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), out)
	}
	for i, l := range lines {
		if len(l) != len(lines[0]) {
			t.Errorf("line %d has width %d, expected %d: %q", i, len(l), len(lines[0]), l)
		}
	}
	if lines[3] != "|   Passenger1 |     First |       12.35 kg |" {
		t.Errorf("unexpected row %q", lines[3])
	}
	if !strings.HasPrefix(lines[1], "| Passenger ") {
		t.Errorf("unexpected header %q", lines[1])
	}
}

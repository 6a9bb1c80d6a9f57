package fleet

import (
	"fmt"
	"strings"
)

type column struct {
	title string
	width int
}

var flightColumns = []column{
	{"Flight", 8},
	{"Passengers", 10},
	{"Fuel", 7},
	{"Speed", 10},
	{"Status", 12},
	{"Distance", 12},
	{"ETA", 11},
	{"Delay", 7},
	{"Weather", 7},
}

var passengerColumns = []column{
	{"Passenger", 12},
	{"Class", 9},
	{"Baggage Weight", 14},
}

func rule(cols []column) string {
	var b strings.Builder
	b.WriteString("+")
	for _, c := range cols {
		b.WriteString(strings.Repeat("-", c.width+2))
		b.WriteString("+")
	}
	return b.String()
}

func header(cols []column) string {
	var b strings.Builder
	b.WriteString("|")
	for _, c := range cols {
		fmt.Fprintf(&b, " %-*s |", c.width, c.title)
	}
	return b.String()
}

// TableRule is the horizontal border of the flight table
func TableRule() string {
	return rule(flightColumns)
}

// TableHeader is the column title line of the flight table
func TableHeader() string {
	return header(flightColumns)
}

// FormatRow renders one airplane as a flight table row. Distances below
// ten million km and ETAs below ten million minutes keep the row aligned.
func FormatRow(s AirplaneSnapshot) string {
	delay := "On Time"
	if s.Delayed {
		delay = "Delayed"
	}
	return fmt.Sprintf("| %8s | %10d | %6.2f%% | %5.1f km/h | %12s | %9.1f km | %7d min | %-7s | %-7s |",
		s.ID, s.PassengerCount, s.Fuel, s.Speed, s.Status, s.Distance, s.ETA, delay, s.Weather)
}

// FormatPassengers renders a roster as a boxed table, one line per
// passenger, with a trailing newline.
func FormatPassengers(passengers []Passenger) string {
	var b strings.Builder
	r := rule(passengerColumns)
	b.WriteString(r + "\n")
	b.WriteString(header(passengerColumns) + "\n")
	b.WriteString(r + "\n")
	for _, p := range passengers {
		fmt.Fprintf(&b, "| %12s | %9s | %11.2f kg |\n", p.Name, p.Class, p.BaggageKG)
	}
	b.WriteString(r + "\n")
	return b.String()
}

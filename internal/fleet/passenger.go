package fleet

import "fmt"

// TicketClass is the fare class of a passenger
type TicketClass int

const (
	Economy TicketClass = iota
	Business
	First
)

var ticketClasses = []TicketClass{Economy, Business, First}

func (c TicketClass) String() string {
	switch c {
	case Economy:
		return "Economy"
	case Business:
		return "Business"
	case First:
		return "First"
	}
	return "Unknown"
}

func (c TicketClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

const (
	MinBaggageKG = 5.0
	MaxBaggageKG = 50.0
)

// Passenger is a single traveller on an airplane
type Passenger struct {
	Name      string      `json:"name"`
	Class     TicketClass `json:"class"`
	BaggageKG float64     `json:"baggage_kg"`
}

func generatePassengers(src Source, count int) []Passenger {
	if count < 0 {
		count = 0
	}
	passengers := make([]Passenger, 0, count)
	for i := 0; i < count; i++ {
		passengers = append(passengers, Passenger{
			Name:      fmt.Sprintf("Passenger%d", i+1),
			Class:     ticketClasses[src.Intn(len(ticketClasses))],
			BaggageKG: uniform(src, MinBaggageKG, MaxBaggageKG),
		})
	}
	return passengers
}

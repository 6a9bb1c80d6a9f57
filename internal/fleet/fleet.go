package fleet

import "fmt"

// FuelPolicy decides what an empty tank means for an airplane
type FuelPolicy int

const (
	// FuelPolicyGround diverts airborne airplanes that ran dry into
	// Landing on the next tick and keeps empty airplanes from leaving Idle.
	FuelPolicyGround FuelPolicy = iota
	// FuelPolicyIgnore lets airplanes keep flying on an empty tank.
	FuelPolicyIgnore
)

func (p FuelPolicy) String() string {
	switch p {
	case FuelPolicyGround:
		return "ground"
	case FuelPolicyIgnore:
		return "ignore"
	}
	return "unknown"
}

// ParseFuelPolicy converts a configuration value into a FuelPolicy
func ParseFuelPolicy(s string) (FuelPolicy, error) {
	switch s {
	case "", "ground":
		return FuelPolicyGround, nil
	case "ignore":
		return FuelPolicyIgnore, nil
	}
	return FuelPolicyGround, fmt.Errorf("unknown fuel policy: %q", s)
}

const DefaultStatusChangeChance = 0.3

// EventKind identifies something noteworthy that happened during a Step
type EventKind int

const (
	EventStatusChanged EventKind = iota
	EventForcedLanding
	EventFuelExhausted
	EventStormDelay
)

func (k EventKind) String() string {
	switch k {
	case EventStatusChanged:
		return "status_changed"
	case EventForcedLanding:
		return "forced_landing"
	case EventFuelExhausted:
		return "fuel_exhausted"
	case EventStormDelay:
		return "storm_delay"
	}
	return "unknown"
}

// Event describes a change to one airplane during a Step
type Event struct {
	Kind   EventKind
	Flight string
	From   Status // Status changes only
	To     Status
	ETA    int // ETA after a storm delay
}

// Fleet is the ordered collection of airplanes driven once per tick
type Fleet struct {
	airplanes []*Airplane
	src       Source

	StatusChangeChance float64 // Probability that an airplane advances status on a tick
	FuelPolicy         FuelPolicy
}

// New creates a fleet of the given airplanes, in order
func New(src Source, airplanes ...*Airplane) *Fleet {
	return &Fleet{
		airplanes:          airplanes,
		src:                src,
		StatusChangeChance: DefaultStatusChangeChance,
		FuelPolicy:         FuelPolicyGround,
	}
}

// Standard returns the fixed three-airplane fleet
func Standard(src Source) *Fleet {
	return New(src,
		NewAirplane(src, "ZEDB234", 80, 20, 120),
		NewAirplane(src, "ZYB234", 80, 40, 150),
		NewAirplane(src, "ZFGB234", 80, 40, 180),
	)
}

func (f *Fleet) Len() int {
	return len(f.airplanes)
}

// Airplane looks up an airplane by ID
func (f *Fleet) Airplane(id string) (*Airplane, bool) {
	for _, a := range f.airplanes {
		if a.id == id {
			return a, true
		}
	}
	return nil, false
}

// Airplanes returns the airplanes in fleet order
func (f *Fleet) Airplanes() []*Airplane {
	return append([]*Airplane(nil), f.airplanes...)
}

func (f *Fleet) Snapshots() []AirplaneSnapshot {
	snaps := make([]AirplaneSnapshot, 0, len(f.airplanes))
	for _, a := range f.airplanes {
		snaps = append(snaps, a.Snapshot())
	}
	return snaps
}

// Step runs one tick for every airplane in order: the status gate, the
// fuel policy, the fuel and distance tick, then the weather roll.
func (f *Fleet) Step() []Event {
	var events []Event
	for _, a := range f.airplanes {
		events = f.stepAirplane(a, events)
	}
	return events
}

func (f *Fleet) stepAirplane(a *Airplane, events []Event) []Event {
	if f.src.Float64() < f.StatusChangeChance && !f.grounded(a) {
		from := a.status
		a.AdvanceStatus()
		events = append(events, Event{Kind: EventStatusChanged, Flight: a.id, From: from, To: a.status})
	}

	// An airplane that ran dry on the previous tick diverts before it
	// moves again, so the distance covered always matches the shown speed.
	if f.FuelPolicy == FuelPolicyGround && a.OutOfFuel() && a.status.Airborne() {
		from := a.status
		a.setStatus(Landing)
		events = append(events, Event{Kind: EventForcedLanding, Flight: a.id, From: from, To: Landing})
	}

	hadFuel := !a.OutOfFuel()
	a.Tick()
	if hadFuel && a.OutOfFuel() {
		events = append(events, Event{Kind: EventFuelExhausted, Flight: a.id, From: a.status, To: a.status})
	}

	if out := a.UpdateWeather(); out.ETAIncrease > 0 {
		events = append(events, Event{Kind: EventStormDelay, Flight: a.id, ETA: a.eta})
	}
	return events
}

// grounded reports whether the fuel policy keeps a from being dispatched
func (f *Fleet) grounded(a *Airplane) bool {
	return f.FuelPolicy == FuelPolicyGround && a.OutOfFuel() && a.status == Idle
}

package fleet

const (
	InitialFuel = 100.0
	MinSpeed    = 200.0 // km/h
	MaxSpeed    = 900.0 // km/h
	MinFuelRate = 0.1   // Percent per tick at MaxSpeed
	MaxFuelRate = 1.5
	TickMinutes = 60.0 // Distance per tick is speed/TickMinutes
)

// Airplane holds the state of one aircraft. It is owned by a single
// goroutine; use Fleet through simulation.Service for shared access.
type Airplane struct {
	id       string
	capacity int

	status        Status
	ticksInStatus int

	fuel     float64
	speed    float64
	distance float64

	eta     int
	delayed bool
	weather Weather

	passengers []Passenger
	populated  bool

	src Source
}

// NewAirplane creates an idle airplane with a full tank and a generated
// passenger roster. capacity is informational and is not checked against
// passengers.
func NewAirplane(src Source, id string, capacity, passengers, eta int) *Airplane {
	a := &Airplane{
		id:       id,
		capacity: capacity,
		status:   Idle,
		fuel:     InitialFuel,
		eta:      eta,
		weather:  Clear,
		src:      src,
	}
	a.PopulatePassengers(passengers)
	return a
}

func (a *Airplane) ID() string          { return a.id }
func (a *Airplane) Capacity() int       { return a.capacity }
func (a *Airplane) Status() Status      { return a.status }
func (a *Airplane) TicksInStatus() int  { return a.ticksInStatus }
func (a *Airplane) Fuel() float64       { return a.fuel }
func (a *Airplane) Speed() float64      { return a.speed }
func (a *Airplane) Distance() float64   { return a.distance }
func (a *Airplane) ETA() int            { return a.eta }
func (a *Airplane) Delayed() bool       { return a.delayed }
func (a *Airplane) Weather() Weather    { return a.weather }
func (a *Airplane) PassengerCount() int { return len(a.passengers) }
func (a *Airplane) OutOfFuel() bool     { return a.fuel <= 0 }

// Passengers returns a copy of the roster
func (a *Airplane) Passengers() []Passenger {
	return append([]Passenger(nil), a.passengers...)
}

// PopulatePassengers generates count passengers. Only the first call has
// any effect; the roster never changes afterwards.
func (a *Airplane) PopulatePassengers(count int) {
	if a.populated {
		return
	}
	a.passengers = generatePassengers(a.src, count)
	a.populated = true
}

// AdvanceStatus moves to the next status in the cycle and resamples speed.
func (a *Airplane) AdvanceStatus() {
	a.setStatus(a.status.Next())
}

func (a *Airplane) setStatus(s Status) {
	a.status = s
	a.ticksInStatus = 0
	a.RecomputeSpeed()
}

// RecomputeSpeed draws a new speed for the current status. Stationary
// statuses get zero without consuming a draw.
func (a *Airplane) RecomputeSpeed() {
	factor := a.status.SpeedFactor()
	if factor == 0 {
		a.speed = 0
		return
	}
	a.speed = uniform(a.src, MinSpeed, MaxSpeed) * factor
}

// Tick burns fuel and accumulates distance for one tick at the current
// speed. Fuel is clamped at zero; the airplane keeps its speed when empty.
func (a *Airplane) Tick() {
	a.ticksInStatus++
	if a.speed <= 0 {
		return
	}
	rate := uniform(a.src, MinFuelRate, MaxFuelRate)
	a.fuel -= rate * (a.speed / MaxSpeed)
	if a.fuel < 0 {
		a.fuel = 0
	}
	a.distance += a.speed / TickMinutes
}

// UpdateWeather re-rolls the weather and delay flag. Stormy weather pushes
// the ETA back; nothing ever pulls it forward.
func (a *Airplane) UpdateWeather() WeatherOutcome {
	severity := a.src.Intn(MaxSeverity) + 1
	rainRoll := -1
	if WeatherForSeverity(severity) == Rainy {
		rainRoll = a.src.Intn(RainDelayOdds)
	}
	out := ResolveWeather(severity, rainRoll)
	a.weather = out.Weather
	a.delayed = out.Delayed
	a.eta += out.ETAIncrease
	return out
}

// AirplaneSnapshot is a point-in-time copy of an airplane's state
type AirplaneSnapshot struct {
	ID             string  `json:"id"`
	Capacity       int     `json:"capacity"`
	PassengerCount int     `json:"passenger_count"`
	Status         Status  `json:"status"`
	TicksInStatus  int     `json:"ticks_in_status"`
	Fuel           float64 `json:"fuel"`
	Speed          float64 `json:"speed"`
	Distance       float64 `json:"distance"`
	ETA            int     `json:"eta"`
	Delayed        bool    `json:"delayed"`
	Weather        Weather `json:"weather"`
}

func (a *Airplane) Snapshot() AirplaneSnapshot {
	return AirplaneSnapshot{
		ID:             a.id,
		Capacity:       a.capacity,
		PassengerCount: len(a.passengers),
		Status:         a.status,
		TicksInStatus:  a.ticksInStatus,
		Fuel:           a.fuel,
		Speed:          a.speed,
		Distance:       a.distance,
		ETA:            a.eta,
		Delayed:        a.delayed,
		Weather:        a.weather,
	}
}

package fleet

// Status is the lifecycle phase of an airplane
type Status int

const (
	Idle Status = iota
	TakingOff
	InFlight
	Landing
	Landed
	Maintenance
)

type statusInfo struct {
	next        Status
	speedFactor float64 // Multiplier applied to the cruise speed draw; 0 means stationary
	label       string
}

var statusTable = [...]statusInfo{
	Idle:        {next: TakingOff, speedFactor: 0, label: "Idle"},
	TakingOff:   {next: InFlight, speedFactor: 0.7, label: "Taking Off"},
	InFlight:    {next: Landing, speedFactor: 1.0, label: "In Flight"},
	Landing:     {next: Landed, speedFactor: 0.5, label: "Landing"},
	Landed:      {next: Maintenance, speedFactor: 0, label: "Landed"},
	Maintenance: {next: Idle, speedFactor: 0, label: "Maintenance"},
}

// AllStatuses lists every status in cycle order
var AllStatuses = []Status{Idle, TakingOff, InFlight, Landing, Landed, Maintenance}

func (s Status) valid() bool {
	return s >= 0 && int(s) < len(statusTable)
}

// Next returns the status that follows s in the fixed cycle
func (s Status) Next() Status {
	if !s.valid() {
		return Idle
	}
	return statusTable[s].next
}

// SpeedFactor returns the fraction of a cruise speed draw used in s
func (s Status) SpeedFactor() float64 {
	if !s.valid() {
		return 0
	}
	return statusTable[s].speedFactor
}

// Moving reports whether an airplane in s has non-zero speed
func (s Status) Moving() bool {
	return s.SpeedFactor() > 0
}

// Airborne reports whether s is a phase that needs fuel to stay safe
func (s Status) Airborne() bool {
	return s == TakingOff || s == InFlight
}

func (s Status) String() string {
	if !s.valid() {
		return "Unknown"
	}
	return statusTable[s].label
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

package fleet

// Weather is the condition an airplane is currently experiencing
type Weather int

const (
	Clear Weather = iota
	Rainy
	Stormy
)

var weatherLabels = [...]string{
	Clear:  "Clear",
	Rainy:  "Rainy",
	Stormy: "Stormy",
}

func (w Weather) String() string {
	if w < 0 || int(w) >= len(weatherLabels) {
		return "Unknown"
	}
	return weatherLabels[w]
}

func (w Weather) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

const (
	MaxSeverity       = 10 // Severity draws are uniform in [1, MaxSeverity]
	StormMaxSeverity  = 2  // Severity at or below this is a storm
	RainMaxSeverity   = 5  // Severity at or below this (and above a storm) is rain
	RainDelayOdds     = 6  // Rain delays a flight with probability 1/RainDelayOdds
	StormDelayMinutes = 10 // ETA increase for each stormy tick
)

// WeatherForSeverity maps a severity draw onto a weather condition
func WeatherForSeverity(severity int) Weather {
	switch {
	case severity <= StormMaxSeverity:
		return Stormy
	case severity <= RainMaxSeverity:
		return Rainy
	default:
		return Clear
	}
}

// WeatherOutcome is the result of one weather roll
type WeatherOutcome struct {
	Weather     Weather
	Delayed     bool
	ETAIncrease int
}

// ResolveWeather decides the weather, delay flag and ETA change for a
// severity draw. rainRoll is the secondary draw in [0, RainDelayOdds) and
// only matters when the weather is Rainy.
func ResolveWeather(severity, rainRoll int) WeatherOutcome {
	w := WeatherForSeverity(severity)
	switch w {
	case Stormy:
		return WeatherOutcome{Weather: Stormy, Delayed: true, ETAIncrease: StormDelayMinutes}
	case Rainy:
		return WeatherOutcome{Weather: Rainy, Delayed: rainRoll == 1}
	default:
		return WeatherOutcome{Weather: Clear}
	}
}

package fleet

import "testing"

func TestWeatherForSeverity(t *testing.T) {
	want := map[int]Weather{
		1: Stormy, 2: Stormy,
		3: Rainy, 4: Rainy, 5: Rainy,
		6: Clear, 7: Clear, 8: Clear, 9: Clear, 10: Clear,
	}
	for severity := 1; severity <= MaxSeverity; severity++ {
		if got := WeatherForSeverity(severity); got != want[severity] {
			t.Errorf("severity %d: got %s, expected %s", severity, got, want[severity])
		}
	}
}

func TestResolveWeather(t *testing.T) {
	for severity := 1; severity <= MaxSeverity; severity++ {
		delays := 0
		for roll := 0; roll < RainDelayOdds; roll++ {
			out := ResolveWeather(severity, roll)

			var want WeatherOutcome
			switch {
			case severity <= 2:
				want = WeatherOutcome{Weather: Stormy, Delayed: true, ETAIncrease: 10}
			case severity <= 5:
				want = WeatherOutcome{Weather: Rainy, Delayed: roll == 1}
			default:
				want = WeatherOutcome{Weather: Clear}
			}
			if out != want {
				t.Errorf("ResolveWeather(%d, %d) = %+v, expected %+v", severity, roll, out, want)
			}
			if out.Delayed {
				delays++
			}
		}

		// Rain delays on exactly one of the RainDelayOdds possible rolls
		switch WeatherForSeverity(severity) {
		case Stormy:
			if delays != RainDelayOdds {
				t.Errorf("severity %d: storm delayed on %d of %d rolls", severity, delays, RainDelayOdds)
			}
		case Rainy:
			if delays != 1 {
				t.Errorf("severity %d: rain delayed on %d of %d rolls, expected 1", severity, delays, RainDelayOdds)
			}
		case Clear:
			if delays != 0 {
				t.Errorf("severity %d: clear weather delayed on %d rolls", severity, delays)
			}
		}
	}
}

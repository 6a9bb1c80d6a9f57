package simulation

import (
	"context"
	"sync"
	"time"

	"github.com/BlessingsBlessedChongo/AirportSimulationSystem/internal/fleet"
	"github.com/BlessingsBlessedChongo/AirportSimulationSystem/pkg/logger"
)

// Roster is the passenger list of one flight
type Roster struct {
	Flight     string
	Passengers []fleet.Passenger
}

// FlightWeather is the current weather for one flight
type FlightWeather struct {
	Flight  string
	Weather fleet.Weather
}

// Service owns the fleet and advances it one tick at a time
type Service struct {
	fleet  *fleet.Fleet
	ticks  int
	mutex  sync.RWMutex
	logger *logger.Logger
}

// NewService creates a new simulation service
func NewService(f *fleet.Fleet, log *logger.Logger) *Service {
	s := &Service{
		fleet:  f,
		logger: log.Named("simulation"),
	}
	for _, a := range f.Airplanes() {
		s.logger.Debug("Passengers boarded",
			logger.String("flight", a.ID()),
			logger.Any("passengers", a.Passengers()))
	}
	return s
}

// Step advances every airplane by one tick and returns what changed
func (s *Service) Step() []fleet.Event {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.ticks++
	events := s.fleet.Step()
	for _, ev := range events {
		s.logEvent(ev)
	}
	s.logger.Debug("Tick complete",
		logger.Int("tick", s.ticks),
		logger.Int("events", len(events)),
	)
	return events
}

func (s *Service) logEvent(ev fleet.Event) {
	fields := []logger.Field{
		logger.Int("tick", s.ticks),
		logger.String("flight", ev.Flight),
		logger.String("event", ev.Kind.String()),
	}

	switch ev.Kind {
	case fleet.EventStatusChanged:
		s.logger.Info("Status changed", append(fields,
			logger.String("from", ev.From.String()),
			logger.String("to", ev.To.String()))...)
	case fleet.EventStormDelay:
		s.logger.Info("Flight delayed by storm", append(fields, logger.Int("eta_min", ev.ETA))...)
	case fleet.EventFuelExhausted:
		s.logger.Warn("Fuel exhausted", append(fields, logger.String("status", ev.From.String()))...)
	case fleet.EventForcedLanding:
		s.logger.Warn("Forced landing on empty tank", append(fields, logger.String("from", ev.From.String()))...)
	}
}

// Ticks returns the number of ticks run so far
func (s *Service) Ticks() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.ticks
}

// Snapshots returns the state of every airplane in fleet order
func (s *Service) Snapshots() []fleet.AirplaneSnapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.fleet.Snapshots()
}

// Rosters returns the passenger list of every flight in fleet order
func (s *Service) Rosters() []Roster {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	airplanes := s.fleet.Airplanes()
	result := make([]Roster, 0, len(airplanes))
	for _, a := range airplanes {
		result = append(result, Roster{Flight: a.ID(), Passengers: a.Passengers()})
	}
	return result
}

// Weather returns the current weather of every flight in fleet order
func (s *Service) Weather() []FlightWeather {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	airplanes := s.fleet.Airplanes()
	result := make([]FlightWeather, 0, len(airplanes))
	for _, a := range airplanes {
		result = append(result, FlightWeather{Flight: a.ID(), Weather: a.Weather()})
	}
	return result
}

// Report logs a fleet summary every interval until ctx is done
func (s *Service) Report(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.logSummary()
		}
	}
}

func (s *Service) logSummary() {
	ticks := s.Ticks()
	for _, snap := range s.Snapshots() {
		s.logger.Info("Flight summary",
			logger.Int("tick", ticks),
			logger.String("flight", snap.ID),
			logger.Any("snapshot", snap),
		)
	}
}

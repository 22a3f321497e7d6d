// Package booking orchestrates the flight aggregate for the front ends:
// it keeps the set of open flights, delegates persistence and layout reads
// to the file store, and drives boarding card generation.
package booking

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/kirinyoku/aerobook/internal/cards"
	"github.com/kirinyoku/aerobook/internal/domain"
	"github.com/kirinyoku/aerobook/internal/flight"
	"github.com/kirinyoku/aerobook/internal/repository/filestore"
)

// Service mediates every mutation of an open flight. The aggregate itself
// is single-threaded by design, so the service serializes access with one
// lock around the open-flight map.
type Service struct {
	airports *filestore.AirportDirectory
	layouts  *filestore.LayoutSource
	store    *filestore.FlightStore
	registry *cards.Registry
	writer   *filestore.CardWriter

	mu      sync.Mutex
	flights map[string]*flight.Flight
}

func New(
	airports *filestore.AirportDirectory,
	layouts *filestore.LayoutSource,
	store *filestore.FlightStore,
	registry *cards.Registry,
	writer *filestore.CardWriter,
) *Service {
	return &Service{
		airports: airports,
		layouts:  layouts,
		store:    store,
		registry: registry,
		writer:   writer,
		flights:  make(map[string]*flight.Flight),
	}
}

func flightKey(number string, departs time.Time) string {
	return strings.ToUpper(number) + "@" + departs.UTC().Format("200601021504")
}

// CreateFlight creates a new flight and opens it for booking. An open
// flight with the same number and departure is replaced.
func (s *Service) CreateFlight(
	airline string,
	number string,
	embarkation string,
	destination string,
	departs time.Time,
	duration time.Duration,
) (*flight.Flight, error) {
	const op = "service.booking.CreateFlight"

	f, err := flight.New(s.airports, airline, number, embarkation, destination, departs, duration)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.flights[flightKey(f.Number(), f.Departs())] = f

	return f, nil
}

// OpenFlight loads a previously saved flight from disk and opens it.
func (s *Service) OpenFlight(number string, departs time.Time) (*flight.Flight, error) {
	const op = "service.booking.OpenFlight"

	f, err := s.store.Load(number, departs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.flights[flightKey(f.Number(), f.Departs())] = f

	return f, nil
}

// Flight returns the open flight with the given number and departure.
func (s *Service) Flight(number string, departs time.Time) (*flight.Flight, error) {
	const op = "service.booking.Flight"

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flights[flightKey(number, departs)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, FlightNotOpenError{Number: number, Departs: departs})
	}

	return f, nil
}

// SaveFlight writes the open flight to its data file.
func (s *Service) SaveFlight(number string, departs time.Time) error {
	const op = "service.booking.SaveFlight"

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flights[flightKey(number, departs)]
	if !ok {
		return fmt.Errorf("%s: %w", op, FlightNotOpenError{Number: number, Departs: departs})
	}

	if err := s.store.Save(f); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// LoadSeating loads the seating plan for an aircraft and layout into the
// open flight, migrating any existing seat allocations.
func (s *Service) LoadSeating(number string, departs time.Time, aircraft, layout string) error {
	const op = "service.booking.LoadSeating"

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flights[flightKey(number, departs)]
	if !ok {
		return fmt.Errorf("%s: %w", op, FlightNotOpenError{Number: number, Departs: departs})
	}

	if err := f.LoadSeating(s.layouts, aircraft, layout); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AddPassenger creates a passenger record and adds it to the open flight.
func (s *Service) AddPassenger(
	number string,
	departs time.Time,
	name string,
	gender domain.Gender,
	dob time.Time,
	nationality string,
	residency string,
	passportNumber string,
) (*domain.Passenger, error) {
	const op = "service.booking.AddPassenger"

	p, err := domain.NewPassenger(name, gender, dob, nationality, residency, passportNumber)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flights[flightKey(number, departs)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, FlightNotOpenError{Number: number, Departs: departs})
	}

	if err := f.AddPassenger(p); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// RemovePassenger removes a passenger from the open flight, clearing any
// seat they hold.
func (s *Service) RemovePassenger(number string, departs time.Time, passengerID string) error {
	const op = "service.booking.RemovePassenger"

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flights[flightKey(number, departs)]
	if !ok {
		return fmt.Errorf("%s: %w", op, FlightNotOpenError{Number: number, Departs: departs})
	}

	if err := f.RemovePassenger(passengerID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AllocateSeat allocates a specific seat to a passenger on the open
// flight, moving them if they already hold another seat.
func (s *Service) AllocateSeat(number string, departs time.Time, seatNumber, passengerID string) error {
	const op = "service.booking.AllocateSeat"

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flights[flightKey(number, departs)]
	if !ok {
		return fmt.Errorf("%s: %w", op, FlightNotOpenError{Number: number, Departs: departs})
	}

	if err := f.AllocateSeat(seatNumber, passengerID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AllocateNextSeat gives the passenger the next empty seat, front to back,
// and returns the allocated seat number.
func (s *Service) AllocateNextSeat(number string, departs time.Time, passengerID string) (string, error) {
	const op = "service.booking.AllocateNextSeat"

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flights[flightKey(number, departs)]
	if !ok {
		return "", fmt.Errorf("%s: %w", op, FlightNotOpenError{Number: number, Departs: departs})
	}

	if err := f.AllocateNextEmptySeat(passengerID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	seatNumber, _ := f.AllocatedSeat(passengerID)

	return seatNumber, nil
}

// GenerateBoardingCards renders a boarding card for every allocated seat on
// the open flight in the requested format and writes each one to a card
// file. Returns the number of cards written.
func (s *Service) GenerateBoardingCards(
	number string,
	departs time.Time,
	format string,
	gate string,
) (int, error) {
	const op = "service.booking.GenerateBoardingCards"

	generator, err := s.registry.Resolve(format)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flights[flightKey(number, departs)]
	if !ok {
		return 0, fmt.Errorf("%s: %w", op, FlightNotOpenError{Number: number, Departs: departs})
	}

	passes, err := f.BoardingPasses(gate)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	for _, pass := range passes {
		content, err := generator(pass.Fields)
		if err != nil {
			return 0, fmt.Errorf("%s: seat %s: %w", op, pass.SeatNumber, err)
		}

		if err := s.writer.Write(f.Number(), pass.SeatNumber, f.Departs(), format, content); err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	return len(passes), nil
}

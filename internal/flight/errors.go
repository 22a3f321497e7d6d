package flight

import (
	"errors"
	"fmt"
)

var (
	ErrAirlineRequired  = errors.New("airline is mandatory")
	ErrNumberRequired   = errors.New("flight number is mandatory")
	ErrFlightFull       = errors.New("the flight is full")
	ErrNoSeatingPlan    = errors.New("no seating plan has been loaded")
	ErrNoSeatsAvailable = errors.New("no unallocated seats are available")
	ErrNoAllocations    = errors.New("the flight has no seat allocations")
)

type AirportNotFoundError struct {
	Code string
}

func (e AirportNotFoundError) Error() string {
	return fmt.Sprintf("airport code %s is not recognised", e.Code)
}

type DuplicatePassengerError struct {
	ID string
}

func (e DuplicatePassengerError) Error() string {
	return fmt.Sprintf("passenger %s is already on this flight", e.ID)
}

type DuplicatePassportError struct {
	Number string
}

func (e DuplicatePassportError) Error() string {
	return fmt.Sprintf("a passenger with passport number %s is already on this flight", e.Number)
}

type PassengerNotFoundError struct {
	ID string
}

func (e PassengerNotFoundError) Error() string {
	return fmt.Sprintf("passenger %s is not on this flight", e.ID)
}

type InsufficientCapacityError struct {
	Aircraft string
	Layout   string
}

func (e InsufficientCapacityError) Error() string {
	return fmt.Sprintf("%s layout %s does not have enough seats for the current passengers",
		e.Aircraft, e.Layout)
}

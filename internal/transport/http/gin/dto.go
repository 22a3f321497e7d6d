package httpgin

import (
	"time"

	"github.com/kirinyoku/aerobook/internal/flight"
)

type CreateFlightRequest struct {
	Airline         string `json:"airline" binding:"required"`
	Number          string `json:"number" binding:"required"`
	Embarkation     string `json:"embarkation" binding:"required,len=3"`
	Destination     string `json:"destination" binding:"required,len=3"`
	Departs         string `json:"departs" binding:"required"` // "2006-01-02 15:04", local to embarkation
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
}

type LoadSeatingRequest struct {
	Aircraft string `json:"aircraft" binding:"required"`
	Layout   string `json:"layout"`
}

type AddPassengerRequest struct {
	Name           string `json:"name" binding:"required"`
	Gender         string `json:"gender" binding:"required,oneof=M F"`
	DOB            string `json:"dob" binding:"required"` // "2006-01-02"
	Nationality    string `json:"nationality" binding:"required"`
	Residency      string `json:"residency" binding:"required"`
	PassportNumber string `json:"passport_number" binding:"required"`
}

type AllocateSeatRequest struct {
	SeatNumber  string `json:"seat_number" binding:"required"`
	PassengerID string `json:"passenger_id" binding:"required"`
}

type AllocateNextSeatRequest struct {
	PassengerID string `json:"passenger_id" binding:"required"`
}

type BoardingCardsRequest struct {
	Format string `json:"format" binding:"required"`
	Gate   string `json:"gate" binding:"required"`
}

type FlightResponse struct {
	Airline           string   `json:"airline"`
	Number            string   `json:"number"`
	Embarkation       string   `json:"embarkation"`
	Destination       string   `json:"destination"`
	Departs           string   `json:"departs"`       // UTC, yyyymmddhhmm
	DepartsLocal      string   `json:"departs_local"` // RFC 3339 at embarkation
	DurationMinutes   int      `json:"duration_minutes"`
	Aircraft          string   `json:"aircraft,omitempty"`
	Layout            string   `json:"layout,omitempty"`
	Capacity          int      `json:"capacity"`
	AvailableCapacity int      `json:"available_capacity"`
	PassengerCount    int      `json:"passenger_count"`
	Details           []string `json:"details"`
}

type SeatAllocationResponse struct {
	SeatNumber    string `json:"seat_number"`
	PassengerID   string `json:"passenger_id"`
	PassengerName string `json:"passenger_name"`
}

type SeatingResponse struct {
	Aircraft         string                   `json:"aircraft"`
	Layout           string                   `json:"layout"`
	Capacity         int                      `json:"capacity"`
	Allocations      []SeatAllocationResponse `json:"allocations"`
	UnallocatedSeats []string                 `json:"unallocated_seats"`
}

type AllocateNextSeatResponse struct {
	SeatNumber  string `json:"seat_number"`
	PassengerID string `json:"passenger_id"`
}

type BoardingCardsResponse struct {
	Format string `json:"format"`
	Cards  int    `json:"cards"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func newFlightResponse(f *flight.Flight) FlightResponse {
	return FlightResponse{
		Airline:           f.Airline(),
		Number:            f.Number(),
		Embarkation:       f.Embarkation().Code,
		Destination:       f.Destination().Code,
		Departs:           f.Departs().Format(departsLayout),
		DepartsLocal:      f.DepartsLocal().Format(time.RFC3339),
		DurationMinutes:   int(f.Duration() / time.Minute),
		Aircraft:          f.Aircraft(),
		Layout:            f.Layout(),
		Capacity:          f.Capacity(),
		AvailableCapacity: f.AvailableCapacity(),
		PassengerCount:    f.PassengerCount(),
		Details:           f.Details(),
	}
}

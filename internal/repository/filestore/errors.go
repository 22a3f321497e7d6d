package filestore

import (
	"fmt"
	"time"

	"github.com/kirinyoku/aerobook/internal/repository"
)

type PlanNotFoundError struct {
	Aircraft string
	Layout   string
}

func (e PlanNotFoundError) Error() string {
	return fmt.Sprintf("seating plan not found for aircraft %s, layout %s", e.Aircraft, e.Layout)
}

func (e PlanNotFoundError) Unwrap() error { return repository.ErrNotFound }

type FlightNotFoundError struct {
	Number  string
	Departs time.Time
}

func (e FlightNotFoundError) Error() string {
	return fmt.Sprintf("no saved flight %s departing %s",
		e.Number, e.Departs.Format("2006-01-02"))
}

func (e FlightNotFoundError) Unwrap() error { return repository.ErrNotFound }

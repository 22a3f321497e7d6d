package seating

import "fmt"

type RowNotFoundError struct {
	Row string
}

func (e RowNotFoundError) Error() string {
	return fmt.Sprintf("row %s does not exist in the seating plan", e.Row)
}

type SeatNotFoundError struct {
	SeatNumber string
}

func (e SeatNotFoundError) Error() string {
	return fmt.Sprintf("seat %s does not exist in the seating plan", e.SeatNumber)
}

type SeatOccupiedError struct {
	SeatNumber string
}

func (e SeatOccupiedError) Error() string {
	return fmt.Sprintf("seat %s is already allocated", e.SeatNumber)
}

type DuplicateRowError struct {
	Number int
}

func (e DuplicateRowError) Error() string {
	return fmt.Sprintf("row %d appears more than once in the layout", e.Number)
}

type EmptyRowError struct {
	Number int
}

func (e EmptyRowError) Error() string {
	return fmt.Sprintf("row %d has no seat letters", e.Number)
}

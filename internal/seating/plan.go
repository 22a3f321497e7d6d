// Package seating implements the aircraft seating plan engine: the rows and
// seats defined for an (airline, aircraft, layout) combination, the current
// seat-to-passenger bindings, and the migration of bindings between two
// differently shaped plans.
//
// The shape of a plan (its rows and seat letters) is fixed when the plan is
// built; only the occupancy changes afterwards. Seat numbers are the row
// number followed by the seat letter, e.g. "28A". Seats are always
// enumerated front to back: ascending row number, then the letter order the
// layout defines for the row.
package seating

import (
	"fmt"
	"sort"
	"strconv"
)

// RowSpec describes one aircraft row when building a plan.
type RowSpec struct {
	Number  int
	Class   string
	Letters string
}

// Row is one fixed row of the plan.
type Row struct {
	Number  int
	Class   string
	Letters string
}

// Allocation is a single seat-to-occupant binding.
type Allocation struct {
	SeatNumber string
	OccupantID string
}

// Plan holds the fixed rows of one aircraft configuration plus the mutable
// seat occupancy. The occupied index only contains allocated seats; a seat
// number absent from it is unallocated.
type Plan struct {
	airline  string
	aircraft string
	layout   string
	rows     []Row
	rowIndex map[int]int
	occupied map[string]string
	capacity int
}

// New builds a plan from the supplied row specifications. Rows are ordered
// by ascending row number regardless of input order; a duplicate row number
// or a row without seat letters is rejected.
func New(airline, aircraft, layout string, rows []RowSpec) (*Plan, error) {
	const op = "seating.New"

	p := &Plan{
		airline:  airline,
		aircraft: aircraft,
		layout:   layout,
		rows:     make([]Row, 0, len(rows)),
		rowIndex: make(map[int]int, len(rows)),
		occupied: make(map[string]string),
	}

	for _, spec := range rows {
		if spec.Letters == "" {
			return nil, fmt.Errorf("%s: %w", op, EmptyRowError{Number: spec.Number})
		}

		if _, ok := p.rowIndex[spec.Number]; ok {
			return nil, fmt.Errorf("%s: %w", op, DuplicateRowError{Number: spec.Number})
		}

		p.rowIndex[spec.Number] = 0
		p.rows = append(p.rows, Row(spec))
		p.capacity += len(spec.Letters)
	}

	sort.Slice(p.rows, func(i, j int) bool {
		return p.rows[i].Number < p.rows[j].Number
	})

	for i, row := range p.rows {
		p.rowIndex[row.Number] = i
	}

	return p, nil
}

func (p *Plan) Airline() string  { return p.airline }
func (p *Plan) Aircraft() string { return p.aircraft }
func (p *Plan) Layout() string   { return p.layout }

// Capacity is the total seat count across all rows.
func (p *Plan) Capacity() int { return p.capacity }

// Rows returns a copy of the fixed row definitions, front to back.
func (p *Plan) Rows() []Row {
	rows := make([]Row, len(p.rows))
	copy(rows, p.rows)
	return rows
}

// lookupSeat splits a seat number into its row and letter and verifies both
// exist in the plan. All seat-number parsing is centralized here.
func (p *Plan) lookupSeat(seatNumber string) (Row, error) {
	if len(seatNumber) < 2 {
		return Row{}, SeatNotFoundError{SeatNumber: seatNumber}
	}

	letter := seatNumber[len(seatNumber)-1:]
	number, err := strconv.Atoi(seatNumber[:len(seatNumber)-1])
	if err != nil {
		return Row{}, RowNotFoundError{Row: seatNumber[:len(seatNumber)-1]}
	}

	i, ok := p.rowIndex[number]
	if !ok {
		return Row{}, RowNotFoundError{Row: strconv.Itoa(number)}
	}

	row := p.rows[i]
	for j := 0; j < len(row.Letters); j++ {
		if row.Letters[j:j+1] == letter {
			return row, nil
		}
	}

	return Row{}, SeatNotFoundError{SeatNumber: seatNumber}
}

// Allocate binds a seat to an occupant. If the occupant already holds a
// different seat in this plan they are moved: the old binding is cleared
// and the new one set, so an occupant never appears in two seats at once.
// Re-allocating an occupant to the seat they already hold is a no-op.
//
// Returns:
//   - seating.SeatOccupiedError if the seat is held by a different occupant.
//   - seating.RowNotFoundError / seating.SeatNotFoundError if the seat
//     number does not exist in the plan.
func (p *Plan) Allocate(seatNumber, occupantID string) error {
	const op = "seating.Plan.Allocate"

	if _, err := p.lookupSeat(seatNumber); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if current, ok := p.occupied[seatNumber]; ok {
		if current != occupantID {
			return fmt.Errorf("%s: %w", op, SeatOccupiedError{SeatNumber: seatNumber})
		}
		return nil
	}

	if previous, ok := p.OccupantSeat(occupantID); ok {
		delete(p.occupied, previous)
	}

	p.occupied[seatNumber] = occupantID

	return nil
}

// Clear removes any binding for the seat. Clearing an already empty seat is
// not an error.
func (p *Plan) Clear(seatNumber string) error {
	const op = "seating.Plan.Clear"

	if _, err := p.lookupSeat(seatNumber); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	delete(p.occupied, seatNumber)

	return nil
}

// OccupantSeat returns the seat held by the occupant, or false if they have
// none. At most one binding per occupant exists, maintained by Allocate's
// move-first behaviour.
func (p *Plan) OccupantSeat(occupantID string) (string, bool) {
	for seatNumber, id := range p.occupied {
		if id == occupantID {
			return seatNumber, true
		}
	}
	return "", false
}

// UnallocatedSeats returns every empty seat, front to back. The first
// element is the "next available seat".
func (p *Plan) UnallocatedSeats() []string {
	var seats []string
	p.eachSeat(func(seatNumber string) {
		if _, ok := p.occupied[seatNumber]; !ok {
			seats = append(seats, seatNumber)
		}
	})
	return seats
}

// Allocations returns every seat-to-occupant binding, front to back.
func (p *Plan) Allocations() []Allocation {
	var allocations []Allocation
	p.eachSeat(func(seatNumber string) {
		if occupantID, ok := p.occupied[seatNumber]; ok {
			allocations = append(allocations, Allocation{
				SeatNumber: seatNumber,
				OccupantID: occupantID,
			})
		}
	})
	return allocations
}

// PassengersWithoutSeats filters the candidate IDs down to those with no
// seat binding in the plan, preserving the candidate order.
func (p *Plan) PassengersWithoutSeats(candidateIDs []string) []string {
	seated := make(map[string]struct{}, len(p.occupied))
	for _, occupantID := range p.occupied {
		seated[occupantID] = struct{}{}
	}

	var unseated []string
	for _, id := range candidateIDs {
		if _, ok := seated[id]; !ok {
			unseated = append(unseated, id)
		}
	}
	return unseated
}

func (p *Plan) eachSeat(fn func(seatNumber string)) {
	for _, row := range p.rows {
		prefix := strconv.Itoa(row.Number)
		for j := 0; j < len(row.Letters); j++ {
			fn(prefix + row.Letters[j:j+1])
		}
	}
}

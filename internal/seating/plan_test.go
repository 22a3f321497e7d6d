package seating

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPlan builds a small two-class plan: row 1 with seats A-C, rows
// 2-12 with seats A-F.
func newTestPlan(t *testing.T) *Plan {
	t.Helper()

	rows := []RowSpec{{Number: 1, Class: "Business", Letters: "ABC"}}
	for n := 2; n <= 12; n++ {
		rows = append(rows, RowSpec{Number: n, Class: "Economy", Letters: "ABCDEF"})
	}

	plan, err := New("EasyJet", "A320", "1", rows)
	require.NoError(t, err)

	return plan
}

func TestNew(t *testing.T) {
	plan := newTestPlan(t)

	assert.Equal(t, "EasyJet", plan.Airline())
	assert.Equal(t, "A320", plan.Aircraft())
	assert.Equal(t, "1", plan.Layout())
	assert.Equal(t, 3+11*6, plan.Capacity())
}

func TestNew_RowsSortedByNumber(t *testing.T) {
	plan, err := New("EasyJet", "A320", "", []RowSpec{
		{Number: 10, Class: "Economy", Letters: "AB"},
		{Number: 2, Class: "Economy", Letters: "AB"},
	})
	require.NoError(t, err)

	rows := plan.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Number)
	assert.Equal(t, 10, rows[1].Number)
}

func TestNew_DuplicateRow(t *testing.T) {
	_, err := New("EasyJet", "A320", "", []RowSpec{
		{Number: 1, Class: "Economy", Letters: "AB"},
		{Number: 1, Class: "Economy", Letters: "CD"},
	})

	var dup DuplicateRowError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, 1, dup.Number)
}

func TestNew_EmptyRow(t *testing.T) {
	_, err := New("EasyJet", "A320", "", []RowSpec{
		{Number: 1, Class: "Economy", Letters: ""},
	})

	var empty EmptyRowError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, 1, empty.Number)
}

func TestAllocate(t *testing.T) {
	plan := newTestPlan(t)

	require.NoError(t, plan.Allocate("5D", "id"))

	seatNumber, ok := plan.OccupantSeat("id")
	require.True(t, ok)
	assert.Equal(t, "5D", seatNumber)
}

func TestAllocate_UnknownRow(t *testing.T) {
	plan := newTestPlan(t)

	err := plan.Allocate("100A", "id")

	var notFound RowNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "100", notFound.Row)
}

func TestAllocate_UnknownSeat(t *testing.T) {
	plan := newTestPlan(t)

	// Row 1 only has seats A-C
	err := plan.Allocate("1F", "id")

	var notFound SeatNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "1F", notFound.SeatNumber)
}

func TestAllocate_MalformedSeatNumber(t *testing.T) {
	plan := newTestPlan(t)

	for _, seatNumber := range []string{"", "A", "5", "AA"} {
		err := plan.Allocate(seatNumber, "id")
		assert.Error(t, err, "seat number %q", seatNumber)
	}
}

func TestAllocate_OccupiedSeat(t *testing.T) {
	plan := newTestPlan(t)
	require.NoError(t, plan.Allocate("5D", "id"))

	err := plan.Allocate("5D", "other-id")

	var occupied SeatOccupiedError
	require.ErrorAs(t, err, &occupied)
	assert.Equal(t, "5D", occupied.SeatNumber)

	// The original binding is untouched
	seatNumber, ok := plan.OccupantSeat("id")
	require.True(t, ok)
	assert.Equal(t, "5D", seatNumber)
}

func TestAllocate_SameSeatSameOccupantIsNoOp(t *testing.T) {
	plan := newTestPlan(t)
	require.NoError(t, plan.Allocate("5D", "id"))

	require.NoError(t, plan.Allocate("5D", "id"))

	seatNumber, ok := plan.OccupantSeat("id")
	require.True(t, ok)
	assert.Equal(t, "5D", seatNumber)
	assert.Len(t, plan.Allocations(), 1)
}

func TestAllocate_MovesOccupant(t *testing.T) {
	plan := newTestPlan(t)
	require.NoError(t, plan.Allocate("5D", "id"))

	require.NoError(t, plan.Allocate("7F", "id"))

	seatNumber, ok := plan.OccupantSeat("id")
	require.True(t, ok)
	assert.Equal(t, "7F", seatNumber)

	// The occupant never holds two seats
	assert.Len(t, plan.Allocations(), 1)
	assert.Contains(t, plan.UnallocatedSeats(), "5D")
}

func TestClear(t *testing.T) {
	plan := newTestPlan(t)
	require.NoError(t, plan.Allocate("1A", "id"))

	require.NoError(t, plan.Clear("1A"))

	_, ok := plan.OccupantSeat("id")
	assert.False(t, ok)
}

func TestClear_EmptySeat(t *testing.T) {
	plan := newTestPlan(t)

	require.NoError(t, plan.Clear("1A"))
}

func TestClear_UnknownSeat(t *testing.T) {
	plan := newTestPlan(t)

	assert.Error(t, plan.Clear("99A"))
}

func TestOccupantSeat_NotAllocated(t *testing.T) {
	plan := newTestPlan(t)

	_, ok := plan.OccupantSeat("id")
	assert.False(t, ok)
}

func TestUnallocatedSeats_FrontToBackOrder(t *testing.T) {
	plan := newTestPlan(t)

	seats := plan.UnallocatedSeats()
	require.Len(t, seats, plan.Capacity())
	assert.Equal(t, []string{"1A", "1B", "1C", "2A", "2B"}, seats[:5])

	// Rows compare numerically, not as strings
	assert.Equal(t, "12F", seats[len(seats)-1])
}

func TestUnallocatedSeats_ExcludesAllocated(t *testing.T) {
	plan := newTestPlan(t)
	require.NoError(t, plan.Allocate("5D", "id"))

	seats := plan.UnallocatedSeats()
	assert.Len(t, seats, plan.Capacity()-1)
	assert.NotContains(t, seats, "5D")
}

func TestAllocations_FrontToBackOrder(t *testing.T) {
	plan := newTestPlan(t)
	require.NoError(t, plan.Allocate("7F", "id-3"))
	require.NoError(t, plan.Allocate("1B", "id-1"))
	require.NoError(t, plan.Allocate("5D", "id-2"))

	assert.Equal(t, []Allocation{
		{SeatNumber: "1B", OccupantID: "id-1"},
		{SeatNumber: "5D", OccupantID: "id-2"},
		{SeatNumber: "7F", OccupantID: "id-3"},
	}, plan.Allocations())
}

func TestPassengersWithoutSeats(t *testing.T) {
	plan := newTestPlan(t)
	require.NoError(t, plan.Allocate("1A", "id-1"))

	unseated := plan.PassengersWithoutSeats([]string{"id-1", "id-2", "id-3"})

	assert.Equal(t, []string{"id-2", "id-3"}, unseated)
}

func TestAllocate_NeverTwoSeatsPerOccupant(t *testing.T) {
	plan := newTestPlan(t)

	// Walk one occupant across a series of moves, with a second occupant
	// pinned in place, and check the uniqueness invariants throughout.
	require.NoError(t, plan.Allocate("3C", "pinned"))

	for i, seatNumber := range []string{"1A", "2B", "5D", "2B", "12F", "1A"} {
		require.NoError(t, plan.Allocate(seatNumber, "walker"), "step %d", i)

		seen := make(map[string]string)
		for _, a := range plan.Allocations() {
			prev, dup := seen[a.OccupantID]
			require.False(t, dup, "occupant %s holds %s and %s", a.OccupantID, prev, a.SeatNumber)
			seen[a.OccupantID] = a.SeatNumber
		}

		require.Len(t, seen, 2, fmt.Sprintf("step %d", i))
	}
}

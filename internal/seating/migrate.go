package seating

// CopyAllocations moves every seat binding in from into to. It is used when
// a flight swaps to a different aircraft or layout.
//
// The migration runs in two deterministic passes:
//
//  1. Each occupant is offered the identical seat number in the new plan, in
//     the old plan's front-to-back allocation order. A layout swap is
//     usually to a close variant of the same family, so keeping the seat
//     identity avoids disrupting passengers. Occupants whose seat is missing
//     or already taken in the new plan drop to the second pass.
//  2. The occupants left over are paired positionally with the new plan's
//     remaining unallocated seats, front to back.
//
// Returns the occupant IDs that could not be placed in the new plan, in
// pass order, or nil when everyone was re-seated. The caller is expected to
// have verified the new plan's capacity beforehand; a non-empty residual is
// reported rather than raised because a lost seat assignment is recoverable
// by re-allocation.
func CopyAllocations(from, to *Plan) []string {
	allocations := from.Allocations()
	if len(allocations) == 0 {
		return nil
	}

	var unplaced []string
	for _, a := range allocations {
		if err := to.Allocate(a.SeatNumber, a.OccupantID); err != nil {
			unplaced = append(unplaced, a.OccupantID)
		}
	}

	empty := to.UnallocatedSeats()

	var residual []string
	for i, occupantID := range unplaced {
		if i >= len(empty) {
			residual = append(residual, unplaced[i:]...)
			break
		}
		if err := to.Allocate(empty[i], occupantID); err != nil {
			residual = append(residual, occupantID)
		}
	}

	return residual
}

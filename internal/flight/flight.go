// Package flight implements the flight aggregate: the root that owns a
// flight's passenger records and its (at most one) seating plan, and
// enforces the capacity and uniqueness rules across every mutation.
package flight

import (
	"fmt"
	"sort"
	"time"

	"github.com/kirinyoku/aerobook/internal/domain"
	"github.com/kirinyoku/aerobook/internal/seating"
)

// AirportDirectory resolves 3-letter IATA codes to airport details.
type AirportDirectory interface {
	Resolve(code string) (domain.Airport, error)
}

// PlanSource reads the seating plan defined for an airline, aircraft model
// and optional layout name.
type PlanSource interface {
	Read(airline, aircraft, layout string) (*seating.Plan, error)
}

// SeatAssignment pairs an allocated seat with the passenger holding it.
type SeatAssignment struct {
	SeatNumber string
	Passenger  *domain.Passenger
}

// BoardingPass carries the flat field map handed to a boarding card
// generator for one allocated seat.
type BoardingPass struct {
	SeatNumber string
	Fields     map[string]string
}

// Flight owns its passenger map and its seating plan exclusively. Seat
// occupants inside the plan are plain passenger IDs, so there is no
// reference cycle back to the flight.
type Flight struct {
	airline     string
	number      string
	embarkation domain.Airport
	destination domain.Airport
	embLocation *time.Location
	dstLocation *time.Location
	departs     time.Time // always UTC
	duration    time.Duration
	passengers  map[string]*domain.Passenger
	seating     *seating.Plan
}

// New creates a flight with an empty passenger map and no seating plan.
// The embarkation and destination codes must resolve against the supplied
// directory. The departure time is stored in UTC: a time carrying an
// explicit zone is converted, while a time in time.Local is taken as the
// wall-clock time at the point of embarkation.
func New(
	dir AirportDirectory,
	airline string,
	number string,
	embarkation string,
	destination string,
	departs time.Time,
	duration time.Duration,
) (*Flight, error) {
	const op = "flight.New"

	if airline == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrAirlineRequired)
	}

	if number == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrNumberRequired)
	}

	emb, err := dir.Resolve(embarkation)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, AirportNotFoundError{Code: embarkation})
	}

	dst, err := dir.Resolve(destination)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, AirportNotFoundError{Code: destination})
	}

	embLocation, err := time.LoadLocation(emb.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%s: load zone %s: %w", op, emb.TimeZone, err)
	}

	dstLocation, err := time.LoadLocation(dst.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%s: load zone %s: %w", op, dst.TimeZone, err)
	}

	if departs.Location() == time.Local {
		y, mo, d := departs.Date()
		h, mi, s := departs.Clock()
		departs = time.Date(y, mo, d, h, mi, s, 0, embLocation)
	}

	return &Flight{
		airline:     airline,
		number:      number,
		embarkation: emb,
		destination: dst,
		embLocation: embLocation,
		dstLocation: dstLocation,
		departs:     departs.UTC(),
		duration:    duration,
		passengers:  make(map[string]*domain.Passenger),
	}, nil
}

func (f *Flight) Airline() string             { return f.airline }
func (f *Flight) Number() string              { return f.number }
func (f *Flight) Embarkation() domain.Airport { return f.embarkation }
func (f *Flight) Destination() domain.Airport { return f.destination }
func (f *Flight) Duration() time.Duration     { return f.duration }

// Departs is the departure instant in UTC.
func (f *Flight) Departs() time.Time { return f.departs }

// DepartsLocal is the departure time at the point of embarkation.
func (f *Flight) DepartsLocal() time.Time { return f.departs.In(f.embLocation) }

// ArrivesLocal is the arrival time at the destination.
func (f *Flight) ArrivesLocal() time.Time {
	return f.departs.Add(f.duration).In(f.dstLocation)
}

// Aircraft is the aircraft model of the loaded plan, or "" without one.
func (f *Flight) Aircraft() string {
	if f.seating == nil {
		return ""
	}
	return f.seating.Aircraft()
}

// Layout is the layout name of the loaded plan, or "" without one.
func (f *Flight) Layout() string {
	if f.seating == nil {
		return ""
	}
	return f.seating.Layout()
}

// Seating returns the loaded seating plan, or nil.
func (f *Flight) Seating() *seating.Plan { return f.seating }

// Capacity is the total seat count, 0 if no plan is loaded.
func (f *Flight) Capacity() int {
	if f.seating == nil {
		return 0
	}
	return f.seating.Capacity()
}

// AvailableCapacity is the seat count minus the passenger count, 0 if no
// plan is loaded.
func (f *Flight) AvailableCapacity() int {
	if f.seating == nil {
		return 0
	}
	return f.seating.Capacity() - len(f.passengers)
}

// PassengerCount is the number of passengers on the flight.
func (f *Flight) PassengerCount() int { return len(f.passengers) }

// Passenger returns the passenger with the given ID, if aboard.
func (f *Flight) Passenger(id string) (*domain.Passenger, bool) {
	p, ok := f.passengers[id]
	return p, ok
}

// Passengers returns the passenger records ordered by ID.
func (f *Flight) Passengers() []*domain.Passenger {
	out := make([]*domain.Passenger, 0, len(f.passengers))
	for _, p := range f.passengers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddPassenger adds a passenger record to the flight. It does not allocate
// a seat; that is a separate, explicit step.
//
// Returns:
//   - flight.DuplicatePassengerError if the ID is already aboard.
//   - flight.ErrFlightFull if a plan is loaded and the flight is at capacity.
//   - flight.DuplicatePassportError if another passenger shares the
//     passport number.
func (f *Flight) AddPassenger(p *domain.Passenger) error {
	const op = "flight.Flight.AddPassenger"

	if _, ok := f.passengers[p.ID]; ok {
		return fmt.Errorf("%s: %w", op, DuplicatePassengerError{ID: p.ID})
	}

	if f.seating != nil && len(f.passengers) == f.seating.Capacity() {
		return fmt.Errorf("%s: %w", op, ErrFlightFull)
	}

	for _, existing := range f.passengers {
		if existing.PassportNumber == p.PassportNumber {
			return fmt.Errorf("%s: %w", op,
				DuplicatePassportError{Number: p.PassportNumber})
		}
	}

	f.passengers[p.ID] = p

	return nil
}

// RemovePassenger removes the passenger with the given ID, first clearing
// any seat they hold so the plan never references a passenger that is not
// aboard.
func (f *Flight) RemovePassenger(id string) error {
	const op = "flight.Flight.RemovePassenger"

	if _, ok := f.passengers[id]; !ok {
		return fmt.Errorf("%s: %w", op, PassengerNotFoundError{ID: id})
	}

	if f.seating != nil {
		if seatNumber, ok := f.seating.OccupantSeat(id); ok {
			if err := f.seating.Clear(seatNumber); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	delete(f.passengers, id)

	return nil
}

// AllocateSeat allocates a seat to a passenger already on the flight,
// moving them if they hold a different seat.
func (f *Flight) AllocateSeat(seatNumber, passengerID string) error {
	const op = "flight.Flight.AllocateSeat"

	if _, ok := f.passengers[passengerID]; !ok {
		return fmt.Errorf("%s: %w", op, PassengerNotFoundError{ID: passengerID})
	}

	if f.seating == nil {
		return fmt.Errorf("%s: %w", op, ErrNoSeatingPlan)
	}

	if err := f.seating.Allocate(seatNumber, passengerID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AllocateNextEmptySeat gives the passenger the first unallocated seat,
// filling the plane front to back.
func (f *Flight) AllocateNextEmptySeat(passengerID string) error {
	const op = "flight.Flight.AllocateNextEmptySeat"

	if f.seating == nil {
		return fmt.Errorf("%s: %w", op, ErrNoSeatingPlan)
	}

	empty := f.seating.UnallocatedSeats()
	if len(empty) == 0 {
		return fmt.Errorf("%s: %w", op, ErrNoSeatsAvailable)
	}

	if err := f.AllocateSeat(empty[0], passengerID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AllocatedSeat returns the seat held by the passenger, or false if they
// have none or no plan is loaded.
func (f *Flight) AllocatedSeat(passengerID string) (string, bool) {
	if f.seating == nil {
		return "", false
	}
	return f.seating.OccupantSeat(passengerID)
}

// SeatAssignments returns every allocated seat with its passenger record,
// front to back. Nil without a plan or without allocations.
func (f *Flight) SeatAssignments() []SeatAssignment {
	if f.seating == nil {
		return nil
	}

	var assignments []SeatAssignment
	for _, a := range f.seating.Allocations() {
		assignments = append(assignments, SeatAssignment{
			SeatNumber: a.SeatNumber,
			Passenger:  f.passengers[a.OccupantID],
		})
	}
	return assignments
}

// LoadSeating resolves a plan from the source and attaches it to the
// flight. See AttachSeating for the swap rules.
func (f *Flight) LoadSeating(src PlanSource, aircraft, layout string) error {
	const op = "flight.Flight.LoadSeating"

	plan, err := src.Read(f.airline, aircraft, layout)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := f.AttachSeating(plan); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AttachSeating swaps the supplied plan in as the flight's seating. A plan
// with fewer seats than current passengers is rejected and the existing
// plan kept. If a plan is already present its seat allocations are migrated
// into the new one first; occupants the migration cannot place are left
// unseated, recoverable through the plan's PassengersWithoutSeats.
func (f *Flight) AttachSeating(plan *seating.Plan) error {
	const op = "flight.Flight.AttachSeating"

	if plan.Capacity() < len(f.passengers) {
		return fmt.Errorf("%s: %w", op, InsufficientCapacityError{
			Aircraft: plan.Aircraft(),
			Layout:   plan.Layout(),
		})
	}

	if f.seating != nil {
		seating.CopyAllocations(f.seating, plan)
	}

	f.seating = plan

	return nil
}

// BoardingPasses builds the generator field map for every allocated seat.
// Returns flight.ErrNoAllocations when the flight has no plan or no seat
// allocations at all.
func (f *Flight) BoardingPasses(gate string) ([]BoardingPass, error) {
	const op = "flight.Flight.BoardingPasses"

	assignments := f.SeatAssignments()
	if len(assignments) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoAllocations)
	}

	departs := f.DepartsLocal().Format("03:04 PM")
	arrives := f.ArrivesLocal().Format("03:04 PM")

	passes := make([]BoardingPass, 0, len(assignments))
	for _, a := range assignments {
		passes = append(passes, BoardingPass{
			SeatNumber: a.SeatNumber,
			Fields: map[string]string{
				"gate":             gate,
				"airline":          f.airline,
				"embarkation_name": f.embarkation.Name,
				"embarkation":      f.embarkation.Code,
				"departs":          departs,
				"destination_name": f.destination.Name,
				"destination":      f.destination.Code,
				"arrives":          arrives,
				"name":             a.Passenger.Name,
				"seat_number":      a.SeatNumber,
			},
		})
	}

	return passes, nil
}

// Details returns the printable flight details block, one line per detail.
func (f *Flight) Details() []string {
	hours := int(f.duration / time.Hour)
	minutes := int(f.duration/time.Minute) % 60

	return []string{
		fmt.Sprintf("Airline        : %s", f.airline),
		fmt.Sprintf("Flight Number  : %s", f.number),
		fmt.Sprintf("Embarkation    : %s", f.embarkation.Code),
		fmt.Sprintf("Destination    : %s", f.destination.Code),
		fmt.Sprintf("Departs        : %s", f.DepartsLocal().Format("2006-01-02 15:04:05")),
		fmt.Sprintf("Duration       : %d:%02d", hours, minutes),
		fmt.Sprintf("Aircraft       : %s", f.Aircraft()),
		fmt.Sprintf("Seating Layout : %s", f.Layout()),
		fmt.Sprintf("Capacity       : %d", f.Capacity()),
	}
}

func (f *Flight) String() string {
	return fmt.Sprintf("%s %s %s to %s, %s",
		f.airline,
		f.number,
		f.embarkation.Code,
		f.destination.Code,
		f.DepartsLocal().Format("02-Jan-2006 15:04"),
	)
}

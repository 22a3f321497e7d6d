package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/kirinyoku/aerobook/internal/domain"
	"github.com/kirinyoku/aerobook/internal/flight"
	"github.com/kirinyoku/aerobook/internal/repository"
	"github.com/kirinyoku/aerobook/internal/seating"
)

// departsFormat is the compact UTC departure instant used in flight
// documents and file names.
const departsFormat = "200601021504"

// FlightStore saves and loads whole flight aggregates as single JSON
// documents in the flights folder. A save replaces the file in full; a load
// fully reconstructs the flight, its passengers and its seating plan
// occupancy.
type FlightStore struct {
	fsys     billy.Filesystem
	airports *AirportDirectory
}

func NewFlightStore(fsys billy.Filesystem, airports *AirportDirectory) *FlightStore {
	return &FlightStore{fsys: fsys, airports: airports}
}

type flightDocument struct {
	Details    detailsDocument             `json:"details"`
	Passengers map[string]domain.Passenger `json:"passengers"`
	Seating    *seatingDocument            `json:"seating"`
}

type detailsDocument struct {
	Airline     string `json:"airline"`
	Number      string `json:"number"`
	Embarkation string `json:"embarkation"`
	Destination string `json:"destination"`
	Departs     string `json:"departs"`  // yyyymmddhhmm, UTC
	Duration    int64  `json:"duration"` // seconds
	Aircraft    string `json:"aircraft"`
	Layout      string `json:"layout"`
	Capacity    int    `json:"capacity"`
}

type seatingDocument struct {
	Airline     string            `json:"airline"`
	Aircraft    string            `json:"aircraft"`
	Layout      string            `json:"layout"`
	Rows        []rowDocument     `json:"rows"`
	Allocations map[string]string `json:"allocations"`
}

type rowDocument struct {
	Row   int    `json:"row"`
	Class string `json:"class"`
	Seats string `json:"seats"`
}

func flightFileName(number string, departs time.Time) string {
	return sanitizeName(number, departs.Format("20060102")) + ".json"
}

// Save writes the flight to its data file, replacing any previous content.
func (s *FlightStore) Save(f *flight.Flight) error {
	const op = "filestore.FlightStore.Save"

	doc := flightDocument{
		Details: detailsDocument{
			Airline:     f.Airline(),
			Number:      f.Number(),
			Embarkation: f.Embarkation().Code,
			Destination: f.Destination().Code,
			Departs:     f.Departs().Format(departsFormat),
			Duration:    int64(f.Duration() / time.Second),
			Aircraft:    f.Aircraft(),
			Layout:      f.Layout(),
			Capacity:    f.Capacity(),
		},
		Passengers: make(map[string]domain.Passenger),
	}

	for _, p := range f.Passengers() {
		doc.Passengers[p.ID] = *p
	}

	if plan := f.Seating(); plan != nil {
		sd := &seatingDocument{
			Airline:     plan.Airline(),
			Aircraft:    plan.Aircraft(),
			Layout:      plan.Layout(),
			Allocations: make(map[string]string),
		}

		for _, row := range plan.Rows() {
			sd.Rows = append(sd.Rows, rowDocument{
				Row:   row.Number,
				Class: row.Class,
				Seats: row.Letters,
			})
		}

		for _, a := range plan.Allocations() {
			sd.Allocations[a.SeatNumber] = a.OccupantID
		}

		doc.Seating = sd
	}

	data, err := json.MarshalIndent(doc, "", "   ")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	dir := flightsFolder
	if err := s.fsys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	path := s.fsys.Join(dir, flightFileName(f.Number(), f.Departs()))
	if err := util.WriteFile(s.fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("%s: write %s: %w", op, path, err)
	}

	return nil
}

// Load reads a previously saved flight data file and reconstructs the
// flight, passenger map and seating plan occupancy.
//
// Returns:
//   - filestore.FlightNotFoundError if no data file exists.
//   - repository.ErrMalformed if the file content cannot be parsed.
func (s *FlightStore) Load(number string, departs time.Time) (*flight.Flight, error) {
	const op = "filestore.FlightStore.Load"

	path := s.fsys.Join(flightsFolder, flightFileName(number, departs))

	data, err := util.ReadFile(s.fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", op,
				FlightNotFoundError{Number: number, Departs: departs})
		}
		return nil, fmt.Errorf("%s: read %s: %w", op, path, err)
	}

	var doc flightDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: parse %s: %w", op, path, repository.ErrMalformed)
	}

	instant, err := time.Parse(departsFormat, doc.Details.Departs)
	if err != nil {
		return nil, fmt.Errorf("%s: bad departure time %q: %w",
			op, doc.Details.Departs, repository.ErrMalformed)
	}

	f, err := flight.New(
		s.airports,
		doc.Details.Airline,
		doc.Details.Number,
		doc.Details.Embarkation,
		doc.Details.Destination,
		instant,
		time.Duration(doc.Details.Duration)*time.Second,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, record := range doc.Passengers {
		p := record
		if err := f.AddPassenger(&p); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if doc.Seating != nil {
		rows := make([]seating.RowSpec, 0, len(doc.Seating.Rows))
		for _, row := range doc.Seating.Rows {
			rows = append(rows, seating.RowSpec{
				Number:  row.Row,
				Class:   row.Class,
				Letters: row.Seats,
			})
		}

		plan, err := seating.New(
			doc.Seating.Airline,
			doc.Seating.Aircraft,
			doc.Seating.Layout,
			rows,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		for seatNumber, occupantID := range doc.Seating.Allocations {
			if err := plan.Allocate(seatNumber, occupantID); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}

		if err := f.AttachSeating(plan); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return f, nil
}

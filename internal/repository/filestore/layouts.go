package filestore

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/go-git/go-billy/v5"
	"github.com/kirinyoku/aerobook/internal/repository"
	"github.com/kirinyoku/aerobook/internal/seating"
)

// Seating plan files are CSV with a single header row followed by one row
// per aircraft row: row number, seating class, concatenated seat letters.
// For example a 6-seat economy row 28 with letters A-F is "28,Economy,ABCDEF".
const (
	rowNumberColumn   = 0
	classColumn       = 1
	seatLettersColumn = 2
)

// LayoutSource reads seating plan definitions from the seating_plans
// folder.
type LayoutSource struct {
	fsys billy.Filesystem
}

func NewLayoutSource(fsys billy.Filesystem) *LayoutSource {
	return &LayoutSource{fsys: fsys}
}

// planFileName builds the layout file name from the airline, aircraft and
// optional layout, e.g. ("EasyJet", "A321", "neo") -> "easyjet_a321_neo.csv".
func planFileName(airline, aircraft, layout string) string {
	if layout == "" {
		return sanitizeName(airline, aircraft) + ".csv"
	}
	return sanitizeName(airline, aircraft, layout) + ".csv"
}

// Read loads the plan defined for the airline, aircraft model and optional
// layout name.
//
// Returns:
//   - filestore.PlanNotFoundError if no matching definition file exists.
//   - repository.ErrMalformed if the file content cannot be parsed.
func (s *LayoutSource) Read(airline, aircraft, layout string) (*seating.Plan, error) {
	const op = "filestore.LayoutSource.Read"

	path := s.fsys.Join(seatingPlansFolder, planFileName(airline, aircraft, layout))

	f, err := s.fsys.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", op,
				PlanNotFoundError{Aircraft: aircraft, Layout: layout})
		}
		return nil, fmt.Errorf("%s: open %s: %w", op, path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: parse %s: %w", op, path, repository.ErrMalformed)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s: %s has no seating rows: %w", op, path, repository.ErrMalformed)
	}

	// The first record is the mandatory column headers.
	rows := make([]seating.RowSpec, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 3 {
			return nil, fmt.Errorf("%s: short record in %s: %w", op, path, repository.ErrMalformed)
		}

		number, err := strconv.Atoi(record[rowNumberColumn])
		if err != nil {
			return nil, fmt.Errorf("%s: bad row number %q in %s: %w",
				op, record[rowNumberColumn], path, repository.ErrMalformed)
		}

		rows = append(rows, seating.RowSpec{
			Number:  number,
			Class:   record[classColumn],
			Letters: record[seatLettersColumn],
		})
	}

	plan, err := seating.New(airline, aircraft, layout, rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, path, err)
	}

	return plan, nil
}

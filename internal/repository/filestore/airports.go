package filestore

import (
	"encoding/json"
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/kirinyoku/aerobook/internal/domain"
	"github.com/kirinyoku/aerobook/internal/repository"
)

const airportCodesFile = "airport_codes.json"

// AirportDirectory is the immutable airport reference table, read once from
// the lookups folder at construction.
type AirportDirectory struct {
	airports map[string]domain.Airport
}

type airportCodesDocument struct {
	AirportCodes map[string]domain.Airport `json:"airport_codes"`
}

// NewAirportDirectory loads the airport code lookup file from the supplied
// data filesystem.
func NewAirportDirectory(fsys billy.Filesystem) (*AirportDirectory, error) {
	const op = "filestore.NewAirportDirectory"

	path := fsys.Join(lookupsFolder, airportCodesFile)

	data, err := util.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%s: read %s: %w", op, path, err)
	}

	var doc airportCodesDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: parse %s: %w", op, path, repository.ErrMalformed)
	}

	airports := make(map[string]domain.Airport, len(doc.AirportCodes))
	for code, airport := range doc.AirportCodes {
		airport.Code = code
		airports[code] = airport
	}

	return &AirportDirectory{airports: airports}, nil
}

// Resolve returns the airport details for a 3-letter IATA code.
func (d *AirportDirectory) Resolve(code string) (domain.Airport, error) {
	const op = "filestore.AirportDirectory.Resolve"

	airport, ok := d.airports[code]
	if !ok {
		return domain.Airport{}, fmt.Errorf("%s: %s: %w", op, code, repository.ErrNotFound)
	}

	return airport, nil
}

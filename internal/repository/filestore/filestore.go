// Package filestore implements the file-backed collaborators of the
// booking core: the airport code lookup, the seating layout source, the
// flight store and the boarding card writer. Everything goes through a
// billy filesystem so tests can run against an in-memory one.
//
// Data files live in fixed sub-folders of one data folder:
//
//	lookups/airport_codes.json
//	seating_plans/<airline>_<aircraft>[_<layout>].csv
//	flights/<number>_<yyyymmdd>.json
//	boarding_cards/<number>_<seat>_<yyyymmdd>.<format>
//
// File names are lowercased with non-alphanumerics replaced by
// underscores.
package filestore

import (
	"regexp"
	"strings"
)

const (
	lookupsFolder       = "lookups"
	seatingPlansFolder  = "seating_plans"
	flightsFolder       = "flights"
	boardingCardsFolder = "boarding_cards"
)

var nonAlphanumeric = regexp.MustCompile(`\W`)

func sanitizeName(parts ...string) string {
	name := strings.Join(parts, "_")
	return strings.ToLower(nonAlphanumeric.ReplaceAllString(name, "_"))
}

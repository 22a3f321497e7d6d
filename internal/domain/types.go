package domain

// Airport holds the reference details for a single airport, keyed by its
// 3-letter IATA code. TimeZone is an IANA zone name e.g. "Europe/London".
type Airport struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	TimeZone string `json:"tz"`
}

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Passenger is a single passenger record. Records are immutable once
// created; the only change path is removal and re-add.
type Passenger struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Gender         Gender `json:"gender"`
	DOB            string `json:"dob"` // yyyymmdd
	Nationality    string `json:"nationality"`
	Residency      string `json:"residency"`
	PassportNumber string `json:"passport_number"`
}

package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const dobFormat = "20060102"

// NewPassenger validates the supplied details and returns a passenger
// record with a freshly generated unique ID.
func NewPassenger(
	name string,
	gender Gender,
	dob time.Time,
	nationality string,
	residency string,
	passportNumber string,
) (*Passenger, error) {
	const op = "domain.NewPassenger"

	if name == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrNameRequired)
	}

	if gender != GenderMale && gender != GenderFemale {
		return nil, fmt.Errorf("%s: %w", op, InvalidGenderError{Gender: gender})
	}

	if dob.IsZero() {
		return nil, fmt.Errorf("%s: %w", op, ErrDOBRequired)
	}

	if nationality == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrNationalityRequired)
	}

	if residency == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrResidencyRequired)
	}

	if passportNumber == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrPassportNumberRequired)
	}

	return &Passenger{
		ID:             uuid.New().String(),
		Name:           name,
		Gender:         gender,
		DOB:            dob.Format(dobFormat),
		Nationality:    nationality,
		Residency:      residency,
		PassportNumber: passportNumber,
	}, nil
}

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNameRequired           = errors.New("name is mandatory")
	ErrDOBRequired            = errors.New("date of birth is mandatory")
	ErrNationalityRequired    = errors.New("nationality is mandatory")
	ErrResidencyRequired      = errors.New("country of residency is mandatory")
	ErrPassportNumberRequired = errors.New("passport number is mandatory")
)

type InvalidGenderError struct {
	Gender Gender
}

func (e InvalidGenderError) Error() string {
	return fmt.Sprintf("%q is not a valid gender", string(e.Gender))
}

package booking

import (
	"fmt"
	"time"
)

type FlightNotOpenError struct {
	Number  string
	Departs time.Time
}

func (e FlightNotOpenError) Error() string {
	return fmt.Sprintf("flight %s departing %s is not open",
		e.Number, e.Departs.Format("2006-01-02 15:04"))
}

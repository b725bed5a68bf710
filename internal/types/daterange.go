package types

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateRange is an inclusive start/end date pair in YYYY-MM-DD form.
type DateRange struct {
	Start string `json:"start_date"`
	End   string `json:"end_date"`
}

// NewDateRange parses and orders a start/end date pair.
// Both dates must be YYYY-MM-DD and start must not be after end.
func NewDateRange(start, end string) (DateRange, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid start date %q: expected YYYY-MM-DD", start)
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid end date %q: expected YYYY-MM-DD", end)
	}
	if startDate.After(endDate) {
		return DateRange{}, fmt.Errorf("start date %s is after end date %s", start, end)
	}
	return DateRange{Start: start, End: end}, nil
}

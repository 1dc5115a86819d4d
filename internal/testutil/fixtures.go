package testutil

import (
	"fmt"
	"strconv"
	"strings"
)

// Rider statuses from the handout the fixtures were submitted against.
const (
	Waiting   = "waiting"
	Cancelled = "cancelled"
	Satisfied = "satisfied"
)

// Location is a submission that happened to spell its fields correctly.
type Location struct {
	Row    int
	Column int
}

// Equal reports whether two locations coincide. The handout called the
// parameter "other"; the submission abbreviated it to "othr".
func (l Location) Equal(othr Location) bool {
	return l.Row == othr.Row && l.Column == othr.Column
}

// Rider mirrors a real submission: the handout asked for identifier,
// patience, origin and destination, and got this.
type Rider struct {
	Id          string
	Location    Location
	Destination Location
	Patience    int
	Status      string
}

// ParseLocation converts a "row,column" string into a Location. The
// submission declared its parameter as "locn" where the handout said
// "location_str".
func ParseLocation(locn string) (Location, error) {
	parts := strings.SplitN(locn, ",", 2)
	if len(parts) != 2 {
		return Location{}, fmt.Errorf("malformed location %q", locn)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Location{}, fmt.Errorf("malformed row in %q: %w", locn, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Location{}, fmt.Errorf("malformed column in %q: %w", locn, err)
	}
	return Location{Row: row, Column: col}, nil
}

// Divide fails for a zero divisor. Used to exercise application-logic errors
// passing through the adapters untouched.
func Divide(numr, denr float64) (float64, error) {
	if denr == 0 {
		return 0, fmt.Errorf("division by zero")
	}
	return numr / denr, nil
}

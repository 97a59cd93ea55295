package models

import "math"

// Filters are the caller-supplied pipeline bounds. A zero, negative or
// infinite MaxAgeHours disables the age filter entirely.
type Filters struct {
	MinViews    int64
	MaxAgeHours float64
}

func (f Filters) AgeBounded() bool {
	return f.MaxAgeHours > 0 && !math.IsInf(f.MaxAgeHours, 1)
}

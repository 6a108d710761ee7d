package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidWorkingTime is returned when a working-time document breaks its invariants
var ErrInvalidWorkingTime = errors.New("invalid working time")

// Break is a pause inside a working day, in minutes since local midnight
type Break struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// WorkingTime describes the open hours of a working day, in minutes since local midnight
type WorkingTime struct {
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Breaks []Break `json:"breaks"`
}

// Validate checks the working-time bounds. Breaks are not required to lie
// inside the day or to be disjoint from each other.
func (wt WorkingTime) Validate() error {
	if wt.Start < 0 || wt.End > MinutesPerDay {
		return fmt.Errorf("%w: hours must be within 0..%d, got %d..%d", ErrInvalidWorkingTime, MinutesPerDay, wt.Start, wt.End)
	}
	if wt.Start >= wt.End {
		return fmt.Errorf("%w: start %d must be before end %d", ErrInvalidWorkingTime, wt.Start, wt.End)
	}
	for i, b := range wt.Breaks {
		if b.Start < 0 || b.End > MinutesPerDay {
			return fmt.Errorf("%w: break #%d must be within 0..%d", ErrInvalidWorkingTime, i, MinutesPerDay)
		}
		if b.Start >= b.End {
			return fmt.Errorf("%w: break #%d start %d must be before end %d", ErrInvalidWorkingTime, i, b.Start, b.End)
		}
	}
	return nil
}

// WorkingDay represents the schedule of a professional on a calendar date
type WorkingDay struct {
	ID             int64
	ProfessionalID int64
	Date           time.Time
	IsClosed       bool
	Time           *WorkingTime // nil = часы не заданы

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the day is open and has hours configured
func (d *WorkingDay) IsBookable() bool {
	return d != nil && !d.IsClosed && d.Time != nil
}

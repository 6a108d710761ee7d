package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString is returned for values that are not HH:MM
var ErrInvalidTimeString = errors.New("invalid time string")

const (
	timeLayout = "15:04"
	endOfDay   = "24:00"
)

// TimeString is a wall-clock time of day in HH:MM form
type TimeString string

// IsZero returns true if the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the HH:MM format
func (t TimeString) Validate() error {
	_, err := t.Minutes()
	return err
}

// Minutes returns the number of minutes since midnight. 24:00 is accepted as the end of the day.
func (t TimeString) Minutes() (int, error) {
	if t == endOfDay {
		return 24 * 60, nil
	}
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// String implements fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// FromMinutes builds a TimeString from minutes since midnight.
// 1440 is rendered as 24:00.
func FromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

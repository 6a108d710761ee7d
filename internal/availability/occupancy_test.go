package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

func TestOccupiedIntervals(t *testing.T) {
	bookings := []*domain.Booking{
		{StartTime: "10:00", EndTime: "10:30", Status: domain.StatusConfirmed},
		{StartTime: "11:00", EndTime: "11:30", Status: domain.StatusCancelled},
		{StartTime: "12:00", EndTime: "12:45", Status: domain.StatusCompleted},
		{StartTime: types.TimeString("xx"), EndTime: "13:00", Status: domain.StatusCancelled},
		nil,
		{StartTime: "14:00", EndTime: "24:00", Status: domain.StatusConfirmed},
	}

	occupied, err := OccupiedIntervals(bookings)
	require.NoError(t, err)
	assert.Equal(t, []TimeSlot{{600, 630}, {840, 1440}}, occupied)
}

func TestOccupiedIntervals_MalformedConfirmedBooking(t *testing.T) {
	bookings := []*domain.Booking{
		{PublicID: "aB3-_", StartTime: "10:00", EndTime: "10:30:00", Status: domain.StatusConfirmed},
	}

	_, err := OccupiedIntervals(bookings)
	assert.ErrorIs(t, err, ErrMalformedBooking)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOverlapsExisting(t *testing.T) {
	existing := []TimeSlot{{600, 630}}

	tests := []struct {
		name      string
		requested TimeSlot
		want      bool
	}{
		{"inside", TimeSlot{605, 620}, true},
		{"ends where existing starts", TimeSlot{570, 600}, true},
		{"starts where existing ends", TimeSlot{630, 660}, true},
		{"before", TimeSlot{540, 599}, false},
		{"after", TimeSlot{631, 700}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverlapsExisting(tt.requested, existing))
		})
	}
}

func TestWithinWorkingHours(t *testing.T) {
	wt := domain.WorkingTime{Start: 540, End: 1080, Breaks: []domain.Break{{Start: 720, End: 780}}}

	assert.True(t, WithinWorkingHours(TimeSlot{540, 1080}, wt))
	assert.True(t, WithinWorkingHours(TimeSlot{730, 760}, wt))
	assert.False(t, WithinWorkingHours(TimeSlot{530, 560}, wt))
	assert.False(t, WithinWorkingHours(TimeSlot{1060, 1090}, wt))
}

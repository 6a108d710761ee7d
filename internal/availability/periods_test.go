package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

func TestResolvePeriods(t *testing.T) {
	tests := []struct {
		name         string
		wt           domain.WorkingTime
		ignoreBreaks bool
		want         []TimeSlot
	}{
		{
			name: "no breaks",
			wt:   domain.WorkingTime{Start: 540, End: 1020},
			want: []TimeSlot{{540, 1020}},
		},
		{
			name: "single break",
			wt:   domain.WorkingTime{Start: 540, End: 1020, Breaks: []domain.Break{{Start: 720, End: 780}}},
			want: []TimeSlot{{540, 720}, {780, 1020}},
		},
		{
			name:         "breaks ignored",
			wt:           domain.WorkingTime{Start: 540, End: 1020, Breaks: []domain.Break{{Start: 720, End: 780}}},
			ignoreBreaks: true,
			want:         []TimeSlot{{540, 1020}},
		},
		{
			name: "breaks applied in given order",
			wt: domain.WorkingTime{Start: 540, End: 1020, Breaks: []domain.Break{
				{Start: 720, End: 780},
				{Start: 600, End: 615},
			}},
			want: []TimeSlot{{540, 600}, {615, 720}, {780, 1020}},
		},
		{
			name: "break outside hours is ignored",
			wt:   domain.WorkingTime{Start: 540, End: 1020, Breaks: []domain.Break{{Start: 480, End: 560}, {Start: 1020, End: 1080}}},
			want: []TimeSlot{{540, 1020}},
		},
		{
			name: "break at opening leaves empty period",
			wt:   domain.WorkingTime{Start: 540, End: 1020, Breaks: []domain.Break{{Start: 540, End: 600}}},
			want: []TimeSlot{{540, 540}, {600, 1020}},
		},
		{
			name: "overlapping breaks keep inverted period",
			wt: domain.WorkingTime{Start: 540, End: 1020, Breaks: []domain.Break{
				{Start: 780, End: 800},
				{Start: 700, End: 790},
			}},
			want: []TimeSlot{{540, 700}, {790, 780}, {800, 1020}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePeriods(tt.wt, tt.ignoreBreaks))
		})
	}
}

func TestTimeSlot(t *testing.T) {
	s := TimeSlot{Start: 600, End: 630}
	assert.True(t, s.Contains(600))
	assert.True(t, s.Contains(629))
	assert.False(t, s.Contains(630))
	assert.Equal(t, 30, s.Duration())
	assert.Equal(t, "[600,630)", s.String())

	inverted := TimeSlot{Start: 790, End: 780}
	assert.True(t, inverted.IsEmpty())
	assert.Zero(t, inverted.Duration())
	assert.False(t, inverted.Contains(785))
}

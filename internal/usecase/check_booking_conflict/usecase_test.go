package check_booking_conflict

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	workingDayRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/workingday"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

type mockWorkingDays struct{ mock.Mock }

func (m *mockWorkingDays) GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) (*domain.WorkingDay, error) {
	args := m.Called(ctx, professionalID, date)
	if d := args.Get(0); d != nil {
		return d.(*domain.WorkingDay), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookings struct{ mock.Mock }

func (m *mockBookings) GetOccupyingByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, professionalID, date)
	if b := args.Get(0); b != nil {
		return b.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

var day = time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)

func setup(wd *domain.WorkingDay, wdErr error, bookings []*domain.Booking) *UseCase {
	days := &mockWorkingDays{}
	days.On("GetByProfessionalAndDate", mock.Anything, int64(7), day).Return(wd, wdErr)
	repo := &mockBookings{}
	repo.On("GetOccupyingByProfessionalAndDate", mock.Anything, int64(7), day).Return(bookings, nil)
	return NewUseCase(days, repo, logger.NewNop())
}

func request(start, end types.TimeString) *Request {
	return &Request{ProfessionalID: 7, Date: day, StartTime: start, EndTime: end}
}

func TestExecute(t *testing.T) {
	open := &domain.WorkingDay{
		ProfessionalID: 7,
		Time: &domain.WorkingTime{
			Start:  540,
			End:    1080,
			Breaks: []domain.Break{{Start: 720, End: 780}},
		},
	}
	existing := []*domain.Booking{
		{StartTime: "10:00", EndTime: "10:30", Status: domain.StatusConfirmed},
	}

	tests := []struct {
		name      string
		start     types.TimeString
		end       types.TimeString
		wantFits  bool
		wantClash bool
	}{
		{name: "free", start: "11:00", end: "11:30", wantFits: true},
		{name: "inside break is allowed", start: "12:00", end: "12:30", wantFits: true},
		{name: "starts when existing ends", start: "10:30", end: "11:00", wantFits: true, wantClash: true},
		{name: "ends when existing starts", start: "09:30", end: "10:00", wantFits: true, wantClash: true},
		{name: "before opening", start: "08:30", end: "09:30"},
		{name: "after closing", start: "17:30", end: "18:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := setup(open, nil, existing)

			resp, err := uc.Execute(context.Background(), request(tt.start, tt.end))
			require.NoError(t, err)

			assert.Equal(t, tt.wantFits, resp.FitsInHours)
			assert.Equal(t, tt.wantClash, resp.OverlapsExisting)
			assert.Equal(t, tt.wantFits && !tt.wantClash, resp.IsFree())
		})
	}
}

func TestExecute_WorkingDayNotConfigured(t *testing.T) {
	uc := setup(nil, workingDayRepo.ErrWorkingDayNotFound, nil)

	resp, err := uc.Execute(context.Background(), request("10:00", "11:00"))
	require.NoError(t, err)
	assert.False(t, resp.FitsInHours)
	assert.False(t, resp.OverlapsExisting)
}

func TestExecute_Validation(t *testing.T) {
	uc := setup(nil, nil, nil)

	for _, req := range []*Request{
		{Date: day, StartTime: "10:00", EndTime: "11:00"},
		{ProfessionalID: 7, StartTime: "10:00", EndTime: "11:00"},
		request("10:00", "10:00"),
		request("11:00", "10:00"),
		request("25:00", "26:00"),
		request("", "10:00"),
	} {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	days := &mockWorkingDays{}
	days.On("GetByProfessionalAndDate", mock.Anything, int64(7), day).Return(nil, errors.New("timeout"))
	uc := NewUseCase(days, &mockBookings{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), request("10:00", "11:00"))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_MalformedStoredBooking(t *testing.T) {
	open := &domain.WorkingDay{ProfessionalID: 7, Time: &domain.WorkingTime{Start: 540, End: 1080}}
	uc := setup(open, nil, []*domain.Booking{
		{Status: domain.StatusConfirmed, StartTime: "10:00", EndTime: "10:30:00"},
	})

	_, err := uc.Execute(context.Background(), request("10:00", "10:30"))
	assert.ErrorIs(t, err, ErrInternal)
}

package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/ptr"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByPublicID(ctx context.Context, publicID string) (*domain.Booking, error) {
	args := m.Called(ctx, publicID)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) GetByProfessionalWithFilter(ctx context.Context, filter domain.ProfessionalBookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if b := args.Get(0); b != nil {
		return b.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestService(t *testing.T) (*Service, *mockBookingRepo) {
	loc, err := time.LoadLocation(domain.DefaultTimezone)
	require.NoError(t, err)
	repo := &mockBookingRepo{}
	return NewService(repo, loc, logger.NewNop()), repo
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:             1,
		PublicID:       "aB3-_",
		ProfessionalID: 7,
		ClientID:       9,
		Date:           time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
		EndTime:        "10:30",
		Status:         domain.StatusConfirmed,
		Services: []domain.BookingService{
			{ServiceID: 3, Name: "Corte", Price: 50, SortOrder: 1},
			{ServiceID: 4, Name: "Escova", Price: 30, SortOrder: 2},
		},
	}
}

func TestGetByPublicID(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	repo.On("GetByPublicID", ctx, "aB3-_").Return(sampleBooking(), nil)

	resp, err := svc.GetByPublicID(ctx, "aB3-_")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-11", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, 80.0, resp.TotalPrice)
	assert.Len(t, resp.Services, 2)
}

func TestGetByPublicID_NotFound(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	repo.On("GetByPublicID", ctx, "zzzzz").Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := svc.GetByPublicID(ctx, "zzzzz")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListByProfessional(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	repo.On("GetByProfessionalWithFilter", ctx, domain.ProfessionalBookingsFilter{
		ProfessionalID: 7,
		StartDate:      &from,
		Status:         ptr.Ptr(domain.StatusCancelled),
	}).Return([]*domain.Booking{sampleBooking()}, nil)

	resp, err := svc.ListByProfessional(ctx, &models.ListBookingsRequest{
		ProfessionalID: 7,
		StartDate:      &from,
		Status:         ptr.Ptr("CANCELLED"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestListByProfessional_InvalidInput(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	from := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.ListByProfessional(ctx, &models.ListBookingsRequest{ProfessionalID: 7, Status: ptr.Ptr("PENDING")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ListByProfessional(ctx, &models.ListBookingsRequest{ProfessionalID: 7, StartDate: &from, EndDate: &to})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCalendar(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	from := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC)

	repo.On("GetByProfessionalWithFilter", ctx, mock.MatchedBy(func(f domain.ProfessionalBookingsFilter) bool {
		return f.ProfessionalID == 7 && f.Status != nil && *f.Status == domain.StatusConfirmed
	})).Return([]*domain.Booking{sampleBooking()}, nil)

	out, err := svc.Calendar(ctx, &models.CalendarRequest{ProfessionalID: 7, StartDate: from, EndDate: to})
	require.NoError(t, err)

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "BEGIN:VEVENT")
	assert.Contains(t, out, "UID:aB3-_@smc-salon")
	// 10:00 в Форталезе = 13:00 UTC
	assert.Contains(t, out, "DTSTART:20250311T130000Z")
	assert.Contains(t, out, "DTEND:20250311T133000Z")
	assert.Contains(t, out, "SUMMARY:Reserva aB3-_")
}

func TestCalendar_RepositoryError(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	repo.On("GetByProfessionalWithFilter", ctx, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.Calendar(ctx, &models.CalendarRequest{ProfessionalID: 7, StartDate: day, EndDate: day})
	assert.ErrorIs(t, err, ErrInternal)
}

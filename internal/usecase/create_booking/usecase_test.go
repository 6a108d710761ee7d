package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/infra/events"
	workingDayRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/workingday"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/ptr"
	"github.com/m04kA/SMC-SalonBookingService/pkg/txmanager"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) GetOccupyingByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, professionalID, date)
	if b := args.Get(0); b != nil {
		return b.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockWorkingDayRepo struct{ mock.Mock }

func (m *mockWorkingDayRepo) GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) (*domain.WorkingDay, error) {
	args := m.Called(ctx, professionalID, date)
	if d := args.Get(0); d != nil {
		return d.(*domain.WorkingDay), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPublicIDs struct{ mock.Mock }

func (m *mockPublicIDs) Generate(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) BookingCreated(ctx context.Context, booking *domain.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, event events.BookingEvent) error {
	return m.Called(ctx, event).Error(0)
}

type mockMetrics struct{ mock.Mock }

func (m *mockMetrics) IncBookingConflict(reason string) {
	m.Called(reason)
}

// fakeTxManager выполняет fn сразу и повторяет его при ошибке сериализации
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	for {
		f.calls++
		err := fn(ctx)
		if txmanager.IsRetryable(err) && f.calls < 3 {
			continue
		}
		return err
	}
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var bookingDate = time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)

type fixture struct {
	uc        *UseCase
	bookings  *mockBookingRepo
	days      *mockWorkingDayRepo
	publicIDs *mockPublicIDs
	notifier  *mockNotifier
	publisher *mockPublisher
	metrics   *mockMetrics
	tx        *fakeTxManager
}

func newFixture() *fixture {
	f := &fixture{
		bookings:  &mockBookingRepo{},
		days:      &mockWorkingDayRepo{},
		publicIDs: &mockPublicIDs{},
		notifier:  &mockNotifier{},
		publisher: &mockPublisher{},
		metrics:   &mockMetrics{},
		tx:        &fakeTxManager{},
	}
	f.uc = NewUseCase(f.bookings, f.days, f.publicIDs, f.notifier, f.publisher, f.metrics, f.tx, logger.NewNop())
	f.uc.timeProvider = fixedTime{now: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)}
	return f
}

func openDay() *domain.WorkingDay {
	return &domain.WorkingDay{
		ID:             3,
		ProfessionalID: 7,
		Date:           bookingDate,
		Time: &domain.WorkingTime{
			Start:  540,
			End:    1080,
			Breaks: []domain.Break{{Start: 720, End: 780}},
		},
	}
}

func validRequest() *Request {
	return &Request{
		ClientID:       9,
		ProfessionalID: 7,
		Date:           bookingDate,
		StartTime:      "10:00",
		EndTime:        "11:00",
		Services: []ServiceLine{
			{ServiceID: 3, Price: 50, Order: 1},
			{ServiceID: 4, Price: 30.5, Order: 2},
		},
	}
}

func existing(start, end types.TimeString) *domain.Booking {
	return &domain.Booking{StartTime: start, EndTime: end, Status: domain.StatusConfirmed}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.days.On("GetByProfessionalAndDate", ctx, int64(7), bookingDate).Return(openDay(), nil)
	f.bookings.On("GetOccupyingByProfessionalAndDate", ctx, int64(7), bookingDate).
		Return([]*domain.Booking{existing("11:30", "12:00")}, nil)
	f.publicIDs.On("Generate", ctx).Return("aB3-_", nil)
	f.bookings.On("Create", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.PublicID == "aB3-_" &&
			b.Status == domain.StatusConfirmed &&
			b.WasReminded &&
			len(b.Services) == 2 &&
			b.Services[1].SortOrder == 2
	})).Return(&domain.Booking{
		ID:             42,
		PublicID:       "aB3-_",
		ProfessionalID: 7,
		ClientID:       9,
		Date:           bookingDate,
		StartTime:      "10:00",
		EndTime:        "11:00",
		Status:         domain.StatusConfirmed,
		WasReminded:    true,
		Services: []domain.BookingService{
			{ServiceID: 3, Name: "Corte", Price: 50, SortOrder: 1},
			{ServiceID: 4, Name: "Escova", Price: 30.5, SortOrder: 2},
		},
	}, nil)
	f.notifier.On("BookingCreated", ctx, mock.Anything).Return(nil)
	f.publisher.On("Publish", ctx, mock.MatchedBy(func(e events.BookingEvent) bool {
		return e.Type == events.TypeBookingCreated && e.BookingID == 42 && e.PublicID == "aB3-_"
	})).Return(nil)

	resp, err := f.uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "aB3-_", resp.PublicID)
	assert.Equal(t, "CONFIRMED", resp.Status)
	assert.InDelta(t, 80.5, resp.TotalPrice, 0.001)
	f.notifier.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
	f.metrics.AssertNotCalled(t, "IncBookingConflict", mock.Anything)
}

func TestExecute_Conflicts(t *testing.T) {
	tests := []struct {
		name       string
		day        *domain.WorkingDay
		dayErr     error
		occupied   []*domain.Booking
		start, end types.TimeString
		wantErr    error
		wantReason string
	}{
		{
			name:       "working day not configured",
			dayErr:     workingDayRepo.ErrWorkingDayNotFound,
			start:      "10:00",
			end:        "11:00",
			wantErr:    ErrProfessionalUnavailable,
			wantReason: conflictUnavailable,
		},
		{
			name:       "closed day",
			day:        &domain.WorkingDay{ProfessionalID: 7, IsClosed: true, Time: &domain.WorkingTime{Start: 540, End: 1080}},
			start:      "10:00",
			end:        "11:00",
			wantErr:    ErrProfessionalUnavailable,
			wantReason: conflictUnavailable,
		},
		{
			name:       "ends after closing",
			day:        openDay(),
			start:      "17:30",
			end:        "18:30",
			wantErr:    ErrOutsideWorkingHours,
			wantReason: conflictOutsideHours,
		},
		{
			name:       "outside hours wins over overlap",
			day:        openDay(),
			occupied:   []*domain.Booking{existing("08:00", "09:30")},
			start:      "08:30",
			end:        "09:30",
			wantErr:    ErrOutsideWorkingHours,
			wantReason: conflictOutsideHours,
		},
		{
			name:       "starts exactly when another ends",
			day:        openDay(),
			occupied:   []*domain.Booking{existing("09:00", "10:00")},
			start:      "10:00",
			end:        "11:00",
			wantErr:    ErrSlotNotAvailable,
			wantReason: conflictOverlap,
		},
		{
			name:       "inside an existing booking",
			day:        openDay(),
			occupied:   []*domain.Booking{existing("09:00", "12:00")},
			start:      "10:00",
			end:        "11:00",
			wantErr:    ErrSlotNotAvailable,
			wantReason: conflictOverlap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			ctx := context.Background()

			f.days.On("GetByProfessionalAndDate", ctx, int64(7), bookingDate).Return(tt.day, tt.dayErr)
			f.bookings.On("GetOccupyingByProfessionalAndDate", ctx, int64(7), bookingDate).Return(tt.occupied, nil)
			f.metrics.On("IncBookingConflict", tt.wantReason).Return()

			req := validRequest()
			req.StartTime = tt.start
			req.EndTime = tt.end

			_, err := f.uc.Execute(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)

			f.metrics.AssertExpectations(t)
			f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			f.notifier.AssertNotCalled(t, "BookingCreated", mock.Anything, mock.Anything)
			assert.Equal(t, 1, f.tx.calls)
		})
	}
}

func TestExecute_BreakDoesNotBlockExplicitRequest(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.days.On("GetByProfessionalAndDate", ctx, int64(7), bookingDate).Return(openDay(), nil)
	f.bookings.On("GetOccupyingByProfessionalAndDate", ctx, int64(7), bookingDate).Return([]*domain.Booking{}, nil)
	f.publicIDs.On("Generate", ctx).Return("Zz9_x", nil)
	f.bookings.On("Create", ctx, mock.Anything).Return(&domain.Booking{ID: 5, PublicID: "Zz9_x", Status: domain.StatusConfirmed}, nil)
	f.notifier.On("BookingCreated", ctx, mock.Anything).Return(errors.New("gateway down"))
	f.publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker down"))

	req := validRequest()
	req.StartTime = "12:00"
	req.EndTime = "12:40"

	resp, err := f.uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Zz9_x", resp.PublicID)
}

func TestExecute_RetriesSerializationFailure(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.days.On("GetByProfessionalAndDate", ctx, int64(7), bookingDate).Return(openDay(), nil)
	f.bookings.On("GetOccupyingByProfessionalAndDate", ctx, int64(7), bookingDate).Return([]*domain.Booking{}, nil)
	f.publicIDs.On("Generate", ctx).Return("qwert", nil)
	f.bookings.On("Create", ctx, mock.Anything).Return(nil, &pq.Error{Code: "40001"}).Once()
	f.bookings.On("Create", ctx, mock.Anything).Return(&domain.Booking{ID: 6, PublicID: "qwert"}, nil).Once()
	f.notifier.On("BookingCreated", ctx, mock.Anything).Return(nil)
	f.publisher.On("Publish", ctx, mock.Anything).Return(nil)

	resp, err := f.uc.Execute(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(6), resp.ID)
	assert.Equal(t, 2, f.tx.calls)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
	}{
		{name: "no client", modify: func(r *Request) { r.ClientID = 0 }},
		{name: "no professional", modify: func(r *Request) { r.ProfessionalID = 0 }},
		{name: "no date", modify: func(r *Request) { r.Date = time.Time{} }},
		{name: "bad start", modify: func(r *Request) { r.StartTime = "10h" }},
		{name: "end before start", modify: func(r *Request) { r.EndTime = "09:00" }},
		{name: "empty interval", modify: func(r *Request) { r.EndTime = r.StartTime }},
		{name: "no services", modify: func(r *Request) { r.Services = nil }},
		{name: "negative price", modify: func(r *Request) { r.Services[0].Price = -1 }},
		{name: "long person name", modify: func(r *Request) {
			name := make([]rune, domain.MaxForPersonNameLength+1)
			for i := range name {
				name[i] = 'a'
			}
			r.ForPersonName = ptr.Ptr(string(name))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.modify(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, f.tx.calls)
		})
	}
}

func TestValidateRequest_TrimsPersonName(t *testing.T) {
	req := validRequest()
	req.ForPersonName = ptr.Ptr("  Maria  ")
	_, err := validateRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "Maria", *req.ForPersonName)

	req.ForPersonName = ptr.Ptr("   ")
	_, err = validateRequest(req)
	require.NoError(t, err)
	assert.Nil(t, req.ForPersonName)
}

func TestExecute_MalformedStoredBookingBlocksCreation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.days.On("GetByProfessionalAndDate", ctx, int64(7), bookingDate).Return(openDay(), nil)
	f.bookings.On("GetOccupyingByProfessionalAndDate", ctx, int64(7), bookingDate).
		Return([]*domain.Booking{existing("10:00", "10:30:00")}, nil)

	_, err := f.uc.Execute(ctx, validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

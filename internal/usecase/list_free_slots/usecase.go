package list_free_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	workingDayRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/workingday"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// UseCase use case для получения свободных слотов профессионала
type UseCase struct {
	workingDayRepo WorkingDayRepository
	bookingRepo    BookingRepository
	metrics        MetricsRecorder
	location       *time.Location
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	workingDayRepo WorkingDayRepository,
	bookingRepo BookingRepository,
	metrics MetricsRecorder,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		workingDayRepo: workingDayRepo,
		bookingRepo:    bookingRepo,
		metrics:        metrics,
		location:       location,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListFreeSlots: professional=%d, date=%s, required=%d, authenticated=%t, ignoreBreak=%t",
		req.ProfessionalID, req.Date.Format(domain.DateFormat), req.RequiredMinutes, req.IsAuthenticated, req.IgnoreBreak)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ListFreeSlots: validation failed: %v", err)
		return nil, err
	}

	response := &Response{
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Slots:          []types.TimeString{},
	}

	// 2. Получаем рабочий день. Если он не настроен или закрыт, слотов нет
	day, err := uc.workingDayRepo.GetByProfessionalAndDate(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		if errors.Is(err, workingDayRepo.ErrWorkingDayNotFound) {
			uc.logger.Info("ListFreeSlots: working day not configured for professional=%d", req.ProfessionalID)
			return response, nil
		}
		uc.logger.Error("ListFreeSlots: failed to get working day: %v", err)
		return nil, fmt.Errorf("%w: failed to get working day: %v", ErrInternal, err)
	}
	if !day.IsBookable() {
		uc.logger.Info("ListFreeSlots: professional=%d is unavailable on %s",
			req.ProfessionalID, req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 3. Получаем подтвержденные записи на этот день
	bookings, err := uc.bookingRepo.GetOccupyingByProfessionalAndDate(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		uc.logger.Error("ListFreeSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Переводим текущее время в минуты от полуночи запрошенного дня
	now := availability.MinutesSinceDayStart(uc.timeProvider.Now(), req.Date, uc.location)

	// 5. Перебираем свободные слоты
	offsets, err := availability.ListFreeSlots(day, bookings, availability.SlotQuery{
		Now:             now,
		RequiredMinutes: req.RequiredMinutes,
		Authenticated:   req.IsAuthenticated,
		IgnoreBreaks:    req.IgnoreBreak,
	})
	if err != nil {
		if errors.Is(err, availability.ErrMalformedBooking) {
			uc.logger.Error("ListFreeSlots: stored booking is malformed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if errors.Is(err, availability.ErrInvalidInput) {
			uc.logger.Warn("ListFreeSlots: engine rejected input: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("ListFreeSlots: failed to enumerate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to enumerate slots: %v", ErrInternal, err)
	}

	uc.metrics.ObserveFreeSlots(len(offsets))
	response.Slots = availability.FormatSlots(offsets)

	uc.logger.Info("ListFreeSlots: found %d free slots for professional=%d", len(offsets), req.ProfessionalID)

	return response, nil
}

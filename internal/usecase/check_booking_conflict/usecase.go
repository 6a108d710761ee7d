package check_booking_conflict

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	workingDayRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/workingday"
)

// UseCase use case для проверки, можно ли записаться на интервал
type UseCase struct {
	workingDayRepo WorkingDayRepository
	bookingRepo    BookingRepository
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(workingDayRepo WorkingDayRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		workingDayRepo: workingDayRepo,
		bookingRepo:    bookingRepo,
		logger:         logger,
	}
}

// Execute выполняет проверку без блокировок. При создании записи та же проверка повторяется в транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckBookingConflict: professional=%d, date=%s, %s-%s",
		req.ProfessionalID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	requested, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CheckBookingConflict: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем рабочий день, отсутствие настройки равносильно закрытому дню
	day, err := uc.workingDayRepo.GetByProfessionalAndDate(ctx, req.ProfessionalID, req.Date)
	if err != nil && !errors.Is(err, workingDayRepo.ErrWorkingDayNotFound) {
		uc.logger.Error("CheckBookingConflict: failed to get working day: %v", err)
		return nil, fmt.Errorf("%w: failed to get working day: %v", ErrInternal, err)
	}

	// 3. Получаем подтвержденные записи на этот день
	bookings, err := uc.bookingRepo.GetOccupyingByProfessionalAndDate(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		uc.logger.Error("CheckBookingConflict: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Проверяем рабочие часы и пересечения
	result, err := availability.CheckConflict(day, bookings, requested)
	if err != nil {
		if errors.Is(err, availability.ErrMalformedBooking) {
			uc.logger.Error("CheckBookingConflict: stored booking is malformed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("CheckBookingConflict: fitsInHours=%t, overlapsExisting=%t", result.FitsInHours, result.OverlapsExisting)

	return &Response{
		FitsInHours:      result.FitsInHours,
		OverlapsExisting: result.OverlapsExisting,
	}, nil
}

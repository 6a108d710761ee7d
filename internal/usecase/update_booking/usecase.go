package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/booking"
)

// UseCase use case для изменения записи
type UseCase struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	notifier Notifier,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case изменения записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("UpdateBooking: booking=%d", req.BookingID)

	// 1. Валидация входных данных
	update, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return err
	}

	var booking *domain.Booking

	// 2. Читаем запись с блокировкой и применяем изменения
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if update.Status != nil && *update.Status != current.Status && !current.CanBeUpdated() {
			uc.logger.Warn("UpdateBooking: booking id=%d is %s, cannot become %s",
				req.BookingID, current.Status, *update.Status)
			return ErrStatusTransition
		}

		if err := uc.bookingRepo.Update(txCtx, req.BookingID, update); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		wasConfirmed := current.IsConfirmed()
		if update.Status != nil {
			current.Status = *update.Status
		}
		if update.ForPersonName != nil {
			current.ForPersonName = update.ForPersonName
		}

		// Уведомляем только о фактической отмене
		if wasConfirmed && current.IsCancelled() {
			booking = current
		}
		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", req.BookingID)

	if booking == nil {
		return nil
	}

	// 3. Сообщение об отмене и событие не влияют на результат операции
	if err := uc.notifier.BookingCancelled(ctx, booking); err != nil {
		uc.logger.Warn("UpdateBooking: failed to notify client=%d: %v", booking.ClientID, err)
	}

	event := events.NewBookingEvent(events.TypeBookingCancelled, booking, uc.timeProvider.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("UpdateBooking: failed to publish event: %v", err)
	}

	return nil
}

package update_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	updateBooking "github.com/m04kA/SMC-SalonBookingService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "ID do agendamento inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidUpdate      = "informe status (CANCELLED ou COMPLETED) e/ou forPersonName"
	msgNotFound           = "agendamento não encontrado"
	msgStatusTransition   = "o status deste agendamento não pode mais ser alterado"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUpdate)
		return
	}

	if err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID)); err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrStatusTransition):
			h.logger.Warn("PATCH /bookings/{id} - Status can no longer change: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgStatusTransition)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidUpdate)

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated successfully: booking_id=%d", bookingID)
	handlers.RespondNoContent(w)
}

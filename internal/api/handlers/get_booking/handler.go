package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/bookings"
)

const (
	msgInvalidPublicID = "código do agendamento inválido"
	msgNotFound        = "agendamento não encontrado"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{publicId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	publicID := mux.Vars(r)["publicId"]
	if len(publicID) != domain.PublicIDLength {
		h.logger.Warn("GET /bookings/{publicId} - Invalid public ID: %q", publicID)
		handlers.RespondBadRequest(w, msgInvalidPublicID)
		return
	}

	booking, err := h.service.GetByPublicID(r.Context(), publicID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{publicId} - Booking not found: public_id=%s", publicID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPublicID)

		default:
			h.logger.Error("GET /bookings/{publicId} - Failed to get booking: public_id=%s, error=%v", publicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{publicId} - Booking retrieved successfully: public_id=%s", publicID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}

package get_working_day

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/workingdays"
)

const (
	msgInvalidProfessionalID = "ID do profissional inválido"
	msgInvalidDate           = "data inválida, use o formato AAAA-MM-DD"
	msgWorkingDayNotFound    = "dia de trabalho não configurado"
)

type Handler struct {
	service WorkingDayService
	logger  Logger
}

func NewHandler(service WorkingDayService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/working-days/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID, err := handlers.PathInt64(r, "professionalId")
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/working-days/{date} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	date, err := handlers.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/working-days/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	day, err := h.service.Get(r.Context(), professionalID, date)
	if err != nil {
		switch {
		case errors.Is(err, workingdays.ErrWorkingDayNotFound):
			handlers.RespondNotFound(w, msgWorkingDayNotFound)

		case errors.Is(err, workingdays.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)

		default:
			h.logger.Error("GET /professionals/{id}/working-days/{date} - Failed to get working day: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, day)
}

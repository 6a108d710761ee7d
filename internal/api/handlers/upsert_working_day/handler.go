package upsert_working_day

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
	msgInvalidBody           = "corpo da requisição inválido"
	msgInvalidWorkingTime    = "horário de trabalho inválido"
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

// Handle PUT /api/v1/professionals/{professionalId}/working-days/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID, err := handlers.PathInt64(r, "professionalId")
	if err != nil {
		h.logger.Warn("PUT /professionals/{id}/working-days/{date} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	date, err := handlers.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		h.logger.Warn("PUT /professionals/{id}/working-days/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var body UpsertWorkingDayRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PUT /professionals/{id}/working-days/{date} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	if err := handlers.Validate(&body); err != nil {
		h.logger.Warn("PUT /professionals/{id}/working-days/{date} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkingTime)
		return
	}

	day, err := h.service.Upsert(r.Context(), body.ToServiceRequest(professionalID, date))
	if err != nil {
		if errors.Is(err, workingdays.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidWorkingTime)
			return
		}
		h.logger.Error("PUT /professionals/{id}/working-days/{date} - Failed to save working day: professional_id=%d, error=%v",
			professionalID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /professionals/{id}/working-days/{date} - Working day saved: professional_id=%d, date=%s, closed=%t",
		professionalID, day.Date, day.IsClosed)
	handlers.RespondJSON(w, http.StatusOK, day)
}

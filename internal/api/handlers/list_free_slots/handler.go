package list_free_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	listFreeSlots "github.com/m04kA/SMC-SalonBookingService/internal/usecase/list_free_slots"
)

const (
	msgInvalidProfessionalID = "ID do profissional inválido"
	msgInvalidQuery          = "parâmetros inválidos: informe date (AAAA-MM-DD) e requiredMinutes (1 a 1440)"
	msgInvalidDate           = "data inválida, formato esperado AAAA-MM-DD"
)

type Handler struct {
	useCase ListFreeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ListFreeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/free-slots
// Query params: date (required), requiredMinutes (required), ignoreBreak (optional, только для авторизованных)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID, err := handlers.PathInt64(r, "professionalId")
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/free-slots - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	var query FreeSlotsQuery
	if err := handlers.DecodeQuery(r, &query); err != nil {
		h.logger.Warn("GET /professionals/{id}/free-slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}
	if err := handlers.Validate(&query); err != nil {
		h.logger.Warn("GET /professionals/{id}/free-slots - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	useCaseReq, err := query.ToUseCaseRequest(professionalID, middleware.IsAuthenticated(r.Context()))
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/free-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, listFreeSlots.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/free-slots - Invalid input: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /professionals/{id}/free-slots - Failed to list slots: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/free-slots - Slots listed: professional_id=%d, date=%s, slots_count=%d",
		professionalID, query.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package check_conflict

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	checkConflict "github.com/m04kA/SMC-SalonBookingService/internal/usecase/check_booking_conflict"
)

const (
	msgInvalidProfessionalID = "ID do profissional inválido"
	msgInvalidQuery          = "parâmetros inválidos: informe date, startTime e endTime"
	msgInvalidDate           = "data inválida, formato esperado AAAA-MM-DD"
	msgInvalidInterval       = "intervalo inválido, use HH:MM e início antes do fim"
)

type Handler struct {
	useCase CheckConflictUseCase
	logger  Logger
}

func NewHandler(useCase CheckConflictUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/conflicts
// Query params: date, startTime, endTime
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID, err := handlers.PathInt64(r, "professionalId")
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/conflicts - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	var query ConflictQuery
	if err := handlers.DecodeQuery(r, &query); err != nil {
		h.logger.Warn("GET /professionals/{id}/conflicts - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}
	if err := handlers.Validate(&query); err != nil {
		h.logger.Warn("GET /professionals/{id}/conflicts - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	useCaseReq, err := query.ToUseCaseRequest(professionalID)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/conflicts - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkConflict.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/conflicts - Invalid interval: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("GET /professionals/{id}/conflicts - Failed to check conflict: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/conflicts - Checked: professional_id=%d, fits=%t, overlaps=%t",
		professionalID, result.FitsInHours, result.OverlapsExisting)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

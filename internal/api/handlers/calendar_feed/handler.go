package calendar_feed

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/bookings/models"
)

const (
	msgInvalidProfessionalID = "ID do profissional inválido"
	msgInvalidQuery          = "informe from e to no formato AAAA-MM-DD"
	msgInvalidTimeRange      = "a data inicial deve ser anterior à data final"
)

// CalendarQuery query-параметры запроса
type CalendarQuery struct {
	From string `schema:"from" validate:"required"`
	To   string `schema:"to" validate:"required"`
}

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/calendar.ics?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID, err := handlers.PathInt64(r, "professionalId")
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/calendar.ics - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	var query CalendarQuery
	if err := handlers.DecodeQuery(r, &query); err != nil || handlers.Validate(&query) != nil {
		h.logger.Warn("GET /professionals/{id}/calendar.ics - Invalid query: %s", r.URL.RawQuery)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	from, err := handlers.ParseDate(query.From)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}
	to, err := handlers.ParseDate(query.To)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	feed, err := h.service.Calendar(r.Context(), &models.CalendarRequest{
		ProfessionalID: professionalID,
		StartDate:      from,
		EndDate:        to,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /professionals/{id}/calendar.ics - Failed to export calendar: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/calendar.ics - Calendar exported: professional_id=%d, %s..%s",
		professionalID, query.From, query.To)

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="agenda.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(feed))
}

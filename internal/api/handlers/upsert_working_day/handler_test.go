package upsert_working_day

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/service/workingdays"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/workingdays/models"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) Upsert(ctx context.Context, req *models.UpsertWorkingDayRequest) (*models.WorkingDayResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkingDayResponse), args.Error(1)
}

func request(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/x", strings.NewReader(body))
	return mux.SetURLVars(req, map[string]string{"professionalId": "2", "date": "2025-03-10"})
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("Upsert", mock.Anything, mock.MatchedBy(func(r *models.UpsertWorkingDayRequest) bool {
		return r.ProfessionalID == 2 && !r.IsClosed && r.Time != nil && r.Time.Start == 540 && len(r.Time.Breaks) == 1
	})).Return(&models.WorkingDayResponse{ID: 5, ProfessionalID: 2, Date: "2025-03-10"}, nil)
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, request(`{"isClosed":false,"time":{"start":540,"end":1080,"breaks":[{"start":720,"end":780}]}}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":5`)
	svc.AssertExpectations(t)
}

func TestHandle_ClosedDayWithoutTime(t *testing.T) {
	svc := &mockService{}
	svc.On("Upsert", mock.Anything, mock.MatchedBy(func(r *models.UpsertWorkingDayRequest) bool {
		return r.IsClosed && r.Time == nil
	})).Return(&models.WorkingDayResponse{ID: 6, IsClosed: true}, nil)
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, request(`{"isClosed":true}`))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_BadRequest(t *testing.T) {
	svc := &mockService{}
	svc.On("Upsert", mock.Anything, mock.Anything).Return(nil, workingdays.ErrInvalidInput)
	h := NewHandler(svc, logger.NewNop())

	bodies := []string{
		`{"isClosed":false}`,
		`{"isClosed":false,"time":{"start":-1,"end":600}}`,
		`{"unknown":1}`,
		`{"isClosed":false,"time":{"start":600,"end":540}}`,
	}
	for _, body := range bodies {
		rec := httptest.NewRecorder()
		h.Handle(rec, request(body))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

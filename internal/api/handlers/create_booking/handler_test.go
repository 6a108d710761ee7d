package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/SMC-SalonBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*createBooking.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

const validBody = `{
	"clientId": 9,
	"professionalId": 7,
	"date": "2025-03-11",
	"startTime": "10:00",
	"endTime": "10:45",
	"forPersonName": "Ana",
	"services": [{"serviceId": 3, "price": 50, "order": 1}]
}`

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
}

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, logger.NewNop())

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
		return r.ClientID == 9 &&
			r.ProfessionalID == 7 &&
			r.Date.Equal(time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)) &&
			r.StartTime == "10:00" &&
			r.EndTime == "10:45" &&
			*r.ForPersonName == "Ana" &&
			len(r.Services) == 1 && r.Services[0].Order == 1
	})).Return(&createBooking.Response{
		ID:             42,
		PublicID:       "aB3-_",
		ClientID:       9,
		ProfessionalID: 7,
		Date:           time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
		EndTime:        "10:45",
		Status:         "CONFIRMED",
		Services:       []createBooking.ServiceLine{{ServiceID: 3, Name: "Corte", Price: 50, Order: 1}},
		TotalPrice:     50,
	}, nil)

	rec := httptest.NewRecorder()
	h.Handle(rec, post(validBody))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "aB3-_", body.PublicID)
	assert.Equal(t, "2025-03-11", body.Date)
	assert.Equal(t, "Corte", body.Services[0].Name)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: createBooking.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{err: createBooking.ErrOutsideWorkingHours, wantStatus: http.StatusBadRequest},
		{err: createBooking.ErrProfessionalUnavailable, wantStatus: http.StatusBadRequest},
		{err: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			h := NewHandler(uc, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, post(validBody))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	bodies := map[string]string{
		"not json":      `{`,
		"unknown field": `{"clientId": 9, "notes": "x"}`,
		"no services":   `{"clientId":9,"professionalId":7,"date":"2025-03-11","startTime":"10:00","endTime":"11:00","services":[]}`,
		"bad service":   `{"clientId":9,"professionalId":7,"date":"2025-03-11","startTime":"10:00","endTime":"11:00","services":[{"serviceId":0}]}`,
		"bad date":      `{"clientId":9,"professionalId":7,"date":"11/03/2025","startTime":"10:00","endTime":"11:00","services":[{"serviceId":3}]}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			uc := &mockUseCase{}
			h := NewHandler(uc, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, post(body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

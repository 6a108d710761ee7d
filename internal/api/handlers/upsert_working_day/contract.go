package upsert_working_day

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/service/workingdays/models"
)

type WorkingDayService interface {
	Upsert(ctx context.Context, req *models.UpsertWorkingDayRequest) (*models.WorkingDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

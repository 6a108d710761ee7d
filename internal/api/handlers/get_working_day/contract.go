package get_working_day

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/service/workingdays/models"
)

type WorkingDayService interface {
	Get(ctx context.Context, professionalID int64, date time.Time) (*models.WorkingDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

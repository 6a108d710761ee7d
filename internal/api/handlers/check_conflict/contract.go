package check_conflict

import (
	"context"

	checkConflict "github.com/m04kA/SMC-SalonBookingService/internal/usecase/check_booking_conflict"
)

type CheckConflictUseCase interface {
	Execute(ctx context.Context, req *checkConflict.Request) (*checkConflict.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

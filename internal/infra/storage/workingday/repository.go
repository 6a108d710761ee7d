package workingday

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/psqlbuilder"
)

// Repository репозиторий рабочих дней профессионалов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProfessionalAndDate получает рабочий день профессионала.
// В транзакции строка блокируется, чтобы расписание не поменялось во время записи.
func (r *Repository) GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) (*domain.WorkingDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"professional_id",
		"date",
		"is_closed",
		"time",
		"created_at",
		"updated_at",
	).
		From("working_days").
		Where(squirrel.Eq{"professional_id": professionalID, "date": date})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndDate - build select query: %v", ErrBuildQuery, err)
	}

	var (
		day                  domain.WorkingDay
		rawTime              []byte
		createdAt, updatedAt sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&day.ID,
		&day.ProfessionalID,
		&day.Date,
		&day.IsClosed,
		&rawTime,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkingDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndDate - scan working day: %w", ErrScanRow, err)
	}

	day.Time, err = decodeWorkingTime(rawTime)
	if err != nil {
		return nil, err
	}
	day.CreatedAt = createdAt.Time
	day.UpdatedAt = updatedAt.Time

	return &day, nil
}

// Upsert создаёт или перезаписывает рабочий день профессионала на дату
func (r *Repository) Upsert(ctx context.Context, day *domain.WorkingDay) (*domain.WorkingDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rawTime, err := encodeWorkingTime(day.Time)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("working_days").
		Columns("professional_id", "date", "is_closed", "time").
		Values(day.ProfessionalID, day.Date, day.IsClosed, rawTime).
		Suffix(`ON CONFLICT (professional_id, date) DO UPDATE
			SET is_closed = EXCLUDED.is_closed, time = EXCLUDED.time, updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&day.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}
	day.CreatedAt = createdAt.Time
	day.UpdatedAt = updatedAt.Time

	return day, nil
}

// decodeWorkingTime разбирает JSONB колонку time; NULL означает, что часы не заданы
func decodeWorkingTime(raw []byte) (*domain.WorkingTime, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var wt domain.WorkingTime
	if err := json.Unmarshal(raw, &wt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedTime, err)
	}
	if err := wt.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedTime, err)
	}

	return &wt, nil
}

func encodeWorkingTime(wt *domain.WorkingTime) (interface{}, error) {
	if wt == nil {
		return nil, nil
	}
	raw, err := json.Marshal(wt)
	if err != nil {
		return nil, fmt.Errorf("%w: encode working time: %v", ErrBuildQuery, err)
	}
	return string(raw), nil
}

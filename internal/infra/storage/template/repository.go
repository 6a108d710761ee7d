package template

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/psqlbuilder"
)

var (
	// ErrTemplateNotFound возвращается, когда шаблон сообщения отсутствует
	ErrTemplateNotFound = errors.New("template.repository: template not found")

	// ErrQuery возвращается при ошибке построения или выполнения запроса
	ErrQuery = errors.New("template.repository: query failed")
)

// Repository репозиторий шаблонов сообщений
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByName получает шаблон по имени
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.MessageTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "body").
		From("message_templates").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrQuery, err)
	}

	var t domain.MessageTemplate
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.Name, &t.Body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - scan template: %w", ErrQuery, err)
	}

	return &t, nil
}

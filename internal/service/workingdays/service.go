package workingdays

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	workingDayRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/workingday"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/workingdays/models"
)

// Service сервис управления рабочими днями профессионалов
type Service struct {
	repo   WorkingDayRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса рабочих дней
func NewService(repo WorkingDayRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Get получает рабочий день профессионала на дату
func (s *Service) Get(ctx context.Context, professionalID int64, date time.Time) (*models.WorkingDayResponse, error) {
	s.logger.Info("Get: fetching working day for professional=%d, date=%s", professionalID, date.Format(domain.DateFormat))

	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalId must be positive", ErrInvalidInput)
	}

	day, err := s.repo.GetByProfessionalAndDate(ctx, professionalID, date)
	if err != nil {
		if errors.Is(err, workingDayRepo.ErrWorkingDayNotFound) {
			s.logger.Warn("Get: working day for professional=%d not found", professionalID)
			return nil, ErrWorkingDayNotFound
		}
		s.logger.Error("Get: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWorkingDay(day), nil
}

// Upsert создаёт или перезаписывает рабочий день.
// У открытого дня должны быть заданы часы работы.
func (s *Service) Upsert(ctx context.Context, req *models.UpsertWorkingDayRequest) (*models.WorkingDayResponse, error) {
	s.logger.Info("Upsert: saving working day for professional=%d, date=%s, closed=%t",
		req.ProfessionalID, req.Date.Format(domain.DateFormat), req.IsClosed)

	// 1. Валидация входных данных
	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	wt := req.Time.ToDomainWorkingTime()
	if !req.IsClosed && wt == nil {
		return nil, fmt.Errorf("%w: time is required for an open day", ErrInvalidInput)
	}
	if wt != nil {
		if err := wt.Validate(); err != nil {
			s.logger.Warn("Upsert: validation failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	// 2. Сохраняем
	day, err := s.repo.Upsert(ctx, &domain.WorkingDay{
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		IsClosed:       req.IsClosed,
		Time:           wt,
	})
	if err != nil {
		s.logger.Error("Upsert: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: working day id=%d saved", day.ID)
	return models.FromDomainWorkingDay(day), nil
}

package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса и возвращает запрошенный интервал
func validateRequest(req *Request) (availability.TimeSlot, error) {
	if req.ClientID <= 0 {
		return availability.TimeSlot{}, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return availability.TimeSlot{}, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return availability.TimeSlot{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	start, err := req.StartTime.Minutes()
	if err != nil {
		return availability.TimeSlot{}, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	end, err := req.EndTime.Minutes()
	if err != nil {
		return availability.TimeSlot{}, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if start >= end {
		return availability.TimeSlot{}, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if req.ForPersonName != nil {
		name := strings.TrimSpace(*req.ForPersonName)
		if name == "" {
			req.ForPersonName = nil
		} else if utf8.RuneCountInString(name) > domain.MaxForPersonNameLength {
			return availability.TimeSlot{}, fmt.Errorf("%w: forPersonName is longer than %d characters",
				ErrInvalidInput, domain.MaxForPersonNameLength)
		} else {
			req.ForPersonName = &name
		}
	}

	if len(req.Services) == 0 {
		return availability.TimeSlot{}, fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	for i, s := range req.Services {
		if s.ServiceID <= 0 {
			return availability.TimeSlot{}, fmt.Errorf("%w: services[%d].serviceId must be positive", ErrInvalidInput, i)
		}
		if s.Price < 0 {
			return availability.TimeSlot{}, fmt.Errorf("%w: services[%d].price must not be negative", ErrInvalidInput, i)
		}
	}

	return availability.TimeSlot{Start: start, End: end}, nil
}

// toDomainServices переводит услуги запроса в строки записи
func toDomainServices(lines []ServiceLine) []domain.BookingService {
	services := make([]domain.BookingService, 0, len(lines))
	for _, l := range lines {
		services = append(services, domain.BookingService{
			ServiceID: l.ServiceID,
			Name:      l.Name,
			Price:     l.Price,
			SortOrder: l.Order,
		})
	}
	return services
}

// fromDomainServices переводит строки записи в модель ответа
func fromDomainServices(services []domain.BookingService) []ServiceLine {
	lines := make([]ServiceLine, 0, len(services))
	for _, s := range services {
		lines = append(lines, ServiceLine{
			ServiceID: s.ServiceID,
			Name:      s.Name,
			Price:     s.Price,
			Order:     s.SortOrder,
		})
	}
	return lines
}

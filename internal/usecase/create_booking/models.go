package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// ServiceLine услуга в составе записи
type ServiceLine struct {
	ServiceID int64
	Name      string
	Price     float64
	Order     int // порядок отображения
}

// Request модель запроса на создание записи
type Request struct {
	ClientID       int64            // ID клиента
	ProfessionalID int64            // ID профессионала
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала, например "10:00"
	EndTime        types.TimeString // Время окончания
	ForPersonName  *string          // Запись на другого человека (опционально)
	Services       []ServiceLine
}

// Response модель ответа с созданной записью
type Response struct {
	ID             int64
	PublicID       string
	ClientID       int64
	ProfessionalID int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Status         string
	ForPersonName  *string
	Services       []ServiceLine
	TotalPrice     float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

package list_free_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// Request модель запроса свободных слотов
type Request struct {
	ProfessionalID  int64     // ID профессионала
	Date            time.Time // Дата (без времени)
	RequiredMinutes int       // Длительность записи в минутах
	IsAuthenticated bool      // Запрос от авторизованного пользователя
	IgnoreBreak     bool      // Не учитывать перерывы (только для авторизованных)
}

// Response модель ответа со свободными слотами
type Response struct {
	ProfessionalID int64
	Date           time.Time
	Slots          []types.TimeString // Время начала в формате HH:MM, по возрастанию
}

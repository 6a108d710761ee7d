package update_booking

// Request модель запроса на изменение записи
type Request struct {
	BookingID     int64
	Status        *string // CANCELLED или COMPLETED
	ForPersonName *string
}

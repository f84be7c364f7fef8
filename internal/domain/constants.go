package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength   = 1000
	MaxServiceLength = 200
)

// BlockingStatuses список статусов, занимающих слот
// Используется при проверке доступности: отменённые и завершённые
// бронирования слот не блокируют
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// AllStatuses все известные статусы бронирования
// Переходы между ними не ограничены, но значение должно быть из этого списка
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// IsKnownStatus проверяет, что строка — один из известных статусов
func IsKnownStatus(s BookingStatus) bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

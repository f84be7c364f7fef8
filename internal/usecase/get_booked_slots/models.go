package get_booked_slots

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// Request модель запроса занятых слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа
// BookedSlots и AvailableSlots вместе покрывают всё расписание студии
type Response struct {
	Date           time.Time
	BookedSlots    []types.TimeString // Занятые основные слоты (pending/confirmed)
	AvailableSlots []types.TimeString // Остальные слоты расписания
}

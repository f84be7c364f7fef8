package domain

import "github.com/m04kA/PhotoStudio-BookingService/pkg/types"

// SlotDurationMinutes длительность одного слота студии
const SlotDurationMinutes = 60

// BookableSlots фиксированное расписание студии: почасовые слоты 09:00–17:00.
// Это конфигурация продукта, а не логика: список одновременно определяет,
// что показывается клиенту, и вселенную, по которой считаются конфликты.
var BookableSlots = []types.TimeString{
	"09:00",
	"10:00",
	"11:00",
	"12:00",
	"13:00",
	"14:00",
	"15:00",
	"16:00",
	"17:00",
}

// IsBookableSlot проверяет, что слот входит в расписание студии
func IsBookableSlot(slot types.TimeString) bool {
	for _, s := range BookableSlots {
		if s == slot {
			return true
		}
	}
	return false
}

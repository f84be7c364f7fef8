package get_booked_slots

import (
	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	getBookedSlots "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/get_booked_slots"
)

// SlotsResponse HTTP response model занятости слотов на дату
type SlotsResponse struct {
	Success        bool     `json:"success"`
	Date           string   `json:"date"`
	BookedSlots    []string `json:"bookedSlots"`
	AvailableSlots []string `json:"availableSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookedSlots.Response) *SlotsResponse {
	booked := make([]string, 0, len(resp.BookedSlots))
	for _, s := range resp.BookedSlots {
		booked = append(booked, s.String())
	}

	available := make([]string, 0, len(resp.AvailableSlots))
	for _, s := range resp.AvailableSlots {
		available = append(available, s.String())
	}

	return &SlotsResponse{
		Success:        true,
		Date:           resp.Date.Format(domain.DateFormat),
		BookedSlots:    booked,
		AvailableSlots: available,
	}
}

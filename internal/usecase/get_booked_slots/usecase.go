package get_booked_slots

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// UseCase use case получения занятых слотов на дату
// Занятым считается основной слот каждого активного бронирования;
// дополнительные слоты — пожелание клиента и дату не блокируют
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date, true)
	if err != nil {
		uc.logger.Error("GetBookedSlots: failed to get bookings for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	occupied := make(map[types.TimeString]struct{}, len(bookings))
	for _, b := range bookings {
		if b.IsBlocking() {
			occupied[b.TimeSlot] = struct{}{}
		}
	}

	// Обходим расписание по порядку, чтобы ответ был стабильно отсортирован
	booked := make([]types.TimeString, 0, len(occupied))
	available := make([]types.TimeString, 0, len(domain.BookableSlots))
	for _, slot := range domain.BookableSlots {
		if _, ok := occupied[slot]; ok {
			booked = append(booked, slot)
			delete(occupied, slot)
		} else {
			available = append(available, slot)
		}
	}

	// Активные записи со слотами вне текущего расписания (данные до смены
	// расписания) всё равно занимают время — показываем их занятыми
	if len(occupied) > 0 {
		for slot := range occupied {
			booked = append(booked, slot)
		}
		sort.Slice(booked, func(i, j int) bool { return booked[i] < booked[j] })
	}

	uc.logger.Info("GetBookedSlots: date=%s, booked=%d, available=%d",
		req.Date.Format(domain.DateFormat), len(booked), len(available))

	return &Response{
		Date:           req.Date,
		BookedSlots:    booked,
		AvailableSlots: available,
	}, nil
}

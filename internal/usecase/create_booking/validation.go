package create_booking

import (
	"fmt"
	"regexp"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// emailPattern минимальная синтаксическая проверка: непустая локальная часть,
// @, домен с точкой. Полная валидация email намеренно не выполняется
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateRequest валидирует входные данные запроса
// Выполняется до любого обращения к хранилищу
func validateRequest(req *Request) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if !emailPattern.MatchString(req.Email) {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.TimeSlots) == 0 {
		return fmt.Errorf("%w: at least one time slot is required", ErrInvalidInput)
	}

	for _, slot := range req.TimeSlots {
		if err := slot.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time slot format: %v", ErrInvalidInput, err)
		}
		if !domain.IsBookableSlot(slot) {
			return fmt.Errorf("%w: slot %s is not bookable", ErrInvalidInput, slot)
		}
	}

	if len(req.Service) > domain.MaxServiceLength {
		return fmt.Errorf("%w: service description is too long", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
// Сравниваются календарные дни: date приходит из парсинга в UTC, now — в
// часовом поясе сервера, поэтому сравнение полуночей двух разных зон
// отклоняло бы сегодняшнюю дату на серверах западнее UTC
func validateDate(date, now time.Time) error {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 < y2 || (y1 == y2 && (m1 < m2 || (m1 == m2 && d1 < d2))) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidInput)
	}
	return nil
}

// findConflicts возвращает запрошенные слоты, уже занятые активными бронированиями
// Занятость определяется только основным слотом существующих записей:
// дополнительные слоты — пожелание, а не блокировка
func findConflicts(requested []types.TimeString, existing []*domain.Booking) []types.TimeString {
	occupied := make(map[types.TimeString]struct{}, len(existing))
	for _, b := range existing {
		if b.IsBlocking() {
			occupied[b.TimeSlot] = struct{}{}
		}
	}

	conflicts := make([]types.TimeString, 0)
	for _, slot := range requested {
		if _, ok := occupied[slot]; ok {
			conflicts = append(conflicts, slot)
		}
	}

	return conflicts
}

package get_booked_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_booked_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Сбой чтения никогда не трактуется как "всё свободно"
	ErrInternal = errors.New("get_booked_slots: internal error")
)

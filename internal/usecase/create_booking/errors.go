package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// Проверка выполняется до любого обращения к хранилищу
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotTaken возвращается, когда хотя бы один запрошенный слот
	// занят активным бронированием (pending/confirmed)
	ErrSlotTaken = errors.New("create_booking: slot already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Ошибка чтения при проверке доступности тоже попадает сюда:
	// сбой хранилища никогда не трактуется как "слот свободен"
	ErrInternal = errors.New("create_booking: internal error")
)

package notifications

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// Mailer интерфейс почтового транспорта
type Mailer interface {
	SendBookingNotification(ctx context.Context, booking *domain.Booking) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Package notifications best-effort диспетчер уведомлений о бронированиях
//
// Вызывается после успешного коммита бронирования и работает полностью
// асинхронно: сбой уведомления логируется и никогда не влияет на результат
// бронирования, ретраев нет.
package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// Service диспетчер уведомлений
type Service struct {
	mailer  Mailer // nil = email отключён конфигурацией
	logger  Logger
	timeout time.Duration

	wg sync.WaitGroup
}

// NewService создает диспетчер уведомлений
func NewService(mailer Mailer, timeout time.Duration, logger Logger) *Service {
	return &Service{
		mailer:  mailer,
		logger:  logger,
		timeout: timeout,
	}
}

// BookingCreated асинхронно уведомляет студию о новом бронировании
// Возвращает управление сразу; отправка идёт в отдельной горутине
// со своим таймаутом, не привязанным к контексту HTTP запроса
func (s *Service) BookingCreated(booking *domain.Booking) {
	if s.mailer == nil {
		s.logger.Info("Notifications: email disabled, skipping notification for booking id=%d", booking.ID)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.mailer.SendBookingNotification(ctx, booking); err != nil {
			// Сбой уведомления не эскалируется: бронирование уже записано
			s.logger.Error("Notifications: failed to notify studio about booking id=%d: %v", booking.ID, err)
			return
		}

		s.logger.Info("Notifications: studio notified about booking id=%d", booking.ID)
	}()
}

// Wait дожидается завершения всех запущенных уведомлений
// Используется при graceful shutdown
func (s *Service) Wait() {
	s.wg.Wait()
}

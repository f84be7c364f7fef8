package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями из админки
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с гибкой фильтрацией
// Без явного статуса возвращает только активные (pending/confirmed);
// IncludeInactive=true добавляет отменённые и завершённые
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, dateFrom=%v, dateTo=%v, status=%v, includeInactive=%t",
		req.DateFrom, req.DateTo, req.Status, req.IncludeInactive)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Update частично обновляет бронирование (статус и/или флаг оплаты)
//
// Переходы статусов намеренно не ограничены: админ может перевести запись
// из любого статуса в любой, включая восстановление отменённого бронирования.
// Восстановление НЕ перепроверяет занятость слота — если слот за это время
// заняли, конфликт разрешает администратор.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%d, status=%v, paymentConfirmed=%v",
		id, req.Status, req.PaymentConfirmed)

	if req.IsEmpty() {
		s.logger.Warn("Update: empty patch for booking id=%d", id)
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	patch, err := req.ToDomainPatch()
	if err != nil {
		s.logger.Warn("Update: invalid patch for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.bookingRepo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// Возвращаем обновлённую запись целиком
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to reload booking: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking id=%d, status=%s", id, booking.Status)
	return models.FromDomainBooking(booking), nil
}

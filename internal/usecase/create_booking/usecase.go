package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/booking"
)

// UseCase use case создания бронирования
//
// Finalize=true: проверка доступности и запись выполняются в одной
// сериализуемой транзакции (чтение даты с FOR UPDATE), так что два
// конкурентных запроса на один слот не могут оба пройти проверку.
// Частичный уникальный индекс в БД — вторая линия защиты.
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	notifier     Notifier
	whatsapp     WhatsAppLinker
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	whatsapp WhatsAppLinker,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		notifier:     notifier,
		whatsapp:     whatsapp,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, date=%s, slots=%v, finalize=%t",
		req.Email, req.Date.Format(domain.DateFormat), req.TimeSlots, req.Finalize)

	// 1. Валидация входных данных — до любого обращения к БД
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем начальный статус по свидетельству оплаты
	paid := req.HasPaymentEvidence()
	status := domain.StatusPending
	if paid {
		status = domain.StatusConfirmed
	}

	booking := &domain.Booking{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Service:          req.Service,
		PackageInfo:      req.Package,
		Date:             req.Date,
		TimeSlot:         req.PrimarySlot(),
		ExtraSlots:       req.ExtraSlots(),
		Status:           status,
		PaymentConfirmed: paid,
		TransactionID:    req.TransactionID,
		Notes:            req.Notes,
	}

	// 3. Finalize=false: только проверка доступности, без записи
	if !req.Finalize {
		if err := uc.checkAvailability(ctx, req); err != nil {
			return nil, err
		}

		uc.logger.Info("CreateBooking: availability confirmed (not finalized) for date=%s, slot=%s",
			req.Date.Format(domain.DateFormat), req.PrimarySlot())

		return &Response{
			Finalized:   false,
			WhatsAppURL: uc.whatsapp.BookingLink(booking),
			Date:        req.Date,
			TimeSlot:    req.PrimarySlot(),
			ExtraSlots:  req.ExtraSlots(),
		}, nil
	}

	// 4. Finalize=true: проверка и запись в одной сериализуемой транзакции
	var created *domain.Booking
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetByDate(txCtx, req.Date, true)
		if err != nil {
			// Сбой чтения — не "слот свободен"
			uc.logger.Error("CreateBooking: failed to get bookings for date=%s: %v",
				req.Date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if conflicts := findConflicts(req.TimeSlots, existing); len(conflicts) > 0 {
			uc.logger.Warn("CreateBooking: conflict on date=%s, slots=%v",
				req.Date.Format(domain.DateFormat), conflicts)
			return fmt.Errorf("%w: %v", ErrSlotTaken, conflicts)
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return fmt.Errorf("%w: %s", ErrSlotTaken, booking.TimeSlot)
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, status=%s", created.ID, created.Status)

	// 5. Уведомление студии — fire-and-forget, после коммита
	uc.notifier.BookingCreated(created)

	return &Response{
		Finalized:        true,
		WhatsAppURL:      uc.whatsapp.BookingLink(created),
		ID:               created.ID,
		Name:             created.Name,
		Email:            created.Email,
		Phone:            created.Phone,
		Service:          created.Service,
		Package:          created.PackageInfo,
		Date:             created.Date,
		TimeSlot:         created.TimeSlot,
		ExtraSlots:       created.ExtraSlots,
		Status:           string(created.Status),
		PaymentConfirmed: created.PaymentConfirmed,
		Notes:            created.Notes,
		CreatedAt:        created.CreatedAt,
		UpdatedAt:        created.UpdatedAt,
	}, nil
}

// checkAvailability проверяет доступность запрошенных слотов без записи
func (uc *UseCase) checkAvailability(ctx context.Context, req *Request) error {
	existing, err := uc.bookingRepo.GetByDate(ctx, req.Date, true)
	if err != nil {
		uc.logger.Error("CreateBooking: availability check failed for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
	}

	if conflicts := findConflicts(req.TimeSlots, existing); len(conflicts) > 0 {
		uc.logger.Warn("CreateBooking: conflict on date=%s, slots=%v",
			req.Date.Format(domain.DateFormat), conflicts)
		return fmt.Errorf("%w: %v", ErrSlotTaken, conflicts)
	}

	return nil
}

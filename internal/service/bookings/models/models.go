package models

import (
	"errors"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date")
)

// Request модели

// UpdateBookingRequest частичное обновление бронирования из админки
// Оба поля опциональны, но хотя бы одно должно быть задано
type UpdateBookingRequest struct {
	Status           *string `json:"status,omitempty"`
	PaymentConfirmed *bool   `json:"paymentConfirmed,omitempty"`
}

// IsEmpty возвращает true, если запрос не содержит изменений
func (r *UpdateBookingRequest) IsEmpty() bool {
	return r.Status == nil && r.PaymentConfirmed == nil
}

// ToDomainPatch конвертирует запрос в domain патч
func (r *UpdateBookingRequest) ToDomainPatch() (domain.BookingPatch, error) {
	patch := domain.BookingPatch{
		PaymentConfirmed: r.PaymentConfirmed,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.BookingPatch{}, err
		}
		patch.Status = &status
	}

	return patch, nil
}

// ListBookingsRequest запрос списка бронирований с фильтрацией
type ListBookingsRequest struct {
	DateFrom        *string `json:"dateFrom,omitempty"` // YYYY-MM-DD
	DateTo          *string `json:"dateTo,omitempty"`   // YYYY-MM-DD
	Status          *string `json:"status,omitempty"`
	IncludeInactive bool    `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		IncludeInactive: r.IncludeInactive,
	}

	if r.DateFrom != nil {
		date, err := time.Parse(domain.DateFormat, *r.DateFrom)
		if err != nil {
			return domain.BookingsFilter{}, ErrInvalidDate
		}
		filter.DateFrom = &date
	}

	if r.DateTo != nil {
		date, err := time.Parse(domain.DateFormat, *r.DateTo)
		if err != nil {
			return domain.BookingsFilter{}, ErrInvalidDate
		}
		filter.DateTo = &date
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.BookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse полное представление бронирования
type BookingResponse struct {
	ID               int64               `json:"id"`
	Name             string              `json:"name"`
	Email            string              `json:"email"`
	Phone            string              `json:"phone"`
	Service          string              `json:"service,omitempty"`
	Package          *domain.PackageInfo `json:"package,omitempty"`
	Date             string              `json:"date"`
	TimeSlot         string              `json:"timeSlot"`
	ExtraSlots       []string            `json:"extraSlots,omitempty"`
	Status           string              `json:"status"`
	PaymentConfirmed bool                `json:"paymentConfirmed"`
	TransactionID    *string             `json:"transactionId,omitempty"`
	Notes            *string             `json:"notes,omitempty"`
	CreatedAt        string              `json:"createdAt"`
	UpdatedAt        string              `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain бронирование в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	extraSlots := make([]string, 0, len(b.ExtraSlots))
	for _, s := range b.ExtraSlots {
		extraSlots = append(extraSlots, s.String())
	}

	return &BookingResponse{
		ID:               b.ID,
		Name:             b.Name,
		Email:            b.Email,
		Phone:            b.Phone,
		Service:          b.Service,
		Package:          b.PackageInfo,
		Date:             b.Date.Format(domain.DateFormat),
		TimeSlot:         b.TimeSlot.String(),
		ExtraSlots:       extraSlots,
		Status:           string(b.Status),
		PaymentConfirmed: b.PaymentConfirmed,
		TransactionID:    b.TransactionID,
		Notes:            b.Notes,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain бронирований в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
// Принимаются только известные статусы; переходы между ними не ограничены
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.IsKnownStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

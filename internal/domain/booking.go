package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// PackageInfo structured description of the shoot package picked by the client
// Stored as JSONB, not validated against a catalog
type PackageInfo struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Value implements driver.Valuer for JSONB storage
func (p *PackageInfo) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner for JSONB storage
func (p *PackageInfo) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into PackageInfo", src)
	}
}

// Booking represents a studio booking in the system
type Booking struct {
	ID    int64
	Name  string
	Email string
	Phone string

	// Free-form description of what was booked
	Service     string
	PackageInfo *PackageInfo

	Date     time.Time        // calendar date, time part is always midnight
	TimeSlot types.TimeString // primary slot, the only one that locks the date

	// Additional requested slots, kept for staff visibility only.
	// They do not participate in conflict checks.
	ExtraSlots []types.TimeString

	Status           BookingStatus
	PaymentConfirmed bool
	TransactionID    *string

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the booking occupies its slot
// Only pending and confirmed bookings block a (date, slot) pair
func (b *Booking) IsBlocking() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsFinal returns true if the booking reached a terminal-ish state
func (b *Booking) IsFinal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// BookingPatch частичное обновление бронирования из админки
// Меняются только не-nil поля; переходы статусов намеренно не ограничены
type BookingPatch struct {
	Status           *BookingStatus
	PaymentConfirmed *bool
}

// IsEmpty возвращает true, если патч не содержит изменений
func (p *BookingPatch) IsEmpty() bool {
	return p.Status == nil && p.PaymentConfirmed == nil
}

// BookingsFilter фильтр для получения бронирований из админки
type BookingsFilter struct {
	DateFrom        *time.Time     // Начало периода (опционально)
	DateTo          *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и завершённые
}

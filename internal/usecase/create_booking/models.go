package create_booking

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name    string              // Имя клиента
	Email   string              // Email клиента
	Phone   string              // Телефон клиента
	Service string              // Описание услуги (свободный текст)
	Package *domain.PackageInfo // Выбранный пакет (опционально)

	Date      time.Time          // Дата бронирования (без времени)
	TimeSlots []types.TimeString // Запрошенные слоты; первый — основной

	Notes *string // Дополнительные пожелания (опционально)

	// Свидетельство оплаты: перевод не проверяется сервисом,
	// наличие transactionId или флага paid сразу подтверждает бронирование
	TransactionID *string
	Paid          bool

	// Finalize=false: только проверка доступности + deep-link, без записи
	Finalize bool
}

// HasPaymentEvidence возвращает true, если клиент предоставил свидетельство оплаты
func (r *Request) HasPaymentEvidence() bool {
	if r.Paid {
		return true
	}
	return r.TransactionID != nil && *r.TransactionID != ""
}

// PrimarySlot возвращает основной (первый) запрошенный слот
func (r *Request) PrimarySlot() types.TimeString {
	if len(r.TimeSlots) == 0 {
		return ""
	}
	return r.TimeSlots[0]
}

// ExtraSlots возвращает дополнительные запрошенные слоты (все, кроме первого)
func (r *Request) ExtraSlots() []types.TimeString {
	if len(r.TimeSlots) <= 1 {
		return nil
	}
	return r.TimeSlots[1:]
}

// Response модель ответа
// При Finalize=false заполнены только Date/TimeSlot/WhatsAppURL
type Response struct {
	Finalized   bool   // Было ли бронирование записано
	WhatsAppURL string // Deep-link для подтверждения в WhatsApp

	ID               int64
	Name             string
	Email            string
	Phone            string
	Service          string
	Package          *domain.PackageInfo
	Date             time.Time
	TimeSlot         types.TimeString
	ExtraSlots       []types.TimeString
	Status           string
	PaymentConfirmed bool
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

package create_booking

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	createBooking "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name    string              `json:"name"`
	Email   string              `json:"email"`
	Phone   string              `json:"phone"`
	Service string              `json:"service,omitempty"`
	Package *domain.PackageInfo `json:"package,omitempty"`

	Date      string   `json:"date"`      // "2025-06-01"
	TimeSlots []string `json:"timeSlots"` // ["10:00", "11:00"], первый — основной

	Notes   *string         `json:"notes,omitempty"`
	Payment *PaymentPayload `json:"payment,omitempty"`
	Paid    bool            `json:"paid,omitempty"`

	Finalize bool `json:"finalize"`
}

// PaymentPayload свидетельство оплаты от клиента (не проверяется сервисом)
type PaymentPayload struct {
	TransactionID string `json:"transactionId"`
}

// BookingResponse HTTP response model для записанного бронирования
type BookingResponse struct {
	Success     bool   `json:"success"`
	WhatsAppURL string `json:"whatsappUrl"`

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
	Notes            *string             `json:"notes,omitempty"`
	CreatedAt        string              `json:"createdAt"`
	UpdatedAt        string              `json:"updatedAt"`
}

// CheckResponse HTTP response model для finalize=false (без записи)
type CheckResponse struct {
	Success     bool   `json:"success"`
	WhatsAppURL string `json:"whatsappUrl"`
	Date        string `json:"date"`
	TimeSlot    string `json:"timeSlot"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0, len(r.TimeSlots))
	for _, s := range r.TimeSlots {
		slot, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	req := &createBooking.Request{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Service:   r.Service,
		Package:   r.Package,
		Date:      date,
		TimeSlots: slots,
		Notes:     r.Notes,
		Paid:      r.Paid,
		Finalize:  r.Finalize,
	}

	if r.Payment != nil && r.Payment.TransactionID != "" {
		req.TransactionID = &r.Payment.TransactionID
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	extraSlots := make([]string, 0, len(resp.ExtraSlots))
	for _, s := range resp.ExtraSlots {
		extraSlots = append(extraSlots, s.String())
	}

	return &BookingResponse{
		Success:          true,
		WhatsAppURL:      resp.WhatsAppURL,
		ID:               resp.ID,
		Name:             resp.Name,
		Email:            resp.Email,
		Phone:            resp.Phone,
		Service:          resp.Service,
		Package:          resp.Package,
		Date:             resp.Date.Format(domain.DateFormat),
		TimeSlot:         resp.TimeSlot.String(),
		ExtraSlots:       extraSlots,
		Status:           resp.Status,
		PaymentConfirmed: resp.PaymentConfirmed,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}

// FromUseCaseCheckResponse конвертирует ответ проверки доступности (finalize=false)
func FromUseCaseCheckResponse(resp *createBooking.Response) *CheckResponse {
	return &CheckResponse{
		Success:     true,
		WhatsAppURL: resp.WhatsAppURL,
		Date:        resp.Date.Format(domain.DateFormat),
		TimeSlot:    resp.TimeSlot.String(),
	}
}

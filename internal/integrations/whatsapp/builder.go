// Package whatsapp построение deep-link для подтверждения бронирования в WhatsApp
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// Builder строит wa.me ссылки на номер студии
type Builder struct {
	phone string
}

// NewBuilder создает builder для указанного номера
// Номер хранится как цифры с кодом страны, без "+" и пробелов
func NewBuilder(phone string) *Builder {
	return &Builder{phone: normalizePhone(phone)}
}

// BookingLink строит deep-link с текстом-сводкой бронирования
// Клиент открывает ссылку и отправляет готовое сообщение студии
func (b *Builder) BookingLink(booking *domain.Booking) string {
	var sb strings.Builder

	sb.WriteString("Здравствуйте! Хочу подтвердить бронирование.\n")
	sb.WriteString(fmt.Sprintf("Имя: %s\n", booking.Name))
	sb.WriteString(fmt.Sprintf("Дата: %s\n", booking.Date.Format(domain.DateFormat)))
	sb.WriteString(fmt.Sprintf("Время: %s", booking.TimeSlot))

	for _, slot := range booking.ExtraSlots {
		sb.WriteString(fmt.Sprintf(", %s", slot))
	}
	sb.WriteString("\n")

	if booking.Service != "" {
		sb.WriteString(fmt.Sprintf("Услуга: %s\n", booking.Service))
	}
	if booking.PackageInfo != nil && booking.PackageInfo.Name != "" {
		sb.WriteString(fmt.Sprintf("Пакет: %s\n", booking.PackageInfo.Name))
	}
	sb.WriteString(fmt.Sprintf("Телефон: %s", booking.Phone))

	return Link(b.phone, sb.String())
}

// Link строит wa.me ссылку с произвольным текстом
func Link(phone, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(text))
}

// normalizePhone убирает из номера всё, кроме цифр
func normalizePhone(phone string) string {
	var sb strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

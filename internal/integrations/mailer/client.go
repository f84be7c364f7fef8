// Package mailer отправка email-уведомлений студии через SMTP
package mailer

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client SMTP клиент для уведомлений о бронированиях
type Client struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       string
	log      Logger
}

// NewClient создает SMTP клиент
// to — ящик студии, получающий уведомления о новых бронированиях
func NewClient(host string, port int, username, password, from, to string, log Logger) *Client {
	return &Client{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		to:       to,
		log:      log,
	}
}

// SendBookingNotification отправляет студии письмо о новом бронировании
// Вызывается диспетчером уведомлений после успешной записи; ошибка отправки
// логируется вызывающей стороной и никогда не влияет на результат бронирования
func (c *Client) SendBookingNotification(ctx context.Context, booking *domain.Booking) error {
	if c.host == "" || c.to == "" {
		return ErrNotConfigured
	}

	// smtp.SendMail не принимает context; уважаем уже отменённый контекст
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	subject := fmt.Sprintf("Новое бронирование: %s %s", booking.Date.Format(domain.DateFormat), booking.TimeSlot)
	body := buildBookingBody(booking)

	msg := buildMessage(c.from, c.to, subject, body)

	addr := fmt.Sprintf("%s:%d", c.host, c.port)
	var auth smtp.Auth
	if c.username != "" {
		auth = smtp.PlainAuth("", c.username, c.password, c.host)
	}

	if err := smtp.SendMail(addr, auth, c.from, []string{c.to}, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	return nil
}

// buildBookingBody формирует плоский текст письма со сводкой бронирования
func buildBookingBody(booking *domain.Booking) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Бронирование #%d\n\n", booking.ID)
	fmt.Fprintf(&sb, "Имя: %s\n", booking.Name)
	fmt.Fprintf(&sb, "Email: %s\n", booking.Email)
	fmt.Fprintf(&sb, "Телефон: %s\n", booking.Phone)
	fmt.Fprintf(&sb, "Дата: %s\n", booking.Date.Format(domain.DateFormat))
	fmt.Fprintf(&sb, "Время: %s\n", booking.TimeSlot)

	if len(booking.ExtraSlots) > 0 {
		slots := make([]string, len(booking.ExtraSlots))
		for i, s := range booking.ExtraSlots {
			slots[i] = s.String()
		}
		fmt.Fprintf(&sb, "Дополнительные слоты (пожелание): %s\n", strings.Join(slots, ", "))
	}

	if booking.Service != "" {
		fmt.Fprintf(&sb, "Услуга: %s\n", booking.Service)
	}
	if booking.PackageInfo != nil && booking.PackageInfo.Name != "" {
		fmt.Fprintf(&sb, "Пакет: %s", booking.PackageInfo.Name)
		if booking.PackageInfo.Price > 0 {
			fmt.Fprintf(&sb, " (%.2f)", booking.PackageInfo.Price)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Статус: %s\n", booking.Status)
	fmt.Fprintf(&sb, "Оплата подтверждена: %t\n", booking.PaymentConfirmed)
	if booking.TransactionID != nil && *booking.TransactionID != "" {
		fmt.Fprintf(&sb, "Транзакция: %s\n", *booking.TransactionID)
	}
	if booking.Notes != nil && *booking.Notes != "" {
		fmt.Fprintf(&sb, "Заметки: %s\n", *booking.Notes)
	}

	return sb.String()
}

// buildMessage собирает RFC 822 сообщение
// Тема кодируется по RFC 2047: кириллица в сыром виде в заголовке
// ломается на строгих MTA
func buildMessage(from, to, subject, body string) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "From: %s\r\n", from)
	fmt.Fprintf(&sb, "To: %s\r\n", to)
	fmt.Fprintf(&sb, "Subject: %s\r\n", mime.BEncoding.Encode("UTF-8", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)
	return []byte(sb.String())
}

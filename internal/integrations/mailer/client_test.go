package mailer

import (
	"context"
	"mime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestSendBookingNotification_NotConfigured(t *testing.T) {
	c := NewClient("", 0, "", "", "", "", noopLogger{})

	err := c.SendBookingNotification(context.Background(), &domain.Booking{ID: 1})

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSendBookingNotification_CancelledContext(t *testing.T) {
	c := NewClient("smtp.example.com", 587, "", "", "from@example.com", "to@example.com", noopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.SendBookingNotification(ctx, &domain.Booking{ID: 1})

	assert.ErrorIs(t, err, ErrSendFailed)
}

func TestBuildMessage_EncodesSubjectHeader(t *testing.T) {
	subject := "Новое бронирование: 2025-06-15 10:00"
	msg := string(buildMessage("from@example.com", "to@example.com", subject, "body"))

	headers, _, found := strings.Cut(msg, "\r\n\r\n")
	require.True(t, found)

	var subjectHeader string
	for _, line := range strings.Split(headers, "\r\n") {
		if strings.HasPrefix(line, "Subject: ") {
			subjectHeader = strings.TrimPrefix(line, "Subject: ")
		}
	}
	require.NotEmpty(t, subjectHeader)

	// Заголовок с кириллицей должен быть в RFC 2047 encoded-word форме
	assert.True(t, strings.HasPrefix(subjectHeader, "=?UTF-8?"), subjectHeader)

	decoded, err := new(mime.WordDecoder).DecodeHeader(subjectHeader)
	require.NoError(t, err)
	assert.Equal(t, subject, decoded)
}

func TestBuildBookingBody(t *testing.T) {
	txn := "txn-001"
	booking := &domain.Booking{
		ID:               7,
		Name:             "Анна Иванова",
		Email:            "anna@example.com",
		Phone:            "+79001234567",
		Date:             time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:         "10:00",
		Status:           domain.StatusConfirmed,
		PaymentConfirmed: true,
		TransactionID:    &txn,
	}

	body := buildBookingBody(booking)

	assert.Contains(t, body, "Бронирование #7")
	assert.Contains(t, body, "Анна Иванова")
	assert.Contains(t, body, "2025-06-15")
	assert.Contains(t, body, "10:00")
	assert.Contains(t, body, "txn-001")
}

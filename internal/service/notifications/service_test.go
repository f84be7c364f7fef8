package notifications

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

type fakeMailer struct {
	calls int64
	err   error
}

func (f *fakeMailer) SendBookingNotification(_ context.Context, _ *domain.Booking) error {
	atomic.AddInt64(&f.calls, 1)
	return f.err
}

type countingLogger struct {
	errors int64
}

func (l *countingLogger) Info(string, ...interface{}) {}
func (l *countingLogger) Warn(string, ...interface{}) {}
func (l *countingLogger) Error(string, ...interface{}) {
	atomic.AddInt64(&l.errors, 1)
}

func TestBookingCreated_SendsNotification(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewService(mailer, time.Second, &countingLogger{})

	svc.BookingCreated(&domain.Booking{ID: 1})
	svc.Wait()

	assert.Equal(t, int64(1), atomic.LoadInt64(&mailer.calls))
}

func TestBookingCreated_FailureIsSwallowed(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp unreachable")}
	log := &countingLogger{}
	svc := NewService(mailer, time.Second, log)

	// Сбой отправки не должен паниковать и не возвращает ошибку вызывающему
	svc.BookingCreated(&domain.Booking{ID: 1})
	svc.Wait()

	assert.Equal(t, int64(1), atomic.LoadInt64(&mailer.calls))
	assert.Equal(t, int64(1), atomic.LoadInt64(&log.errors))
}

func TestBookingCreated_NilMailerDisabled(t *testing.T) {
	svc := NewService(nil, time.Second, &countingLogger{})

	svc.BookingCreated(&domain.Booking{ID: 1})
	svc.Wait()
}

func TestWait_BlocksUntilAllNotificationsDone(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewService(mailer, time.Second, &countingLogger{})

	for i := 0; i < 5; i++ {
		svc.BookingCreated(&domain.Booking{ID: int64(i)})
	}
	svc.Wait()

	assert.Equal(t, int64(5), atomic.LoadInt64(&mailer.calls))
}

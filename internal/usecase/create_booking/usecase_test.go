package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// --- фейки ---

type fakeRepository struct {
	existing  []*domain.Booking
	getErr    error
	createErr error

	created     *domain.Booking
	createCalls int
}

func (f *fakeRepository) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *booking
	out.ID = 42
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
}

func (f *fakeRepository) GetByDate(_ context.Context, _ time.Time, _ bool) ([]*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.existing, nil
}

// fakeTxManager исполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeNotifier struct {
	bookings []*domain.Booking
}

func (f *fakeNotifier) BookingCreated(booking *domain.Booking) {
	f.bookings = append(f.bookings, booking)
}

type fakeLinker struct{}

func (f *fakeLinker) BookingLink(_ *domain.Booking) string {
	return "https://wa.me/79001234567?text=test"
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- helpers ---

func testDate() time.Time {
	return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		Name:      "Анна Иванова",
		Email:     "anna@example.com",
		Phone:     "+79001234567",
		Service:   "Семейная фотосессия",
		Date:      testDate(),
		TimeSlots: []types.TimeString{"10:00"},
		Finalize:  true,
	}
}

func newTestUseCase(repo *fakeRepository, tx *fakeTxManager, notifier *fakeNotifier) *UseCase {
	uc := NewUseCase(repo, tx, notifier, &fakeLinker{}, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

// --- тесты ---

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepository{}
	tx := &fakeTxManager{}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, tx, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, resp.Finalized)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.False(t, resp.PaymentConfirmed)
	assert.Equal(t, types.TimeString("10:00"), resp.TimeSlot)
	assert.NotEmpty(t, resp.WhatsAppURL)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, repo.createCalls)

	require.Len(t, notifier.bookings, 1)
	assert.Equal(t, int64(42), notifier.bookings[0].ID)
}

func TestExecute_PaymentEvidence(t *testing.T) {
	txID := "txn-001"

	tests := []struct {
		name          string
		transactionID *string
		paid          bool
		wantStatus    domain.BookingStatus
		wantConfirmed bool
	}{
		{
			name:          "без свидетельства оплаты — pending",
			wantStatus:    domain.StatusPending,
			wantConfirmed: false,
		},
		{
			name:          "transactionId подтверждает сразу",
			transactionID: &txID,
			wantStatus:    domain.StatusConfirmed,
			wantConfirmed: true,
		},
		{
			name:          "флаг paid подтверждает сразу",
			paid:          true,
			wantStatus:    domain.StatusConfirmed,
			wantConfirmed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			uc := newTestUseCase(repo, &fakeTxManager{}, &fakeNotifier{})

			req := validRequest()
			req.TransactionID = tt.transactionID
			req.Paid = tt.paid

			resp, err := uc.Execute(context.Background(), req)

			require.NoError(t, err)
			assert.Equal(t, string(tt.wantStatus), resp.Status)
			assert.Equal(t, tt.wantConfirmed, resp.PaymentConfirmed)
			assert.Equal(t, tt.wantStatus, repo.created.Status)
		})
	}
}

func TestExecute_SlotTaken(t *testing.T) {
	repo := &fakeRepository{
		existing: []*domain.Booking{
			{ID: 1, TimeSlot: "10:00", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(repo, &fakeTxManager{}, &fakeNotifier{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, resp)
	assert.Equal(t, 0, repo.createCalls)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	repo := &fakeRepository{
		existing: []*domain.Booking{
			{ID: 1, TimeSlot: "10:00", Status: domain.StatusCancelled},
		},
	}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, &fakeTxManager{}, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, resp.Finalized)
	assert.Equal(t, 1, repo.createCalls)
}

func TestExecute_UniqueIndexViolationMapsToSlotTaken(t *testing.T) {
	repo := &fakeRepository{createErr: bookingRepo.ErrSlotTaken}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, &fakeTxManager{}, notifier)

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, notifier.bookings)
}

func TestExecute_StoreErrorFailsClosed(t *testing.T) {
	// Сбой чтения хранилища не трактуется как "слот свободен"
	repo := &fakeRepository{getErr: errors.New("connection refused")}
	uc := newTestUseCase(repo, &fakeTxManager{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 0, repo.createCalls)
}

func TestExecute_NotFinalized_NoWrite(t *testing.T) {
	repo := &fakeRepository{}
	tx := &fakeTxManager{}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, tx, notifier)

	req := validRequest()
	req.Finalize = false

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, resp.Finalized)
	assert.NotEmpty(t, resp.WhatsAppURL)
	assert.Zero(t, resp.ID)
	assert.Equal(t, 0, repo.createCalls)
	assert.Equal(t, 0, tx.calls)
	assert.Empty(t, notifier.bookings)
}

func TestExecute_NotFinalized_SlotTaken(t *testing.T) {
	repo := &fakeRepository{
		existing: []*domain.Booking{
			{ID: 1, TimeSlot: "10:00", Status: domain.StatusPending},
		},
	}
	uc := newTestUseCase(repo, &fakeTxManager{}, &fakeNotifier{})

	req := validRequest()
	req.Finalize = false

	_, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_ValidationFailure_NoStoreCalls(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"пустое имя", func(req *Request) { req.Name = "" }},
		{"пустой email", func(req *Request) { req.Email = "" }},
		{"некорректный email", func(req *Request) { req.Email = "not-an-email" }},
		{"пустой телефон", func(req *Request) { req.Phone = "" }},
		{"нет слотов", func(req *Request) { req.TimeSlots = nil }},
		{"слот вне расписания", func(req *Request) { req.TimeSlots = []types.TimeString{"23:00"} }},
		{"дата в прошлом", func(req *Request) { req.Date = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			tx := &fakeTxManager{}
			uc := newTestUseCase(repo, tx, &fakeNotifier{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 0, repo.createCalls)
			assert.Equal(t, 0, tx.calls)
		})
	}
}

func TestExecute_MultiSlot_OnlyPrimaryBlocks(t *testing.T) {
	repo := &fakeRepository{
		existing: []*domain.Booking{
			// 11:00 занят лишь как дополнительный слот существующей записи
			{ID: 1, TimeSlot: "09:00", ExtraSlots: []types.TimeString{"11:00"}, Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(repo, &fakeTxManager{}, &fakeNotifier{})

	req := validRequest()
	req.TimeSlots = []types.TimeString{"10:00", "11:00"}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), resp.TimeSlot)
	assert.Equal(t, []types.TimeString{"11:00"}, resp.ExtraSlots)
	assert.Equal(t, types.TimeString("10:00"), repo.created.TimeSlot)
}

func TestExecute_RequestedSlotConflictsWithPrimary(t *testing.T) {
	repo := &fakeRepository{
		existing: []*domain.Booking{
			{ID: 1, TimeSlot: "11:00", Status: domain.StatusPending},
		},
	}
	uc := newTestUseCase(repo, &fakeTxManager{}, &fakeNotifier{})

	// Конфликт по дополнительному запрошенному слоту тоже отклоняется
	req := validRequest()
	req.TimeSlots = []types.TimeString{"10:00", "11:00"}

	_, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

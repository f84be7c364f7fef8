package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	lastReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"name":      "Анна Иванова",
		"email":     "anna@example.com",
		"phone":     "+79001234567",
		"date":      "2025-06-15",
		"timeSlots": []string{"10:00"},
		"finalize":  true,
	}
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		Finalized:   true,
		WhatsAppURL: "https://wa.me/79001234567?text=x",
		ID:          42,
		Name:        "Анна Иванова",
		Email:       "anna@example.com",
		Phone:       "+79001234567",
		Date:        time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:    "10:00",
		Status:      "pending",
		CreatedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}}
	h := NewHandler(uc, noopLogger{})

	rec := doRequest(t, h, validBody())

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2025-06-15", resp.Date)
	assert.Equal(t, "10:00", resp.TimeSlot)
	assert.NotEmpty(t, resp.WhatsAppURL)
}

func TestHandle_NotFinalized(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		Finalized:   false,
		WhatsAppURL: "https://wa.me/79001234567?text=x",
		Date:        time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:    "10:00",
	}}
	h := NewHandler(uc, noopLogger{})

	body := validBody()
	body["finalize"] = false

	rec := doRequest(t, h, body)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "10:00", resp.TimeSlot)
	assert.NotEmpty(t, resp.WhatsAppURL)
	assert.False(t, uc.lastReq.Finalize)
}

func TestHandle_SlotTaken(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrSlotTaken}
	h := NewHandler(uc, noopLogger{})

	rec := doRequest(t, h, validBody())

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_InvalidInput(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrInvalidInput}
	h := NewHandler(uc, noopLogger{})

	rec := doRequest(t, h, validBody())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrInternal}
	h := NewHandler(uc, noopLogger{})

	rec := doRequest(t, h, validBody())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandle_MalformedBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadDateAndTimeFormats(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(body map[string]interface{})
	}{
		{"дата не в формате YYYY-MM-DD", func(b map[string]interface{}) { b["date"] = "15.06.2025" }},
		{"время не в формате HH:MM", func(b map[string]interface{}) { b["timeSlots"] = []string{"10am"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			h := NewHandler(uc, noopLogger{})

			body := validBody()
			tt.mutate(body)

			rec := doRequest(t, h, body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.lastReq)
		})
	}
}

func TestHandle_PaymentPayloadMapped(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		Finalized: true,
		TimeSlot:  types.TimeString("10:00"),
		Status:    "confirmed",
	}}
	h := NewHandler(uc, noopLogger{})

	body := validBody()
	body["payment"] = map[string]string{"transactionId": "txn-001"}

	doRequest(t, h, body)

	require.NotNil(t, uc.lastReq)
	require.NotNil(t, uc.lastReq.TransactionID)
	assert.Equal(t, "txn-001", *uc.lastReq.TransactionID)
}

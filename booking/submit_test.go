package booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitCreatesBookingThenPayment(t *testing.T) {
	var bookingReq api.BookingRequest
	var paymentReq api.PaymentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bookings/create":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&bookingReq))
			_ = json.NewEncoder(w).Encode(api.Booking{ID: 42, BookingDate: bookingReq.BookingDate, Status: api.BookingPending})
		case "/payments/create":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&paymentReq))
			_ = json.NewEncoder(w).Encode(api.Payment{ID: 7, BookingID: 42, Amount: paymentReq.Amount, Status: api.PaymentUnpaid})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := api.NewClient()
	client.BaseURL = server.URL

	target := Target{Type: TargetPitch, ID: 3, Name: "Pitch 3", Price: 300000}
	slot := api.TimeSlot{ID: 12, StartTime: "18:00:00", EndTime: "19:00:00", Price: 100000}
	quote := ComputeQuote(target, slot)

	result, err := Submit(context.Background(), client, 15, target, slot, "2026-09-02", quote)
	require.NoError(t, err)

	assert.Equal(t, 42, result.Booking.ID)
	assert.Equal(t, 7, result.Payment.ID)

	assert.Equal(t, 15, bookingReq.UserID)
	assert.Equal(t, TargetPitch, bookingReq.TargetType)
	assert.Equal(t, 3, bookingReq.TargetID)
	assert.Equal(t, 12, bookingReq.TimeSlotID)
	assert.Equal(t, "2026-09-02", bookingReq.BookingDate)

	assert.Equal(t, 42, paymentReq.BookingID)
	assert.Equal(t, 400000, paymentReq.Amount)
	assert.Equal(t, "paypal", paymentReq.Method)
	assert.Equal(t, api.PaymentUnpaid, paymentReq.Status)
}

func TestSubmitPaymentFailureKeepsBookingID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bookings/create":
			_ = json.NewEncoder(w).Encode(api.Booking{ID: 42, Status: api.BookingPending})
		case "/payments/create":
			http.Error(w, "payment service down", http.StatusBadGateway)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := api.NewClient()
	client.BaseURL = server.URL

	target := Target{Type: TargetGroup, ID: 5, Name: "Full field", Price: 900000}
	slot := api.TimeSlot{ID: 30, StartTime: "20:00:00", EndTime: "21:00:00", Price: 80000}

	_, err := Submit(context.Background(), client, 15, target, slot, "2026-09-02", ComputeQuote(target, slot))
	require.Error(t, err)

	var paymentErr *PaymentError
	require.ErrorAs(t, err, &paymentErr)
	assert.Equal(t, 42, paymentErr.BookingID)
	assert.Contains(t, paymentErr.Error(), "booking 42 created")
}

func TestSubmitBookingFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slot already taken", http.StatusConflict)
	}))
	defer server.Close()

	client := api.NewClient()
	client.BaseURL = server.URL

	target := Target{Type: TargetPitch, ID: 3, Price: 300000}
	slot := api.TimeSlot{ID: 12}

	_, err := Submit(context.Background(), client, 15, target, slot, "2026-09-02", ComputeQuote(target, slot))
	require.Error(t, err)

	var paymentErr *PaymentError
	assert.False(t, errors.As(err, &paymentErr), "first-phase failure must not be a PaymentError")
	assert.Contains(t, err.Error(), "create booking")
}

package booking

import (
	"context"
	"fmt"

	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/api"
)

// PaymentError reports the second phase of a submission failing after
// the booking was already created. The booking is then held server-side
// as pending with no payment attached; callers must surface it rather
// than report a plain failure.
type PaymentError struct {
	BookingID int
	Err       error
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("booking %d created but payment failed: %v", e.BookingID, e.Err)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

// Result is a completed submission: a pending booking and its unpaid
// payment record, ready for the checkout handoff.
type Result struct {
	Booking api.Booking `json:"booking"`
	Payment api.Payment `json:"payment"`
}

// Submit executes the two-phase create: booking first, then a payment
// for the quoted total. The two calls are not a transaction; when the
// payment call fails the booking is not rolled back and the error is a
// *PaymentError carrying the orphaned booking id.
func Submit(ctx context.Context, client *api.Client, userID int, target Target, slot api.TimeSlot, bookingDate string, quote Quote) (Result, error) {
	created, err := client.CreateBooking(ctx, api.BookingRequest{
		UserID:      userID,
		TargetType:  target.Type,
		TargetID:    target.ID,
		TimeSlotID:  slot.ID,
		BookingDate: bookingDate,
	})
	if err != nil {
		return Result{}, fmt.Errorf("create booking: %w", err)
	}

	payment, err := client.CreatePayment(ctx, api.PaymentRequest{
		BookingID: created.ID,
		Amount:    quote.Total,
		Method:    "paypal",
		Status:    api.PaymentUnpaid,
	})
	if err != nil {
		return Result{}, &PaymentError{BookingID: created.ID, Err: err}
	}

	return Result{Booking: created, Payment: payment}, nil
}

package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type BookingRequest struct {
	UserID      int    `json:"userId"`
	TargetType  string `json:"targetType"`
	TargetID    int    `json:"targetId"`
	TimeSlotID  int    `json:"timeSlotId"`
	BookingDate string `json:"bookingDate"`
}

type PaymentRequest struct {
	BookingID int    `json:"bookingId"`
	Amount    int    `json:"amount"`
	Method    string `json:"method"`
	Status    string `json:"status"`
}

type PayPalResponse struct {
	ApprovalURL string `json:"approvalUrl"`
}

// GetAvailableTimeSlots returns the currently bookable slots for one
// target on one date. Availability is computed server-side.
func (c *Client) GetAvailableTimeSlots(ctx context.Context, complexID int, targetType string, targetID int, bookingDate string) ([]TimeSlot, error) {
	q := url.Values{}
	q.Set("complexId", strconv.Itoa(complexID))
	q.Set("targetType", targetType)
	q.Set("targetId", strconv.Itoa(targetID))
	q.Set("bookingDate", bookingDate)

	var slots []TimeSlot
	if err := c.getJSON(ctx, "/bookings/available-timeslots", q, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (Booking, error) {
	var booking Booking
	if err := c.postJSON(ctx, "/bookings/create", req, &booking); err != nil {
		return Booking{}, err
	}
	if booking.ID == 0 {
		return Booking{}, fmt.Errorf("booking response missing id")
	}
	return booking, nil
}

func (c *Client) GetUserBookings(ctx context.Context, userID int) ([]Booking, error) {
	var bookings []Booking
	if err := c.getJSON(ctx, fmt.Sprintf("/bookings/user/%d", userID), nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) CancelBooking(ctx context.Context, bookingID int) error {
	return c.putJSON(ctx, fmt.Sprintf("/bookings/cancel/%d", bookingID), nil, nil)
}

func (c *Client) CreatePayment(ctx context.Context, req PaymentRequest) (Payment, error) {
	var payment Payment
	if err := c.postJSON(ctx, "/payments/create", req, &payment); err != nil {
		return Payment{}, err
	}
	if payment.ID == 0 {
		return Payment{}, fmt.Errorf("payment response missing id")
	}
	return payment, nil
}

func (c *Client) GetPayment(ctx context.Context, paymentID int) (Payment, error) {
	var payment Payment
	if err := c.getJSON(ctx, fmt.Sprintf("/payments/%d", paymentID), nil, &payment); err != nil {
		return Payment{}, err
	}
	return payment, nil
}

// CreatePayPalPayment asks the backend to initiate the hosted PayPal
// flow for an unpaid payment. The caller hands the approval URL to the
// user's browser; the processor redirects back to the backend's return
// URLs from there.
func (c *Client) CreatePayPalPayment(ctx context.Context, paymentID int) (PayPalResponse, error) {
	var resp PayPalResponse
	if err := c.postJSON(ctx, fmt.Sprintf("/paypal/create/%d", paymentID), nil, &resp); err != nil {
		return PayPalResponse{}, err
	}
	if resp.ApprovalURL == "" {
		return PayPalResponse{}, fmt.Errorf("paypal response missing approval url")
	}
	return resp, nil
}

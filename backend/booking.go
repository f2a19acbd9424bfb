package backend

import (
	"context"
	"net/http"
	"net/url"

	"cleanbook/models"
)

// Create submits a booking draft. The authoritative slot-conflict check
// happens here, server-side; use IsSlotConflict on the returned error to
// tell a stale selection apart from other failures.
func (c *Client) Create(ctx context.Context, draft models.BookingDraft) (models.Booking, error) {
	var booking models.Booking
	if err := c.doJSON(ctx, http.MethodPost, "/api/bookings", nil, draft, &booking, false); err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// CheckByPhone lists the bookings made with a phone number, newest first.
func (c *Client) CheckByPhone(ctx context.Context, phone string) ([]models.Booking, error) {
	query := url.Values{}
	query.Set("phone", phone)

	var bookings []models.Booking
	if err := c.doJSON(ctx, http.MethodGet, "/api/bookings/check", query, nil, &bookings, false); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Cancel requests the cancel transition for a booking. The backend owns the
// status workflow and rejects the request for completed or already cancelled
// bookings.
func (c *Client) Cancel(ctx context.Context, bookingID, phone string) error {
	query := url.Values{}
	query.Set("phone", phone)
	return c.doJSON(ctx, http.MethodPut, "/api/bookings/"+bookingID+"/cancel", query, nil, nil, false)
}

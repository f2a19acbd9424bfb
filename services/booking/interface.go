package booking

import (
	"context"
	"time"

	"cleanbook/models"
)

// BookingFlow drives one booking screen visit: resolve dates, pick one,
// resolve its slots, quote the price and submit the draft. A flow owns one
// fetched snapshot and is discarded with the screen.
type BookingFlow interface {
	LoadDates(ctx context.Context, today time.Time) (map[string]bool, error)
	SelectDate(ctx context.Context, date string) ([]models.TimeSlotInfo, error)
	SelectTime(timeSlot string) error
	Quote(basePrice float64) (discount, total float64)
	Submit(ctx context.Context, draft models.BookingDraft) (models.Booking, error)
	Cancel(ctx context.Context, booking models.Booking, phone string) error
}

package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cleanbook/backend"
	"cleanbook/models"
	"cleanbook/services/availability"
	"cleanbook/utils"
)

// DefaultBookingFlow implements BookingFlow over the backend contract.
type DefaultBookingFlow struct {
	Availability backend.AvailabilityAPI
	Bookings     backend.BookingAPI

	// DiscountPercent mirrors the backend's friday_discount setting and is
	// used for the displayed quote only; the backend recomputes the
	// authoritative total on submission.
	DiscountPercent float64

	mu             sync.Mutex
	availableDates map[string]bool
	selectedDate   string
	slots          []models.TimeSlotInfo
	selectedTime   string
	draftKey       string
}

// LoadDates fetches the current and following month of availability to cover
// the rolling 30-day window, and resolves them into the bookable-date set.
// A month that fails to load is treated as having no bookable dates; unknown
// means "not bookable". Both months failing reports the transport error so
// the screen can show its failure state.
func (f *DefaultBookingFlow) LoadDates(ctx context.Context, today time.Time) (map[string]bool, error) {
	logger := utils.GetLogger()

	thisYear, thisMonth := today.Year(), int(today.Month())
	next := today.AddDate(0, 1, 0)
	nextYear, nextMonth := next.Year(), int(next.Month())

	var months [][]models.DateAvailability
	var lastErr error
	for _, m := range []struct{ year, month int }{
		{thisYear, thisMonth},
		{nextYear, nextMonth},
	} {
		dates, err := f.Availability.GetMonth(ctx, m.year, m.month)
		if err != nil {
			logger.Warn("failed to load month availability",
				zap.Int("year", m.year), zap.Int("month", m.month), zap.Error(err))
			lastErr = err
			continue
		}
		months = append(months, dates)
	}
	if len(months) == 0 {
		return map[string]bool{}, lastErr
	}

	windowStart, windowEnd := availability.Window(today)
	dates := availability.ResolveAvailableDates(months, windowStart, windowEnd)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.availableDates = dates
	f.selectedDate = ""
	f.slots = nil
	f.selectedTime = ""
	f.draftKey = ""
	return dates, nil
}

// SelectDate validates the tap against the resolved set, fetches the slot
// detail for that date and resolves it. The request is tagged with the date
// it was issued for: if the user has moved on to another date by the time
// the response lands, the response is discarded and ErrStaleSlots returned.
func (f *DefaultBookingFlow) SelectDate(ctx context.Context, date string) ([]models.TimeSlotInfo, error) {
	f.mu.Lock()
	if !f.availableDates[date] {
		f.mu.Unlock()
		return nil, ErrDateNotBookable
	}
	f.selectedDate = date
	f.selectedTime = ""
	f.slots = nil
	f.draftKey = ""
	f.mu.Unlock()

	result, err := f.Availability.GetSlots(ctx, date)
	if err != nil {
		// Fail closed: the date shows no bookable slots until a re-fetch.
		return nil, err
	}

	slots := availability.ResolveSlots(result)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.selectedDate != date {
		utils.GetLogger().Debug("discarding stale slot response",
			zap.String("requested", date), zap.String("selected", f.selectedDate))
		return nil, ErrStaleSlots
	}
	f.slots = slots
	return slots, nil
}

// SelectTime picks a slot from the currently resolved list.
func (f *DefaultBookingFlow) SelectTime(timeSlot string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !slotFree(f.slots, timeSlot) {
		return &ValidationError{Fields: map[string]string{
			FieldBookingTime: "Selected time is not available",
		}}
	}
	f.selectedTime = timeSlot
	f.draftKey = ""
	return nil
}

// Quote returns the displayed discount and total for the selected date.
func (f *DefaultBookingFlow) Quote(basePrice float64) (discount, total float64) {
	f.mu.Lock()
	date := f.selectedDate
	f.mu.Unlock()
	discount = availability.FridayDiscount(basePrice, date, f.DiscountPercent)
	return discount, basePrice - discount
}

// Submit validates the draft locally and posts it. The request carries an
// idempotency key that stays fixed for this draft, so a timed-out submission
// replayed by the user cannot double-book. A slot conflict from the backend
// (the time-of-check/time-of-use gap) comes back as an error satisfying
// backend.IsSlotConflict; the recovery is to re-run SelectDate, not to retry.
func (f *DefaultBookingFlow) Submit(ctx context.Context, draft models.BookingDraft) (models.Booking, error) {
	f.mu.Lock()
	fieldErrs := ValidateDraft(draft, f.availableDates, f.slots)
	if draft.BookingDate != "" && draft.BookingDate != f.selectedDate {
		fieldErrs[FieldBookingDate] = "Selected date does not match the loaded time slots"
	}
	if len(fieldErrs) > 0 {
		f.mu.Unlock()
		return models.Booking{}, &ValidationError{Fields: fieldErrs}
	}
	if f.draftKey == "" {
		f.draftKey = uuid.New().String()
	}
	key := f.draftKey
	f.mu.Unlock()

	booking, err := f.Bookings.Create(backend.WithIdempotencyKey(ctx, key), draft)
	if err != nil {
		utils.GetLogger().Warn("booking submission rejected",
			zap.String("date", draft.BookingDate), zap.String("time", draft.BookingTime), zap.Error(err))
		return models.Booking{}, err
	}

	f.mu.Lock()
	f.draftKey = ""
	f.mu.Unlock()
	return booking, nil
}

// Cancel requests the cancel transition for a booking the customer owns.
// The status guard runs locally first; the backend enforces it again.
func (f *DefaultBookingFlow) Cancel(ctx context.Context, booking models.Booking, phone string) error {
	if !booking.CanCancel() {
		return ErrNotCancellable
	}
	return f.Bookings.Cancel(ctx, booking.ID, phone)
}

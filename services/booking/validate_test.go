package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cleanbook/models"
)

func validDraft() models.BookingDraft {
	return models.BookingDraft{
		ServiceID:       "svc-1",
		CustomerName:    "Ayse Yilmaz",
		CustomerPhone:   "5551234567",
		CustomerAddress: "Bahce Sok. 12, Istanbul",
		BookingDate:     "2025-03-14",
		BookingTime:     "10:00",
		PaymentMethod:   "cash",
	}
}

func resolvedState() (map[string]bool, []models.TimeSlotInfo) {
	dates := map[string]bool{"2025-03-14": true, "2025-03-15": true}
	slots := []models.TimeSlotInfo{
		{Time: "09:00", Available: true},
		{Time: "10:00", Available: true},
		{Time: "11:00", Available: false, Booked: true},
	}
	return dates, slots
}

func TestValidateDraftValid(t *testing.T) {
	dates, slots := resolvedState()
	assert.Empty(t, ValidateDraft(validDraft(), dates, slots))
}

func TestValidateDraftEmptyAddressOnly(t *testing.T) {
	dates, slots := resolvedState()
	draft := validDraft()
	draft.CustomerAddress = "   "

	errs := ValidateDraft(draft, dates, slots)

	assert.Len(t, errs, 1)
	assert.Contains(t, errs, FieldCustomerAddress)
}

func TestValidateDraftRequiredFields(t *testing.T) {
	dates, slots := resolvedState()
	draft := models.BookingDraft{ServiceID: "svc-1", PaymentMethod: "cash"}

	errs := ValidateDraft(draft, dates, slots)

	for _, field := range []string{
		FieldCustomerName, FieldCustomerPhone, FieldCustomerAddress,
		FieldBookingDate, FieldBookingTime,
	} {
		assert.Contains(t, errs, field)
	}
}

func TestValidateDraftShortPhone(t *testing.T) {
	dates, slots := resolvedState()
	draft := validDraft()
	draft.CustomerPhone = "555123"

	errs := ValidateDraft(draft, dates, slots)

	assert.Len(t, errs, 1)
	assert.Contains(t, errs, FieldCustomerPhone)
}

func TestValidateDraftDateOutsideResolvedSet(t *testing.T) {
	dates, slots := resolvedState()
	draft := validDraft()
	draft.BookingDate = "2025-03-20" // well-formed, but never resolved as available

	errs := ValidateDraft(draft, dates, slots)

	assert.Contains(t, errs, FieldBookingDate)
}

func TestValidateDraftBookedSlotRejected(t *testing.T) {
	dates, slots := resolvedState()
	draft := validDraft()
	draft.BookingTime = "11:00"

	errs := ValidateDraft(draft, dates, slots)

	assert.Contains(t, errs, FieldBookingTime)
}

func TestValidateDraftUnknownSlotRejected(t *testing.T) {
	dates, slots := resolvedState()
	draft := validDraft()
	draft.BookingTime = "23:30"

	errs := ValidateDraft(draft, dates, slots)

	assert.Contains(t, errs, FieldBookingTime)
}

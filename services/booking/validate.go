package booking

import (
	"strings"

	"cleanbook/models"
)

// Field identifiers are the stable contract between the rule logic and the
// UI; screens key their inline error rendering on these, never on messages.
const (
	FieldCustomerName    = "customer_name"
	FieldCustomerPhone   = "customer_phone"
	FieldCustomerAddress = "customer_address"
	FieldBookingDate     = "booking_date"
	FieldBookingTime     = "booking_time"
)

const minPhoneLength = 10

// ValidateDraft checks a draft against the required-field rules and the
// previously resolved availability. It is purely local and never contacts
// the backend; an empty result means the draft is valid. A date or time that
// has been taken since resolution is only caught by the backend at submit
// time.
func ValidateDraft(draft models.BookingDraft, availableDates map[string]bool, slots []models.TimeSlotInfo) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(draft.CustomerName) == "" {
		errs[FieldCustomerName] = "Name is required"
	}

	phone := strings.TrimSpace(draft.CustomerPhone)
	if phone == "" {
		errs[FieldCustomerPhone] = "Phone number is required"
	} else if len(phone) < minPhoneLength {
		errs[FieldCustomerPhone] = "Enter a valid phone number"
	}

	if strings.TrimSpace(draft.CustomerAddress) == "" {
		errs[FieldCustomerAddress] = "Address is required"
	}

	if draft.BookingDate == "" {
		errs[FieldBookingDate] = "Select a date"
	} else if !availableDates[draft.BookingDate] {
		errs[FieldBookingDate] = "Selected date is not available"
	}

	if draft.BookingTime == "" {
		errs[FieldBookingTime] = "Select a time"
	} else if !slotFree(slots, draft.BookingTime) {
		errs[FieldBookingTime] = "Selected time is not available"
	}

	return errs
}

func slotFree(slots []models.TimeSlotInfo, timeSlot string) bool {
	for _, s := range slots {
		if s.Time == timeSlot {
			return s.Available
		}
	}
	return false
}

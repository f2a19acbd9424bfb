package models

// DateAvailability is one calendar day as the backend reports it.
// Date is a plain "YYYY-MM-DD" string with no time-of-day component.
type DateAvailability struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
	HasSlots  bool   `json:"has_slots,omitempty"`
}

// AvailabilityResponse wraps the per-month availability payload.
type AvailabilityResponse struct {
	Dates []DateAvailability `json:"dates"`
}

// SlotQueryResult is the slot detail payload for exactly one date.
// AllSlots carries the display order; BookedSlots is a subset of it.
// The legacy Slots field (pre-computed free slots) is still sent by the
// backend but the resolver derives availability from the two-field shape.
type SlotQueryResult struct {
	Slots       []string `json:"slots"`
	AllSlots    []string `json:"all_slots"`
	BookedSlots []string `json:"booked_slots"`
	Available   bool     `json:"available"`
}

// TimeSlotInfo is the derived per-slot view used for display.
// Available and Booked are always each other's negation; both exist only
// for rendering convenience and are derived from one membership check.
type TimeSlotInfo struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Booked    bool   `json:"booked"`
}

// AvailabilityDay is the admin-side write shape for one date.
type AvailabilityDay struct {
	ID        string   `json:"id,omitempty"`
	Date      string   `json:"date"`
	Available bool     `json:"available"`
	TimeSlots []string `json:"time_slots"`
}

package availability

import (
	"cleanbook/models"
)

// ResolveAvailableDates merges one or more per-month availability payloads into
// the set of bookable dates, clamped to the [windowStart, windowEnd] booking
// window (inclusive, plain "YYYY-MM-DD" strings compare correctly as text).
// If the backend reports the same date more than once the last entry wins.
// The returned set marks the calendar and gates date taps: a tap on a date not
// in the set is rejected with no state change.
func ResolveAvailableDates(months [][]models.DateAvailability, windowStart, windowEnd string) map[string]bool {
	merged := make(map[string]bool)
	for _, month := range months {
		for _, day := range month {
			merged[day.Date] = day.Available
		}
	}

	dates := make(map[string]bool)
	for date, available := range merged {
		if !available {
			continue
		}
		if date < windowStart || date > windowEnd {
			continue
		}
		dates[date] = true
	}
	return dates
}

// ResolveSlots derives the per-slot view for one date. The order of AllSlots
// is the display order and is preserved as-is. Both Booked and Available come
// from a single membership check so they can never drift apart. Entries in
// BookedSlots that are not part of AllSlots are a data-integrity violation on
// the backend side and are dropped silently; this is a read path and resilience
// wins over strictness. An empty AllSlots yields an empty result, which means
// "no slots configured", not "all slots booked".
func ResolveSlots(res models.SlotQueryResult) []models.TimeSlotInfo {
	booked := make(map[string]bool, len(res.BookedSlots))
	for _, t := range res.BookedSlots {
		booked[t] = true
	}

	slots := make([]models.TimeSlotInfo, 0, len(res.AllSlots))
	for _, t := range res.AllSlots {
		taken := booked[t]
		slots = append(slots, models.TimeSlotInfo{
			Time:      t,
			Available: !taken,
			Booked:    taken,
		})
	}
	return slots
}

// FreeSlots filters a resolved slot list down to the bookable times.
func FreeSlots(slots []models.TimeSlotInfo) []string {
	var free []string
	for _, s := range slots {
		if s.Available {
			free = append(free, s.Time)
		}
	}
	return free
}

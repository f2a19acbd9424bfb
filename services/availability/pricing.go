package availability

import (
	"time"
)

const dateLayout = "2006-01-02"

// FridayDiscount computes the discount amount for a booking date. The date is
// a plain Gregorian calendar date; its own fields decide the weekday and no
// timezone conversion is applied. Non-Fridays and unparseable dates yield 0.
// The result is clamped to [0, basePrice].
func FridayDiscount(basePrice float64, isoDate string, percent float64) float64 {
	if basePrice <= 0 || percent <= 0 {
		return 0
	}
	day, err := time.Parse(dateLayout, isoDate)
	if err != nil {
		return 0
	}
	if day.Weekday() != time.Friday {
		return 0
	}
	discount := basePrice * percent / 100
	if discount > basePrice {
		return basePrice
	}
	return discount
}

// TotalPrice is the amount displayed and submitted as the booking total.
func TotalPrice(basePrice float64, isoDate string, percent float64) float64 {
	return basePrice - FridayDiscount(basePrice, isoDate, percent)
}

// Window returns the rolling booking window: dates from today through
// today+30 days are eligible, everything else is not bookable.
func Window(today time.Time) (start, end string) {
	return today.Format(dateLayout), today.AddDate(0, 0, 30).Format(dateLayout)
}

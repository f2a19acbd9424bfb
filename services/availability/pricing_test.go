package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2025-03-14 is a Friday, 2025-03-15 a Saturday.
const (
	friday   = "2025-03-14"
	saturday = "2025-03-15"
)

func TestFridayDiscountOnFriday(t *testing.T) {
	assert.InDelta(t, 20.0, FridayDiscount(200, friday, 10), 1e-9)
	assert.InDelta(t, 180.0, TotalPrice(200, friday, 10), 1e-9)
}

func TestFridayDiscountOnOtherDays(t *testing.T) {
	for _, date := range []string{saturday, "2025-03-16", "2025-03-17", "2025-03-13"} {
		assert.Zero(t, FridayDiscount(200, date, 10), "no discount expected for %s", date)
	}
	assert.InDelta(t, 200.0, TotalPrice(200, saturday, 10), 1e-9)
}

func TestFridayDiscountBounds(t *testing.T) {
	prices := []float64{0, 1, 49.99, 200, 100000}
	for _, p := range prices {
		d := FridayDiscount(p, friday, 10)
		assert.GreaterOrEqual(t, d, 0.0)
		assert.LessOrEqual(t, d, p)
		assert.InDelta(t, p*0.10, d, 1e-9)
	}
}

func TestFridayDiscountClampedAtBasePrice(t *testing.T) {
	assert.InDelta(t, 200.0, FridayDiscount(200, friday, 150), 1e-9)
}

func TestFridayDiscountDegenerateInputs(t *testing.T) {
	assert.Zero(t, FridayDiscount(200, "not-a-date", 10))
	assert.Zero(t, FridayDiscount(-5, friday, 10))
	assert.Zero(t, FridayDiscount(200, friday, -10))
}

func TestWindow(t *testing.T) {
	today := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	start, end := Window(today)
	assert.Equal(t, "2025-03-10", start)
	assert.Equal(t, "2025-04-09", end)
}

package models

// Booking status workflow, owned entirely by the backend. The client only
// displays the value or requests a transition.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// BookingDraft is the client-held representation of a prospective booking.
// It is immutable once submitted.
type BookingDraft struct {
	ServiceID       string `json:"service_id"`
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`
	BookingDate     string `json:"booking_date"` // "YYYY-MM-DD"
	BookingTime     string `json:"booking_time"` // "HH:MM"
	PaymentMethod   string `json:"payment_method"`
}

// Booking is the accepted record as returned by the backend.
type Booking struct {
	ID              string  `json:"id"`
	ServiceID       string  `json:"service_id"`
	ServiceName     string  `json:"service_name"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerAddress string  `json:"customer_address"`
	BookingDate     string  `json:"booking_date"`
	BookingTime     string  `json:"booking_time"`
	TotalPrice      float64 `json:"total_price"`
	DiscountApplied float64 `json:"discount_applied"`
	PaymentMethod   string  `json:"payment_method"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
}

// CanCancel reports whether the client may request the cancel transition.
func (b Booking) CanCancel() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

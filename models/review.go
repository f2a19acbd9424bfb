package models

// Review is a customer review for a completed booking.
type Review struct {
	ID            string `json:"id,omitempty"`
	BookingID     string `json:"booking_id"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	Rating        int    `json:"rating"` // 1..5
	Comment       string `json:"comment,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// ReviewStats is the aggregate shown on the storefront.
type ReviewStats struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}

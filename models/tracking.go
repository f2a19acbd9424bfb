package models

// CrewLocation is the last reported crew position for an active booking.
type CrewLocation struct {
	BookingID string  `json:"booking_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Status    string  `json:"status,omitempty"` // e.g. "on_the_way", "arrived"
	UpdatedAt string  `json:"updated_at,omitempty"`
}

// WorkPhoto is a before/after photo attached to a booking.
type WorkPhoto struct {
	ID        string `json:"id,omitempty"`
	BookingID string `json:"booking_id"`
	Photo     string `json:"photo"` // base64
	PhotoType string `json:"photo_type"`
	CreatedAt string `json:"created_at,omitempty"`
}

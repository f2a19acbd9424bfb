package models

// AdminCredentials is the admin login payload.
type AdminCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminToken is the login response; the token is stored and replayed as a
// bearer header on every admin call.
type AdminToken struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// PasswordChange is the admin change-password payload.
type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// BookingStatusUpdate requests a status transition for a booking.
type BookingStatusUpdate struct {
	Status string `json:"status"`
}

// AdminStats is the dashboard counters payload.
type AdminStats struct {
	TotalBookings     int `json:"total_bookings"`
	PendingBookings   int `json:"pending_bookings"`
	ConfirmedBookings int `json:"confirmed_bookings"`
	CompletedBookings int `json:"completed_bookings"`
}

package models

// Customer is the locally cached profile snapshot. Phone is the identity
// the backend keys everything on.
type Customer struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	ReferralCode  string `json:"referral_code,omitempty"`
	LoyaltyPoints int    `json:"loyalty_points"`
	TotalBookings int    `json:"total_bookings"`
}

// CustomerRegistration is the signup payload.
type CustomerRegistration struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// ReferralUse asks the backend to credit a referral code to a customer.
type ReferralUse struct {
	ReferralCode string `json:"referral_code"`
	Phone        string `json:"phone"`
}

package models

// Service is one bookable cleaning service.
type Service struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"` // base64
	Active      bool    `json:"active"`
	Order       int     `json:"order"`
}

// Setting is a key/value pair from the admin settings collection.
// The "friday_discount" key carries the discount percent as a string.
type Setting struct {
	ID    string `json:"id,omitempty"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

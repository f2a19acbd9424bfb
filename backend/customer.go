package backend

import (
	"context"
	"net/http"
	"net/url"

	"cleanbook/models"
)

// Register creates a customer account; the backend assigns the referral code.
func (c *Client) Register(ctx context.Context, reg models.CustomerRegistration) (models.Customer, error) {
	var customer models.Customer
	if err := c.doJSON(ctx, http.MethodPost, "/api/customers/register", nil, reg, &customer, false); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

// Login signs a customer in by phone number.
func (c *Client) Login(ctx context.Context, phone string) (models.Customer, error) {
	body := map[string]string{"phone": phone}
	var customer models.Customer
	if err := c.doJSON(ctx, http.MethodPost, "/api/customers/login", nil, body, &customer, false); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

// Profile re-fetches the customer snapshot, including loyalty points.
func (c *Client) Profile(ctx context.Context, phone string) (models.Customer, error) {
	query := url.Values{}
	query.Set("phone", phone)

	var customer models.Customer
	if err := c.doJSON(ctx, http.MethodGet, "/api/customers/profile", query, nil, &customer, false); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

// UpdateAddress stores the customer's default address.
func (c *Client) UpdateAddress(ctx context.Context, phone, address string) error {
	body := map[string]string{"phone": phone, "address": address}
	return c.doJSON(ctx, http.MethodPut, "/api/customers/address", nil, body, nil, false)
}

// UseReferral credits a referral code to the given customer.
func (c *Client) UseReferral(ctx context.Context, use models.ReferralUse) error {
	return c.doJSON(ctx, http.MethodPost, "/api/referral/use", nil, use, nil, false)
}

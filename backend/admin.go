package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"cleanbook/models"
)

// AdminLogin exchanges credentials for a bearer token. Storing the token is
// the caller's job; every other method here replays it via the TokenProvider.
func (c *Client) AdminLogin(ctx context.Context, creds models.AdminCredentials) (models.AdminToken, error) {
	var token models.AdminToken
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/login", nil, creds, &token, false); err != nil {
		return models.AdminToken{}, err
	}
	return token, nil
}

// ChangePassword updates the admin password.
func (c *Client) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	return c.doJSON(ctx, http.MethodPut, "/api/admin/change-password", nil, change, nil, true)
}

// AdminBookings lists every booking, newest first.
func (c *Client) AdminBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/bookings", nil, nil, &bookings, true); err != nil {
		return nil, err
	}
	return bookings, nil
}

// SetBookingStatus requests a status transition; the backend enforces the
// workflow and rejects invalid transitions.
func (c *Client) SetBookingStatus(ctx context.Context, bookingID, status string) error {
	body := models.BookingStatusUpdate{Status: status}
	return c.doJSON(ctx, http.MethodPut, "/api/admin/bookings/"+bookingID, nil, body, nil, true)
}

// AdminServices lists all services, including inactive ones.
func (c *Client) AdminServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/services", nil, nil, &services, true); err != nil {
		return nil, err
	}
	return services, nil
}

// CreateService adds a service to the catalogue.
func (c *Client) CreateService(ctx context.Context, svc models.Service) (models.Service, error) {
	var created models.Service
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/services", nil, svc, &created, true); err != nil {
		return models.Service{}, err
	}
	return created, nil
}

// UpdateService replaces a service definition.
func (c *Client) UpdateService(ctx context.Context, serviceID string, svc models.Service) error {
	return c.doJSON(ctx, http.MethodPut, "/api/admin/services/"+serviceID, nil, svc, nil, true)
}

// DeleteService removes a service from the catalogue.
func (c *Client) DeleteService(ctx context.Context, serviceID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/admin/services/"+serviceID, nil, nil, nil, true)
}

// AdminAvailability lists the raw availability docs for a month, including
// unavailable days and their configured slots.
func (c *Client) AdminAvailability(ctx context.Context, year, month int) ([]models.AvailabilityDay, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set("month", strconv.Itoa(month))

	var days []models.AvailabilityDay
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/availability", query, nil, &days, true); err != nil {
		return nil, err
	}
	return days, nil
}

// SetAvailability upserts the availability doc for one date.
func (c *Client) SetAvailability(ctx context.Context, day models.AvailabilityDay) error {
	return c.doJSON(ctx, http.MethodPost, "/api/admin/availability", nil, day, nil, true)
}

// Settings lists all settings, including the friday_discount rate.
func (c *Client) Settings(ctx context.Context) ([]models.Setting, error) {
	var settings []models.Setting
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/settings", nil, nil, &settings, true); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSetting upserts one setting.
func (c *Client) UpdateSetting(ctx context.Context, setting models.Setting) error {
	return c.doJSON(ctx, http.MethodPut, "/api/admin/settings", nil, setting, nil, true)
}

// Stats fetches the dashboard counters.
func (c *Client) Stats(ctx context.Context) (models.AdminStats, error) {
	var stats models.AdminStats
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/stats", nil, nil, &stats, true); err != nil {
		return models.AdminStats{}, err
	}
	return stats, nil
}

// AdminReviews lists all reviews for moderation.
func (c *Client) AdminReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/reviews", nil, nil, &reviews, true); err != nil {
		return nil, err
	}
	return reviews, nil
}

// UpdateLocation publishes a crew position update for a booking.
func (c *Client) UpdateLocation(ctx context.Context, loc models.CrewLocation) error {
	return c.doJSON(ctx, http.MethodPost, "/api/location/update", nil, loc, nil, true)
}

// UploadWorkPhoto attaches a work photo to a booking.
func (c *Client) UploadWorkPhoto(ctx context.Context, photo models.WorkPhoto) (models.WorkPhoto, error) {
	var created models.WorkPhoto
	if err := c.doJSON(ctx, http.MethodPost, "/api/work-photos", nil, photo, &created, true); err != nil {
		return models.WorkPhoto{}, err
	}
	return created, nil
}

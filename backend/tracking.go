package backend

import (
	"context"
	"net/http"

	"cleanbook/models"
)

// Location fetches the last reported crew position for a booking.
func (c *Client) Location(ctx context.Context, bookingID string) (models.CrewLocation, error) {
	var loc models.CrewLocation
	if err := c.doJSON(ctx, http.MethodGet, "/api/location/"+bookingID, nil, nil, &loc, false); err != nil {
		return models.CrewLocation{}, err
	}
	return loc, nil
}

// WorkPhotos lists the before/after photos attached to a booking.
func (c *Client) WorkPhotos(ctx context.Context, bookingID string) ([]models.WorkPhoto, error) {
	var photos []models.WorkPhoto
	if err := c.doJSON(ctx, http.MethodGet, "/api/work-photos/"+bookingID, nil, nil, &photos, false); err != nil {
		return nil, err
	}
	return photos, nil
}

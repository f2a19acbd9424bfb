package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"cleanbook/models"
)

// GetMonth fetches the availability records for one calendar month.
func (c *Client) GetMonth(ctx context.Context, year, month int) ([]models.DateAvailability, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set("month", strconv.Itoa(month))

	var payload models.AvailabilityResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/availability", query, nil, &payload, false); err != nil {
		return nil, err
	}
	return payload.Dates, nil
}

// GetSlots fetches the slot detail for exactly one date.
func (c *Client) GetSlots(ctx context.Context, date string) (models.SlotQueryResult, error) {
	query := url.Values{}
	query.Set("date", date)

	var payload models.SlotQueryResult
	if err := c.doJSON(ctx, http.MethodGet, "/api/availability/slots", query, nil, &payload, false); err != nil {
		return models.SlotQueryResult{}, err
	}
	return payload, nil
}

package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"cleanbook/models"
)

// Services lists the active services, in display order.
func (c *Client) Services(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := c.doJSON(ctx, http.MethodGet, "/api/services", nil, nil, &services, false); err != nil {
		return nil, err
	}
	return services, nil
}

// Reviews lists published reviews, newest first.
func (c *Client) Reviews(ctx context.Context, limit int) ([]models.Review, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var reviews []models.Review
	if err := c.doJSON(ctx, http.MethodGet, "/api/reviews", query, nil, &reviews, false); err != nil {
		return nil, err
	}
	return reviews, nil
}

// ReviewStats fetches the storefront rating aggregate.
func (c *Client) ReviewStats(ctx context.Context) (models.ReviewStats, error) {
	var stats models.ReviewStats
	if err := c.doJSON(ctx, http.MethodGet, "/api/reviews/stats", nil, nil, &stats, false); err != nil {
		return models.ReviewStats{}, err
	}
	return stats, nil
}

// SubmitReview posts a review for a completed booking.
func (c *Client) SubmitReview(ctx context.Context, review models.Review) (models.Review, error) {
	var created models.Review
	if err := c.doJSON(ctx, http.MethodPost, "/api/reviews", nil, review, &created, false); err != nil {
		return models.Review{}, err
	}
	return created, nil
}

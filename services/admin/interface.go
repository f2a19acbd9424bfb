package admin

import (
	"context"

	"cleanbook/models"
)

// ConsoleService is the admin side of the app: it owns the stored bearer
// token and wraps every admin call with it. A rejected token clears the
// session and forces a re-login.
type ConsoleService interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	LoggedIn(ctx context.Context) bool
	ChangePassword(ctx context.Context, current, updated string) error

	Bookings(ctx context.Context) ([]models.Booking, error)
	SetBookingStatus(ctx context.Context, bookingID, status string) error

	Services(ctx context.Context) ([]models.Service, error)
	CreateService(ctx context.Context, svc models.Service) (models.Service, error)
	UpdateService(ctx context.Context, serviceID string, svc models.Service) error
	DeleteService(ctx context.Context, serviceID string) error

	Availability(ctx context.Context, year, month int) ([]models.AvailabilityDay, error)
	SetAvailability(ctx context.Context, day models.AvailabilityDay) error

	FridayDiscountPercent(ctx context.Context) (float64, error)
	SetFridayDiscountPercent(ctx context.Context, percent float64) error

	Stats(ctx context.Context) (models.AdminStats, error)
	Reviews(ctx context.Context) ([]models.Review, error)

	PublishLocation(ctx context.Context, loc models.CrewLocation) error
	AttachWorkPhoto(ctx context.Context, photo models.WorkPhoto) (models.WorkPhoto, error)
}

package backend

import (
	"context"

	"cleanbook/models"
)

// AvailabilityAPI is the read surface the resolver is fed from.
type AvailabilityAPI interface {
	GetMonth(ctx context.Context, year, month int) ([]models.DateAvailability, error)
	GetSlots(ctx context.Context, date string) (models.SlotQueryResult, error)
}

// BookingAPI creates, lists and cancels customer bookings.
type BookingAPI interface {
	Create(ctx context.Context, draft models.BookingDraft) (models.Booking, error)
	CheckByPhone(ctx context.Context, phone string) ([]models.Booking, error)
	Cancel(ctx context.Context, bookingID, phone string) error
}

// CatalogAPI lists services and storefront reviews.
type CatalogAPI interface {
	Services(ctx context.Context) ([]models.Service, error)
	Reviews(ctx context.Context, limit int) ([]models.Review, error)
	ReviewStats(ctx context.Context) (models.ReviewStats, error)
	SubmitReview(ctx context.Context, review models.Review) (models.Review, error)
}

// CustomerAPI manages the customer account surface.
type CustomerAPI interface {
	Register(ctx context.Context, reg models.CustomerRegistration) (models.Customer, error)
	Login(ctx context.Context, phone string) (models.Customer, error)
	Profile(ctx context.Context, phone string) (models.Customer, error)
	UpdateAddress(ctx context.Context, phone, address string) error
	UseReferral(ctx context.Context, use models.ReferralUse) error
}

// TrackingAPI exposes crew location and work photos for a booking.
type TrackingAPI interface {
	Location(ctx context.Context, bookingID string) (models.CrewLocation, error)
	WorkPhotos(ctx context.Context, bookingID string) ([]models.WorkPhoto, error)
}

// AdminAPI is the bearer-token admin surface.
type AdminAPI interface {
	AdminLogin(ctx context.Context, creds models.AdminCredentials) (models.AdminToken, error)
	ChangePassword(ctx context.Context, change models.PasswordChange) error
	AdminBookings(ctx context.Context) ([]models.Booking, error)
	SetBookingStatus(ctx context.Context, bookingID, status string) error
	AdminServices(ctx context.Context) ([]models.Service, error)
	CreateService(ctx context.Context, svc models.Service) (models.Service, error)
	UpdateService(ctx context.Context, serviceID string, svc models.Service) error
	DeleteService(ctx context.Context, serviceID string) error
	AdminAvailability(ctx context.Context, year, month int) ([]models.AvailabilityDay, error)
	SetAvailability(ctx context.Context, day models.AvailabilityDay) error
	Settings(ctx context.Context) ([]models.Setting, error)
	UpdateSetting(ctx context.Context, setting models.Setting) error
	Stats(ctx context.Context) (models.AdminStats, error)
	AdminReviews(ctx context.Context) ([]models.Review, error)
	UpdateLocation(ctx context.Context, loc models.CrewLocation) error
	UploadWorkPhoto(ctx context.Context, photo models.WorkPhoto) (models.WorkPhoto, error)
}

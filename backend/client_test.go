package backend_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanbook/apitest"
	"cleanbook/backend"
	"cleanbook/models"
)

func newClient(srv *apitest.Server) *backend.Client {
	return &backend.Client{BaseURL: srv.URL()}
}

func seedBookableFriday(t *testing.T, srv *apitest.Server) (serviceID string) {
	t.Helper()
	serviceID = srv.SeedService(models.Service{Name: "Deep Cleaning", Price: 200, Active: true})
	srv.SeedDay("2025-03-14", true, "09:00", "10:00", "11:00") // a Friday
	return serviceID
}

func draftFor(serviceID string) models.BookingDraft {
	return models.BookingDraft{
		ServiceID:       serviceID,
		CustomerName:    "Ayse Yilmaz",
		CustomerPhone:   "5551234567",
		CustomerAddress: "Bahce Sok. 12, Istanbul",
		BookingDate:     "2025-03-14",
		BookingTime:     "10:00",
		PaymentMethod:   "cash",
	}
}

func TestGetMonthAndSlots(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.SeedDay("2025-03-14", true, "09:00", "10:00")
	srv.SeedDay("2025-03-15", false)
	srv.SeedDay("2025-04-01", true, "09:00")
	client := newClient(srv)
	ctx := context.Background()

	dates, err := client.GetMonth(ctx, 2025, 3)
	require.NoError(t, err)
	assert.Len(t, dates, 2, "only the requested month is returned")

	byDate := map[string]bool{}
	for _, d := range dates {
		byDate[d.Date] = d.Available
	}
	assert.True(t, byDate["2025-03-14"])
	assert.False(t, byDate["2025-03-15"])

	slots, err := client.GetSlots(ctx, "2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00"}, slots.AllSlots)
	assert.Empty(t, slots.BookedSlots)
	assert.True(t, slots.Available)
}

func TestGetSlotsUnavailableDate(t *testing.T) {
	srv := apitest.NewServer(t)
	client := newClient(srv)

	slots, err := client.GetSlots(context.Background(), "2025-03-20")

	require.NoError(t, err)
	assert.Empty(t, slots.AllSlots)
	assert.False(t, slots.Available)
}

func TestTransportErrorFailsClosed(t *testing.T) {
	client := &backend.Client{BaseURL: "http://127.0.0.1:1"}

	dates, err := client.GetMonth(context.Background(), 2025, 3)

	assert.Error(t, err)
	assert.Empty(t, dates, "unknown availability means not bookable")
}

func TestCreateBookingAppliesFridayDiscount(t *testing.T) {
	srv := apitest.NewServer(t)
	serviceID := seedBookableFriday(t, srv)
	client := newClient(srv)

	booking, err := client.Create(context.Background(), draftFor(serviceID))

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.InDelta(t, 20.0, booking.DiscountApplied, 1e-9)
	assert.InDelta(t, 180.0, booking.TotalPrice, 1e-9)
	assert.NotEmpty(t, booking.ID)
}

func TestCreateBookingConflict(t *testing.T) {
	srv := apitest.NewServer(t)
	serviceID := seedBookableFriday(t, srv)
	client := newClient(srv)
	ctx := context.Background()

	_, err := client.Create(ctx, draftFor(serviceID))
	require.NoError(t, err)

	// Another customer takes the same slot between resolution and submission.
	second := draftFor(serviceID)
	second.CustomerPhone = "5559876543"
	_, err = client.Create(ctx, second)

	require.Error(t, err)
	assert.True(t, backend.IsSlotConflict(err))
	assert.False(t, backend.IsUnauthorized(err))
}

func TestCreateBookingIdempotentReplay(t *testing.T) {
	srv := apitest.NewServer(t)
	serviceID := seedBookableFriday(t, srv)
	client := newClient(srv)
	ctx := backend.WithIdempotencyKey(context.Background(), "draft-key-1")

	first, err := client.Create(ctx, draftFor(serviceID))
	require.NoError(t, err)

	replay, err := client.Create(ctx, draftFor(serviceID))
	require.NoError(t, err, "a replayed draft must not hit the conflict check")
	assert.Equal(t, first.ID, replay.ID)
}

func TestCancelBooking(t *testing.T) {
	srv := apitest.NewServer(t)
	serviceID := seedBookableFriday(t, srv)
	client := newClient(srv)
	ctx := context.Background()

	booking, err := client.Create(ctx, draftFor(serviceID))
	require.NoError(t, err)

	err = client.Cancel(ctx, booking.ID, "0000000000")
	require.Error(t, err, "a foreign phone cannot cancel the booking")

	require.NoError(t, client.Cancel(ctx, booking.ID, booking.CustomerPhone))

	stored, ok := srv.Booking(booking.ID)
	require.True(t, ok)
	assert.Equal(t, models.BookingStatusCancelled, stored.Status)

	err = client.Cancel(ctx, booking.ID, booking.CustomerPhone)
	assert.Error(t, err, "cancelled bookings cannot be cancelled again")
}

func TestCustomerRegisterLoginProfile(t *testing.T) {
	srv := apitest.NewServer(t)
	client := newClient(srv)
	ctx := context.Background()

	registered, err := client.Register(ctx, models.CustomerRegistration{Name: "Ayse", Phone: "5551234567"})
	require.NoError(t, err)
	assert.Len(t, registered.ReferralCode, 8)
	assert.Zero(t, registered.LoyaltyPoints)

	logged, err := client.Login(ctx, "5551234567")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, logged.ID)

	_, err = client.Login(ctx, "0000000000")
	assert.True(t, backend.IsNotFound(err))
}

func TestReferralFlow(t *testing.T) {
	srv := apitest.NewServer(t)
	client := newClient(srv)
	ctx := context.Background()

	referrer, err := client.Register(ctx, models.CustomerRegistration{Name: "Ayse", Phone: "5551234567"})
	require.NoError(t, err)
	_, err = client.Register(ctx, models.CustomerRegistration{Name: "Fatma", Phone: "5559876543"})
	require.NoError(t, err)

	err = client.UseReferral(ctx, models.ReferralUse{ReferralCode: referrer.ReferralCode, Phone: referrer.Phone})
	assert.Error(t, err, "own code is rejected")

	err = client.UseReferral(ctx, models.ReferralUse{ReferralCode: "NOPE0000", Phone: "5559876543"})
	assert.Error(t, err, "unknown code is rejected")

	err = client.UseReferral(ctx, models.ReferralUse{ReferralCode: referrer.ReferralCode, Phone: "5559876543"})
	require.NoError(t, err)

	profile, err := client.Profile(ctx, referrer.Phone)
	require.NoError(t, err)
	assert.Equal(t, 50, profile.LoyaltyPoints)
}

func TestAdminAuthFlow(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.SeedAdmin("admin", "admin123")
	client := newClient(srv)
	ctx := context.Background()

	_, err := client.AdminBookings(ctx)
	assert.True(t, backend.IsUnauthorized(err), "admin reads require a token")

	_, err = client.AdminLogin(ctx, models.AdminCredentials{Username: "admin", Password: "wrong"})
	assert.True(t, backend.IsUnauthorized(err))

	token, err := client.AdminLogin(ctx, models.AdminCredentials{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	require.NotEmpty(t, token.Token)

	client.Tokens = func() string { return token.Token }

	bookings, err := client.AdminBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestAdminSettingsDriveDiscount(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.SeedAdmin("admin", "admin123")
	serviceID := seedBookableFriday(t, srv)
	client := newClient(srv)
	ctx := context.Background()

	token, err := client.AdminLogin(ctx, models.AdminCredentials{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	client.Tokens = func() string { return token.Token }

	require.NoError(t, client.UpdateSetting(ctx, models.Setting{Key: "friday_discount", Value: "20"}))

	booking, err := client.Create(ctx, draftFor(serviceID))
	require.NoError(t, err)
	assert.InDelta(t, 40.0, booking.DiscountApplied, 1e-9)
	assert.InDelta(t, 160.0, booking.TotalPrice, 1e-9)
}

func TestAdminAvailabilityUpsert(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.SeedAdmin("admin", "admin123")
	client := newClient(srv)
	ctx := context.Background()

	token, err := client.AdminLogin(ctx, models.AdminCredentials{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	client.Tokens = func() string { return token.Token }

	day := models.AvailabilityDay{Date: "2025-03-21", Available: true, TimeSlots: []string{"09:00", "13:00"}}
	require.NoError(t, client.SetAvailability(ctx, day))

	days, err := client.AdminAvailability(ctx, 2025, 3)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, []string{"09:00", "13:00"}, days[0].TimeSlots)

	// The customer surface sees the same date without auth.
	slots, err := client.GetSlots(ctx, "2025-03-21")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "13:00"}, slots.AllSlots)
}

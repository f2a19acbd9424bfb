package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanbook/backend"
	"cleanbook/models"
	"cleanbook/session"
	"cleanbook/utils"
)

// stubAdminAPI overrides only the calls a test cares about; anything else
// panics through the embedded nil interface.
type stubAdminAPI struct {
	backend.AdminAPI
	loginFn         func(ctx context.Context, creds models.AdminCredentials) (models.AdminToken, error)
	bookingsFn      func(ctx context.Context) ([]models.Booking, error)
	settingsFn      func(ctx context.Context) ([]models.Setting, error)
	updateSettingFn func(ctx context.Context, setting models.Setting) error
}

func (s *stubAdminAPI) AdminLogin(ctx context.Context, creds models.AdminCredentials) (models.AdminToken, error) {
	return s.loginFn(ctx, creds)
}

func (s *stubAdminAPI) AdminBookings(ctx context.Context) ([]models.Booking, error) {
	return s.bookingsFn(ctx)
}

func (s *stubAdminAPI) Settings(ctx context.Context) ([]models.Setting, error) {
	return s.settingsFn(ctx)
}

func (s *stubAdminAPI) UpdateSetting(ctx context.Context, setting models.Setting) error {
	return s.updateSettingFn(ctx, setting)
}

func freshToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken("admin", time.Hour)
	require.NoError(t, err)
	return token
}

func newConsole(api *stubAdminAPI) *DefaultConsoleService {
	return &DefaultConsoleService{API: api, Store: session.NewMemoryStore()}
}

func TestLoginStoresToken(t *testing.T) {
	token := freshToken(t)
	api := &stubAdminAPI{
		loginFn: func(_ context.Context, creds models.AdminCredentials) (models.AdminToken, error) {
			assert.Equal(t, "admin", creds.Username)
			return models.AdminToken{Token: token, Username: creds.Username}, nil
		},
	}
	svc := newConsole(api)
	ctx := context.Background()

	require.False(t, svc.LoggedIn(ctx))
	require.NoError(t, svc.Login(ctx, "admin", "admin123"))

	assert.True(t, svc.LoggedIn(ctx))
	assert.Equal(t, token, svc.TokenProvider()())
}

func TestLoginFailureLeavesNoSession(t *testing.T) {
	api := &stubAdminAPI{
		loginFn: func(context.Context, models.AdminCredentials) (models.AdminToken, error) {
			return models.AdminToken{}, &backend.APIError{Status: 401, Detail: "Invalid credentials"}
		},
	}
	svc := newConsole(api)
	ctx := context.Background()

	err := svc.Login(ctx, "admin", "wrong")

	require.Error(t, err)
	assert.False(t, svc.LoggedIn(ctx))
	assert.Empty(t, svc.TokenProvider()())
}

func TestExpiredTokenIsNotReplayed(t *testing.T) {
	expired, err := utils.GenerateToken("admin", -time.Hour)
	require.NoError(t, err)
	api := &stubAdminAPI{
		loginFn: func(context.Context, models.AdminCredentials) (models.AdminToken, error) {
			return models.AdminToken{Token: expired, Username: "admin"}, nil
		},
	}
	svc := newConsole(api)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "admin", "admin123"))

	assert.False(t, svc.LoggedIn(ctx))
	assert.Empty(t, svc.TokenProvider()())
}

func TestRejectedTokenClearsSession(t *testing.T) {
	token := freshToken(t)
	api := &stubAdminAPI{
		loginFn: func(context.Context, models.AdminCredentials) (models.AdminToken, error) {
			return models.AdminToken{Token: token, Username: "admin"}, nil
		},
		bookingsFn: func(context.Context) ([]models.Booking, error) {
			return nil, &backend.APIError{Status: 401, Detail: "Invalid token"}
		},
	}
	svc := newConsole(api)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "admin", "admin123"))
	require.True(t, svc.LoggedIn(ctx))

	_, err := svc.Bookings(ctx)

	require.Error(t, err)
	assert.False(t, svc.LoggedIn(ctx), "a 401 response invalidates the stored token")
}

func TestLogout(t *testing.T) {
	token := freshToken(t)
	api := &stubAdminAPI{
		loginFn: func(context.Context, models.AdminCredentials) (models.AdminToken, error) {
			return models.AdminToken{Token: token, Username: "admin"}, nil
		},
	}
	svc := newConsole(api)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "admin", "admin123"))
	require.NoError(t, svc.Logout(ctx))

	assert.False(t, svc.LoggedIn(ctx))
}

func TestFridayDiscountPercent(t *testing.T) {
	tests := []struct {
		name     string
		settings []models.Setting
		want     float64
	}{
		{"configured", []models.Setting{{Key: "friday_discount", Value: "20"}}, 20},
		{"missing", []models.Setting{{Key: "other", Value: "5"}}, 10},
		{"unreadable", []models.Setting{{Key: "friday_discount", Value: "lots"}}, 10},
		{"zero disables", []models.Setting{{Key: "friday_discount", Value: "0"}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &stubAdminAPI{
				settingsFn: func(context.Context) ([]models.Setting, error) {
					return tt.settings, nil
				},
			}
			svc := newConsole(api)

			got, err := svc.FridayDiscountPercent(context.Background())

			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestSetFridayDiscountPercent(t *testing.T) {
	var saved models.Setting
	api := &stubAdminAPI{
		updateSettingFn: func(_ context.Context, setting models.Setting) error {
			saved = setting
			return nil
		},
	}
	svc := newConsole(api)

	require.NoError(t, svc.SetFridayDiscountPercent(context.Background(), 15))

	assert.Equal(t, "friday_discount", saved.Key)
	assert.Equal(t, "15", saved.Value)
}

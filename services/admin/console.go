package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"cleanbook/backend"
	"cleanbook/models"
	"cleanbook/session"
	"cleanbook/utils"
)

const tokenKey = "admin.token"

// The discount rate lives in the backend settings under this key.
const fridayDiscountSetting = "friday_discount"

// ErrNotLoggedIn is returned when no admin token is stored.
var ErrNotLoggedIn = errors.New("no admin is logged in")

// DefaultConsoleService implements ConsoleService.
type DefaultConsoleService struct {
	API   backend.AdminAPI
	Store session.Store
}

// TokenProvider wires the stored token into a backend client. Expired tokens
// are not replayed; the request goes out unauthenticated and the resulting
// 401 pushes the console back to the login screen.
func (s *DefaultConsoleService) TokenProvider() backend.TokenProvider {
	return func() string {
		token, err := s.token(context.Background())
		if err != nil {
			return ""
		}
		return token.Token
	}
}

func (s *DefaultConsoleService) Login(ctx context.Context, username, password string) error {
	token, err := s.API.AdminLogin(ctx, models.AdminCredentials{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("admin login failed: %w", err)
	}
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal admin token: %w", err)
	}
	if err := s.Store.Set(ctx, tokenKey, data); err != nil {
		return fmt.Errorf("failed to persist admin token: %w", err)
	}
	return nil
}

func (s *DefaultConsoleService) Logout(ctx context.Context) error {
	return s.Store.Delete(ctx, tokenKey)
}

func (s *DefaultConsoleService) LoggedIn(ctx context.Context) bool {
	_, err := s.token(ctx)
	return err == nil
}

func (s *DefaultConsoleService) token(ctx context.Context) (models.AdminToken, error) {
	data, err := s.Store.Get(ctx, tokenKey)
	if errors.Is(err, session.ErrNotFound) {
		return models.AdminToken{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.AdminToken{}, fmt.Errorf("failed to read admin session: %w", err)
	}
	var token models.AdminToken
	if err := json.Unmarshal(data, &token); err != nil {
		_ = s.Store.Delete(ctx, tokenKey)
		return models.AdminToken{}, ErrNotLoggedIn
	}
	if utils.TokenExpired(token.Token, time.Now()) {
		utils.GetLogger().Info("stored admin token expired", zap.String("username", token.Username))
		_ = s.Store.Delete(ctx, tokenKey)
		return models.AdminToken{}, ErrNotLoggedIn
	}
	return token, nil
}

// checkAuth clears the stored token when the backend rejected it, so the
// next screen load lands on the login form instead of looping on 401s.
func (s *DefaultConsoleService) checkAuth(ctx context.Context, err error) error {
	if backend.IsUnauthorized(err) {
		utils.GetLogger().Warn("admin token rejected by backend, clearing session")
		_ = s.Store.Delete(ctx, tokenKey)
	}
	return err
}

func (s *DefaultConsoleService) ChangePassword(ctx context.Context, current, updated string) error {
	change := models.PasswordChange{CurrentPassword: current, NewPassword: updated}
	return s.checkAuth(ctx, s.API.ChangePassword(ctx, change))
}

func (s *DefaultConsoleService) Bookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.API.AdminBookings(ctx)
	return bookings, s.checkAuth(ctx, err)
}

func (s *DefaultConsoleService) SetBookingStatus(ctx context.Context, bookingID, status string) error {
	return s.checkAuth(ctx, s.API.SetBookingStatus(ctx, bookingID, status))
}

func (s *DefaultConsoleService) Services(ctx context.Context) ([]models.Service, error) {
	services, err := s.API.AdminServices(ctx)
	return services, s.checkAuth(ctx, err)
}

func (s *DefaultConsoleService) CreateService(ctx context.Context, svc models.Service) (models.Service, error) {
	created, err := s.API.CreateService(ctx, svc)
	return created, s.checkAuth(ctx, err)
}

func (s *DefaultConsoleService) UpdateService(ctx context.Context, serviceID string, svc models.Service) error {
	return s.checkAuth(ctx, s.API.UpdateService(ctx, serviceID, svc))
}

func (s *DefaultConsoleService) DeleteService(ctx context.Context, serviceID string) error {
	return s.checkAuth(ctx, s.API.DeleteService(ctx, serviceID))
}

func (s *DefaultConsoleService) Availability(ctx context.Context, year, month int) ([]models.AvailabilityDay, error) {
	days, err := s.API.AdminAvailability(ctx, year, month)
	return days, s.checkAuth(ctx, err)
}

func (s *DefaultConsoleService) SetAvailability(ctx context.Context, day models.AvailabilityDay) error {
	return s.checkAuth(ctx, s.API.SetAvailability(ctx, day))
}

// FridayDiscountPercent reads the configured rate, falling back to 10 when
// the setting is missing or unreadable, matching the backend's own default.
func (s *DefaultConsoleService) FridayDiscountPercent(ctx context.Context) (float64, error) {
	settings, err := s.API.Settings(ctx)
	if err != nil {
		return 0, s.checkAuth(ctx, err)
	}
	for _, setting := range settings {
		if setting.Key != fridayDiscountSetting {
			continue
		}
		percent, err := strconv.ParseFloat(setting.Value, 64)
		if err != nil {
			utils.GetLogger().Warn("unreadable friday_discount setting",
				zap.String("value", setting.Value), zap.Error(err))
			return 10, nil
		}
		return percent, nil
	}
	return 10, nil
}

func (s *DefaultConsoleService) SetFridayDiscountPercent(ctx context.Context, percent float64) error {
	setting := models.Setting{
		Key:   fridayDiscountSetting,
		Value: strconv.FormatFloat(percent, 'f', -1, 64),
	}
	return s.checkAuth(ctx, s.API.UpdateSetting(ctx, setting))
}

func (s *DefaultConsoleService) Stats(ctx context.Context) (models.AdminStats, error) {
	stats, err := s.API.Stats(ctx)
	return stats, s.checkAuth(ctx, err)
}

func (s *DefaultConsoleService) Reviews(ctx context.Context) ([]models.Review, error) {
	reviews, err := s.API.AdminReviews(ctx)
	return reviews, s.checkAuth(ctx, err)
}

func (s *DefaultConsoleService) PublishLocation(ctx context.Context, loc models.CrewLocation) error {
	return s.checkAuth(ctx, s.API.UpdateLocation(ctx, loc))
}

func (s *DefaultConsoleService) AttachWorkPhoto(ctx context.Context, photo models.WorkPhoto) (models.WorkPhoto, error) {
	created, err := s.API.UploadWorkPhoto(ctx, photo)
	return created, s.checkAuth(ctx, err)
}

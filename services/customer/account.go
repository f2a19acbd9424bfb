package customer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"cleanbook/backend"
	"cleanbook/models"
	"cleanbook/session"
	"cleanbook/utils"
)

const profileKey = "customer.profile"

// ErrNotLoggedIn is returned when no customer snapshot is cached.
var ErrNotLoggedIn = errors.New("no customer is logged in")

// DefaultAccountService implements AccountService over the backend contract
// and a session store.
type DefaultAccountService struct {
	API   backend.CustomerAPI
	Store session.Store
}

func (s *DefaultAccountService) Register(ctx context.Context, reg models.CustomerRegistration) (models.Customer, error) {
	customer, err := s.API.Register(ctx, reg)
	if err != nil {
		return models.Customer{}, fmt.Errorf("registration failed: %w", err)
	}
	if err := s.save(ctx, customer); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (s *DefaultAccountService) Login(ctx context.Context, phone string) (models.Customer, error) {
	customer, err := s.API.Login(ctx, phone)
	if err != nil {
		return models.Customer{}, fmt.Errorf("login failed: %w", err)
	}
	if err := s.save(ctx, customer); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

// Current returns the cached snapshot without touching the network.
func (s *DefaultAccountService) Current(ctx context.Context) (models.Customer, error) {
	data, err := s.Store.Get(ctx, profileKey)
	if errors.Is(err, session.ErrNotFound) {
		return models.Customer{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.Customer{}, fmt.Errorf("failed to read session: %w", err)
	}
	var customer models.Customer
	if err := json.Unmarshal(data, &customer); err != nil {
		// A corrupt snapshot is treated as logged out rather than poisoning
		// every screen that reads it.
		utils.GetLogger().Warn("discarding corrupt customer snapshot", zap.Error(err))
		_ = s.Store.Delete(ctx, profileKey)
		return models.Customer{}, ErrNotLoggedIn
	}
	return customer, nil
}

// Refresh re-fetches the profile (loyalty points, booking counters) and
// replaces the snapshot.
func (s *DefaultAccountService) Refresh(ctx context.Context) (models.Customer, error) {
	current, err := s.Current(ctx)
	if err != nil {
		return models.Customer{}, err
	}
	customer, err := s.API.Profile(ctx, current.Phone)
	if err != nil {
		return models.Customer{}, fmt.Errorf("profile refresh failed: %w", err)
	}
	if err := s.save(ctx, customer); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (s *DefaultAccountService) UpdateAddress(ctx context.Context, address string) error {
	current, err := s.Current(ctx)
	if err != nil {
		return err
	}
	if err := s.API.UpdateAddress(ctx, current.Phone, address); err != nil {
		return fmt.Errorf("address update failed: %w", err)
	}
	current.Address = address
	return s.save(ctx, current)
}

func (s *DefaultAccountService) UseReferral(ctx context.Context, code string) error {
	current, err := s.Current(ctx)
	if err != nil {
		return err
	}
	use := models.ReferralUse{ReferralCode: code, Phone: current.Phone}
	if err := s.API.UseReferral(ctx, use); err != nil {
		return fmt.Errorf("referral use failed: %w", err)
	}
	// Loyalty points may have changed; replace the snapshot.
	_, err = s.Refresh(ctx)
	return err
}

func (s *DefaultAccountService) Logout(ctx context.Context) error {
	return s.Store.Delete(ctx, profileKey)
}

func (s *DefaultAccountService) save(ctx context.Context, customer models.Customer) error {
	data, err := json.Marshal(customer)
	if err != nil {
		return fmt.Errorf("failed to marshal customer snapshot: %w", err)
	}
	if err := s.Store.Set(ctx, profileKey, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

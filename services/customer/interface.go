package customer

import (
	"context"

	"cleanbook/models"
)

// AccountService owns the locally cached customer snapshot. The cache has
// exactly three invalidation points: it is populated on Login/Register,
// replaced on Refresh, and cleared on Logout. Screens read Current instead
// of keeping their own copies.
type AccountService interface {
	Register(ctx context.Context, reg models.CustomerRegistration) (models.Customer, error)
	Login(ctx context.Context, phone string) (models.Customer, error)
	Current(ctx context.Context) (models.Customer, error)
	Refresh(ctx context.Context) (models.Customer, error)
	UpdateAddress(ctx context.Context, address string) error
	UseReferral(ctx context.Context, code string) error
	Logout(ctx context.Context) error
}

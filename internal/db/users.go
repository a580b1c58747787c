package db

import (
	"context"

	"github.com/sidereusnuntius/blocipedia/internal/domain"
)

type Users interface {
	// InsertUser persists a new user; account.Password must already be hashed. It fails with ErrConflict
	// if the username or email is taken.
	InsertUser(ctx context.Context, account domain.Account) (id int64, err error)
	GetUserByID(ctx context.Context, id int64) (domain.User, error)
	GetUserByBillingID(ctx context.Context, billingID string) (domain.User, error)
	GetAuthDataByUsername(ctx context.Context, username string) (domain.Account, error)
	GetAuthDataByEmail(ctx context.Context, email string) (domain.Account, error)
	SetAdmin(ctx context.Context, id int64, admin bool) error
	// SetBillingID links the user to a payment provider customer. A customer can only be linked to one user.
	SetBillingID(ctx context.Context, id int64, billingID string) error
}

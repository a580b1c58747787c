package service

import (
	"context"
	"errors"

	"github.com/sidereusnuntius/blocipedia/internal/domain"
)

var (
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid")
	ErrForbidden    = errors.New("forbidden")
)

type Service interface {
	AccountService
	WikiService
	BillingService
}

type AccountService interface {
	// AuthenticateUser takes the user's identifier, which may be their username or email address, and password
	// and verifies if these credentials are correct. If authentication fails, authenticated is false and
	// err is nil; a non nil error indicates that an internal, unexpected error has occurred.
	AuthenticateUser(ctx context.Context, user, password string) (u domain.Account, authenticated bool, err error)
	// CreateUser inserts a new, local user. It fails with ErrInvalidInput if the form is invalid and with
	// ErrConflict if the username or email is taken.
	CreateUser(ctx context.Context, username, password, email string, admin bool) (int64, error)
	GetUser(ctx context.Context, id int64) (domain.User, error)
	SetAdmin(ctx context.Context, id int64, admin bool) error
}

type WikiService interface {
	// ListWikis returns the wikis actor is allowed to read; actor is nil for anonymous visitors.
	ListWikis(ctx context.Context, actor *domain.User) ([]domain.Wiki, error)
	GetWiki(ctx context.Context, id int64) (domain.Wiki, error)
	// CreateWiki builds a wiki from params, owned by owner, and persists it. Nothing is persisted when the
	// params are invalid, in which case the error wraps ErrInvalidInput.
	CreateWiki(ctx context.Context, owner domain.User, params domain.WikiParams) (domain.Wiki, error)
	// UpdateWiki applies params to w and persists it, recording the edit in the wiki's history. The owner
	// is left untouched.
	UpdateWiki(ctx context.Context, editor domain.User, w domain.Wiki, params domain.WikiParams) (domain.Wiki, error)
	DeleteWiki(ctx context.Context, id int64) error
	GetRevisionList(ctx context.Context, wikiId int64) ([]domain.Revision, error)
}

type BillingService interface {
	// LinkBillingAccount associates the user with a customer of the payment provider, so that the charges
	// of that customer are recorded against the user. An empty billingID removes the link.
	LinkBillingAccount(ctx context.Context, userId int64, billingID string) error
	GetCharges(ctx context.Context, userId int64) ([]domain.Charge, error)
}

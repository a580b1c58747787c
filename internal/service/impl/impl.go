package impl

import (
	"errors"
	"fmt"

	"github.com/sidereusnuntius/blocipedia/internal/db"
	"github.com/sidereusnuntius/blocipedia/internal/service"
)

const BcryptCost = 10

type AppService struct {
	DB db.DB
	// BcryptCost is the cost used when hashing new passwords.
	BcryptCost int
}

var _ service.Service = (*AppService)(nil)

func New(d db.DB) *AppService {
	return &AppService{
		DB:         d,
		BcryptCost: BcryptCost,
	}
}

// translate maps storage errors that callers are expected to handle to service errors; db.ErrNotFound
// is passed through unchanged.
func translate(err error) error {
	if errors.Is(err, db.ErrConflict) {
		return fmt.Errorf("%w: %s", service.ErrConflict, err)
	}
	return err
}

package db

import (
	"context"

	"github.com/sidereusnuntius/blocipedia/internal/domain"
)

type Charges interface {
	// UpsertCharge inserts the charge or, if the user already has a charge with the same StripeID, overwrites
	// its amount and card. The operation is atomic, so concurrent deliveries of one event yield one row.
	UpsertCharge(ctx context.Context, c domain.Charge) (domain.Charge, error)
	GetCharges(ctx context.Context, userId int64) ([]domain.Charge, error)
}

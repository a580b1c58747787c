package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blocipedia/internal/db"
	"github.com/sidereusnuntius/blocipedia/internal/domain"
	"github.com/stripe/stripe-go/v82"
)

// Store is the storage the charge recorder depends on.
type Store interface {
	GetUserByBillingID(ctx context.Context, billingID string) (domain.User, error)
	UpsertCharge(ctx context.Context, c domain.Charge) (domain.Charge, error)
}

// ChargeRecorder persists successful charges. Recording the same charge twice updates the existing
// row instead of creating another.
type ChargeRecorder struct {
	Store Store
}

func NewChargeRecorder(s Store) *ChargeRecorder {
	return &ChargeRecorder{Store: s}
}

func (c *ChargeRecorder) Handle(ctx context.Context, event stripe.Event) error {
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return fmt.Errorf("%w: event %s has no data", ErrMalformedEvent, event.ID)
	}

	var charge stripe.Charge
	if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
		return fmt.Errorf("%w: decode charge: %s", ErrMalformedEvent, err)
	}

	e, err := ChargeEventFrom(charge)
	if err != nil {
		return err
	}

	_, err = c.Record(ctx, e)
	return err
}

// Record stores the charge against the user linked to the event's customer.
func (c *ChargeRecorder) Record(ctx context.Context, e domain.ChargeEvent) (domain.Charge, error) {
	user, err := c.Store.GetUserByBillingID(ctx, e.CustomerID)
	if errors.Is(err, db.ErrNotFound) {
		return domain.Charge{}, fmt.Errorf("%w: %s", ErrUnknownCustomer, e.CustomerID)
	} else if err != nil {
		return domain.Charge{}, err
	}

	charge, err := c.Store.UpsertCharge(ctx, domain.Charge{
		UserID:   user.ID,
		StripeID: e.ChargeID,
		Amount:   e.Amount,
		Card:     e.Card,
	})
	if err != nil {
		return domain.Charge{}, err
	}

	log.Info().
		Int64("user", user.ID).
		Str("charge", charge.StripeID).
		Int64("amount", charge.Amount).
		Msg("recorded charge")
	return charge, nil
}

// ChargeEventFrom extracts the fields recorded locally from a charge object.
func ChargeEventFrom(charge stripe.Charge) (domain.ChargeEvent, error) {
	if charge.ID == "" {
		return domain.ChargeEvent{}, fmt.Errorf("%w: charge without id", ErrMalformedEvent)
	}
	if charge.Customer == nil || charge.Customer.ID == "" {
		return domain.ChargeEvent{}, fmt.Errorf("%w: charge %s has no customer", ErrMalformedEvent, charge.ID)
	}

	e := domain.ChargeEvent{
		ChargeID:   charge.ID,
		CustomerID: charge.Customer.ID,
		Amount:     charge.Amount,
	}
	if details := charge.PaymentMethodDetails; details != nil && details.Card != nil {
		e.Card = domain.Card{
			Last4:    details.Card.Last4,
			Brand:    string(details.Card.Brand),
			ExpMonth: int64(details.Card.ExpMonth),
			ExpYear:  int64(details.Card.ExpYear),
		}
	}
	return e, nil
}

package impl

import (
	"context"

	"github.com/sidereusnuntius/blocipedia/internal/domain"
)

const chargeColumns = "id, user_id, stripe_id, amount, card_last4, card_type, card_exp_month, card_exp_year, created, updated"

func scanCharge(row scanner) (c domain.Charge, err error) {
	err = row.Scan(
		&c.ID,
		&c.UserID,
		&c.StripeID,
		&c.Amount,
		&c.Card.Last4,
		&c.Card.Brand,
		&c.Card.ExpMonth,
		&c.Card.ExpYear,
		&c.Created,
		&c.Updated,
	)
	return
}

// UpsertCharge relies on the (user_id, stripe_id) unique constraint, so replaying an event, even
// concurrently, never yields a second row.
func (d *dbImpl) UpsertCharge(ctx context.Context, c domain.Charge) (domain.Charge, error) {
	stored, err := scanCharge(d.db.QueryRowContext(ctx, `
		INSERT INTO charges (user_id, stripe_id, amount, card_last4, card_type, card_exp_month, card_exp_year)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, stripe_id) DO UPDATE SET
			amount = excluded.amount,
			card_last4 = excluded.card_last4,
			card_type = excluded.card_type,
			card_exp_month = excluded.card_exp_month,
			card_exp_year = excluded.card_exp_year,
			updated = unixepoch()
		RETURNING `+chargeColumns,
		c.UserID, c.StripeID, c.Amount, c.Card.Last4, c.Card.Brand, c.Card.ExpMonth, c.Card.ExpYear,
	))
	return stored, d.HandleError(err)
}

func (d *dbImpl) GetCharges(ctx context.Context, userId int64) ([]domain.Charge, error) {
	rows, err := d.db.QueryContext(ctx, "SELECT "+chargeColumns+" FROM charges WHERE user_id = ? ORDER BY id", userId)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	charges := []domain.Charge{}
	for rows.Next() {
		c, err := scanCharge(rows)
		if err != nil {
			return nil, d.HandleError(err)
		}
		charges = append(charges, c)
	}
	return charges, d.HandleError(rows.Err())
}

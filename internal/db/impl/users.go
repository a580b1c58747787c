package impl

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sidereusnuntius/blocipedia/internal/db"
	"github.com/sidereusnuntius/blocipedia/internal/domain"
)

const userColumns = "id, username, email, admin, billing_id, created"

func scanUser(row scanner) (domain.User, error) {
	var (
		u         domain.User
		billingID sql.NullString
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Admin, &billingID, &u.Created)
	u.BillingID = billingID.String
	return u, err
}

func (d *dbImpl) InsertUser(ctx context.Context, account domain.Account) (int64, error) {
	res, err := d.db.ExecContext(ctx,
		"INSERT INTO users (username, email, password, admin) VALUES (?, ?, ?, ?)",
		account.Username, account.Email, account.Password, account.Admin,
	)
	if err != nil {
		return 0, d.HandleError(err)
	}

	id, err := res.LastInsertId()
	return id, d.HandleError(err)
}

func (d *dbImpl) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	u, err := scanUser(d.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ?", id))
	return u, d.HandleError(err)
}

func (d *dbImpl) GetUserByBillingID(ctx context.Context, billingID string) (domain.User, error) {
	if billingID == "" {
		return domain.User{}, db.ErrNotFound
	}
	u, err := scanUser(d.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE billing_id = ?", billingID))
	return u, d.HandleError(err)
}

func (d *dbImpl) getAuthData(ctx context.Context, column, value string) (domain.Account, error) {
	var a domain.Account
	err := d.db.QueryRowContext(ctx,
		"SELECT id, username, email, password, admin FROM users WHERE "+column+" = ?", value,
	).Scan(&a.UserID, &a.Username, &a.Email, &a.Password, &a.Admin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, db.ErrNotFound
		}
		return domain.Account{}, fmt.Errorf("can't load account by %s: %w", column, d.HandleError(err))
	}
	return a, nil
}

func (d *dbImpl) GetAuthDataByUsername(ctx context.Context, username string) (domain.Account, error) {
	return d.getAuthData(ctx, "username", username)
}

func (d *dbImpl) GetAuthDataByEmail(ctx context.Context, email string) (domain.Account, error) {
	return d.getAuthData(ctx, "email", email)
}

func (d *dbImpl) SetAdmin(ctx context.Context, id int64, admin bool) error {
	res, err := d.db.ExecContext(ctx, "UPDATE users SET admin = ? WHERE id = ?", admin, id)
	if err != nil {
		return fmt.Errorf("can't set admin status for id=%d: %w", id, d.HandleError(err))
	}
	return affectedOne(res)
}

func (d *dbImpl) SetBillingID(ctx context.Context, id int64, billingID string) error {
	res, err := d.db.ExecContext(ctx, "UPDATE users SET billing_id = ? WHERE id = ?", nullString(billingID), id)
	if err != nil {
		return d.HandleError(err)
	}
	return affectedOne(res)
}

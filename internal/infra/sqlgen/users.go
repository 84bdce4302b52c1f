package sqlgen

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID               uuid.UUID
	Email            string
	PasswordHash     string
	Role             string
	DisplayName      string
	StripeCustomerID pgtype.Text
	StripeAccountID  pgtype.Text
	PushToken        pgtype.Text
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

const userColumns = `id, email, password_hash, role, display_name,
	stripe_customer_id, stripe_account_id, push_token, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.DisplayName,
		&u.StripeCustomerID, &u.StripeAccountID, &u.PushToken, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

const getUserByID = `
SELECT ` + userColumns + ` FROM users WHERE id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByID, id))
}

const getUserByEmail = `
SELECT ` + userColumns + ` FROM users WHERE email = $1
`

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByEmail, email))
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/identity"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

// accountStore keeps sign-in accounts in the accounts table. It backs the
// identity service when no hosted identity provider is configured.
type accountStore struct {
	db *database.DB
}

func NewAccountStore(db *database.DB) identity.Service {
	return &accountStore{db: db}
}

// CreateAccount implements identity.Service.
func (a *accountStore) CreateAccount(ctx context.Context, req identity.NewAccount) (string, error) {
	if len(req.Password) < identity.MinPasswordLength {
		return "", identity.ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	q := GetQuerier(ctx, a.db)
	uid := uuid.Must(uuid.NewV7()).String()

	query := `
		INSERT INTO accounts (uid, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := q.Exec(ctx, query, uid, strings.TrimSpace(req.Email), string(hashed), string(req.Role)); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return "", identity.ErrEmailExists
		}
		return "", fmt.Errorf("failed to insert account: %w", err)
	}

	return uid, nil
}

// DeleteAccount implements identity.Service.
func (a *accountStore) DeleteAccount(ctx context.Context, uid string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM accounts WHERE uid = $1`, uid)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", uid, err)
	}
	if tag.RowsAffected() == 0 {
		return identity.ErrAccountNotFound
	}
	return nil
}

// Authenticate implements identity.Service. ID tokens are only issued by the
// hosted provider, so they never validate here.
func (a *accountStore) Authenticate(ctx context.Context, creds identity.Credentials) (identity.Account, error) {
	if creds.IDToken != "" {
		return identity.Account{}, identity.ErrInvalidCredentials
	}

	q := GetQuerier(ctx, a.db)

	query := `
		SELECT uid, email, password_hash, role
		FROM accounts
		WHERE LOWER(email) = LOWER($1)
	`

	var (
		account identity.Account
		hash    string
		role    string
	)
	err := q.QueryRow(ctx, query, strings.TrimSpace(creds.Email)).Scan(&account.UID, &account.Email, &hash, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return identity.Account{}, identity.ErrInvalidCredentials
		}
		return identity.Account{}, fmt.Errorf("failed to load account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)); err != nil {
		return identity.Account{}, identity.ErrInvalidCredentials
	}

	account.Role = user.Role(role)
	return account, nil
}

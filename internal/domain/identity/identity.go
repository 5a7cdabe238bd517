package identity

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
)

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
)

// MinPasswordLength is the shortest password the hosted identity provider accepts.
const MinPasswordLength = 6

// Account is a sign-in identity. UID is the provider-assigned user id.
type Account struct {
	UID   string
	Email string
	Role  user.Role // empty when the provider carries no role
}

type NewAccount struct {
	Email    string
	Password string
	Role     user.Role
}

// Credentials are either an email/password pair or a provider-issued ID token.
type Credentials struct {
	Email    string
	Password string
	IDToken  string
}

// Service creates, removes and authenticates sign-in accounts.
type Service interface {
	CreateAccount(ctx context.Context, req NewAccount) (uid string, err error)
	DeleteAccount(ctx context.Context, uid string) error
	Authenticate(ctx context.Context, creds Credentials) (Account, error)
}

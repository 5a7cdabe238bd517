package firebase

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/identity"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
)

const roleClaim = "role"

// authClient is the subset of *auth.Client used for account management.
type authClient interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	SetCustomUserClaims(ctx context.Context, uid string, customClaims map[string]interface{}) error
	DeleteUser(ctx context.Context, uid string) error
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type identityService struct {
	client authClient
}

// NewIdentityService returns an identity.Service backed by Firebase Auth.
func NewIdentityService(client *auth.Client) identity.Service {
	return &identityService{client: client}
}

// CreateAccount implements identity.Service.
func (s *identityService) CreateAccount(ctx context.Context, req identity.NewAccount) (string, error) {
	if len(req.Password) < identity.MinPasswordLength {
		return "", identity.ErrWeakPassword
	}

	params := (&auth.UserToCreate{}).Email(req.Email).Password(req.Password)
	record, err := s.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", identity.ErrEmailExists
		}
		return "", fmt.Errorf("failed to create firebase user: %w", err)
	}

	if req.Role != "" {
		claims := map[string]interface{}{roleClaim: string(req.Role)}
		if err := s.client.SetCustomUserClaims(ctx, record.UID, claims); err != nil {
			return "", fmt.Errorf("failed to set role claim: %w", err)
		}
	}

	return record.UID, nil
}

// DeleteAccount implements identity.Service.
func (s *identityService) DeleteAccount(ctx context.Context, uid string) error {
	if err := s.client.DeleteUser(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return identity.ErrAccountNotFound
		}
		return fmt.Errorf("failed to delete firebase user: %w", err)
	}
	return nil
}

// Authenticate implements identity.Service. Passwords are checked by the
// Firebase client SDK, so only ID tokens are accepted here.
func (s *identityService) Authenticate(ctx context.Context, creds identity.Credentials) (identity.Account, error) {
	if creds.IDToken == "" {
		return identity.Account{}, identity.ErrInvalidCredentials
	}

	token, err := s.client.VerifyIDToken(ctx, creds.IDToken)
	if err != nil {
		return identity.Account{}, identity.ErrInvalidCredentials
	}

	account := identity.Account{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		account.Email = email
	}
	if role, ok := token.Claims[roleClaim].(string); ok {
		account.Role = user.Role(role)
	}
	return account, nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/identity"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	identity identity.Service
	jwt.Service
	employee.EmployeeRepository
}

func NewAuthService(identityService identity.Service, jwtService jwt.Service, employeeRepository employee.EmployeeRepository) auth.AuthService {
	return &AuthServiceImpl{
		identity:           identityService,
		Service:            jwtService,
		EmployeeRepository: employeeRepository,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	account, err := a.identity.Authenticate(ctx, identity.Credentials{
		Email:    loginReq.Email,
		Password: loginReq.Password,
		IDToken:  loginReq.IDToken,
	})
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) || errors.Is(err, identity.ErrAccountNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to authenticate: %w", err)
	}

	role, err := a.resolveRole(ctx, account)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(account.UID, account.Email, role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	slog.Info("user logged in", "uid", account.UID, "role", role)

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		TokenType:            "Bearer",
		UID:                  account.UID,
		Email:                account.Email,
		Role:                 string(role),
	}, nil
}

// resolveRole prefers the role carried by the account and falls back to the
// employee record linked to it.
func (a *AuthServiceImpl) resolveRole(ctx context.Context, account identity.Account) (user.Role, error) {
	if account.Role.Valid() {
		return account.Role, nil
	}

	emp, err := a.EmployeeRepository.GetByUID(ctx, account.UID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return user.RoleUser, nil
		}
		return "", fmt.Errorf("failed to get employee by uid: %w", err)
	}
	if !emp.Role.Valid() {
		return user.RoleUser, nil
	}
	return emp.Role, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string, expiresAt int64) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	if !a.Service.IsTokenRevoked(token) {
		a.Service.RevokeToken(token, expiresAt)
	}
	return nil
}

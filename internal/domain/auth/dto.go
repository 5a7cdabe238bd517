package auth

import "github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"

// LoginRequest carries either email and password or an ID token issued by
// the hosted identity provider.
type LoginRequest struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	IDToken  string `json:"id_token,omitempty"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.IDToken != "" {
		return nil
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
	TokenType            string `json:"token_type"`
	UID                  string `json:"uid"`
	Email                string `json:"email"`
	Role                 string `json:"role"`
}

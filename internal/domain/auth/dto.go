package auth

import "github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/validator"

type RequestCodeRequest struct {
	PhoneNumber string `json:"phone_number"`
}

func (r RequestCodeRequest) Validate() error {
	if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		return validator.ValidationErrors{{Field: "phone_number", Message: "must be 10-13 digits"}}
	}
	return nil
}

type VerifyCodeRequest struct {
	PhoneNumber string `json:"phone_number"`
	Code        string `json:"code"`
}

func (r VerifyCodeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "must be 10-13 digits"})
	}
	if !validator.IsValidOTPCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be a 6-digit code"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresAt    int64  `json:"expires_at"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

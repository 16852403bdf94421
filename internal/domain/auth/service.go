package auth

import "context"

type AuthService interface {
	// RequestCode issues a one-time code to the given phone number.
	RequestCode(ctx context.Context, req RequestCodeRequest) error
	ResendCode(ctx context.Context, req RequestCodeRequest) error
	// VerifyCode exchanges a valid code for a token pair.
	VerifyCode(ctx context.Context, req VerifyCodeRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

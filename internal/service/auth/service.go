package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/auth"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/employee"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/jwt"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/otp"
	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
)

type AuthServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	otpVerifier  otp.Verifier
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, otpVerifier otp.Verifier, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		otpVerifier:  otpVerifier,
		jwtService:   jwtService,
	}
}

// RequestCode implements auth.AuthService.
func (s *AuthServiceImpl) RequestCode(ctx context.Context, req auth.RequestCodeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.activeEmployee(ctx, req.PhoneNumber); err != nil {
		return err
	}

	if err := s.otpVerifier.Send(ctx, req.PhoneNumber); err != nil {
		return fmt.Errorf("failed to send verification code: %w", err)
	}

	slog.Info("verification code requested", "phone_number", req.PhoneNumber)
	return nil
}

// ResendCode implements auth.AuthService.
func (s *AuthServiceImpl) ResendCode(ctx context.Context, req auth.RequestCodeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.activeEmployee(ctx, req.PhoneNumber); err != nil {
		return err
	}

	return s.otpVerifier.Resend(ctx, req.PhoneNumber)
}

// VerifyCode implements auth.AuthService.
func (s *AuthServiceImpl) VerifyCode(ctx context.Context, req auth.VerifyCodeRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if err := s.otpVerifier.Verify(ctx, req.PhoneNumber, req.Code); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := s.activeEmployee(ctx, req.PhoneNumber)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.PhoneNumber, &emp.ID, emp.TenantID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	// Refresh tokens carry the phone number so renewal can re-resolve
	// the employee without a tenant in hand.
	refreshToken, _, err := s.jwtService.GenerateRefreshToken(emp.PhoneNumber)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	slog.Info("employee signed in", "employee_id", emp.ID)

	return auth.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// RefreshToken implements auth.AuthService.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if req.RefreshToken == "" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if s.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	token, err := s.jwtService.JWTAuth().Decode(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if err := jwxjwt.Validate(token); err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if tokenType, _ := token.Get("type"); tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	emp, err := s.activeEmployee(ctx, token.Subject())
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.PhoneNumber, &emp.ID, emp.TenantID)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.AccessTokenResponse{AccessToken: accessToken, ExpiresAt: expiresAt}, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrInvalidToken
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

func (s *AuthServiceImpl) activeEmployee(ctx context.Context, phoneNumber string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetActiveByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, auth.ErrUnknownPhoneNumber
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

package otp

import (
	"context"
	"errors"
	"time"
)

// Typed error kinds replace error-message substring matching: callers
// select user messages with errors.Is, never by inspecting text.
var (
	ErrInvalidCode     = errors.New("otp: invalid verification code")
	ErrCodeExpired     = errors.New("otp: verification code expired")
	ErrTooManyAttempts = errors.New("otp: too many verification attempts")
	ErrResendCooldown  = errors.New("otp: resend requested too soon")
	ErrDeliveryFailed  = errors.New("otp: code delivery failed")
)

// Verifier is the verification collaborator contract. Send issues a
// 6-digit code to the phone number; Verify checks a submitted code;
// Resend re-issues the last challenge for a number already known to
// the caller.
type Verifier interface {
	Send(ctx context.Context, phoneNumber string) error
	Verify(ctx context.Context, phoneNumber string, code string) error
	Resend(ctx context.Context, phoneNumber string) error
}

// Options tune challenge lifetime and abuse limits.
type Options struct {
	CodeTTL        time.Duration
	MaxAttempts    int
	ResendCooldown time.Duration
}

func (o Options) withDefaults() Options {
	if o.CodeTTL <= 0 {
		o.CodeTTL = 5 * time.Minute
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 5
	}
	if o.ResendCooldown <= 0 {
		o.ResendCooldown = 30 * time.Second
	}
	return o
}

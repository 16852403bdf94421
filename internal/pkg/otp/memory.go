package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
)

type challenge struct {
	id        string
	code      string
	issuedAt  time.Time
	expiresAt time.Time
	attempts  int
}

// MemoryVerifier issues and checks codes in process memory. It stands
// in for a real SMS provider in demo and unconfigured deployments; the
// generated code is logged instead of delivered.
type MemoryVerifier struct {
	opts       Options
	mu         sync.Mutex
	challenges map[string]*challenge
	now        func() time.Time
}

func NewMemoryVerifier(opts Options) *MemoryVerifier {
	return &MemoryVerifier{
		opts:       opts.withDefaults(),
		challenges: make(map[string]*challenge),
		now:        time.Now,
	}
}

func (v *MemoryVerifier) Send(ctx context.Context, phoneNumber string) error {
	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	v.challenges[phoneNumber] = &challenge{
		id:        uuid.NewString(),
		code:      code,
		issuedAt:  now,
		expiresAt: now.Add(v.opts.CodeTTL),
	}

	// Demo delivery: a real provider integration would send an SMS.
	slog.Info("otp challenge issued", "phone_number", phoneNumber, "code", code)
	return nil
}

func (v *MemoryVerifier) Verify(ctx context.Context, phoneNumber string, code string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	ch, ok := v.challenges[phoneNumber]
	if !ok {
		return ErrInvalidCode
	}
	if v.now().After(ch.expiresAt) {
		delete(v.challenges, phoneNumber)
		return ErrCodeExpired
	}
	if ch.attempts >= v.opts.MaxAttempts {
		delete(v.challenges, phoneNumber)
		return ErrTooManyAttempts
	}
	if ch.code != code {
		ch.attempts++
		return ErrInvalidCode
	}

	delete(v.challenges, phoneNumber)
	return nil
}

func (v *MemoryVerifier) Resend(ctx context.Context, phoneNumber string) error {
	v.mu.Lock()
	ch, ok := v.challenges[phoneNumber]
	if ok && v.now().Sub(ch.issuedAt) < v.opts.ResendCooldown {
		v.mu.Unlock()
		return ErrResendCooldown
	}
	v.mu.Unlock()

	return v.Send(ctx, phoneNumber)
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

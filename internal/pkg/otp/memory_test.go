package otp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPhone = "+33612345678"

// issuedCode digs the generated code out of the verifier state so tests
// can submit it without parsing log output.
func issuedCode(t *testing.T, v *MemoryVerifier, phoneNumber string) string {
	t.Helper()
	v.mu.Lock()
	defer v.mu.Unlock()
	ch, ok := v.challenges[phoneNumber]
	require.True(t, ok, "no challenge issued for %s", phoneNumber)
	return ch.code
}

func TestMemoryVerifier_SendAndVerify(t *testing.T) {
	ctx := context.Background()
	v := NewMemoryVerifier(Options{})

	require.NoError(t, v.Send(ctx, testPhone))
	code := issuedCode(t, v, testPhone)
	assert.Len(t, code, 6)

	require.NoError(t, v.Verify(ctx, testPhone, code))

	// Codes are single-use.
	err := v.Verify(ctx, testPhone, code)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestMemoryVerifier_WrongCode(t *testing.T) {
	ctx := context.Background()
	v := NewMemoryVerifier(Options{})

	require.NoError(t, v.Send(ctx, testPhone))
	code := issuedCode(t, v, testPhone)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	err := v.Verify(ctx, testPhone, wrong)
	assert.ErrorIs(t, err, ErrInvalidCode)

	// The challenge survives a wrong attempt.
	require.NoError(t, v.Verify(ctx, testPhone, code))
}

func TestMemoryVerifier_UnknownPhoneNumber(t *testing.T) {
	ctx := context.Background()
	v := NewMemoryVerifier(Options{})

	err := v.Verify(ctx, testPhone, "123456")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestMemoryVerifier_Expiry(t *testing.T) {
	ctx := context.Background()
	v := NewMemoryVerifier(Options{CodeTTL: 5 * time.Minute})

	now := time.Now()
	v.now = func() time.Time { return now }

	require.NoError(t, v.Send(ctx, testPhone))
	code := issuedCode(t, v, testPhone)

	now = now.Add(5*time.Minute + time.Second)
	err := v.Verify(ctx, testPhone, code)
	assert.ErrorIs(t, err, ErrCodeExpired)

	// The expired challenge is discarded entirely.
	err = v.Verify(ctx, testPhone, code)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestMemoryVerifier_MaxAttempts(t *testing.T) {
	ctx := context.Background()
	v := NewMemoryVerifier(Options{MaxAttempts: 3})

	require.NoError(t, v.Send(ctx, testPhone))
	code := issuedCode(t, v, testPhone)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, v.Verify(ctx, testPhone, wrong), ErrInvalidCode)
	}

	// The correct code no longer helps once attempts are exhausted.
	err := v.Verify(ctx, testPhone, code)
	assert.ErrorIs(t, err, ErrTooManyAttempts)
}

func TestMemoryVerifier_ResendCooldown(t *testing.T) {
	ctx := context.Background()
	v := NewMemoryVerifier(Options{ResendCooldown: 30 * time.Second})

	now := time.Now()
	v.now = func() time.Time { return now }

	require.NoError(t, v.Send(ctx, testPhone))

	err := v.Resend(ctx, testPhone)
	assert.ErrorIs(t, err, ErrResendCooldown)

	now = now.Add(31 * time.Second)
	require.NoError(t, v.Resend(ctx, testPhone))
}

func TestMemoryVerifier_ResendReplacesCode(t *testing.T) {
	ctx := context.Background()
	v := NewMemoryVerifier(Options{ResendCooldown: time.Second})

	now := time.Now()
	v.now = func() time.Time { return now }

	require.NoError(t, v.Send(ctx, testPhone))
	first := issuedCode(t, v, testPhone)

	now = now.Add(2 * time.Second)
	require.NoError(t, v.Resend(ctx, testPhone))
	second := issuedCode(t, v, testPhone)

	if first != second {
		assert.ErrorIs(t, v.Verify(ctx, testPhone, first), ErrInvalidCode)
	}
	require.NoError(t, v.Verify(ctx, testPhone, second))
}

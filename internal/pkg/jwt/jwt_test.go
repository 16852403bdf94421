package jwt

import (
	"context"
	"testing"
	"time"

	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret-key", "1h", "168h")
}

func TestGenerateAccessToken(t *testing.T) {
	svc := newTestService()
	employeeID := "emp-1"

	tokenString, expiresAt, err := svc.GenerateAccessToken("emp-1", "+33612345678", &employeeID, "tenant-1")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	require.NoError(t, jwxjwt.Validate(token))

	assert.Equal(t, "emp-1", token.Subject())

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access", claims["type"])
	assert.Equal(t, "+33612345678", claims["phone_number"])
	assert.Equal(t, "emp-1", claims["employee_id"])
	assert.Equal(t, "tenant-1", claims["tenant_id"])
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("+33612345678")
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims["type"])
	assert.Equal(t, "+33612345678", token.Subject())
}

func TestTokenRevocation(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("+33612345678")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))
	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestService()
	expiresAt := time.Now().Add(time.Hour).Unix()

	cookie := svc.RefreshTokenCookie("token-value", expiresAt)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
}

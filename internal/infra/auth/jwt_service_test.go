package auth

import (
	"strings"
	"testing"
	"time"

	"hosting/config"
	"hosting/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func TestJWTService_IssueAndDecode(t *testing.T) {
	cfg := &config.Config{Token: config.TokenConfig{Algorithm: "HS256", Secret: testSecret}}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, expiresAt, err := jwtService.Issue("6650f2a1c2d3e4f5a6b7c8d9")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(service.AccessTokenTTL), expiresAt, 5*time.Second)

	subject, err := jwtService.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "6650f2a1c2d3e4f5a6b7c8d9", subject)
}

func TestJWTService_Algorithms(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		t.Run(alg, func(t *testing.T) {
			jwtService, err := NewJWTServiceWithClock(testSecret, alg, nil)
			require.NoError(t, err)

			token, _, err := jwtService.Issue("acct-1")
			require.NoError(t, err)

			parsed, _, err := jwt.NewParser().ParseUnverified(token, &jwt.RegisteredClaims{})
			require.NoError(t, err)
			assert.Equal(t, alg, parsed.Method.Alg())

			subject, err := jwtService.Decode(token)
			require.NoError(t, err)
			assert.Equal(t, "acct-1", subject)
		})
	}
}

func TestJWTService_Constructor(t *testing.T) {
	_, err := NewJWTServiceWithClock("", "HS256", nil)
	assert.Error(t, err)

	_, err = NewJWTServiceWithClock(testSecret, "RS256", nil)
	assert.Error(t, err)

	_, err = NewJWTServiceWithClock(testSecret, "none", nil)
	assert.Error(t, err)
}

func TestJWTService_Expiry(t *testing.T) {
	clock := newTestClock()
	jwtService, err := NewJWTServiceWithClock(testSecret, "HS256", clock.Now)
	require.NoError(t, err)

	token, expiresAt, err := jwtService.Issue("acct-1")
	require.NoError(t, err)
	assert.Equal(t, clock.now.Add(10*time.Minute), expiresAt)

	clock.now = clock.now.Add(9*time.Minute + 59*time.Second)
	subject, err := jwtService.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "acct-1", subject)

	clock.now = clock.now.Add(2 * time.Second)
	_, err = jwtService.Decode(token)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	clock := newTestClock()
	jwtService, err := NewJWTServiceWithClock(testSecret, "HS256", clock.Now)
	require.NoError(t, err)

	valid, _, err := jwtService.Issue("acct-1")
	require.NoError(t, err)
	other, _, err := jwtService.Issue("acct-2")
	require.NoError(t, err)

	sign := func(method jwt.SigningMethod, key any, claims jwt.Claims) string {
		t.Helper()
		signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return signed
	}
	exp := jwt.NewNumericDate(clock.now.Add(time.Minute))

	validParts := strings.Split(valid, ".")
	otherParts := strings.Split(other, ".")
	swappedPayload := strings.Join([]string{validParts[0], otherParts[1], validParts[2]}, ".")

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "two segments", token: validParts[0] + "." + validParts[1]},
		{name: "tampered payload", token: swappedPayload},
		{name: "wrong secret", token: sign(jwt.SigningMethodHS256, []byte("another-secret"), jwt.RegisteredClaims{Subject: "acct-1", ExpiresAt: exp})},
		{name: "different hmac algorithm", token: sign(jwt.SigningMethodHS512, []byte(testSecret), jwt.RegisteredClaims{Subject: "acct-1", ExpiresAt: exp})},
		{name: "unsigned", token: sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.RegisteredClaims{Subject: "acct-1", ExpiresAt: exp})},
		{name: "missing subject", token: sign(jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{ExpiresAt: exp})},
		{name: "missing expiry", token: sign(jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{Subject: "acct-1"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := jwtService.Decode(tt.token)
			assert.Empty(t, subject)
			assert.ErrorIs(t, err, service.ErrTokenInvalid)
		})
	}
}

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"hosting/config"
	"hosting/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
// The signing algorithm and secret come from the token section of the config.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return NewJWTServiceWithClock(cfg.Token.Secret, cfg.Token.Algorithm, time.Now)
}

// NewJWTServiceWithClock builds the service with an explicit clock, which
// drives both the issued timestamps and the expiry check on decode.
func NewJWTServiceWithClock(secret, algorithm string, now func() time.Time) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Errorf("unsupported jwt algorithm: %q", algorithm)
	}

	if now == nil {
		now = time.Now
	}

	return &jwtService{
		secret: []byte(secret),
		method: method,
		ttl:    service.AccessTokenTTL,
		now:    now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{method.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(now),
		),
	}, nil
}

// Issue creates a signed token whose subject is the given identifier.
func (s *jwtService) Issue(subject string) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// Decode verifies signature, algorithm and expiry, then returns the subject.
// Every failure collapses into service.ErrTokenInvalid.
func (s *jwtService) Decode(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", service.ErrTokenInvalid
	}

	if claims.Subject == "" {
		return "", service.ErrTokenInvalid
	}

	return claims.Subject, nil
}

package service

import (
	"time"

	"github.com/pkg/errors"
)

// AccessTokenTTL is the fixed lifetime of an access token.
const AccessTokenTTL = 10 * time.Minute

// ErrTokenInvalid is the only error Decode returns. Expired, forged, malformed
// and subject-less tokens are not told apart.
var ErrTokenInvalid = errors.New("token is invalid")

// TokenService issues and decodes signed, time-bound bearer tokens.
type TokenService interface {
	// Issue signs a token for subject that expires AccessTokenTTL from now.
	Issue(subject string) (token string, expiresAt time.Time, err error)

	// Decode verifies a token and returns its subject.
	Decode(token string) (subject string, err error)
}

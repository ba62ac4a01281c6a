package jwt

import (
	"errors"
	"time"
)

var (
	// ErrInvalidToken is returned for every token that fails decoding, signature
	// verification or the expiry check. Callers cannot tell these cases apart.
	ErrInvalidToken         = errors.New("jwt: invalid token")
	ErrReservedClaim        = errors.New("jwt: exp is a reserved claim")
	ErrUnsupportedAlgorithm = errors.New("jwt: unsupported signing algorithm")
)

// ExpClaim is the reserved expiry claim, in integer seconds since the epoch.
const ExpClaim = "exp"

// Signer issues and verifies signed access tokens.
type Signer interface {
	// Issue signs claims plus an exp of now+ttl. A ttl <= 0 selects the configured default.
	// expiry is the exp instant rendered with the configured datetime format.
	Issue(claims map[string]string, ttl time.Duration) (token, expiry string, err error)
	// Verify returns the decoded claims of a token whose signature is valid and whose exp has not passed.
	Verify(token string) (map[string]any, error)
}

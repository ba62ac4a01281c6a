package jwt

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"time"

	"github.com/ferdiebergado/templat/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ncruces/go-strftime"
)

// GolangJWTSigner implements the Signer interface using the golang-jwt library.
// Only HMAC algorithms are accepted since tokens are signed with a shared secret.
type GolangJWTSigner struct {
	method         jwt.SigningMethod
	key            []byte
	defaultTTL     time.Duration
	datetimeFormat string
	now            func() time.Time
}

var _ Signer = (*GolangJWTSigner)(nil)

type Option func(*GolangJWTSigner)

// WithClock replaces the time source used for issuing and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *GolangJWTSigner) {
		s.now = now
	}
}

// NewGolangJWTSigner creates a signer from the JWT config.
func NewGolangJWTSigner(cfg *config.JWT, opts ...Option) (*GolangJWTSigner, error) {
	method, ok := jwt.GetSigningMethod(cfg.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, cfg.Algorithm)
	}

	s := &GolangJWTSigner{
		method:         method,
		key:            []byte(cfg.SecretKey),
		defaultTTL:     cfg.TTL(),
		datetimeFormat: cfg.DatetimeFormat,
		now:            time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *GolangJWTSigner) Issue(claims map[string]string, ttl time.Duration) (token, expiry string, err error) {
	if _, ok := claims[ExpClaim]; ok {
		return "", "", ErrReservedClaim
	}

	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	expiresAt := s.now().Add(ttl).Truncate(time.Second)

	mapClaims := make(jwt.MapClaims, len(claims)+1)
	for k, v := range claims {
		mapClaims[k] = v
	}
	mapClaims[ExpClaim] = expiresAt.Unix()

	signed, err := jwt.NewWithClaims(s.method, mapClaims).SignedString(s.key)
	if err != nil {
		return "", "", fmt.Errorf("sign token: %w", err)
	}

	return signed, strftime.Format(s.datetimeFormat, expiresAt), nil
}

// Verify checks the signature with the library's claim validation disabled, then
// compares exp against the signer's clock.
func (s *GolangJWTSigner) Verify(tokenString string) (map[string]any, error) {
	token, err := jwt.Parse(tokenString, func(_ *jwt.Token) (any, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{s.method.Alg()}), jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: unknown claims type %T", ErrInvalidToken, token.Claims)
	}

	exp, err := expSeconds(mapClaims[ExpClaim])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if exp < s.now().Unix() {
		return nil, fmt.Errorf("%w: expired at %d", ErrInvalidToken, exp)
	}

	return maps.Clone(map[string]any(mapClaims)), nil
}

func expSeconds(raw any) (int64, error) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("exp is not an integer: %v", v)
		}
		return int64(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("exp is not an integer: %w", err)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("missing %s claim", ExpClaim)
	default:
		return 0, fmt.Errorf("exp has type %T", raw)
	}
}

package auth

import (
	"strings"
)

const bearerScheme = "Bearer"

// ExtractBearerToken parses an Authorization header value of the form "Bearer <token>".
// The scheme must match exactly.
func ExtractBearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrMissingToken
	}

	scheme, token, found := strings.Cut(header, " ")
	if scheme != bearerScheme {
		return "", ErrInvalidScheme
	}

	token = strings.TrimSpace(token)
	if !found || token == "" {
		return "", ErrMissingToken
	}

	return token, nil
}

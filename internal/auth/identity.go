package auth

import (
	"context"
	"fmt"
	"strconv"
)

const (
	ClaimSubject = "sub"
	ClaimRole    = "role"
	ClaimEmail   = "email"

	// remoteIDKey is the identity key returned by the delegated auth service.
	remoteIDKey = "id"
)

// Identity is a verified caller. Role is empty when the credential carried no recognized role.
type Identity struct {
	ID     string         `json:"id"`
	Role   Role           `json:"role"`
	Claims map[string]any `json:"claims,omitempty"`
}

// HasRole reports whether the identity holds one of the given roles.
func (id *Identity) HasRole(allowed ...Role) bool {
	for _, r := range allowed {
		if id.Role == r {
			return true
		}
	}
	return false
}

func identityFromClaims(claims map[string]any, idKey string) *Identity {
	id := &Identity{
		ID:     stringClaim(claims[idKey]),
		Claims: claims,
	}

	if role, err := ParseRole(stringClaim(claims[ClaimRole])); err == nil {
		id.Role = role
	}

	return id
}

// stringClaim renders scalar claim values. JSON numbers arrive as float64.
func stringClaim(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

type ctxKey int

const identityCtxKey ctxKey = iota + 1

//nolint:ireturn //returning context.Context is intentional.
func NewContextWithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, id)
}

func IdentityFromContext(ctx context.Context) (*Identity, error) {
	id, ok := ctx.Value(identityCtxKey).(*Identity)
	if !ok || id == nil {
		return nil, ErrNoIdentity
	}
	return id, nil
}

package auth

import (
	"net/http"

	"github.com/ferdiebergado/templat/internal/pkg/message"
)

// Permit decides whether id may proceed. It is permitted when its role is in roles,
// or, when allowSameID is set, when it is the target user itself.
func Permit(id *Identity, roles []Role, targetID string, allowSameID bool) error {
	if id == nil {
		return ErrNoIdentity
	}

	if id.HasRole(roles...) {
		return nil
	}

	if allowSameID && id.ID != "" && id.ID == targetID {
		return nil
	}

	return &Error{Status: http.StatusForbidden, Detail: message.Forbidden, Err: ErrForbidden}
}

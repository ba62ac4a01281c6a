package auth

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/templat/internal/pkg/web"
)

// RequireToken verifies the bearer token of each request with v and stores the
// resulting identity in the request context.
func RequireToken(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := ExtractBearerToken(r.Header.Get(web.HeaderAuthorization))
			if err != nil {
				fail(w, err)
				return
			}

			id, err := v.Verify(r.Context(), token)
			if err != nil {
				fail(w, err)
				return
			}

			ctx := NewContextWithIdentity(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type gate struct {
	targetID func(*http.Request) string
}

type GateOption func(*gate)

// AllowSameID also permits the identity whose id equals the one extracted from the request.
func AllowSameID(extract func(*http.Request) string) GateOption {
	return func(g *gate) {
		g.targetID = extract
	}
}

// PathValue returns an extractor for the named route wildcard.
func PathValue(name string) func(*http.Request) string {
	return func(r *http.Request) string {
		return r.PathValue(name)
	}
}

// Authorize rejects requests whose identity is not permitted by roles.
// It must run after RequireToken.
func Authorize(roles []Role, opts ...GateOption) func(http.Handler) http.Handler {
	g := &gate{}
	for _, opt := range opts {
		opt(g)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := IdentityFromContext(r.Context())
			if err != nil {
				fail(w, err)
				return
			}

			var targetID string
			allowSameID := g.targetID != nil
			if allowSameID {
				targetID = g.targetID(r)
			}

			if err := Permit(id, roles, targetID, allowSameID); err != nil {
				gateRejectionsTotal.Inc()
				slog.Info("Access denied.", "id", id.ID, "role", id.Role, "target_id", targetID)
				fail(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func fail(w http.ResponseWriter, err error) {
	web.Fail(w, StatusOf(err), err, DetailOf(err), nil)
}

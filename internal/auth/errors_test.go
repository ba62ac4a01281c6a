package auth_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ferdiebergado/templat/internal/auth"
	"github.com/ferdiebergado/templat/internal/pkg/message"
)

func TestStatusOfAndDetailOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized, message.Unauthorized},
		{"invalid scheme", auth.ErrInvalidScheme, http.StatusUnauthorized, message.Unauthorized},
		{"wrapped invalid token", fmt.Errorf("%w: expired", auth.ErrInvalidToken), http.StatusUnauthorized, message.Unauthorized},
		{"no identity", auth.ErrNoIdentity, http.StatusUnauthorized, message.Unauthorized},
		{"forbidden", auth.ErrForbidden, http.StatusForbidden, message.Forbidden},
		{"service unavailable", fmt.Errorf("%w: dial tcp", auth.ErrServiceUnavailable), http.StatusServiceUnavailable, message.ServiceUnavailable},
		{
			"auth error with detail",
			&auth.Error{Status: http.StatusForbidden, Detail: "Suspended account", Err: auth.ErrForbidden},
			http.StatusForbidden, "Suspended account",
		},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, message.ServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := auth.StatusOf(tt.err); got != tt.wantStatus {
				t.Errorf("auth.StatusOf(%v) = %d, want: %d", tt.err, got, tt.wantStatus)
			}
			if got := auth.DetailOf(tt.err); got != tt.wantDetail {
				t.Errorf("auth.DetailOf(%v) = %q, want: %q", tt.err, got, tt.wantDetail)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("verify: %w", &auth.Error{Status: http.StatusUnauthorized, Detail: "Token revoked", Err: auth.ErrInvalidToken})

	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("errors.Is(%v, auth.ErrInvalidToken) = false, want: true", err)
	}

	var authErr *auth.Error
	if !errors.As(err, &authErr) {
		t.Fatalf("errors.As(%v, &authErr) = false, want: true", err)
	}
	if authErr.Detail != "Token revoked" {
		t.Errorf("authErr.Detail = %q, want: %q", authErr.Detail, "Token revoked")
	}
}

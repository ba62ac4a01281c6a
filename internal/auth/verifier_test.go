package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ferdiebergado/templat/internal/auth"
	"github.com/ferdiebergado/templat/internal/config"
	"github.com/ferdiebergado/templat/internal/platform/jwt"
)

func TestLocalVerifier_Verify(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)
	signer, err := jwt.NewGolangJWTSigner(&config.JWT{
		SecretKey:      "s3cr3t",
		Algorithm:      "HS256",
		ExpireMinutes:  30,
		DatetimeFormat: "%Y-%m-%d %H:%M:%S",
	}, jwt.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatal(err)
	}

	token, _, err := signer.Issue(map[string]string{
		auth.ClaimSubject: "42",
		auth.ClaimRole:    "admin",
		auth.ClaimEmail:   "alice@example.com",
	}, 0)
	if err != nil {
		t.Fatal(err)
	}

	verifier := auth.NewLocalVerifier(signer)

	id, err := verifier.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verifier.Verify(ctx, token) = %v, want: nil", err)
	}
	if id.ID != "42" {
		t.Errorf("id.ID = %q, want: %q", id.ID, "42")
	}
	if id.Role != auth.RoleAdmin {
		t.Errorf("id.Role = %q, want: %q", id.Role, auth.RoleAdmin)
	}
	if got := id.Claims[auth.ClaimEmail]; got != "alice@example.com" {
		t.Errorf("id.Claims[%q] = %v, want: %q", auth.ClaimEmail, got, "alice@example.com")
	}

	if _, err := verifier.Verify(context.Background(), token+"x"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("verifier.Verify(ctx, tampered) = %v, want: %v", err, auth.ErrInvalidToken)
	}
}

func TestLocalVerifier_UnknownRole(t *testing.T) {
	t.Parallel()

	signer := &jwt.StubSigner{
		VerifyFunc: func(_ string) (map[string]any, error) {
			return map[string]any{"sub": "9", "role": "root", "exp": float64(1)}, nil
		},
	}

	id, err := auth.NewLocalVerifier(signer).Verify(context.Background(), "token")
	if err != nil {
		t.Fatal(err)
	}
	if id.Role != "" {
		t.Errorf("id.Role = %q, want: %q", id.Role, "")
	}
	if id.ID != "9" {
		t.Errorf("id.ID = %q, want: %q", id.ID, "9")
	}
}

func TestLocalVerifier_SignerError(t *testing.T) {
	t.Parallel()

	signer := &jwt.StubSigner{
		VerifyFunc: func(_ string) (map[string]any, error) {
			return nil, jwt.ErrInvalidToken
		},
	}

	_, err := auth.NewLocalVerifier(signer).Verify(context.Background(), "token")
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("Verify(ctx, %q) = %v, want: %v", "token", err, auth.ErrInvalidToken)
	}
	if !errors.Is(err, jwt.ErrInvalidToken) {
		t.Errorf("Verify(ctx, %q) = %v, want wrapped: %v", "token", err, jwt.ErrInvalidToken)
	}
}

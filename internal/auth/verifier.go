package auth

import (
	"context"
	"fmt"

	"github.com/ferdiebergado/templat/internal/platform/jwt"
)

// Verifier turns a bearer token into a verified identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// LocalVerifier checks self-issued tokens with the shared signing secret.
type LocalVerifier struct {
	signer jwt.Signer
}

var _ Verifier = (*LocalVerifier)(nil)

func NewLocalVerifier(signer jwt.Signer) *LocalVerifier {
	return &LocalVerifier{signer: signer}
}

func (v *LocalVerifier) Verify(_ context.Context, token string) (*Identity, error) {
	claims, err := v.signer.Verify(token)
	if err != nil {
		recordVerification(verifierLocal, outcomeRejected)
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	recordVerification(verifierLocal, outcomeSuccess)
	return identityFromClaims(claims, ClaimSubject), nil
}

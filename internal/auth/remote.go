package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ferdiebergado/templat/internal/pkg/web"
)

// maxRemoteBody caps how much of the auth service response is read.
const maxRemoteBody = 1 << 20

// RemoteVerifier delegates token verification to an external auth service.
// Every call makes exactly one GET request; results are not cached.
type RemoteVerifier struct {
	endpoint string
	client   *http.Client
}

var _ Verifier = (*RemoteVerifier)(nil)

// NewRemoteVerifier uses client for every call so connections are pooled across requests.
func NewRemoteVerifier(endpoint string, client *http.Client) *RemoteVerifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &RemoteVerifier{endpoint: endpoint, client: client}
}

func (v *RemoteVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoint, nil)
	if err != nil {
		recordVerification(verifierRemote, outcomeUnavailable)
		return nil, fmt.Errorf("%w: build request: %w", ErrServiceUnavailable, err)
	}
	req.Header.Set(web.HeaderAuthorization, bearerScheme+" "+token)

	start := time.Now()
	res, err := v.client.Do(req)
	remoteLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		recordVerification(verifierRemote, outcomeUnavailable)
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxRemoteBody))
	if err != nil {
		recordVerification(verifierRemote, outcomeUnavailable)
		return nil, fmt.Errorf("%w: read response: %w", ErrServiceUnavailable, err)
	}

	if res.StatusCode != http.StatusOK {
		recordVerification(verifierRemote, outcomeRejected)
		return nil, remoteFailure(res.StatusCode, body)
	}

	var record map[string]any
	if err := json.Unmarshal(body, &record); err != nil {
		recordVerification(verifierRemote, outcomeUnavailable)
		return nil, fmt.Errorf("%w: decode identity: %w", ErrServiceUnavailable, err)
	}
	if record == nil {
		recordVerification(verifierRemote, outcomeUnavailable)
		return nil, fmt.Errorf("%w: empty identity record", ErrServiceUnavailable)
	}

	recordVerification(verifierRemote, outcomeSuccess)
	return identityFromClaims(record, remoteIDKey), nil
}

// remoteFailure builds the auth error for a rejected token, carrying the remote detail.
func remoteFailure(statusCode int, body []byte) *Error {
	var payload struct {
		Detail any `json:"detail"`
	}
	detail := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		detail = stringClaim(payload.Detail)
	}
	if detail == "" {
		detail = http.StatusText(statusCode)
	}

	if statusCode == http.StatusForbidden {
		return &Error{Status: http.StatusForbidden, Detail: detail, Err: ErrForbidden}
	}
	return &Error{Status: http.StatusUnauthorized, Detail: detail, Err: ErrInvalidToken}
}

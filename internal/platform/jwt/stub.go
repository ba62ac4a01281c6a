package jwt

import (
	"errors"
	"time"
)

type StubSigner struct {
	IssueFunc  func(claims map[string]string, ttl time.Duration) (string, string, error)
	VerifyFunc func(token string) (map[string]any, error)
}

var _ Signer = (*StubSigner)(nil)

func (s *StubSigner) Issue(claims map[string]string, ttl time.Duration) (token, expiry string, err error) {
	if s.IssueFunc == nil {
		return "", "", errors.New("Issue() not implemented by stub")
	}

	return s.IssueFunc(claims, ttl)
}

func (s *StubSigner) Verify(token string) (map[string]any, error) {
	if s.VerifyFunc == nil {
		return nil, errors.New("Verify() not implemented by stub")
	}

	return s.VerifyFunc(token)
}

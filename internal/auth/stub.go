package auth

import (
	"context"
	"errors"

	"github.com/ferdiebergado/templat/internal/user"
)

type StubVerifier struct {
	VerifyFunc func(ctx context.Context, token string) (*Identity, error)
}

var _ Verifier = (*StubVerifier)(nil)

func (s *StubVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	if s.VerifyFunc == nil {
		return nil, errors.New("Verify() not implemented by stub")
	}
	return s.VerifyFunc(ctx, token)
}

type StubService struct {
	RegisterFunc func(ctx context.Context, params RegisterParams) (user.User, error)
	LoginFunc    func(ctx context.Context, params LoginParams) (LoginResult, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) Register(ctx context.Context, params RegisterParams) (user.User, error) {
	if s.RegisterFunc == nil {
		return user.User{}, errors.New("Register() not implemented by stub")
	}
	return s.RegisterFunc(ctx, params)
}

func (s *StubService) Login(ctx context.Context, params LoginParams) (LoginResult, error) {
	if s.LoginFunc == nil {
		return LoginResult{}, errors.New("Login() not implemented by stub")
	}
	return s.LoginFunc(ctx, params)
}

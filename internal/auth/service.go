package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ferdiebergado/templat/internal/platform/db"
	"github.com/ferdiebergado/templat/internal/platform/hash"
	"github.com/ferdiebergado/templat/internal/platform/jwt"
	"github.com/ferdiebergado/templat/internal/user"
)

const maskChar = "*"

// Service registers and logs in users of the self-hosted mode.
type Service interface {
	Register(ctx context.Context, params RegisterParams) (user.User, error)
	Login(ctx context.Context, params LoginParams) (LoginResult, error)
}

type RegisterParams struct {
	Email    string
	Password string
	// Role defaults to RoleUser when empty.
	Role Role
}

func (p RegisterParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", p.Email),
		slog.String("password", maskChar),
		slog.String("role", p.Role.String()),
	)
}

type LoginParams struct {
	Email    string
	Password string
}

func (p LoginParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", p.Email),
		slog.String("password", maskChar),
	)
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   string
}

type service struct {
	users  user.Service
	hasher hash.Hasher
	signer jwt.Signer
	txMgr  db.TxManager
	ttl    time.Duration
}

var _ Service = (*service)(nil)

// NewService returns the self-hosted auth service. A ttl <= 0 uses the signer's default.
func NewService(users user.Service, hasher hash.Hasher, signer jwt.Signer, txMgr db.TxManager, ttl time.Duration) Service {
	return &service{
		users:  users,
		hasher: hasher,
		signer: signer,
		txMgr:  txMgr,
		ttl:    ttl,
	}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (user.User, error) {
	role := params.Role
	if role == "" {
		role = RoleUser
	}
	if !role.Valid() {
		return user.User{}, fmt.Errorf("register %s: %w: %q", params.Email, ErrUnknownRole, role)
	}

	passwordHash, err := s.hasher.Hash(params.Password)
	if errors.Is(err, hash.ErrPasswordTooLong) {
		return user.User{}, fmt.Errorf("register %s: %w", params.Email, ErrPasswordTooLong)
	}
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}

	var newUser user.User
	err = s.txMgr.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.users.FindUserByEmail(ctx, params.Email)
		if err != nil && !errors.Is(err, user.ErrNotFound) {
			return fmt.Errorf("find user with email %s: %w", params.Email, err)
		}
		if existing != nil {
			return ErrUserExists
		}

		newUser, err = s.users.CreateUser(ctx, user.CreateParams{
			Email:        params.Email,
			PasswordHash: passwordHash,
			Role:         role.String(),
		})
		if err != nil {
			if errors.Is(err, user.ErrDuplicate) {
				return ErrUserExists
			}
			return fmt.Errorf("create user %s: %w", params.Email, err)
		}
		return nil
	})
	if err != nil {
		return user.User{}, fmt.Errorf("register user: %w", err)
	}

	slog.Info("User registered.", "id", newUser.ID, "role", newUser.Role)
	return newUser, nil
}

func (s *service) Login(ctx context.Context, params LoginParams) (LoginResult, error) {
	u, err := s.users.FindUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("find user by email: %w", err)
	}

	ok, err := s.hasher.Verify(params.Password, u.PasswordHash)
	if err != nil {
		return LoginResult{}, fmt.Errorf("verify password for user %s: %w", u.ID, err)
	}
	if !ok {
		return LoginResult{}, ErrInvalidCredentials
	}

	claims := map[string]string{
		ClaimSubject: u.ID,
		ClaimRole:    u.Role,
		ClaimEmail:   u.Email,
	}
	token, expiry, err := s.signer.Issue(claims, s.ttl)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue access token for user %s: %w", u.ID, err)
	}

	return LoginResult{AccessToken: token, ExpiresAt: expiry}, nil
}

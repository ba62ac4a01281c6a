package user

import (
	"context"
	"fmt"
)

type Service interface {
	CreateUser(ctx context.Context, params CreateParams) (User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	FindUser(ctx context.Context, userID string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
}

type service struct {
	repo Repository
}

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateUser(ctx context.Context, params CreateParams) (User, error) {
	u, err := s.repo.Create(ctx, params)
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *service) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

func (s *service) FindUser(ctx context.Context, userID string) (*User, error) {
	u, err := s.repo.Find(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (s *service) ListUsers(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

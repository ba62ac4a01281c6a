package user

import (
	"context"
	"errors"
)

type StubService struct {
	CreateUserFunc      func(ctx context.Context, params CreateParams) (User, error)
	FindUserByEmailFunc func(ctx context.Context, email string) (*User, error)
	FindUserFunc        func(ctx context.Context, userID string) (*User, error)
	ListUsersFunc       func(ctx context.Context) ([]User, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) CreateUser(ctx context.Context, params CreateParams) (User, error) {
	if s.CreateUserFunc == nil {
		return User{}, errors.New("CreateUser() not implemented by stub")
	}
	return s.CreateUserFunc(ctx, params)
}

func (s *StubService) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	if s.FindUserByEmailFunc == nil {
		return nil, errors.New("FindUserByEmail() not implemented by stub")
	}
	return s.FindUserByEmailFunc(ctx, email)
}

func (s *StubService) FindUser(ctx context.Context, userID string) (*User, error) {
	if s.FindUserFunc == nil {
		return nil, errors.New("FindUser() not implemented by stub")
	}
	return s.FindUserFunc(ctx, userID)
}

func (s *StubService) ListUsers(ctx context.Context) ([]User, error) {
	if s.ListUsersFunc == nil {
		return nil, errors.New("ListUsers() not implemented by stub")
	}
	return s.ListUsersFunc(ctx)
}

type StubRepo struct {
	CreateFunc      func(ctx context.Context, params CreateParams) (User, error)
	ListFunc        func(ctx context.Context) ([]User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*User, error)
	FindFunc        func(ctx context.Context, userID string) (*User, error)
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (User, error) {
	if r.CreateFunc == nil {
		return User{}, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) List(ctx context.Context) ([]User, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}

func (r *StubRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	if r.FindByEmailFunc == nil {
		return nil, errors.New("FindByEmail() not implemented by stub")
	}
	return r.FindByEmailFunc(ctx, email)
}

func (r *StubRepo) Find(ctx context.Context, userID string) (*User, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, userID)
}

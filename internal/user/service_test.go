package user_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/ferdiebergado/templat/internal/model"
	"github.com/ferdiebergado/templat/internal/user"
)

func TestService_ListUsers(t *testing.T) {
	t.Parallel()

	now := time.Now()
	users := []user.User{
		{Model: model.Model{ID: "1", CreatedAt: now, UpdatedAt: now}, Email: "a@example.com", Role: "admin"},
		{Model: model.Model{ID: "2", CreatedAt: now, UpdatedAt: now}, Email: "b@example.com", Role: "user"},
	}
	errRepo := errors.New("connection refused")

	tests := []struct {
		name      string
		repo      user.Repository
		wantUsers []user.User
		wantErr   error
	}{
		{
			name: "success - returns users",
			repo: &user.StubRepo{
				ListFunc: func(_ context.Context) ([]user.User, error) { return users, nil },
			},
			wantUsers: users,
		},
		{
			name: "failure - repository error",
			repo: &user.StubRepo{
				ListFunc: func(_ context.Context) ([]user.User, error) { return nil, errRepo },
			},
			wantErr: errRepo,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := user.NewService(tt.repo).ListUsers(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("svc.ListUsers(ctx) = %v, want: %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.wantUsers) {
				t.Errorf("svc.ListUsers(ctx) = %+v, want: %+v", got, tt.wantUsers)
			}
		})
	}
}

func TestService_FindUser(t *testing.T) {
	t.Parallel()

	repo := &user.StubRepo{
		FindFunc: func(_ context.Context, id string) (*user.User, error) {
			if id == "missing" {
				return nil, user.ErrNotFound
			}
			return &user.User{Model: model.Model{ID: id}}, nil
		},
		FindByEmailFunc: func(_ context.Context, email string) (*user.User, error) {
			if email == "missing@example.com" {
				return nil, user.ErrNotFound
			}
			return &user.User{Email: email}, nil
		},
	}
	svc := user.NewService(repo)
	ctx := context.Background()

	if u, err := svc.FindUser(ctx, "42"); err != nil || u.ID != "42" {
		t.Errorf("svc.FindUser(ctx, %q) = %+v, %v, want: user 42", "42", u, err)
	}
	if _, err := svc.FindUser(ctx, "missing"); !errors.Is(err, user.ErrNotFound) {
		t.Errorf("svc.FindUser(ctx, %q) = %v, want: %v", "missing", err, user.ErrNotFound)
	}
	if u, err := svc.FindUserByEmail(ctx, "ana@example.com"); err != nil || u.Email != "ana@example.com" {
		t.Errorf("svc.FindUserByEmail(ctx, %q) = %+v, %v", "ana@example.com", u, err)
	}
	if _, err := svc.FindUserByEmail(ctx, "missing@example.com"); !errors.Is(err, user.ErrNotFound) {
		t.Errorf("svc.FindUserByEmail(ctx, missing) = %v, want: %v", err, user.ErrNotFound)
	}
}

func TestService_CreateUser(t *testing.T) {
	t.Parallel()

	repo := &user.StubRepo{
		CreateFunc: func(_ context.Context, params user.CreateParams) (user.User, error) {
			if params.Email == "taken@example.com" {
				return user.User{}, user.ErrDuplicate
			}
			return user.User{Model: model.Model{ID: "1"}, Email: params.Email, Role: params.Role}, nil
		},
	}
	svc := user.NewService(repo)

	u, err := svc.CreateUser(context.Background(), user.CreateParams{Email: "new@example.com", PasswordHash: "h", Role: "guest"})
	if err != nil {
		t.Fatal(err)
	}
	if u.Role != "guest" {
		t.Errorf("u.Role = %q, want: %q", u.Role, "guest")
	}

	if _, err := svc.CreateUser(context.Background(), user.CreateParams{Email: "taken@example.com"}); !errors.Is(err, user.ErrDuplicate) {
		t.Errorf("svc.CreateUser(taken) = %v, want: %v", err, user.ErrDuplicate)
	}
}

package user_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ferdiebergado/templat/internal/model"
	"github.com/ferdiebergado/templat/internal/pkg/web"
	"github.com/ferdiebergado/templat/internal/user"
)

func TestHandler_List(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 10, 18, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		svc            user.Service
		wantStatusCode int
		wantBody       *user.ListResponse
	}{
		{
			name: "success - returns user list",
			svc: &user.StubService{
				ListUsersFunc: func(_ context.Context) ([]user.User, error) {
					return []user.User{
						{
							Model:        model.Model{ID: "1", Metadata: []byte(`{"team":"ops"}`), CreatedAt: now, UpdatedAt: now},
							Email:        "a@example.com",
							PasswordHash: "hash1",
							Role:         "admin",
						},
						{
							Model:        model.Model{ID: "2", CreatedAt: now, UpdatedAt: now},
							Email:        "b@example.com",
							PasswordHash: "hash2",
							Role:         "user",
						},
					}, nil
				},
			},
			wantStatusCode: http.StatusOK,
			wantBody: &user.ListResponse{
				Users: []user.UserData{
					{ID: "1", Email: "a@example.com", Role: "admin", Metadata: json.RawMessage(`{"team":"ops"}`), CreatedAt: now, UpdatedAt: now},
					{ID: "2", Email: "b@example.com", Role: "user", CreatedAt: now, UpdatedAt: now},
				},
			},
		},
		{
			name: "success - empty list",
			svc: &user.StubService{
				ListUsersFunc: func(_ context.Context) ([]user.User, error) {
					return nil, nil
				},
			},
			wantStatusCode: http.StatusOK,
			wantBody:       &user.ListResponse{Users: []user.UserData{}},
		},
		{
			name: "failure - service error",
			svc: &user.StubService{
				ListUsersFunc: func(_ context.Context) ([]user.User, error) {
					return nil, errors.New("db down")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/users", http.NoBody)
			rec := httptest.NewRecorder()

			user.NewHandler(tt.svc).List(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.wantStatusCode {
				t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, tt.wantStatusCode)
			}

			if tt.wantBody == nil {
				return
			}

			web.AssertContentType(t, res)

			var got web.OKResponse[user.ListResponse]
			if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(&got.Data, tt.wantBody) {
				t.Errorf("response data = %+v, want: %+v", got.Data, tt.wantBody)
			}
		})
	}
}

func TestHandler_Show(t *testing.T) {
	t.Parallel()

	const userID = "0198f4c2-7d1e-7a55-9d2f-0b1c2d3e4f50"
	now := time.Date(2025, 10, 18, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		findErr  error
		wantCode int
	}{
		{"Found", nil, http.StatusOK},
		{"Not found", fmt.Errorf("find user: %w", user.ErrNotFound), http.StatusNotFound},
		{"Query failed", user.ErrQueryFailed, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &user.StubService{
				FindUserFunc: func(_ context.Context, id string) (*user.User, error) {
					if tt.findErr != nil {
						return nil, tt.findErr
					}
					return &user.User{
						Model:        model.Model{ID: id, CreatedAt: now, UpdatedAt: now},
						Email:        "ana@example.com",
						PasswordHash: "$2a$04$secret",
						Role:         "user",
					}, nil
				},
			}

			req := httptest.NewRequest(http.MethodGet, "/users/"+userID, http.NoBody)
			req.SetPathValue(user.PathUserID, userID)
			rec := httptest.NewRecorder()

			user.NewHandler(svc).Show(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.wantCode)
			}

			if strings.Contains(rec.Body.String(), "$2a$04$secret") {
				t.Errorf("rec.Body.String() = %q, want no password hash", rec.Body.String())
			}

			if tt.wantCode == http.StatusOK && !strings.Contains(rec.Body.String(), userID) {
				t.Errorf("rec.Body.String() = %q, want it to contain %q", rec.Body.String(), userID)
			}
		})
	}
}

package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/templat/internal/auth"
	"github.com/ferdiebergado/templat/internal/middleware"
	"github.com/ferdiebergado/templat/internal/pkg/web"
)

func TestDecodePayload(t *testing.T) {
	t.Parallel()

	const header = "X-Handler-Called"

	type person struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	tests := []struct {
		name     string
		code     int
		payload  []byte
		bodySize int64
		header   string
	}{
		{"Valid payload", http.StatusOK, []byte(`{"name":"juan","age":47}`), 32, "true"},
		{"Payload too large", http.StatusRequestEntityTooLarge, []byte(`{"name": "agnis", "age": 13}`), 4, ""},
		{"Unknown field", http.StatusUnprocessableEntity, []byte(`{"name": "yaye", "age": 12, "is_smart": true}`), 64, ""},
		{"Extra payload", http.StatusBadRequest, []byte(`{"name": "bibi buy", "age": 2}{"name": "aremondeng", "age": 6}`), 64, ""},
		{"Incorrect data type", http.StatusBadRequest, []byte(`{"name": "agnis", "age": "13"}`), 64, ""},
		{"Malformed payload", http.StatusBadRequest, []byte(`{"name"`), 64, ""},
		{"Array passed to string", http.StatusBadRequest, []byte(`{"name": ["agnis", "yaye"], "age": "13"}`), 64, ""},
		{"Array within a string", http.StatusBadRequest, []byte(`{"name": "["agnis", "yaye"]", "age": "13"}`), 64, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				params, err := web.ParamsFromContext[person](r.Context())
				if err != nil {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}

				w.Header().Set(header, "true")
				w.WriteHeader(http.StatusOK)
				if err := json.NewEncoder(w).Encode(&params); err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
			})

			body := bytes.NewBuffer(tt.payload)
			req := httptest.NewRequest(http.MethodPost, "/", body)
			rec := httptest.NewRecorder()
			mw := middleware.DecodePayload[person](tt.bodySize)(handler)
			mw.ServeHTTP(rec, req)

			gotCode, wantCode := rec.Code, tt.code
			if gotCode != wantCode {
				t.Errorf("rec.Code = %d, want: %d", gotCode, wantCode)
			}

			gotHeader, wantHeader := rec.Header().Get(header), tt.header
			if gotHeader != wantHeader {
				t.Errorf("rec.Header().Get(%q) = %q, want: %q", header, gotHeader, wantHeader)
			}

			gotBody := strings.TrimSuffix(rec.Body.String(), "\n")
			wantBody := string(tt.payload)
			if tt.header == "true" && gotBody != wantBody {
				t.Errorf("rec.Body.String() = %q, want: %q", gotBody, wantBody)
			}
		})
	}
}

func TestDecodePayload_RegisterRequest(t *testing.T) {
	t.Parallel()

	const maxBody = 256

	tests := []struct {
		name      string
		payload   string
		bodySize  int64
		code      int
		wantEmail string
	}{
		{"Valid registration", `{"email":"fely@example.com","password":"secret123","password_confirm":"secret123"}`,
			maxBody, http.StatusOK, "fely@example.com"},
		{"Role smuggled in", `{"email":"fely@example.com","password":"secret123","password_confirm":"secret123","role":"admin"}`,
			maxBody, http.StatusUnprocessableEntity, ""},
		{"Registration too large", `{"email":"fely@example.com","password":"secret123","password_confirm":"secret123"}`,
			16, http.StatusRequestEntityTooLarge, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotEmail string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				req, err := web.ParamsFromContext[auth.RegisterRequest](r.Context())
				if err != nil {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}
				gotEmail = req.Email
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.payload))
			rec := httptest.NewRecorder()
			middleware.DecodePayload[auth.RegisterRequest](tt.bodySize)(handler).ServeHTTP(rec, req)

			if rec.Code != tt.code {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.code)
			}
			if gotEmail != tt.wantEmail {
				t.Errorf("req.Email = %q, want: %q", gotEmail, tt.wantEmail)
			}
		})
	}
}

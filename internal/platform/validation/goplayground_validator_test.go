package validation_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ferdiebergado/templat/internal/platform/validation"
)

func TestGoPlaygroundValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	type registerRequest struct {
		Email           string `json:"email" validate:"required,email"`
		Password        string `json:"password" validate:"required,min=8,maxbytes=72"`
		PasswordConfirm string `json:"password_confirm" validate:"eqfield=Password"`
		Role            string `json:"role,omitempty" validate:"omitempty,oneof=admin user guest"`
	}

	tests := []struct {
		name  string
		given registerRequest
		want  map[string]string
	}{
		{"Valid", registerRequest{"ana@example.com", "password1", "password1", "user"}, nil},
		{"Missing email", registerRequest{"", "password1", "password1", ""}, map[string]string{
			"email": "email is required",
		}},
		{"Invalid email and short password", registerRequest{"ana@", "short", "short", ""}, map[string]string{
			"email":    "email must be a valid email address",
			"password": "password must be at least 8 characters long",
		}},
		{"Mismatched confirmation", registerRequest{"ana@example.com", "password1", "password2", ""}, map[string]string{
			"password_confirm": "password_confirm should match Password",
		}},
		{"72 ascii characters", registerRequest{"ana@example.com", strings.Repeat("a", 72), strings.Repeat("a", 72), ""}, nil},
		{"72 two-byte characters", registerRequest{"ana@example.com", strings.Repeat("é", 72), strings.Repeat("é", 72), ""}, map[string]string{
			"password": "password must be at most 72 bytes long",
		}},
		{"Unknown role", registerRequest{"ana@example.com", "password1", "password1", "root"}, map[string]string{
			"role": "role must be one of: admin, user, guest",
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v := validation.NewGoPlaygroundValidator()

			got := v.ValidateStruct(tc.given)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("v.ValidateStruct(%+v) = %v, want: %v", tc.given, got, tc.want)
			}
		})
	}
}

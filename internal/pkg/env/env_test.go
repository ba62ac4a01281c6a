package env_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/ferdiebergado/templat/internal/pkg/env"
	timex "github.com/ferdiebergado/templat/internal/pkg/time"
)

func TestOverrideStruct(t *testing.T) {
	type jwtOpts struct {
		Secret        string         `env:"SECRET_KEY"`
		ExpireMinutes int            `env:"ACCESS_TOKEN_EXPIRE_MINUTES"`
		Cost          uint8          `env:"BCRYPT_COST"`
		Leeway        timex.Duration `env:"JWT_LEEWAY"`
	}

	type settings struct {
		Env     string `env:"ENV"`
		Debug   bool   `env:"DEBUG"`
		Region  string `env:"S3_REGION"`
		JWTOpts *jwtOpts
	}

	got := settings{
		Env:    "development",
		Region: "auto",
		JWTOpts: &jwtOpts{
			ExpireMinutes: 30,
		},
	}

	t.Setenv("ENV", "testing")
	t.Setenv("DEBUG", "true")
	t.Setenv("SECRET_KEY", "s3cr3t")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("JWT_LEEWAY", "5s")

	if err := env.OverrideStruct(&got); err != nil {
		t.Fatal(err)
	}

	want := settings{
		Env:    "testing",
		Debug:  true,
		Region: "auto",
		JWTOpts: &jwtOpts{
			Secret:        "s3cr3t",
			ExpireMinutes: 15,
			Cost:          4,
			Leeway:        timex.Duration{Duration: 5 * time.Second},
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("env.OverrideStruct(&got) = %+v, want: %+v", got, want)
	}
}

func TestOverrideStruct_InvalidValue(t *testing.T) {
	type opts struct {
		Port int `env:"PORT"`
	}

	t.Setenv("PORT", "eighty")

	var o opts
	if err := env.OverrideStruct(&o); err == nil {
		t.Errorf("env.OverrideStruct(&o) = %v, want: error", err)
	}
}

func TestOverrideStruct_NotAPointer(t *testing.T) {
	t.Parallel()

	type opts struct{}

	if err := env.OverrideStruct(opts{}); err == nil {
		t.Errorf("env.OverrideStruct(opts{}) = %v, want: error", err)
	}
}

func TestEnv(t *testing.T) {
	const fallback = "example.com"

	tests := []struct {
		name, envVar, envVal, fallback, val string
	}{
		{"EnvVar is set", "TEMPLAT_TEST_HOST", "localhost", fallback, "localhost"},
		{"EnvVar is not set", "TEMPLAT_TEST_HOST", "", fallback, fallback},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envVal != "" {
				t.Setenv(tc.envVar, tc.envVal)
			}
			val := env.Env(tc.envVar, tc.fallback)

			if val != tc.val {
				t.Errorf("env.Env(%q, %q) = %q, want: %q", tc.envVar, tc.fallback, val, tc.val)
			}
		})
	}
}

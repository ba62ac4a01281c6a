package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/ferdiebergado/templat/internal/pkg/env"
	timex "github.com/ferdiebergado/templat/internal/pkg/time"
)

const (
	ModeSelf      = "self"
	ModeDelegated = "delegated"

	EnvProduction = "production"

	maskChar = "*"
)

type App struct {
	Env      string `json:"env,omitempty" env:"ENV"`
	LogLevel string `json:"log_level,omitempty" env:"LOG_LEVEL"`
	Mode     string `json:"mode,omitempty" env:"AUTH_MODE"`
}

type Server struct {
	Port            int            `json:"port,omitempty" env:"PORT"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty"`
	// AllowedOrigin enables CORS for a single browser origin when set.
	AllowedOrigin string `json:"allowed_origin,omitempty" env:"ALLOWED_ORIGIN"`
}

type DB struct {
	Driver          string         `json:"driver,omitempty"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`

	Host     string `json:"-" env:"DB_HOST"`
	Port     string `json:"-" env:"DB_PORT"`
	User     string `json:"-" env:"DB_USER"`
	Password string `json:"-" env:"DB_PASS"`
	Name     string `json:"-" env:"DB_NAME"`
	SSLMode  string `json:"-" env:"DB_SSLMODE"`
}

// DSN returns the postgres connection string built from the DB_* environment variables.
func (d *DB) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     d.Name,
		RawQuery: "sslmode=" + d.SSLMode,
	}
	return u.String()
}

func (d *DB) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("driver", d.Driver),
		slog.Int("max_open_conns", d.MaxOpenConns),
		slog.Int("max_idle_conns", d.MaxIdleConns),
		slog.String("host", d.Host),
		slog.String("name", d.Name),
		slog.String("password", maskChar),
	)
}

type JWT struct {
	SecretKey      string `json:"-" env:"SECRET_KEY"`
	Algorithm      string `json:"algorithm,omitempty" env:"ALGORITHM"`
	ExpireMinutes  int    `json:"expire_minutes,omitempty" env:"ACCESS_TOKEN_EXPIRE_MINUTES"`
	DatetimeFormat string `json:"datetime_format,omitempty" env:"DATETIME_FORMAT"`
}

// TTL returns the default access token lifetime.
func (j *JWT) TTL() time.Duration {
	return time.Duration(j.ExpireMinutes) * time.Minute
}

func (j *JWT) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("secret_key", maskChar),
		slog.String("algorithm", j.Algorithm),
		slog.Int("expire_minutes", j.ExpireMinutes),
		slog.String("datetime_format", j.DatetimeFormat),
	)
}

type Bcrypt struct {
	Cost int `json:"cost,omitempty" env:"BCRYPT_COST"`
}

type RemoteAuth struct {
	Endpoint string         `json:"endpoint,omitempty" env:"AUTH_SERVICE_ENDPOINT"`
	Timeout  timex.Duration `json:"timeout,omitempty"`
}

type Storage struct {
	AccessKeyID     string         `json:"-" env:"S3_ACCESS_ID"`
	SecretAccessKey string         `json:"-" env:"S3_SECRET_KEY"`
	Endpoint        string         `json:"endpoint,omitempty" env:"S3_BUCKET_URL"`
	Region          string         `json:"region,omitempty" env:"S3_REGION"`
	Bucket          string         `json:"bucket,omitempty" env:"S3_BUCKET"`
	LinkTTL         timex.Duration `json:"link_ttl,omitempty"`
	MaxUploadBytes  int64          `json:"max_upload_bytes,omitempty"`
}

// Enabled reports whether enough settings are present to reach the object store.
func (s *Storage) Enabled() bool {
	return s.Endpoint != "" && s.Bucket != ""
}

func (s *Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("access_key_id", maskChar),
		slog.String("secret_access_key", maskChar),
		slog.String("endpoint", s.Endpoint),
		slog.String("region", s.Region),
		slog.String("bucket", s.Bucket),
		slog.Duration("link_ttl", s.LinkTTL.Duration),
		slog.Int64("max_upload_bytes", s.MaxUploadBytes),
	)
}

type Config struct {
	App        *App        `json:"app,omitempty"`
	Server     *Server     `json:"server,omitempty"`
	DB         *DB         `json:"db,omitempty"`
	JWT        *JWT        `json:"jwt,omitempty"`
	Bcrypt     *Bcrypt     `json:"bcrypt,omitempty"`
	RemoteAuth *RemoteAuth `json:"remote_auth,omitempty"`
	Storage    *Storage    `json:"storage,omitempty"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("app", c.App),
		slog.Any("server", c.Server),
		slog.Any("db", c.DB),
		slog.Any("jwt", c.JWT),
		slog.Any("bcrypt", c.Bcrypt),
		slog.Any("remote_auth", c.RemoteAuth),
		slog.Any("storage", c.Storage),
	)
}

// Load reads the JSON config file, applies environment overrides and fills in defaults.
// A missing config file is not an error: the defaults and the environment are used instead.
func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg, err := parseCfgFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := env.OverrideStruct(cfg); err != nil {
		return nil, fmt.Errorf("override config with env: %w", err)
	}

	applyDefaults(cfg)

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseCfgFile(cfgFile string) (*Config, error) {
	cfgFile = filepath.Clean(cfgFile)
	configFile, err := os.ReadFile(cfgFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Config file not found, using defaults.", "config_file", cfgFile)
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := json.Unmarshal(configFile, &cfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Mode == "" {
		cfg.App.Mode = ModeSelf
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = "info"
	}

	srv := cfg.Server
	if srv.Port == 0 {
		srv.Port = 8888
	}
	setDuration(&srv.ReadTimeout, 10*time.Second)
	setDuration(&srv.WriteTimeout, 10*time.Second)
	setDuration(&srv.IdleTimeout, time.Minute)
	setDuration(&srv.ShutdownTimeout, 10*time.Second)
	if srv.MaxBodyBytes == 0 {
		srv.MaxBodyBytes = 1 << 20
	}

	db := cfg.DB
	if db.Driver == "" {
		db.Driver = "pgx"
	}
	if db.SSLMode == "" {
		db.SSLMode = "disable"
	}
	setDuration(&db.PingTimeout, 5*time.Second)

	jwt := cfg.JWT
	if jwt.Algorithm == "" {
		jwt.Algorithm = "HS256"
	}
	if jwt.ExpireMinutes <= 0 {
		jwt.ExpireMinutes = 30
	}
	if jwt.DatetimeFormat == "" {
		jwt.DatetimeFormat = "%Y-%m-%d %H:%M:%S"
	}

	if cfg.Bcrypt.Cost == 0 {
		cfg.Bcrypt.Cost = 12
	}

	setDuration(&cfg.RemoteAuth.Timeout, 10*time.Second)

	st := cfg.Storage
	if st.Region == "" {
		st.Region = "auto"
	}
	setDuration(&st.LinkTTL, time.Hour)
	if st.MaxUploadBytes == 0 {
		st.MaxUploadBytes = 10 << 20
	}
}

func setDuration(d *timex.Duration, fallback time.Duration) {
	if d.Duration == 0 {
		d.Duration = fallback
	}
}

// Package config reads the API's settings from the environment. Unparseable
// values keep their defaults; values that parse but make no sense are
// reported by Validate.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// CORSConfig lists browser origins allowed to call the API. Empty means
// any origin, without credentials.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig controls Strict-Transport-Security.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// DatabaseConfig selects and tunes the relational store.
type DatabaseConfig struct {
	URL          string // DATABASE_URL; postgres:// or postgresql:// selects PostgreSQL
	Path         string // DB_PATH; SQLite file used when URL is not PostgreSQL
	MaxOpenConns int    // DB_MAX_OPEN_CONNS
	MaxIdleConns int    // DB_MAX_IDLE_CONNS
}

// IsPostgres reports whether URL points at a PostgreSQL server.
func (d DatabaseConfig) IsPostgres() bool {
	u := strings.ToLower(strings.TrimSpace(d.URL))
	return strings.HasPrefix(u, "postgres://") || strings.HasPrefix(u, "postgresql://")
}

// AuthConfig defines how staff session tokens are signed and read.
type AuthConfig struct {
	JWTSecret  string        // AUTH_JWT_SECRET; empty disables sessions
	Issuer     string        // AUTH_ISSUER
	TokenTTL   time.Duration // AUTH_TOKEN_TTL
	CookieName string        // AUTH_COOKIE_NAME
}

// Enabled reports whether a signing secret is configured.
func (a AuthConfig) Enabled() bool { return a.JWTSecret != "" }

// OTELConfig selects trace export.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT, host:port of a gRPC collector
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE; plaintext gRPC
	ServiceName string  // OTEL_SERVICE_NAME
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG, 0..1
}

// Config is the whole runtime configuration of the API process.
type Config struct {
	// HTTP server
	Port              string        // PORT, without a colon
	ReadTimeout       time.Duration // READ_TIMEOUT
	ReadHeaderTimeout time.Duration // READ_HEADER_TIMEOUT
	WriteTimeout      time.Duration // WRITE_TIMEOUT
	IdleTimeout       time.Duration // IDLE_TIMEOUT
	ShutdownTimeout   time.Duration // SHUTDOWN_TIMEOUT
	MaxHeaderBytes    int           // MAX_HEADER_BYTES
	MaxBodyBytes      int64         // MAX_BODY_BYTES
	GinMode           string        // GIN_MODE; unknown values mean release

	LogLevel       string // LOG_LEVEL
	LogPretty      bool   // LOG_PRETTY
	SwaggerEnabled bool   // SWAGGER_ENABLED
	APIBasePath    string // API_BASE_PATH, normalised to "/x/y"

	Database DatabaseConfig
	Auth     AuthConfig

	// Rate limiting (global bucket and the stricter intake bucket)
	RateRPS         float64
	RateBurst       int
	IntakeRateRPS   float64
	IntakeRateBurst int

	CORS     CORSConfig
	Security SecurityConfig

	IdempotencyTTL time.Duration // IDEMPOTENCY_TTL; how long a key maps to its first submission

	OTEL OTELConfig
}

// MustLoad is Load for callers that cannot continue without a config.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load builds a Config from the environment and validates it. The returned
// Config is populated even when err is non-nil.
func Load() (Config, error) {
	cfg := Config{
		Database: databaseFromEnv(),
		Auth:     authFromEnv(),
		CORS:     CORSConfig{AllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", ""))},
		Security: SecurityConfig{
			EnableHSTS: getbool("ENABLE_HSTS", false),
			HSTSMaxAge: getdur("HSTS_MAX_AGE", 180*24*time.Hour),
		},
		IdempotencyTTL: getdur("IDEMPOTENCY_TTL", 24*time.Hour),
		OTEL:           otelFromEnv(),
	}
	cfg.serverFromEnv()
	cfg.limitsFromEnv()
	return cfg, cfg.Validate()
}

func (c *Config) serverFromEnv() {
	c.Port = getenv("PORT", "8080")
	c.ReadTimeout = getdur("READ_TIMEOUT", 15*time.Second)
	c.ReadHeaderTimeout = getdur("READ_HEADER_TIMEOUT", 10*time.Second)
	c.WriteTimeout = getdur("WRITE_TIMEOUT", 20*time.Second)
	c.IdleTimeout = getdur("IDLE_TIMEOUT", 60*time.Second)
	c.ShutdownTimeout = getdur("SHUTDOWN_TIMEOUT", 30*time.Second)
	c.MaxHeaderBytes = getint("MAX_HEADER_BYTES", 1<<20)
	c.MaxBodyBytes = int64(getint("MAX_BODY_BYTES", 1<<20))

	switch c.GinMode = strings.ToLower(getenv("GIN_MODE", "release")); c.GinMode {
	case "debug", "release", "test":
	default:
		c.GinMode = "release"
	}
	if c.LogLevel = strings.ToLower(getenv("LOG_LEVEL", "info")); c.LogLevel == "warning" {
		c.LogLevel = "warn"
	}
	c.LogPretty = getbool("LOG_PRETTY", false)
	c.SwaggerEnabled = getbool("SWAGGER_ENABLED", false)
	c.APIBasePath = normalizeBasePath(getenv("API_BASE_PATH", "/api/v1"))
}

func (c *Config) limitsFromEnv() {
	c.RateRPS = getfloat("RATE_RPS", 10)
	c.RateBurst = getint("RATE_BURST", 20)
	// One intake every five seconds per client, with room for a short burst.
	c.IntakeRateRPS = getfloat("INTAKE_RATE_RPS", 0.2)
	c.IntakeRateBurst = getint("INTAKE_RATE_BURST", 5)
}

func databaseFromEnv() DatabaseConfig {
	return DatabaseConfig{
		URL:          getenv("DATABASE_URL", ""),
		Path:         getenv("DB_PATH", "bilacert.db"),
		MaxOpenConns: getint("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns: getint("DB_MAX_IDLE_CONNS", 5),
	}
}

func authFromEnv() AuthConfig {
	return AuthConfig{
		JWTSecret:  os.Getenv("AUTH_JWT_SECRET"),
		Issuer:     getenv("AUTH_ISSUER", "bilacert-api"),
		TokenTTL:   getdur("AUTH_TOKEN_TTL", 12*time.Hour),
		CookieName: getenv("AUTH_COOKIE_NAME", "bilacert_session"),
	}
}

func otelFromEnv() OTELConfig {
	return OTELConfig{
		Enabled:     getbool("OTEL_ENABLED", false),
		Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
		ServiceName: getenv("OTEL_SERVICE_NAME", "bilacert-api"),
		SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1),
	}
}

// Validate reports every out-of-range setting at once.
func (c Config) Validate() error {
	var errs []error
	check := func(bad bool, format string, args ...any) {
		if bad {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL %q: want debug, info, warn, error, fatal or panic", c.LogLevel))
	}
	check(strings.TrimSpace(c.Port) == "", "PORT must not be empty")
	for name, d := range map[string]time.Duration{
		"READ_TIMEOUT":        c.ReadTimeout,
		"READ_HEADER_TIMEOUT": c.ReadHeaderTimeout,
		"WRITE_TIMEOUT":       c.WriteTimeout,
		"IDLE_TIMEOUT":        c.IdleTimeout,
		"SHUTDOWN_TIMEOUT":    c.ShutdownTimeout,
	} {
		check(d <= 0, "%s: timeouts must be positive, got %s", name, d)
	}
	check(c.MaxHeaderBytes <= 0, "MAX_HEADER_BYTES must be > 0")
	check(c.MaxBodyBytes <= 0, "MAX_BODY_BYTES must be > 0")

	db := c.Database
	check(db.URL != "" && !db.IsPostgres(), "DATABASE_URL must use the postgres:// or postgresql:// scheme")
	check(!db.IsPostgres() && strings.TrimSpace(db.Path) == "", "DB_PATH must not be empty")
	check(db.MaxOpenConns < 1, "DB_MAX_OPEN_CONNS must be >= 1")
	check(db.MaxIdleConns < 0, "DB_MAX_IDLE_CONNS must be >= 0")

	check(c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32, "AUTH_JWT_SECRET must be at least 32 characters")
	check(c.Auth.TokenTTL <= 0, "AUTH_TOKEN_TTL must be > 0")
	check(strings.TrimSpace(c.Auth.CookieName) == "", "AUTH_COOKIE_NAME must not be empty")

	check(c.RateRPS < 0, "RATE_RPS must be >= 0")
	check(c.IntakeRateRPS < 0, "INTAKE_RATE_RPS must be >= 0")
	check(c.RateBurst < 1, "RATE_BURST must be >= 1")
	check(c.IntakeRateBurst < 1, "INTAKE_RATE_BURST must be >= 1")

	check(c.Security.HSTSMaxAge < 0, "HSTS_MAX_AGE must be >= 0")
	check(c.IdempotencyTTL <= 0, "IDEMPOTENCY_TTL must be > 0")
	check(c.OTEL.SampleRatio < 0 || c.OTEL.SampleRatio > 1, "OTEL_TRACES_SAMPLER_ARG must be within [0,1]")

	return errors.Join(errs...)
}

// lookup parses env var k, keeping def when it is unset, empty or
// unparseable.
func lookup[T any](k string, def T, parse func(string) (T, error)) T {
	v, ok := os.LookupEnv(k)
	if !ok || v == "" {
		return def
	}
	if out, err := parse(v); err == nil {
		return out
	}
	return def
}

func getenv(k, def string) string {
	return lookup(k, def, func(s string) (string, error) { return s, nil })
}

func getfloat(k string, def float64) float64 {
	return lookup(k, def, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

func getint(k string, def int) int { return lookup(k, def, strconv.Atoi) }

func getdur(k string, def time.Duration) time.Duration { return lookup(k, def, time.ParseDuration) }

var errNotBool = errors.New("not a boolean")

func getbool(k string, def bool) bool {
	return lookup(k, def, func(s string) (bool, error) {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "1", "true", "yes", "y", "on":
			return true, nil
		case "0", "false", "no", "n", "off":
			return false, nil
		}
		return false, errNotBool
	})
}

// splitCSV splits on commas and drops blank entries. Empty input is nil.
func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// normalizeBasePath returns p with one leading slash and no trailing slash;
// blank input is "/".
func normalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	return "/" + p
}

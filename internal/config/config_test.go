package config

import (
	"os"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	for _, k := range []string{"PORT", "DATABASE_URL", "DB_PATH", "AUTH_JWT_SECRET", "LOG_LEVEL", "API_BASE_PATH"} {
		os.Unsetenv(k)
	}
	os.Exit(m.Run())
}

func TestMustLoad_PanicsOnInvalidConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustLoad should panic on invalid config")
		}
	}()
	_ = MustLoad()
}

func TestMustLoad_DefaultsAreValid(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("MustLoad should not panic on defaults, got: %v", r)
		}
	}()
	cfg := MustLoad()
	if cfg.APIBasePath != "/api/v1" {
		t.Fatalf("API base path default = %q", cfg.APIBasePath)
	}
	if cfg.Auth.Enabled() {
		t.Fatalf("sessions must be disabled without AUTH_JWT_SECRET")
	}
	if cfg.Database.IsPostgres() || cfg.Database.Path != "bilacert.db" {
		t.Fatalf("expected SQLite default, got %+v", cfg.Database)
	}
	if cfg.IntakeRateBurst != 5 || cfg.IntakeRateRPS != 0.2 {
		t.Fatalf("intake limiter defaults unexpected: %v/%v", cfg.IntakeRateRPS, cfg.IntakeRateBurst)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("MAX_BODY_BYTES", "4096")
	t.Setenv("GIN_MODE", "weird")
	t.Setenv("LOG_LEVEL", "warning")
	t.Setenv("LOG_PRETTY", "yes")
	t.Setenv("SWAGGER_ENABLED", "on")
	t.Setenv("API_BASE_PATH", "api/v2/")

	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/bilacert?sslmode=disable")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("AUTH_JWT_SECRET", strings.Repeat("s", 32))
	t.Setenv("AUTH_TOKEN_TTL", "1h")
	t.Setenv("AUTH_COOKIE_NAME", "sid")

	t.Setenv("RATE_RPS", "x") // falls back to default
	t.Setenv("INTAKE_RATE_BURST", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://bilacert.co.za , , http://localhost:3000 ")
	t.Setenv("ENABLE_HSTS", "TRUE")
	t.Setenv("HSTS_MAX_AGE", "24h")
	t.Setenv("IDEMPOTENCY_TTL", "48h")
	t.Setenv("OTEL_ENABLED", "1")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.75")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "8088" || cfg.ReadTimeout != 2*time.Second || cfg.ShutdownTimeout != 5*time.Second ||
		cfg.MaxBodyBytes != 4096 || cfg.GinMode != "release" {
		t.Fatalf("server fields unexpected: %+v", cfg)
	}
	if cfg.LogLevel != "warn" || !cfg.LogPretty || !cfg.SwaggerEnabled || cfg.APIBasePath != "/api/v2" {
		t.Fatalf("logging/docs unexpected: %+v", cfg)
	}
	if !cfg.Database.IsPostgres() || cfg.Database.MaxOpenConns != 7 {
		t.Fatalf("database unexpected: %+v", cfg.Database)
	}
	if !cfg.Auth.Enabled() || cfg.Auth.TokenTTL != time.Hour || cfg.Auth.CookieName != "sid" {
		t.Fatalf("auth unexpected: %+v", cfg.Auth)
	}
	if cfg.RateRPS != 10.0 || cfg.IntakeRateBurst != 2 {
		t.Fatalf("rate limiting unexpected: %v %v", cfg.RateRPS, cfg.IntakeRateBurst)
	}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"https://bilacert.co.za", "http://localhost:3000"}) {
		t.Fatalf("cors origins unexpected: %#v", cfg.CORS.AllowedOrigins)
	}
	if !cfg.Security.EnableHSTS || cfg.Security.HSTSMaxAge != 24*time.Hour {
		t.Fatalf("security unexpected: %+v", cfg.Security)
	}
	if cfg.IdempotencyTTL != 48*time.Hour {
		t.Fatalf("idempotency ttl unexpected: %v", cfg.IdempotencyTTL)
	}
	if !cfg.OTEL.Enabled || cfg.OTEL.SampleRatio != 0.75 || cfg.OTEL.ServiceName != "bilacert-api" {
		t.Fatalf("otel unexpected: %+v", cfg.OTEL)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	cases := []struct {
		name, key, val, want string
	}{
		{"log level", "LOG_LEVEL", "verbose", "LOG_LEVEL"},
		{"blank port", "PORT", "   ", "PORT must not be empty"},
		{"zero timeout", "READ_TIMEOUT", "0s", "timeouts must be positive"},
		{"zero shutdown", "SHUTDOWN_TIMEOUT", "0s", "timeouts must be positive"},
		{"header bytes", "MAX_HEADER_BYTES", "0", "MAX_HEADER_BYTES"},
		{"body bytes", "MAX_BODY_BYTES", "-1", "MAX_BODY_BYTES"},
		{"database scheme", "DATABASE_URL", "mysql://x", "DATABASE_URL"},
		{"blank db path", "DB_PATH", "   ", "DB_PATH must not be empty"},
		{"open conns", "DB_MAX_OPEN_CONNS", "0", "DB_MAX_OPEN_CONNS"},
		{"short secret", "AUTH_JWT_SECRET", "short", "AUTH_JWT_SECRET"},
		{"token ttl", "AUTH_TOKEN_TTL", "0s", "AUTH_TOKEN_TTL"},
		{"rate rps", "RATE_RPS", "-1", "RATE_RPS"},
		{"intake burst", "INTAKE_RATE_BURST", "0", "INTAKE_RATE_BURST"},
		{"hsts", "HSTS_MAX_AGE", "-1s", "HSTS_MAX_AGE"},
		{"idempotency ttl", "IDEMPOTENCY_TTL", "0s", "IDEMPOTENCY_TTL"},
		{"sample ratio", "OTEL_TRACES_SAMPLER_ARG", "1.5", "OTEL_TRACES_SAMPLER_ARG"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoad_PostgresIgnoresBlankDBPath(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgresql://localhost/bilacert")
	t.Setenv("DB_PATH", " ")
	if _, err := Load(); err != nil {
		t.Fatalf("DB_PATH is irrelevant for PostgreSQL: %v", err)
	}
}

func TestHelpers_Parsing(t *testing.T) {
	t.Setenv("X_EMPTY", "")
	if getenv("X_EMPTY", "d") != "d" {
		t.Fatalf("getenv should fall back on empty var")
	}
	t.Setenv("F_BAD", "nope")
	if getfloat("F_BAD", 1.5) != 1.5 {
		t.Fatalf("getfloat default on bad parse failed")
	}
	t.Setenv("I_OK", "42")
	if getint("I_OK", 0) != 42 {
		t.Fatalf("getint parse failed")
	}
	t.Setenv("D_OK", "150ms")
	if getdur("D_OK", time.Second) != 150*time.Millisecond {
		t.Fatalf("getdur parse failed")
	}
	for _, v := range []string{"1", "TRUE", " yes ", "On"} {
		t.Setenv("B_T", v)
		if !getbool("B_T", false) {
			t.Fatalf("getbool(%q) = false", v)
		}
	}
	for _, v := range []string{"0", "False", " no ", "off"} {
		t.Setenv("B_F", v)
		if getbool("B_F", true) {
			t.Fatalf("getbool(%q) = true", v)
		}
	}
	t.Setenv("B_JUNK", "maybe")
	if !getbool("B_JUNK", true) {
		t.Fatalf("getbool should keep default on unknown value")
	}
}

func TestHelpers_splitCSV_normalizeBasePath(t *testing.T) {
	if splitCSV("") != nil {
		t.Fatalf("splitCSV empty should return nil")
	}
	if got := splitCSV(" a, ,b ,"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("splitCSV mismatch: %#v", got)
	}
	for in, want := range map[string]string{"": "/", "v1": "/v1", "/v1/": "/v1", " / ": "/"} {
		if got := normalizeBasePath(in); got != want {
			t.Fatalf("normalizeBasePath(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Setenv("PORT", " ")
	t.Setenv("IDEMPOTENCY_TTL", "0s")
	t.Setenv("RATE_BURST", "0")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"PORT", "IDEMPOTENCY_TTL", "RATE_BURST"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env  string
	Port int

	Backend   BackendConfig
	Session   SessionConfig
	CORS      CORSConfig
	Log       LogConfig
	LoginRate LoginRateConfig
	Dashboard DashboardConfig
}

// BackendConfig points at the upstream API this gateway proxies to.
// PublicBaseURL is the browser-facing API base; empty means the browser
// uses this gateway's same-origin /api/v1 proxy.
type BackendConfig struct {
	BaseURL       string
	PublicBaseURL string
	Timeout       time.Duration
}

// SessionConfig governs the signed session cookie.
type SessionConfig struct {
	Secret       string
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// LoginRateConfig throttles credential submissions per client IP.
type LoginRateConfig struct {
	Requests int
	Window   time.Duration
	Burst    int
}

// DashboardConfig tunes the landing page resource fetches.
type DashboardConfig struct {
	PopularLimit int
	RecentLimit  int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	cfg.Backend = BackendConfig{
		BaseURL:       strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		PublicBaseURL: strings.TrimRight(v.GetString("PUBLIC_API_BASE_URL"), "/"),
		Timeout:       parseDuration(v.GetString("BACKEND_TIMEOUT"), 30*time.Second),
	}

	cfg.Session = SessionConfig{
		Secret:       v.GetString("SESSION_SECRET"),
		TTL:          parseDuration(v.GetString("SESSION_TTL"), 24*time.Hour),
		CookieName:   v.GetString("SESSION_COOKIE_NAME"),
		CookieSecure: v.GetBool("SESSION_COOKIE_SECURE"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.LoginRate = LoginRateConfig{
		Requests: v.GetInt("LOGIN_RATE_LIMIT"),
		Window:   parseDuration(v.GetString("LOGIN_RATE_WINDOW"), time.Minute),
		Burst:    v.GetInt("LOGIN_RATE_BURST"),
	}

	cfg.Dashboard = DashboardConfig{
		PopularLimit: v.GetInt("DASHBOARD_POPULAR_LIMIT"),
		RecentLimit:  v.GetInt("DASHBOARD_RECENT_LIMIT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 3000)

	v.SetDefault("API_BASE_URL", "http://localhost:5000")
	v.SetDefault("PUBLIC_API_BASE_URL", "")
	v.SetDefault("BACKEND_TIMEOUT", "30s")

	v.SetDefault("SESSION_SECRET", "dev_secret")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SESSION_COOKIE_NAME", "resource_hub_session")
	v.SetDefault("SESSION_COOKIE_SECURE", false)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("LOGIN_RATE_LIMIT", 10)
	v.SetDefault("LOGIN_RATE_WINDOW", "1m")
	v.SetDefault("LOGIN_RATE_BURST", 5)

	v.SetDefault("DASHBOARD_POPULAR_LIMIT", 8)
	v.SetDefault("DASHBOARD_RECENT_LIMIT", 8)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/haloiq/tax-api/internal/constants"
)

const (
	DefaultPort            = "8000"
	DefaultTaxYear         = 2025
	DefaultProviderTimeout = 10 * time.Second
	DefaultRateLimitRPS    = 20
	DefaultRateLimitBurst  = 40
)

// Config holds process-wide settings loaded once at startup
type Config struct {
	Stage          string
	LogLevel       string
	Port           string
	DefaultTaxYear int
	Provider       ProviderConfig
	CORS           CORSConfig
	RateLimit      RateLimitConfig
}

// ProviderConfig selects and configures the external tax-rate provider
type ProviderConfig struct {
	Mode            string
	BaseURL         string
	APIKey          string
	APIKeySecretARN string
	Timeout         time.Duration
}

// ExternalEnabled reports whether external provider calls should be attempted
func (p ProviderConfig) ExternalEnabled() bool {
	return p.Mode == constants.ProviderModeTaxUpdate && p.BaseURL != ""
}

// CORSConfig holds the allowed CORS origins, methods and headers
type CORSConfig struct {
	AllowOrigins []string
	AllowMethods []string
	AllowHeaders []string
}

// RateLimitConfig configures the per-client limiter; zero RPS disables it
type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
}

// SecretFetcher reads a secret string by ARN
type SecretFetcher interface {
	GetSecretValue(ctx context.Context, secretARN string) (string, error)
}

// Load reads the configuration from the process environment
func Load(ctx context.Context, secrets SecretFetcher) (*Config, error) {
	return LoadWithLookup(ctx, os.Getenv, secrets)
}

// LoadWithLookup reads the configuration through getenv. When
// TAXUPDATE_KEY_SECRET_ARN is set and secrets is non-nil, the provider key is
// read from the secret store, falling back to TAXUPDATE_KEY.
func LoadWithLookup(ctx context.Context, getenv func(string) string, secrets SecretFetcher) (*Config, error) {
	cfg := &Config{
		Stage:    getEnvWithDefault(getenv, "STAGE", constants.StageLocal),
		LogLevel: strings.ToLower(getEnvWithDefault(getenv, "LOG_LEVEL", constants.LogLevelInfo)),
		Port:     getEnvWithDefault(getenv, "API_PORT", DefaultPort),
		Provider: ProviderConfig{
			Mode:            strings.ToLower(getEnvWithDefault(getenv, "TAX_PROVIDER", constants.ProviderModePlaceholder)),
			BaseURL:         strings.TrimSpace(getenv("TAXUPDATE_BASE")),
			APIKey:          getenv("TAXUPDATE_KEY"),
			APIKeySecretARN: getenv("TAXUPDATE_KEY_SECRET_ARN"),
		},
		CORS: CORSConfig{
			AllowOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS"), []string{"*"}),
			AllowMethods: splitList(getenv("CORS_ALLOWED_METHODS"), []string{"GET", "POST", "OPTIONS"}),
			AllowHeaders: splitList(getenv("CORS_ALLOWED_HEADERS"), []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Correlation-ID"}),
		},
	}

	if !constants.IsValidStage(cfg.Stage) {
		return nil, fmt.Errorf("invalid STAGE %q", cfg.Stage)
	}
	if !constants.IsValidLogLevel(cfg.LogLevel) {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}

	switch cfg.Provider.Mode {
	case constants.ProviderModeTaxUpdate, constants.ProviderModePlaceholder:
	default:
		return nil, fmt.Errorf("invalid TAX_PROVIDER %q: must be %q or %q",
			cfg.Provider.Mode, constants.ProviderModeTaxUpdate, constants.ProviderModePlaceholder)
	}

	var err error
	if cfg.Provider.Timeout, err = parseDuration(getenv, "TAXUPDATE_TIMEOUT", DefaultProviderTimeout); err != nil {
		return nil, err
	}
	if cfg.DefaultTaxYear, err = parseInt(getenv, "DEFAULT_TAX_YEAR", DefaultTaxYear); err != nil {
		return nil, err
	}
	if cfg.RateLimit.RequestsPerSecond, err = parseInt(getenv, "RATE_LIMIT_RPS", DefaultRateLimitRPS); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Burst, err = parseInt(getenv, "RATE_LIMIT_BURST", DefaultRateLimitBurst); err != nil {
		return nil, err
	}

	if cfg.Provider.APIKeySecretARN != "" && secrets != nil {
		key, err := secrets.GetSecretValue(ctx, cfg.Provider.APIKeySecretARN)
		if err == nil && key != "" {
			cfg.Provider.APIKey = key
		} else if cfg.Provider.APIKey == "" {
			return nil, fmt.Errorf("failed to resolve TAXUPDATE_KEY_SECRET_ARN and TAXUPDATE_KEY is empty: %w", err)
		}
	}

	return cfg, nil
}

func getEnvWithDefault(getenv func(string) string, key, defaultValue string) string {
	if value := strings.TrimSpace(getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseInt(getenv func(string) string, key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", key, raw)
	}
	return value, nil
}

func parseDuration(getenv func(string) string, key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive duration", key, raw)
	}
	return value, nil
}

// splitList splits a comma-separated value and trims each entry. A value with
// no non-blank entries yields defaultValue.
func splitList(raw string, defaultValue []string) []string {
	if strings.TrimSpace(raw) == "" {
		return defaultValue
	}
	items := strings.Split(raw, ",")
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

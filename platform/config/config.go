// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// BackendConfig provides settings shared by every backend call.
type BackendConfig interface {
	GetBackendBaseURL() string
	GetBackendID() string
	GetHTTPTimeout() time.Duration
	GetRetryLimit() int
}

// AuthConfig provides settings for the authentication module.
type AuthConfig interface {
	GetBackendBaseURL() string
	GetBackendID() string
	GetOAuthTokenEndpoint() string
	GetOAuthClientID() string
	GetOAuthClientSecret() string
}

// AnalyticsConfig provides settings for the analytics pipeline.
type AnalyticsConfig interface {
	IsAnalyticsEnabled() bool
	GetAnalyticsFlushThreshold() int
	GetMobileBackendName() string
	GetFeatureName() string
	GetApplicationKey() string
}

// PushConfig provides settings for push token registration.
type PushConfig interface {
	GetPlatform() string
	GetAndroidAppKey() string
	GetIOSAppKey() string
}

// LocationConfig provides the GPS fallback position.
type LocationConfig interface {
	GetDefaultPosition() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                     string        `yaml:"env"`
	BackendBaseURL          string        `yaml:"backend_base_url" validate:"required,url"`
	BackendID               string        `yaml:"backend_id" validate:"required"`
	MobileBackendName       string        `yaml:"mobile_backend_name" validate:"required"`
	FeatureName             string        `yaml:"feature_name"`
	AndroidAppKey           string        `yaml:"android_app_key"`
	IOSAppKey               string        `yaml:"ios_app_key"`
	OAuthTokenEndpoint      string        `yaml:"oauth_token_endpoint" validate:"omitempty,url"`
	OAuthClientID           string        `yaml:"oauth_client_id"`
	OAuthClientSecret       string        `yaml:"oauth_client_secret"`
	AnalyticsEnabled        bool          `yaml:"analytics_enabled"`
	AnalyticsFlushThreshold int           `yaml:"analytics_flush_threshold" validate:"gte=0"`
	Platform                string        `yaml:"platform" validate:"oneof=ios android"`
	DefaultPosition         string        `yaml:"default_position"`
	HTTPTimeout             time.Duration `yaml:"http_timeout"`
	RetryLimit              int           `yaml:"retry_limit" validate:"gte=0"`
}

// =============================================================================
// Interface Implementations
// =============================================================================

// BackendConfig implementation
func (c *Config) GetBackendBaseURL() string     { return c.BackendBaseURL }
func (c *Config) GetBackendID() string          { return c.BackendID }
func (c *Config) GetHTTPTimeout() time.Duration { return c.HTTPTimeout }
func (c *Config) GetRetryLimit() int            { return c.RetryLimit }

// AuthConfig implementation
func (c *Config) GetOAuthTokenEndpoint() string { return c.OAuthTokenEndpoint }
func (c *Config) GetOAuthClientID() string      { return c.OAuthClientID }
func (c *Config) GetOAuthClientSecret() string  { return c.OAuthClientSecret }

// AnalyticsConfig implementation
func (c *Config) IsAnalyticsEnabled() bool        { return c.AnalyticsEnabled }
func (c *Config) GetAnalyticsFlushThreshold() int { return c.AnalyticsFlushThreshold }
func (c *Config) GetMobileBackendName() string    { return c.MobileBackendName }
func (c *Config) GetFeatureName() string          { return c.FeatureName }

// GetApplicationKey returns the application key for the configured platform.
func (c *Config) GetApplicationKey() string {
	if strings.EqualFold(c.Platform, "ios") {
		return c.IOSAppKey
	}
	return c.AndroidAppKey
}

// PushConfig implementation
func (c *Config) GetPlatform() string      { return c.Platform }
func (c *Config) GetAndroidAppKey() string { return c.AndroidAppKey }
func (c *Config) GetIOSAppKey() string     { return c.IOSAppKey }

// LocationConfig implementation
func (c *Config) GetDefaultPosition() string { return c.DefaultPosition }

// Load reads configuration from an optional YAML file (FIF_CONFIG_FILE),
// then applies environment variable overrides, then validates.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path := getEnv("FIF_CONFIG_FILE", ""); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Env:                     "development",
		MobileBackendName:       "FiFTechnician",
		FeatureName:             "FiF-Technician",
		Platform:                "android",
		DefaultPosition:         "39.355589,-120.652492",
		AnalyticsEnabled:        true,
		AnalyticsFlushThreshold: 0,
		HTTPTimeout:             30 * time.Second,
		RetryLimit:              0,
	}
}

func applyEnv(cfg *Config) {
	setString(&cfg.Env, "APP_ENV")
	setString(&cfg.BackendBaseURL, "FIF_BACKEND_BASE_URL")
	setString(&cfg.BackendID, "FIF_BACKEND_ID")
	setString(&cfg.MobileBackendName, "FIF_MOBILE_BACKEND_NAME")
	setString(&cfg.FeatureName, "FIF_FEATURE_NAME")
	setString(&cfg.AndroidAppKey, "FIF_ANDROID_APP_KEY")
	setString(&cfg.IOSAppKey, "FIF_IOS_APP_KEY")
	setString(&cfg.OAuthTokenEndpoint, "FIF_OAUTH_TOKEN_ENDPOINT")
	setString(&cfg.OAuthClientID, "FIF_OAUTH_CLIENT_ID")
	setString(&cfg.OAuthClientSecret, "FIF_OAUTH_CLIENT_SECRET")
	setString(&cfg.Platform, "FIF_PLATFORM")
	setString(&cfg.DefaultPosition, "FIF_DEFAULT_POSITION")
	setBool(&cfg.AnalyticsEnabled, "FIF_ANALYTICS_ENABLED")
	setInt(&cfg.AnalyticsFlushThreshold, "FIF_ANALYTICS_FLUSH_THRESHOLD")
	setInt(&cfg.RetryLimit, "FIF_RETRY_LIMIT")
	setDuration(&cfg.HTTPTimeout, "FIF_HTTP_TIMEOUT")
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func setString(target *string, key string) {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		*target = val
	}
}

func setBool(target *bool, key string) {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		*target = strings.EqualFold(val, "true")
	}
}

func setInt(target *int, key string) {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			*target = n
		}
	}
}

func setDuration(target *time.Duration, key string) {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			*target = d
		}
	}
}

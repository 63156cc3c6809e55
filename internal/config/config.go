package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Port       string `mapstructure:"PORT"`
	GinMode    string `mapstructure:"GIN_MODE"`
	AppEnv     string `mapstructure:"APP_ENV"`
	AppVersion string `mapstructure:"APP_VERSION"`

	FirebaseProjectID                string `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials     string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseServiceAccountJSONBase64 string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"`

	OpenAIAPIKey     string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL    string        `mapstructure:"OPENAI_BASE_URL"`
	ImageModel       string        `mapstructure:"IMAGE_MODEL"`
	ImageSize        string        `mapstructure:"IMAGE_SIZE"`
	ImageQuality     string        `mapstructure:"IMAGE_QUALITY"`
	ImageEditTimeout time.Duration `mapstructure:"IMAGE_EDIT_TIMEOUT"`
	VisionModel      string        `mapstructure:"VISION_MODEL"`
	ProviderTimeout  time.Duration `mapstructure:"PROVIDER_TIMEOUT"`

	ClientURL       string        `mapstructure:"CLIENT_URL"`
	MaxBodyBytes    int64         `mapstructure:"MAX_BODY_BYTES"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var defaults = map[string]any{
	"PORT":               "3000",
	"GIN_MODE":           "debug",
	"APP_ENV":            "development",
	"APP_VERSION":        "1.0.0",
	"OPENAI_BASE_URL":    "https://api.openai.com/v1",
	"IMAGE_MODEL":        "gpt-image-1",
	"IMAGE_SIZE":         "1024x1536",
	"IMAGE_QUALITY":      "medium",
	"IMAGE_EDIT_TIMEOUT": "3m",
	"VISION_MODEL":       "gpt-4o",
	"PROVIDER_TIMEOUT":   "2m",
	"CLIENT_URL":         "*",
	"MAX_BODY_BYTES":     10 << 20,
	"SHUTDOWN_TIMEOUT":   "10s",
}

var envKeys = []string{
	"FIREBASE_PROJECT_ID",
	"GOOGLE_APPLICATION_CREDENTIALS",
	"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64",
	"OPENAI_API_KEY",
}

// LoadConfig loads configuration from environment variables using Viper.
// Outside release mode a .env file in the working directory is loaded first;
// variables already set in the environment win.
func LoadConfig() (*Config, error) {
	if !strings.EqualFold(os.Getenv("GIN_MODE"), "release") {
		_ = godotenv.Load() // missing .env is fine
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for key, value := range defaults {
		v.SetDefault(key, value)
		_ = v.BindEnv(key)
	}
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.FirebaseProjectID == "" {
		return errors.New("FIREBASE_PROJECT_ID is required")
	}
	if c.OpenAIAPIKey == "" {
		return errors.New("OPENAI_API_KEY is required")
	}
	if c.MaxBodyBytes <= 0 {
		return errors.New("MAX_BODY_BYTES must be positive")
	}
	if c.ImageEditTimeout <= 0 || c.ProviderTimeout <= 0 {
		return errors.New("IMAGE_EDIT_TIMEOUT and PROVIDER_TIMEOUT must be positive durations")
	}
	return validateOrigins(c.ClientURL)
}

// validateOrigins accepts "*", an empty value, or a comma-separated list of
// http(s) origins.
func validateOrigins(clientURL string) error {
	var origins []string
	for _, o := range strings.Split(clientURL, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		return nil
	}
	for _, o := range origins {
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("CLIENT_URL origin %q must start with http:// or https://", o)
		}
	}
	return nil
}

// IsProduction reports whether error details and stack traces must be hidden.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// IsRelease reports whether gin should run in release mode.
func (c *Config) IsRelease() bool {
	return strings.EqualFold(c.GinMode, "release")
}

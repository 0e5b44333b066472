package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Timeline to Calendar specifics
	Auth       AuthConfig
	Google     GoogleConfig
	Storage    StorageConfig
	Encryption EncryptionConfig
	LLM        LLMConfig
	RateLimit  RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AuthConfig drives session issuance and the post-login redirect.
type AuthConfig struct {
	JWTSecret    string
	SessionHours int
	FrontendURL  string
}

// GoogleConfig holds the OAuth client used for login and for per-user
// Calendar/Tasks access.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// StorageConfig locates the file-backed stores for users, sessions, and
// encrypted API keys. Google remains the system of record for events/tasks.
type StorageConfig struct {
	DataDir string
}

// EncryptionConfig holds the at-rest secret for stored API keys.
type EncryptionConfig struct {
	APIKeySecret string
}

// LLMConfig tunes the provider catalog's dynamic model cache.
type LLMConfig struct {
	ModelCacheSize int
	ModelCacheTTL  time.Duration
}

// RateLimitConfig bounds LLM-backed parse endpoints per user.
type RateLimitConfig struct {
	ParsePerMinute int
	ParseBurst     int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Auth
	cfg.Auth.JWTSecret = expandEnvVar(viper.GetString("auth.jwt_secret"))
	cfg.Auth.SessionHours = viper.GetInt("auth.session_hours")
	cfg.Auth.FrontendURL = viper.GetString("auth.frontend_url")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required - set JWT_SECRET or add auth.jwt_secret to config.yaml")
	}

	// Google OAuth
	cfg.Google.ClientID = expandEnvVar(viper.GetString("google.client_id"))
	cfg.Google.ClientSecret = expandEnvVar(viper.GetString("google.client_secret"))
	cfg.Google.RedirectURL = viper.GetString("google.redirect_url")
	if id := viper.GetString("google_client_id"); id != "" {
		cfg.Google.ClientID = id
	}
	if secret := viper.GetString("google_client_secret"); secret != "" {
		cfg.Google.ClientSecret = secret
	}

	// Storage
	cfg.Storage.DataDir = viper.GetString("storage.data_dir")
	if dir := viper.GetString("data_dir"); dir != "" {
		cfg.Storage.DataDir = dir
	}

	// API key encryption
	cfg.Encryption.APIKeySecret = expandEnvVar(viper.GetString("encryption.api_key_secret"))
	if secret := viper.GetString("api_key_encryption_key"); secret != "" {
		cfg.Encryption.APIKeySecret = secret
	}
	if cfg.Encryption.APIKeySecret == "" {
		return nil, fmt.Errorf("encryption.api_key_secret is required - set API_KEY_ENCRYPTION_KEY or add encryption.api_key_secret to config.yaml")
	}

	// LLM catalog cache
	cfg.LLM.ModelCacheSize = viper.GetInt("llm.model_cache_size")
	cfg.LLM.ModelCacheTTL = viper.GetDuration("llm.model_cache_ttl")

	// Rate limiting
	cfg.RateLimit.ParsePerMinute = viper.GetInt("rate_limit.parse_per_min")
	cfg.RateLimit.ParseBurst = viper.GetInt("rate_limit.parse_burst")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("auth.session_hours", 24)
	viper.SetDefault("auth.frontend_url", "http://localhost:5173")
	viper.SetDefault("google.redirect_url", "http://localhost:8080/api/v1/auth/google/callback")
	viper.SetDefault("storage.data_dir", "./data")

	// LLM defaults
	viper.SetDefault("llm.model_cache_size", 128)
	viper.SetDefault("llm.model_cache_ttl", "10m")

	// Rate limiting defaults
	viper.SetDefault("rate_limit.parse_per_min", 10)
	viper.SetDefault("rate_limit.parse_burst", 3)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

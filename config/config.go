package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// DefaultSourceURL is the public mock feed the directory was built against.
const DefaultSourceURL = "https://srijandubey.github.io/campus-api-mock/SRM-C1-25.json"

type Config struct {
	App       AppConfig
	Directory DirectoryConfig
	Session   SessionConfig
	Redis     RedisConfig
	Suggest   SuggestConfig
}

type AppConfig struct {
	Port     string `validate:"required,numeric"`
	Env      string
	LogLevel string `validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
}

type DirectoryConfig struct {
	SourceURL      string `validate:"required,url"`
	FetchTimeout   time.Duration
	PlaceholderURL string `validate:"required"`
}

type SessionConfig struct {
	Store string        `validate:"oneof=memory redis"`
	TTL   time.Duration `validate:"gt=0"`
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

type SuggestConfig struct {
	RateLimit float64 `validate:"gte=0"`
	Burst     int     `validate:"gte=0"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DIRECTORY_SOURCE_URL", DefaultSourceURL)
	v.SetDefault("DIRECTORY_FETCH_TIMEOUT", "0s")
	v.SetDefault("DIRECTORY_PLACEHOLDER_URL", "/placeholder.svg")
	v.SetDefault("SESSION_STORE", "memory")
	v.SetDefault("SESSION_TTL", "30m")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SUGGEST_RATE_LIMIT", 20)
	v.SetDefault("SUGGEST_BURST", 40)
}

// LoadConfig reads .env from the working directory when present, then the environment.
func LoadConfig() (*Config, error) {
	return Load(".env")
}

// Load reads configuration from envFile (optional) and the environment. Environment
// variables win over the file.
func Load(envFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	fetchTimeout, err := time.ParseDuration(v.GetString("DIRECTORY_FETCH_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid DIRECTORY_FETCH_TIMEOUT: %w", err)
	}

	sessionTTL, err := time.ParseDuration(v.GetString("SESSION_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Directory: DirectoryConfig{
			SourceURL:      v.GetString("DIRECTORY_SOURCE_URL"),
			FetchTimeout:   fetchTimeout,
			PlaceholderURL: v.GetString("DIRECTORY_PLACEHOLDER_URL"),
		},
		Session: SessionConfig{
			Store: v.GetString("SESSION_STORE"),
			TTL:   sessionTTL,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Suggest: SuggestConfig{
			RateLimit: v.GetFloat64("SUGGEST_RATE_LIMIT"),
			Burst:     v.GetInt("SUGGEST_BURST"),
		},
	}

	return config, nil
}

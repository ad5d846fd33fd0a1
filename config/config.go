package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	FortuneSourceFile   = "file"
	FortuneSourceSQLite = "sqlite"
)

type Config struct {
	GeneralVersion         string `mapstructure:"GENERAL_VERSION"`
	Environment            string `mapstructure:"ENVIRONMENT"`
	LogLevel               string `mapstructure:"LOG_LEVEL"`
	ServerPort             int    `mapstructure:"SERVER_PORT"`
	CorsAllowOrigins       string `mapstructure:"CORS_ALLOW_ORIGINS"`
	RequestTimeoutSeconds  int    `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
	RateLimitMax           int    `mapstructure:"RATE_LIMIT_MAX"`
	RateLimitWindowSeconds int    `mapstructure:"RATE_LIMIT_WINDOW_SECONDS"`
	FortuneSource          string `mapstructure:"FORTUNE_SOURCE"`
	FortuneTablePath       string `mapstructure:"FORTUNE_TABLE_PATH"`
	DatabaseDbPath         string `mapstructure:"DATABASE_DB_PATH"`
	DatabaseCacheAddress   string `mapstructure:"DATABASE_CACHE_ADDRESS"`
	DatabaseCachePort      int    `mapstructure:"DATABASE_CACHE_PORT"`
}

var defaults = map[string]any{
	"GENERAL_VERSION":           "dev",
	"ENVIRONMENT":               "development",
	"LOG_LEVEL":                 "info",
	"SERVER_PORT":               8288,
	"CORS_ALLOW_ORIGINS":        "*",
	"REQUEST_TIMEOUT_SECONDS":   10,
	"RATE_LIMIT_MAX":            60,
	"RATE_LIMIT_WINDOW_SECONDS": 60,
	"FORTUNE_SOURCE":            FortuneSourceFile,
	"FORTUNE_TABLE_PATH":        "data/combination_fortune.json",
	"DATABASE_DB_PATH":          "",
	"DATABASE_CACHE_ADDRESS":    "",
	"DATABASE_CACHE_PORT":       0,
}

// InitConfig loads configuration from ./.env (when present) overlaid with the
// process environment.
func InitConfig() (Config, error) {
	return Load(".env")
}

func Load(envFile string) (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return Config{}, err
			}
		}
	}

	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, err
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) Validate() error {
	if c.ServerPort <= 0 {
		return errors.New("server port must be positive")
	}

	switch c.FortuneSource {
	case FortuneSourceFile:
	case FortuneSourceSQLite:
		if c.DatabaseDbPath == "" {
			return errors.New("sqlite fortune source requires DATABASE_DB_PATH")
		}
	default:
		return errors.New("unknown fortune source: " + c.FortuneSource)
	}

	return nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func (c Config) CacheEnabled() bool {
	return c.DatabaseCacheAddress != "" && c.DatabaseCachePort > 0
}

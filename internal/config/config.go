package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	} `mapstructure:"server"`

	Backend struct {
		BaseURL string `mapstructure:"base_url"`
		APIKey  string `mapstructure:"api_key"`
	} `mapstructure:"backend"`

	JWT struct {
		Secret          string `mapstructure:"secret"`
		ExpirationHours int    `mapstructure:"expiration_hours"`
		Issuer          string `mapstructure:"issuer"`
	} `mapstructure:"jwt"`

	Session struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"session"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables
	v.AutomaticEnv()

	// Set sensible defaults (binary works without config file)
	v.SetDefault("server.port", 8080)
	v.SetDefault("backend.base_url", "http://localhost:9000")
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("jwt.issuer", "salon-backend")
	v.SetDefault("session.path", "salon_session.db")
	v.SetDefault("log.level", "info")

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Info().Msg("no config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatal().Err(err).Msg("config unmarshal error")
	}

	// Override backend settings from BACKEND_* environment variables
	if base := os.Getenv("BACKEND_BASE_URL"); base != "" {
		cfg.Backend.BaseURL = base
	}
	if key := os.Getenv("BACKEND_API_KEY"); key != "" {
		cfg.Backend.APIKey = key
	}

	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Server.Port = n
		}
	}

	if path := os.Getenv("SESSION_DB_PATH"); path != "" {
		cfg.Session.Path = path
	}

	// Override JWT secret from environment if not set
	if cfg.JWT.Secret == "" || cfg.JWT.Secret == "${JWT_SECRET}" {
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		if cfg.JWT.Secret == "" {
			log.Fatal().Msg("JWT_SECRET not found in config or environment")
		}
	}

	return &cfg
}

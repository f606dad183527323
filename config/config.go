package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

/* Config is read from a .env file (TOML) and overridden by environment variables */

const (
	StoreRedis = "redis"
	StoreMongo = "mongo"
)

type Config struct {
	Port           string `mapstructure:"PORT"`
	Store          string `mapstructure:"STORE"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisDB        int    `mapstructure:"REDIS_DB"`
	MongoURI       string `mapstructure:"MONGO_URI"`
	MongoDatabase  string `mapstructure:"MONGO_DATABASE"`
	MetricsEnabled bool   `mapstructure:"METRICS_ENABLED"`
	SeedFile       string `mapstructure:"SEED_FILE"`
}

func GetConfig() (*Config, error) {
	return Load(".")
}

// Load reads .env from path. A missing file leaves the defaults and environment in place.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("toml")
	v.AddConfigPath(path)
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("STORE", StoreRedis)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "local_library")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("SEED_FILE", "seed.yaml")

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var config Config
	err = v.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks that the selected store has what it needs to connect
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	switch c.Store {
	case StoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when STORE=%s", StoreRedis)
		}
	case StoreMongo:
		if c.MongoURI == "" || c.MongoDatabase == "" {
			return fmt.Errorf("MONGO_URI and MONGO_DATABASE are required when STORE=%s", StoreMongo)
		}
	default:
		return fmt.Errorf("unknown STORE %q, expected %s or %s", c.Store, StoreRedis, StoreMongo)
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Mode           string        `mapstructure:"mode"`
	Port           int           `mapstructure:"port"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	PingPeriod     time.Duration `mapstructure:"ping_period"`

	// Store selects the persistence backend: memory, sqlite or redis.
	Store      string `mapstructure:"store"`
	SQLitePath string `mapstructure:"sqlite_path"`
	RedisAddr  string `mapstructure:"redis_addr"`

	// AdminSecret enables admin token verification when non-empty.
	AdminSecret string   `mapstructure:"admin_secret"`
	AdminUIDs   []string `mapstructure:"admin_uids"`

	// RoomTTL enables the idle-room expiry sweep when non-zero.
	RoomTTL time.Duration `mapstructure:"room_ttl"`
}

// Load reads config/config.<env>.yaml selected by CONFIG_ENV, falling
// back to defaults for every key so a bare binary still runs.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	fileName := fmt.Sprintf("config/config.%s.yaml", env)
	v.SetConfigFile(fileName)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("mode", "release")
	v.SetDefault("port", 8080)
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("ping_period", "15s")
	v.SetDefault("store", "memory")
	v.SetDefault("sqlite_path", "data/rooms.db")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("admin_secret", "")
	v.SetDefault("admin_uids", []string{})
	v.SetDefault("room_ttl", "0")

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Str("module", "config").Str("file", fileName).Msg("config file not found, using defaults")
	} else {
		log.Info().Str("module", "config").Str("file", fileName).Msg("config loaded")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

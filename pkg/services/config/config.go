package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Config struct {
	Server         ServerConfig `mapstructure:"server"`
	DbPath         string       `mapstructure:"db_path"`
	AssumedDailyKm float64      `mapstructure:"assumed_daily_km"`
}

// Load reads configuration from the given file, falling back to
// FARE_ATLAS_* environment variables and built-in defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("db_path", "fare-atlas.db")
	v.SetDefault("assumed_daily_km", 300.0)

	v.SetEnvPrefix("FARE_ATLAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &config, nil
}

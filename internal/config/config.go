package config

import (
	"github.com/spf13/viper"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	Env string `mapstructure:"APP_ENV"` // development | production

	// DBPath is the local SQLite file that holds all system state.
	DBPath string `mapstructure:"DB_PATH"`

	// RecibosPath is the directory where dispatch receipts (PDF) are written.
	// Empty disables receipt generation.
	RecibosPath string `mapstructure:"RECIBOS_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_PATH", "cupogas.db")
	viper.SetDefault("RECIBOS_PATH", "/tmp/cupogas/recibos")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Package config loads application-level settings and optional per-project
// defaults. The rule model itself lives in the rules package; this package
// only covers the ambient knobs around it.
package config

import (
	"github.com/spf13/viper"

	"github.com/martens/codepack/internal/logger"
)

// Config holds the application's configuration values.
type Config struct {
	// ConfigDir is searched first when resolving a rules config by name.
	ConfigDir string
	// OutputDir receives generated documents named without a directory part.
	OutputDir string
	// Theme selects the interactive UI color palette.
	Theme string
	Log   logger.Config
}

// Load reads configuration from environment variables and an optional .env
// file, with sensible defaults. Environment variables use the CODEPACK_
// prefix (CODEPACK_OUTPUT_DIR, CODEPACK_LOG_LEVEL, ...).
func Load() *Config {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.SetEnvPrefix("CODEPACK")
	v.AutomaticEnv()

	v.SetDefault("CONFIG_DIR", "configs")
	v.SetDefault("OUTPUT_DIR", "Extracts")
	v.SetDefault("THEME", "plain")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	// The .env file is optional; defaults and environment still apply.
	_ = v.ReadInConfig()

	return &Config{
		ConfigDir: v.GetString("CONFIG_DIR"),
		OutputDir: v.GetString("OUTPUT_DIR"),
		Theme:     v.GetString("THEME"),
		Log: logger.Config{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path           string `mapstructure:"path"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

// AuthConfig selects and parameterizes the auth collaborator.
type AuthConfig struct {
	// Provider is "local" (bundled roster, offline) or "remote" (hosted
	// service).
	Provider  string `mapstructure:"provider"`
	RemoteURL string `mapstructure:"remote_url"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Timezone   string `mapstructure:"timezone"`
	DateFormat string `mapstructure:"date_format"`
	// DemoMode prefills the login form with the demo account.
	DemoMode bool `mapstructure:"demo_mode"`
}

// Load reads configuration from file and env. Env var overrides use prefix AINA_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(dataHome(), "aina", "aina.db"))
	v.SetDefault("database.migrations_path", "internal/database/migrations")
	v.SetDefault("auth.provider", "local")
	v.SetDefault("auth.remote_url", "")
	v.SetDefault("ui.timezone", "Asia/Seoul")
	v.SetDefault("ui.date_format", "02 Jan 2006")
	v.SetDefault("ui.demo_mode", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("AINA_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "aina"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("AINA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Auth.Provider == "remote" && c.Auth.RemoteURL == "" {
		return Config{}, fmt.Errorf("auth.remote_url is required when auth.provider is remote")
	}
	return c, nil
}

func dataHome() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share")
}

// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	return load(envFile)
}

func load(dotenv string) (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(dotenv); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("api.base_url", "http://localhost:5000")
	v.SetDefault("api.request_timeout", 15*time.Second)

	v.SetDefault("session.file", defaultSessionFile())

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 30*time.Second)
	v.SetDefault("http.allow_origins", "http://localhost:3000")
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"api.base_url",
		"api.request_timeout",
		"session.file",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"http.allow_origins",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".taskflow", "session.env")
	}
	return filepath.Join(dir, "taskflow", "session.env")
}

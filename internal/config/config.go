package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Values are read by viper from a config file or environment variables.
type Config struct {
	TelegramBotToken string        `mapstructure:"TELEGRAM_BOT_TOKEN"`
	BadgerDBPath     string        `mapstructure:"BADGERDB_PATH"`
	HTTPAddr         string        `mapstructure:"HTTP_ADDR"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	SystemTheme      string        `mapstructure:"SYSTEM_THEME"`
	StoreNamespace   string        `mapstructure:"STORE_NAMESPACE"`
	BrowserPath      string        `mapstructure:"BROWSER_PATH"`
	ExportTimeout    time.Duration `mapstructure:"EXPORT_TIMEOUT"`
}

// BotEnabled reports whether the Telegram front end should run.
func (c Config) BotEnabled() bool {
	return c.TelegramBotToken != ""
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("BADGERDB_PATH", "./badger_data")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_NAMESPACE", "local:")
	v.SetDefault("EXPORT_TIMEOUT", 30*time.Second)
	// Keys without a default are only seen by Unmarshal when bound.
	for _, key := range []string{"TELEGRAM_BOT_TOKEN", "SYSTEM_THEME", "BROWSER_PATH"} {
		v.SetDefault(key, "")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err = v.ReadInConfig(); err != nil {
		// A missing file is fine, env vars and defaults still apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if config.BadgerDBPath == "" {
		return Config{}, fmt.Errorf("BADGERDB_PATH is empty")
	}
	if config.ExportTimeout <= 0 {
		return Config{}, fmt.Errorf("EXPORT_TIMEOUT must be positive, got %s", config.ExportTimeout)
	}
	switch strings.ToLower(config.SystemTheme) {
	case "", "dark", "light":
	default:
		return Config{}, fmt.Errorf("SYSTEM_THEME must be dark or light, got %q", config.SystemTheme)
	}

	return config, nil
}

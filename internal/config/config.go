package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Messages MessagesConfig `mapstructure:"messages"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Client   ClientConfig   `mapstructure:"client"`
}

type ServerConfig struct {
	Port                   int    `mapstructure:"port" validate:"min=1,max=65535"`
	ResourcePath           string `mapstructure:"resource_path" validate:"required,startswith=/"`
	ReadTimeoutSeconds     int    `mapstructure:"read_timeout_seconds" validate:"min=1"`
	WriteTimeoutSeconds    int    `mapstructure:"write_timeout_seconds" validate:"min=1"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"min=0"`
	MaxBodyBytes           int64  `mapstructure:"max_body_bytes" validate:"min=1"`
	Debug                  bool   `mapstructure:"debug"`
}

// Addr returns the listen address for the configured port.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

func (c ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

type MessagesConfig struct {
	Locale string `mapstructure:"locale" validate:"required,locale"`
}

type SeedConfig struct {
	File string `mapstructure:"file" validate:"omitempty,file"`
}

type ClientConfig struct {
	BaseURL          string `mapstructure:"base_url" validate:"required,url"`
	MaxRetryAttempts uint   `mapstructure:"max_retry_attempts"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordbook")
	}

	v.SetDefault("server.port", 8000)
	v.SetDefault("server.resource_path", "/api/definitions/")
	v.SetDefault("server.read_timeout_seconds", 10)
	v.SetDefault("server.write_timeout_seconds", 10)
	v.SetDefault("server.shutdown_timeout_seconds", 5)
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.debug", false)
	v.SetDefault("messages.locale", "en")
	v.SetDefault("seed.file", "")
	v.SetDefault("client.base_url", "http://localhost:8000")
	v.SetDefault("client.max_retry_attempts", 3)

	envBindings := map[string]string{
		"server.port":     "WORDBOOK_PORT",
		"messages.locale": "WORDBOOK_LOCALE",
		"seed.file":       "WORDBOOK_SEED_FILE",
		"client.base_url": "WORDBOOK_SERVER",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration and reports every invalid field.
func (cfg *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator() > %w", err)
	}
	return translateErrors(validate.Struct(cfg), trans)
}

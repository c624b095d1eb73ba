package main

import (
	"fmt"

	"github.com/at-ishikawa/wordbook/internal/client"
	"github.com/at-ishikawa/wordbook/internal/config"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newClient builds an API client, preferring serverURL over the configured base URL.
func newClient(serverURL string) (*client.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	baseURL := cfg.Client.BaseURL
	if serverURL != "" {
		baseURL = serverURL
	}
	return client.NewClient(baseURL, cfg.Client.MaxRetryAttempts), nil
}

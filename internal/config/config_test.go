package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                   8000,
			ResourcePath:           "/api/definitions/",
			ReadTimeoutSeconds:     10,
			WriteTimeoutSeconds:    10,
			ShutdownTimeoutSeconds: 5,
			MaxBodyBytes:           1 << 20,
		},
		Messages: MessagesConfig{
			Locale: "en",
		},
		Client: ClientConfig{
			BaseURL:          "http://localhost:8000",
			MaxRetryAttempts: 3,
		},
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		wantErr           bool
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `server:
  port: 10000
  resource_path: /api/words/
  read_timeout_seconds: 3
  write_timeout_seconds: 4
  shutdown_timeout_seconds: 1
  max_body_bytes: 2048
  debug: true
messages:
  locale: en
client:
  base_url: http://example.com:10000
  max_retry_attempts: 1
`,
			want: func() *Config {
				return &Config{
					Server: ServerConfig{
						Port:                   10000,
						ResourcePath:           "/api/words/",
						ReadTimeoutSeconds:     3,
						WriteTimeoutSeconds:    4,
						ShutdownTimeoutSeconds: 1,
						MaxBodyBytes:           2048,
						Debug:                  true,
					},
					Messages: MessagesConfig{Locale: "en"},
					Client: ClientConfig{
						BaseURL:          "http://example.com:10000",
						MaxRetryAttempts: 1,
					},
				}
			},
		},
		{
			name: "invalid YAML format",
			configContent: `server:
  port: 8000
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "invalid config structure uses defaults",
			configContent: `wrong_key:
  some_value: test
`,
			want: defaultConfig,
		},
		{
			name: "partial config with missing fields uses defaults",
			configContent: `server:
  port: 9000
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Server.Port = 9000
				return cfg
			},
		},
		{
			name:          "no config file uses defaults",
			configContent: "",
			want:          defaultConfig,
		},
		{
			name: "environment variables override the file",
			configContent: `server:
  port: 9000
`,
			env: map[string]string{
				"WORDBOOK_PORT":   "10000",
				"WORDBOOK_SERVER": "http://localhost:10000",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Server.Port = 10000
				cfg.Client.BaseURL = "http://localhost:10000"
				return cfg
			},
		},
		{
			name: "explicit config file path",
			configContent: `server:
  port: 8080
seed:
  file: seed.yml
`,
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Server.Port = 8080
				cfg.Seed.File = "seed.yml"
				return cfg
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "config.yml")
				err := os.WriteFile(configPath, []byte(tt.configContent), 0644)
				require.NoError(t, err)
			} else {
				if tt.configContent != "" {
					err := os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644)
					require.NoError(t, err)
				}
				t.Chdir(tempDir)
				t.Setenv("HOME", tempDir)
			}

			got, err := Load(configPath)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	seedFile := filepath.Join(t.TempDir(), "seed.yml")
	require.NoError(t, os.WriteFile(seedFile, []byte("[]\n"), 0644))

	tests := []struct {
		name              string
		modify            func(cfg *Config)
		wantErrorContains []string
	}{
		{
			name:   "defaults are valid",
			modify: func(cfg *Config) {},
		},
		{
			name: "readable seed file",
			modify: func(cfg *Config) {
				cfg.Seed.File = seedFile
			},
		},
		{
			name: "port out of range",
			modify: func(cfg *Config) {
				cfg.Server.Port = 70000
			},
			wantErrorContains: []string{"port must be 65,535 or less"},
		},
		{
			name: "resource path without leading slash",
			modify: func(cfg *Config) {
				cfg.Server.ResourcePath = "api/definitions/"
			},
			wantErrorContains: []string{"resource_path", "startswith"},
		},
		{
			name: "missing seed file",
			modify: func(cfg *Config) {
				cfg.Seed.File = filepath.Join(t.TempDir(), "missing.yml")
			},
			wantErrorContains: []string{"seed.file must be an existing and readable file"},
		},
		{
			name: "unsupported locale",
			modify: func(cfg *Config) {
				cfg.Messages.Locale = "xx"
			},
			wantErrorContains: []string{"messages.locale must be one of the supported locales"},
		},
		{
			name: "several invalid fields",
			modify: func(cfg *Config) {
				cfg.Server.Port = 0
				cfg.Client.BaseURL = "not a url"
			},
			wantErrorContains: []string{"invalid configuration", "port", "base_url"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if len(tt.wantErrorContains) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, wantMsg := range tt.wantErrorContains {
				assert.Contains(t, err.Error(), wantMsg)
			}
		})
	}
}

func TestServerConfig_Durations(t *testing.T) {
	cfg := ServerConfig{Port: 8000, ReadTimeoutSeconds: 2, WriteTimeoutSeconds: 3, ShutdownTimeoutSeconds: 4}

	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout())
	assert.Equal(t, 3*time.Second, cfg.WriteTimeout())
	assert.Equal(t, 4*time.Second, cfg.ShutdownTimeout())
}

// Package testutil provides shared test helpers for creating config files, seed files and test servers.
package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/wordbook/internal/definition"
	"github.com/at-ishikawa/wordbook/internal/message"
	"github.com/at-ishikawa/wordbook/internal/server"
)

// ConfigOption configures optional fields when creating a config file fixture.
type ConfigOption func(*testConfig)

type testConfig struct {
	port             int
	seedEntries      []definition.Entry
	maxRetryAttempts uint
}

// WithPort sets server.port.
func WithPort(port int) ConfigOption {
	return func(cfg *testConfig) {
		cfg.port = port
	}
}

// WithSeedEntries writes a seed file next to the config and points seed.file at it.
func WithSeedEntries(entries ...definition.Entry) ConfigOption {
	return func(cfg *testConfig) {
		cfg.seedEntries = entries
	}
}

// WithMaxRetryAttempts sets client.max_retry_attempts.
func WithMaxRetryAttempts(n uint) ConfigOption {
	return func(cfg *testConfig) {
		cfg.maxRetryAttempts = n
	}
}

// SetupTestConfig creates a config file in tmpDir and returns its path.
// By default the server listens on 8000 and the client does not retry.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{
		port: 8000,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var content strings.Builder
	fmt.Fprintf(&content, `server:
  port: %d
  shutdown_timeout_seconds: 1
client:
  max_retry_attempts: %d
`, cfg.port, cfg.maxRetryAttempts)
	if cfg.seedEntries != nil {
		fmt.Fprintf(&content, "seed:\n  file: %s\n", CreateSeedFile(t, tmpDir, cfg.seedEntries...))
	}

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content.String()), 0644))
	return cfgPath
}

// CreateSeedFile writes entries as a seed YAML file in dir and returns its path.
func CreateSeedFile(t *testing.T, dir string, entries ...definition.Entry) string {
	t.Helper()

	if entries == nil {
		entries = []definition.Entry{}
	}
	content, err := yaml.Marshal(entries)
	require.NoError(t, err)

	path := filepath.Join(dir, "seed.yml")
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

// NewTestServer starts an httptest server serving a dispatcher over a memory
// store holding entries. The server is closed when the test ends.
func NewTestServer(t *testing.T, entries ...definition.Entry) *httptest.Server {
	t.Helper()

	store := definition.NewMemoryStore()
	for _, entry := range entries {
		_, err := store.Insert(context.Background(), entry.Word, entry.Definition)
		require.NoError(t, err)
	}

	messages, err := message.New(message.DefaultLocale)
	require.NoError(t, err)
	dispatcher, err := server.NewDispatcher(store, messages)
	require.NoError(t, err)

	srv := httptest.NewServer(dispatcher)
	t.Cleanup(srv.Close)
	return srv
}

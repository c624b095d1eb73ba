package testutil

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordbook/internal/config"
	"github.com/at-ishikawa/wordbook/internal/definition"
)

func TestSetupTestConfig(t *testing.T) {
	tests := []struct {
		name          string
		opts          []ConfigOption
		wantPort      int
		wantRetries   uint
		wantSeedCount int
		wantSeedFile  bool
	}{
		{
			name:     "defaults",
			wantPort: 8000,
		},
		{
			name: "custom values",
			opts: []ConfigOption{
				WithPort(10000),
				WithMaxRetryAttempts(2),
				WithSeedEntries(
					definition.Entry{Word: "Cat", Definition: "A small domesticated feline."},
					definition.Entry{Word: "Dog", Definition: "A loyal companion."},
				),
			},
			wantPort:      10000,
			wantRetries:   2,
			wantSeedCount: 2,
			wantSeedFile:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			got := SetupTestConfig(t, tmpDir, tt.opts...)
			assert.Equal(t, filepath.Join(tmpDir, "config.yml"), got)

			cfg, err := config.Load(got)
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())
			assert.Equal(t, tt.wantPort, cfg.Server.Port)
			assert.Equal(t, tt.wantRetries, cfg.Client.MaxRetryAttempts)

			if !tt.wantSeedFile {
				assert.Empty(t, cfg.Seed.File)
				return
			}
			count, err := definition.LoadSeed(context.Background(), definition.NewMemoryStore(), cfg.Seed.File)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSeedCount, count)
		})
	}
}

func TestCreateSeedFile_Empty(t *testing.T) {
	path := CreateSeedFile(t, t.TempDir())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(content))
}

func TestNewTestServer(t *testing.T) {
	srv := NewTestServer(t, definition.Entry{Word: "Cat", Definition: "A small domesticated feline."})

	resp, err := http.Get(srv.URL + "/api/definitions/?word=cat")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

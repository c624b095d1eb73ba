package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordbook/internal/definition"
)

func TestOutputFormat_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    OutputFormat
		wantErr bool
	}{
		{name: "text", value: "text", want: OutputFormatText},
		{name: "json", value: "json", want: OutputFormatJSON},
		{name: "invalid", value: "xml", want: OutputFormatText, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutputFormatText
			err := got.Set(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid output format")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "OutputFormat", got.Type())
		})
	}
}

func TestLookupAndAddCommands(t *testing.T) {
	configPath, serverURL := setupTestEnv(t)
	base := []string{"--config", configPath}
	withServer := func(args ...string) []string {
		return append(append(append([]string{}, base...), args...), "--server", serverURL)
	}

	out, err := execute(t, withServer("add", "Cat", "A", "small", "domesticated", "feline.")...)
	require.NoError(t, err)
	assert.Equal(t, "Request # 1. Total entries: 1\n", out)

	out, err = execute(t, withServer("add", "cat", "Another.")...)
	require.NoError(t, err)
	assert.Equal(t, "Warning! 'Cat' already exists.\n", out)

	out, err = execute(t, withServer("lookup", "cat")...)
	require.NoError(t, err)
	assert.Equal(t, "Cat: A small domesticated feline.\n", out)

	out, err = execute(t, withServer("lookup", "cat", "--output", "json")...)
	require.NoError(t, err)
	assert.JSONEq(t, `{"word":"Cat","definition":"A small domesticated feline.","requestNumber":4}`, out)

	out, err = execute(t, withServer("lookup", "dog")...)
	require.NoError(t, err)
	assert.Equal(t, "Request # 5. Word 'dog' not found\n", out)

	out, err = execute(t, withServer("lookup", "dog", "--output", "json")...)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Request # 6. Word 'dog' not found","requestNumber":6}`, out)

	_, err = execute(t, withServer("lookup", "d0g")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "response error 400")
}

func TestLookupCommand_SeededServer(t *testing.T) {
	configPath, serverURL := setupTestEnv(t, definition.Entry{Word: "hot dog", Definition: "A sausage in a bun."})

	out, err := execute(t, "--config", configPath, "lookup", "Hot Dog", "--server", serverURL)
	require.NoError(t, err)
	assert.Equal(t, "hot dog: A sausage in a bun.\n", out)
}

func TestLookupCommand_Args(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "lookup without word", args: []string{"lookup"}},
		{name: "add without definition", args: []string{"add", "Cat"}},
		{name: "invalid output", args: []string{"lookup", "cat", "--output", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

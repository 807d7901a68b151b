package sweep

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig([]byte(`
maxErrors: 3
workers: 2
messages: 1024
metricsFile: /tmp/golay.prom
logLevel: debug
`))
	require.NoError(t, err)
	assert.Equal(t, Config{
		MaxErrors:   3,
		Workers:     2,
		Messages:    1024,
		MetricsFile: "/tmp/golay.prom",
		LogLevel:    "debug",
	}, config)
}

func TestParseConfigDefaults(t *testing.T) {
	config, err := ParseConfig([]byte("workers: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, MaxErrorWeight, config.MaxErrors)
	assert.Equal(t, MaxMessages, config.Messages)
	assert.Equal(t, 3, config.Workers)
	assert.Equal(t, "info", config.LogLevel)
}

func TestParseConfigInvalid(t *testing.T) {
	var tests = []struct {
		YAML string
		Want string
	}{
		{"maxErrors: 5\n", "maxErrors 5 out of range"},
		{"maxErrors: -1\n", "maxErrors -1 out of range"},
		{"workers: 0\n", "at least 1 worker"},
		{"messages: 4097\n", "messages 4097 out of range"},
		{"logLevel: loud\n", "logLevel"},
		{"bogus: true\n", "invalid configuration"},
		{"workers: [1\n", "invalid configuration"},
	}

	for _, test := range tests {
		_, err := ParseConfig([]byte(test.YAML))
		require.Error(t, err, "config %q", test.YAML)
		assert.Contains(t, err.Error(), test.Want)
	}
}

func TestLoadConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(name, []byte("messages: 64\nmaxErrors: 2\n"), 0644))

	config, err := LoadConfig(name)
	require.NoError(t, err)
	assert.Equal(t, 64, config.Messages)
	assert.Equal(t, 2, config.MaxErrors)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	name := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(name, []byte("maxErrors: 5\n"), 0644))

	_, err := LoadConfig(name)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), name+": sweep: maxErrors 5"), err.Error())
	assert.Equal(t, 1, strings.Count(err.Error(), "sweep:"), err.Error())
}

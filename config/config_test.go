package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BRAVE_API_KEY", "test-key")
	t.Setenv("TRANSPORT", "")
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.BraveAPIKey)
	assert.Equal(t, TransportSSE, cfg.Transport)
	assert.Equal(t, "0.0.0.0:8053", cfg.Addr())
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("BRAVE_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BRAVE_API_KEY")
}

func TestLoadRejectsUnknownTransport(t *testing.T) {
	t.Setenv("BRAVE_API_KEY", "test-key")
	t.Setenv("TRANSPORT", "websocket")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TRANSPORT")
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("BRAVE_API_KEY", "test-key")
	t.Setenv("TRANSPORT", "stdio")
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestLoadStdio(t *testing.T) {
	t.Setenv("BRAVE_API_KEY", "test-key")
	t.Setenv("TRANSPORT", "stdio")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, TransportStdio, cfg.Transport)
}

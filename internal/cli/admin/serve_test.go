package admin

import (
	"testing"

	"github.com/lexihq/lexi/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverridePort_FlagNotSetKeepsConfig(t *testing.T) {
	cmd := ServeCmd()
	cfg := &config.Config{Port: "9090"}

	overridePort(cmd, cfg)

	assert.Equal(t, "9090", cfg.Port)
}

func TestOverridePort_ExplicitFlagWins(t *testing.T) {
	cmd := ServeCmd()
	cfg := &config.Config{Port: "9090"}

	require.NoError(t, cmd.Flags().Set("port", "7070"))
	overridePort(cmd, cfg)

	assert.Equal(t, "7070", cfg.Port)
}

func TestOverridePort_ExplicitDefaultValueWins(t *testing.T) {
	// Passing --port 8080 explicitly must override an env-configured port
	// even though 8080 is also the flag default.
	cmd := ServeCmd()
	cfg := &config.Config{Port: "9090"}

	require.NoError(t, cmd.Flags().Set("port", "8080"))
	overridePort(cmd, cfg)

	assert.Equal(t, "8080", cfg.Port)
}

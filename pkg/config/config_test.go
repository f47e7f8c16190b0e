package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "ergonomic mechanical keyboard", cfg.Pipeline.Query)
	assert.Equal(t, "11201", cfg.Pipeline.ShipToZip)
	assert.Equal(t, 10, cfg.Pipeline.TopN)
	assert.Equal(t, 5.0, cfg.Pipeline.BoostPerMatch)
	assert.Equal(t, "output", cfg.Output.Dir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PIPELINE_TOP_N", "25")
	t.Setenv("PIPELINE_QUERY", "split keyboard")
	t.Setenv("BESTBUY_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 25, cfg.Pipeline.TopN)
	assert.Equal(t, "split keyboard", cfg.Pipeline.Query)
	assert.Equal(t, "test-key", cfg.Sources.BestBuyAPIKey)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestServerAddr(t *testing.T) {
	c := ServerConfig{Host: "127.0.0.1", Port: 8081}
	assert.Equal(t, "127.0.0.1:8081", c.ServerAddr())
}

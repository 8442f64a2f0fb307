package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MergesInOrder(t *testing.T) {
	b := newConfigBuilder()
	b.layers = append(b.layers,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:8080"}},
		&StructuredConfig{Auth: Auth{TokenIssuer: "mess-manager"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "mess-manager", cfg.Auth.TokenIssuer)
}

func TestBuild_FirstNonZeroWins(t *testing.T) {
	// mergo does not overwrite already-populated fields, so the earliest
	// source holding a value takes priority.
	b := newConfigBuilder()
	b.layers = append(b.layers,
		&StructuredConfig{Auth: Auth{TokenDuration: time.Hour}},
		&StructuredConfig{Auth: Auth{TokenDuration: time.Minute}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.layers = append(b.layers, &StructuredConfig{})

	before := len(b.layers)
	b.withJSON()
	assert.Len(t, b.layers, before)
	assert.NoError(t, b.err)
}

func TestWithJSON_MissingFileIsError(t *testing.T) {
	b := newConfigBuilder()
	b.layers = append(b.layers, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()
	assert.Error(t, b.err)

	_, err := b.build()
	assert.Error(t, err)
}

func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSON(t, `{"server": {"http_address": "localhost:9090"}}`)

	b := newConfigBuilder()
	b.layers = append(b.layers, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be duration strings like "30s" or raw nanoseconds.
	jsonBody := `{
		"app": {
			"version": "1.2.3",
			"log_path": "/var/log/client.log"
		},
		"chain": {
			"rpc_address": "http://127.0.0.1:8545",
			"request_timeout": "15s",
			"receipt_timeout": "2m",
			"deployments_path": "/etc/crowdfund/deployments.json"
		},
		"ipfs": {
			"api_address": "http://127.0.0.1:5001",
			"request_timeout": "10s"
		},
		"session": {
			"path": "/tmp/session",
			"ttl": "24h"
		},
		"admin": {
			"addresses": ["0xabc", "0xdef"]
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/var/log/client.log", cfg.App.LogPath)

	assert.Equal(t, "http://127.0.0.1:8545", cfg.Chain.RPCAddress)
	assert.Equal(t, 15*time.Second, cfg.Chain.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Chain.ReceiptTimeout)
	assert.Equal(t, "/etc/crowdfund/deployments.json", cfg.Chain.DeploymentsPath)

	assert.Equal(t, "http://127.0.0.1:5001", cfg.IPFS.APIAddress)
	assert.Equal(t, 10*time.Second, cfg.IPFS.RequestTimeout)

	assert.Equal(t, "/tmp/session", cfg.Session.Path)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)

	assert.Equal(t, []string{"0xabc", "0xdef"}, cfg.Admin.Addresses)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	// ttl should be a duration string; make it invalid.
	jsonBody := `{
		"session": { "ttl": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// With non-pointer nested structs, all fields are zero values.
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"chain": { "rpc_address": "http://10.0.0.5:8545" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://10.0.0.5:8545", cfg.Chain.RPCAddress)
	assert.Zero(t, cfg.Chain.RequestTimeout)
	assert.Empty(t, cfg.Chain.DeploymentsPath)

	// Others remain zero
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, IPFS{}, cfg.IPFS)
	assert.Equal(t, Session{}, cfg.Session)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "numeric.json")

	// Raw numbers are interpreted as nanoseconds.
	jsonBody := `{
		"chain": { "request_timeout": 15000000000 }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.Chain.RequestTimeout)
}

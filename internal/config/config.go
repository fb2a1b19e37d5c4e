package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// crowdfund client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log file location
	// and the configured version string.
	App App `envPrefix:"APP_"`

	// Chain holds the Ethereum JSON-RPC endpoint settings and the path to
	// the contract deployments file.
	Chain Chain `envPrefix:"CHAIN_"`

	// IPFS holds the content-store HTTP API settings.
	IPFS IPFS `envPrefix:"IPFS_"`

	// Session holds the local session slot settings.
	Session Session `envPrefix:"SESSION_"`

	// Admin holds the administrator allow-list.
	Admin Admin `envPrefix:"ADMIN_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the configured version string shown in the build overlay
	// when no linker-injected version is present.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogPath is the file the client logger appends to. The TUI owns the
	// terminal, so logs never go to stdout.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Chain holds settings for the Ethereum JSON-RPC gateway.
type Chain struct {
	// RPCAddress is the JSON-RPC endpoint of the wallet-managing node.
	// When empty the gateway falls back to the fixed local development
	// endpoint.
	// Env: CHAIN_RPC_ADDRESS
	RPCAddress string `env:"RPC_ADDRESS"`

	// RequestTimeout bounds every single JSON-RPC request.
	// Env: CHAIN_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ReceiptTimeout bounds the wait for a transaction receipt after a
	// send (wallet confirmation plus mining time).
	// Env: CHAIN_RECEIPT_TIMEOUT
	ReceiptTimeout time.Duration `env:"RECEIPT_TIMEOUT"`

	// DeploymentsPath points at the JSON file mapping contract names to
	// per-network deployed addresses.
	// Env: CHAIN_DEPLOYMENTS_PATH
	DeploymentsPath string `env:"DEPLOYMENTS_PATH"`
}

// IPFS holds settings for the content-store HTTP API client.
type IPFS struct {
	// APIAddress is the IPFS node HTTP API endpoint
	// (e.g. "http://127.0.0.1:5001").
	// Env: IPFS_API_ADDRESS
	APIAddress string `env:"API_ADDRESS"`

	// RequestTimeout bounds every content-store request.
	// Env: IPFS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds settings for the local session slot.
type Session struct {
	// Path is the file holding the single session timestamp slot.
	// Env: SESSION_PATH
	Path string `env:"PATH"`

	// TTL is the session time-to-live; a session older than this is
	// expired and cleared on the next check.
	// Env: SESSION_TTL
	TTL time.Duration `env:"TTL"`
}

// Admin holds the administrator allow-list. Admin status is resolved
// client-side against this list; an empty list means nobody is admin.
type Admin struct {
	// Addresses is the comma-separated list of admin account addresses.
	// Env: ADMIN_ADDRESSES
	Addresses []string `env:"ADDRESSES" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

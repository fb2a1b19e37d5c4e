package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied by GetClientConfig when a field is left unset by every
// configuration source.
const (
	DefaultRequestTimeout = 15 * time.Second
	DefaultReceiptTimeout = 2 * time.Minute
	DefaultSessionTTL     = 24 * time.Hour
	DefaultIPFSAddress    = "http://127.0.0.1:5001"
)

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig] with defaults applied.
type ClientConfig struct {
	// App contains application-level client settings.
	App App
	// Chain contains JSON-RPC gateway settings.
	Chain Chain
	// IPFS contains content-store client settings.
	IPFS IPFS
	// Session contains local session slot settings.
	Session Session
	// Admin contains the administrator allow-list.
	Admin Admin
}

// GetClientConfig builds and validates the client configuration.
//
// It loads the base config via [GetStructuredConfig], applies defaults for
// unset fields (timeouts, session TTL, state-directory paths), and validates
// the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Chain:   cfg.Chain,
		IPFS:    cfg.IPFS,
		Session: cfg.Session,
		Admin:   cfg.Admin,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	stateDir := defaultStateDir()

	if cfg.App.LogPath == "" {
		cfg.App.LogPath = filepath.Join(stateDir, "client.log")
	}
	if cfg.Chain.RequestTimeout <= 0 {
		cfg.Chain.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Chain.ReceiptTimeout <= 0 {
		cfg.Chain.ReceiptTimeout = DefaultReceiptTimeout
	}
	if cfg.Chain.DeploymentsPath == "" {
		cfg.Chain.DeploymentsPath = filepath.Join(stateDir, "deployments.json")
	}
	if cfg.IPFS.APIAddress == "" {
		cfg.IPFS.APIAddress = DefaultIPFSAddress
	}
	if cfg.IPFS.RequestTimeout <= 0 {
		cfg.IPFS.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Session.Path == "" {
		cfg.Session.Path = filepath.Join(stateDir, "session")
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = DefaultSessionTTL
	}
}

// defaultStateDir returns the per-user directory for client state (session
// slot, log file, deployments). Falls back to the working directory when the
// user config dir cannot be resolved.
func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "crowdfund")
}

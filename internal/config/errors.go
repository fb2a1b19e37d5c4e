package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidChainConfigs indicates invalid chain gateway settings
	// (for example, a non-positive request or receipt timeout).
	ErrInvalidChainConfigs = errors.New("invalid chain configuration")
	// ErrInvalidIPFSConfigs indicates invalid content-store settings
	// (for example, a missing API address).
	ErrInvalidIPFSConfigs = errors.New("invalid ipfs configuration")
	// ErrInvalidSessionConfigs indicates invalid session settings
	// (for example, an empty slot path or non-positive TTL).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
)

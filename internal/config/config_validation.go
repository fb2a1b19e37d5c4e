package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; all hard requirements are enforced on the
// derived [ClientConfig] after defaults are applied.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Chain.RequestTimeout <= 0 || cfg.Chain.ReceiptTimeout <= 0 {
		return ErrInvalidChainConfigs
	}

	if cfg.IPFS.APIAddress == "" || cfg.IPFS.RequestTimeout <= 0 {
		return ErrInvalidIPFSConfigs
	}

	if cfg.Session.Path == "" || cfg.Session.TTL <= 0 {
		return ErrInvalidSessionConfigs
	}

	return nil
}

package config

// validate checks that the merged [Config] satisfies the engine's invariants
// before an engine instance is built on top of it.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *Config) validate() error {
	if cfg.KDF.Iterations <= 0 || cfg.KDF.KeyBits <= 0 || cfg.KDF.KeyBits%8 != 0 {
		return ErrInvalidKDFConfig
	}

	if cfg.Cache.Capacity <= 0 || cfg.Cache.TTL <= 0 || cfg.Cache.SweepInterval <= 0 {
		return ErrInvalidCacheConfig
	}

	return nil
}

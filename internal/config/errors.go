package config

import "errors"

var (
	// ErrInvalidKDFConfig is returned when the derivation parameters are
	// unusable (non-positive iteration count, key size not a multiple of 8).
	ErrInvalidKDFConfig = errors.New("invalid kdf configuration")

	// ErrInvalidCacheConfig is returned when the cache bounds are unusable
	// (non-positive capacity, TTL or sweep interval).
	ErrInvalidCacheConfig = errors.New("invalid cache configuration")
)

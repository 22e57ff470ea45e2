// Package keystore defines the secure key store the engine persists its
// small secrets into, plus the adapters shipped with the engine.
//
// The store is expected to be durable, per-device and access-controlled by
// the OS (keychain/keystore semantics). The engine never assumes
// encryption-at-rest strength beyond "an unprivileged process cannot read it
// trivially", which is why derived keys, never passwords, are what gets
// stored.
package keystore

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/keystore_mock.go -package=mock

// SecureKeyStore is the persistence interface for small secret strings keyed
// by user and purpose. Host applications may supply their own implementation
// (e.g. backed by the platform keychain); the engine ships an in-memory
// adapter and a SQLite-backed one.
type SecureKeyStore interface {
	// Get returns the value stored under name, or ErrKeyNotFound if no such
	// entry exists.
	Get(ctx context.Context, name string) (string, error)

	// Set stores value under name, overwriting any previous value.
	Set(ctx context.Context, name, value string) error

	// Delete removes the entry stored under name. Deleting a missing entry
	// is not an error.
	Delete(ctx context.Context, name string) error
}

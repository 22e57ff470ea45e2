package keystore

import "errors"

// Sentinel errors returned by key store adapters. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when no entry exists under the
	// requested name.
	ErrKeyNotFound = errors.New("key not found in secure store")
)

// Low-level database errors returned (or wrapped) by the SQLite adapter when
// a SQL operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan secure key row")
)

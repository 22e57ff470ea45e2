package service

import "errors"

var (
	// ErrMissingUser is returned when an operation that requires a user id
	// receives an empty one. The engine never silently defaults a user.
	ErrMissingUser = errors.New("no user id provided")

	// ErrCorruptSelfTest is returned when the stored self-test artifact
	// cannot be parsed. It indicates key store corruption, not a wrong
	// password.
	ErrCorruptSelfTest = errors.New("corrupt self-test artifact")

	// ErrCorruptKeyRecord is returned when stored key material cannot be
	// decoded.
	ErrCorruptKeyRecord = errors.New("corrupt key record in secure store")
)

package models

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is the sentinel matched by [errors.Is] for any record
// validation failure.
var ErrMalformedRecord = errors.New("malformed encrypted record")

// MalformedRecordError describes which field of an incoming record failed
// validation. It unwraps to [ErrMalformedRecord].
type MalformedRecordError struct {
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%v: field %q is %s", ErrMalformedRecord, e.Field, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}

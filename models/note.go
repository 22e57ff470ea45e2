// Package models holds the record types exchanged between the encryption
// engine and its collaborators (offline cache, sync layer, remote service).
package models

import "encoding/base64"

// EncryptedNote is the wire and storage representation of one encrypted
// note. All four fields are opaque base64 text; collaborators must pass IV
// and Salt back unchanged and never interpret them.
//
// EncryptedTitle and EncryptedContent share one IV/salt pair within a
// record; the pair is freshly random on every encryption and never reused
// across records.
type EncryptedNote struct {
	EncryptedTitle   string `json:"encryptedTitle"`
	EncryptedContent string `json:"encryptedContent"`
	IV               string `json:"iv"`
	Salt             string `json:"salt"`
}

// DecryptedNote is the plaintext counterpart of an [EncryptedNote]. It only
// ever exists in memory on the user's device.
type DecryptedNote struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ParseEncryptedNote validates raw field values and returns a well-formed
// [EncryptedNote]. A record is only "encrypted" when all four fields are
// present, non-empty and base64-decodable; anything else is rejected with
// [ErrMalformedRecord] instead of being probed field by field at decrypt
// time.
func ParseEncryptedNote(encryptedTitle, encryptedContent, iv, salt string) (EncryptedNote, error) {
	note := EncryptedNote{
		EncryptedTitle:   encryptedTitle,
		EncryptedContent: encryptedContent,
		IV:               iv,
		Salt:             salt,
	}
	if err := note.Validate(); err != nil {
		return EncryptedNote{}, err
	}
	return note, nil
}

// Validate reports whether the record satisfies the four-field invariant.
func (n EncryptedNote) Validate() error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"encryptedTitle", n.EncryptedTitle},
		{"encryptedContent", n.EncryptedContent},
		{"iv", n.IV},
		{"salt", n.Salt},
	} {
		if field.value == "" {
			return &MalformedRecordError{Field: field.name, Reason: "empty"}
		}
		if _, err := base64.StdEncoding.DecodeString(field.value); err != nil {
			return &MalformedRecordError{Field: field.name, Reason: "not valid base64"}
		}
	}
	return nil
}

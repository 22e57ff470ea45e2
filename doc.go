// Package notecrypt is the client-side encryption and key-management engine
// of the Quill notes application.
//
// All note plaintext is encrypted and decrypted exclusively on the user's
// device; the backing service and storage layers only ever see the opaque
// four-field EncryptedNote record. Keys are derived from the user's master
// password with PBKDF2-HMAC-SHA256 (250k iterations by default, matching the
// companion web client) and content is protected with AES-256-GCM.
//
// The engine has no network or UI dependency. It consumes a password and a
// user id from the host application and persists small secrets through a
// SecureKeyStore, for which it ships an in-memory and a SQLite-backed
// adapter.
//
// Basic usage:
//
//	engine, err := notecrypt.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer engine.Close()
//
//	// One-time (per device) master password setup. Deliberately slow:
//	// show progress UI across the call.
//	if err := engine.SetupMasterPassword(ctx, password, userID); err != nil {
//	    log.Fatal(err)
//	}
//
//	note, err := engine.EncryptNote(ctx, userID, "groceries", "milk, eggs")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plain, err := engine.DecryptNote(ctx, userID, note)
package notecrypt

package keystore

import "fmt"

// Key-name scheme shared with the companion clients. The names are part of
// the on-device storage contract: renaming any of them orphans secrets
// written by earlier versions.

// MasterKeyName is the entry holding the derived master key (base64).
func MasterKeyName(userID string) string {
	return fmt.Sprintf("enc_master_key_%s", userID)
}

// HasMasterPasswordName is the entry holding the "user has set a master
// password" flag ("true" when set).
func HasMasterPasswordName(userID string) string {
	return fmt.Sprintf("has_master_password_%s", userID)
}

// SelfTestName is the entry holding the self-test ciphertext used to verify
// a candidate key during unlock.
func SelfTestName(userID string) string {
	return fmt.Sprintf("test_encryption_%s", userID)
}

// FallbackSecretName is the entry holding the legacy per-user random secret
// used when no master password exists (base64 of 64 random bytes).
func FallbackSecretName(userID string) string {
	return fmt.Sprintf("enc_secret_%s", userID)
}

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// PasswordFingerprint derives a 16 hex character HMAC-SHA256 fingerprint of
// a password hash. A reset token carries the fingerprint of the hash it was
// issued against and stops matching once the password changes.
func PasswordFingerprint(passwordHash, key string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(passwordHash))
	return hex.EncodeToString(mac.Sum(nil)[:8])
}

// FingerprintsEqual compares two fingerprints in constant time.
func FingerprintsEqual(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}

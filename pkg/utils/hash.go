package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// fingerprintLength is long enough to tell leads apart in logs
const fingerprintLength = 16

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	h := sha256.New()
	h.Write([]byte(input))

	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint returns a short stable hash of a contact value so operators can
// spot repeat submissions in the logs. Case and whitespace are ignored.
func Fingerprint(contact string) string {
	normalized := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, contact)

	return HashString(normalized)[:fingerprintLength]
}

// Package chain provides the read-only boundary to the dish token contract:
// canonical 32-byte dish key derivation and holder-count lookups.
package chain

import (
	"encoding/hex"
	"regexp"
	"strings"
)

// KeySize is the width of an on-chain dish identifier.
const KeySize = 32

// canonicalKeyRegex matches a 0x-prefixed 32-byte hex string (66 chars total).
var canonicalKeyRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// IsCanonicalKey reports whether id is already a well-formed 32-byte hex key.
func IsCanonicalKey(id string) bool {
	return canonicalKeyRegex.MatchString(id)
}

// DishKey derives the 32-byte contract identifier for a dish id. A canonical
// 0x-prefixed 64-hex-char id is decoded verbatim; any other string is
// UTF-8-encoded, truncated to 32 bytes, and right-padded with zero bytes.
func DishKey(id string) [KeySize]byte {
	var key [KeySize]byte

	if IsCanonicalKey(id) {
		// hex.Decode cannot fail after the regex match.
		raw, _ := hex.DecodeString(id[2:])
		copy(key[:], raw)
		return key
	}

	copy(key[:], id)
	return key
}

// KeyHex renders a 32-byte key in the canonical 0x form.
func KeyHex(key [KeySize]byte) string {
	return "0x" + strings.ToLower(hex.EncodeToString(key[:]))
}

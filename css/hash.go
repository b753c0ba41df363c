package css

import (
	"strconv"
	"unicode/utf16"
)

// FNV-1a 64-bit parameters.
const (
	hashOffset64 = 14695981039346656037
	hashPrime64  = 1099511628211
)

// tokenLen is the length identifier tokens are truncated to. With 36^9
// possible tokens and at most a few thousand rules per scope, collisions
// are a theoretical risk only and are not detected.
const tokenLen = 9

// Hash reduces text to a short stable identifier token: FNV-1a over the
// UTF-16 code units of the input, rendered in base-36 and truncated. Pure
// function of its input, stable across process runs.
func Hash(text string) string {
	h := uint64(hashOffset64)
	for _, cu := range utf16.Encode([]rune(text)) {
		h ^= uint64(cu)
		h *= hashPrime64
	}
	token := strconv.FormatUint(h, 36)
	if len(token) > tokenLen {
		token = token[:tokenLen]
	}
	return token
}

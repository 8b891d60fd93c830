// Package analysis computes the derived properties of a stored string.
// All functions are pure and safe for concurrent use.
package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Properties is the fixed set of values derived from a normalized string.
type Properties struct {
	Length           int
	IsPalindrome     bool
	UniqueCharacters int
	WordCount        int
	SHA256           string
	CharFrequency    map[string]int
}

// Analyze computes all properties of raw after trimming leading and
// trailing whitespace. Character-level properties operate on runes, so
// multi-byte characters count once; the hash is computed over the UTF-8
// bytes of the trimmed value.
func Analyze(raw string) Properties {
	cleaned := strings.TrimSpace(raw)
	runes := []rune(cleaned)

	freq := make(map[string]int, len(runes))
	for _, r := range runes {
		freq[string(r)]++
	}

	return Properties{
		Length:           len(runes),
		IsPalindrome:     isPalindrome(runes),
		UniqueCharacters: len(freq),
		WordCount:        len(strings.Fields(cleaned)),
		SHA256:           Hash(cleaned),
		CharFrequency:    freq,
	}
}

// Hash returns the lowercase hex SHA-256 digest of the trimmed value.
// This digest is the record identifier: identical trimmed values always
// hash to the same ID.
func Hash(raw string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(raw)))
	return hex.EncodeToString(sum[:])
}

// isPalindrome reports whether the runes read the same in both directions
// under case-insensitive comparison. The empty string is a palindrome.
func isPalindrome(runes []rune) bool {
	reversed := make([]rune, len(runes))
	for i, r := range runes {
		reversed[len(runes)-1-i] = r
	}
	return strings.EqualFold(string(runes), string(reversed))
}

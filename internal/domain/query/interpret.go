package query

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	wordCountRegex = regexp.MustCompile(`(\d+)\s+word(?:s)?`)
	minLengthRegex = regexp.MustCompile(`(?:more|greater|longer)\s+than\s+(\d+)`)
	maxLengthRegex = regexp.MustCompile(`(?:less|shorter)\s+than\s+(\d+)`)
	letterRegex    = regexp.MustCompile(`letter\s+([a-z])`)
)

// Interpret derives a Filter from a free-text query using fixed lexical
// patterns. Each filter slot is detected independently; first match wins.
// A query matching no pattern yields an empty filter, never an error.
//
// The negated palindrome forms are checked before the positive form
// because "palindrome" is a substring of "not a palindrome".
//
// Thresholds are deliberately asymmetric: "more than N" means at least
// N+1, while "less than N" means at most N. Kept for compatibility with
// existing clients.
func Interpret(q string) Filter {
	q = strings.ToLower(q)
	var f Filter

	if strings.Contains(q, "not a palindrome") || strings.Contains(q, "non-palindrome") {
		f.IsPalindrome = boolPtr(false)
	} else if strings.Contains(q, "palindrome") {
		f.IsPalindrome = boolPtr(true)
	}

	if m := wordCountRegex.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			f.WordCount = &n
		}
	}

	if m := minLengthRegex.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			n++
			f.MinLength = &n
		}
	}

	if m := maxLengthRegex.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			f.MaxLength = &n
		}
	}

	if m := letterRegex.FindStringSubmatch(q); m != nil {
		f.ContainsCharacter = &m[1]
	}

	return f
}

func boolPtr(b bool) *bool { return &b }

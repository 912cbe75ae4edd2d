package util

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Match sequences of non-alphanumeric characters
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Words splits a display name into lowercase, accent-free words.
// "Café Crème-N" becomes ["cafe", "creme", "n"].
func Words(s string) []string {
	s = strings.ToLower(s)
	s = removeAccents(s)
	s = nonAlphanumeric.ReplaceAllString(s, " ")
	return strings.Fields(s)
}

// MatchesWordPrefixes reports whether every query word is a prefix of some
// word in name. An empty query matches everything.
func MatchesWordPrefixes(name, query string) bool {
	nameWords := Words(name)
	for _, q := range Words(query) {
		found := false
		for _, w := range nameWords {
			if strings.HasPrefix(w, q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// removeAccents removes diacritical marks from unicode characters.
func removeAccents(s string) string {
	result := norm.NFD.String(s)

	var b strings.Builder
	for _, r := range result {
		if !unicode.Is(unicode.Mn, r) { // Mn = Mark, Nonspacing
			b.WriteRune(r)
		}
	}

	return b.String()
}

// NowMillis returns the current time in milliseconds since Unix epoch.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

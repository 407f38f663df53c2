package matching

import "strings"

// Common English filler words that carry no identifying signal in a
// report description.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"of": true, "in": true, "on": true, "at": true, "to": true,
	"it": true, "is": true, "was": true, "my": true, "i": true,
	"with": true, "has": true, "had": true, "have": true, "its": true,
	"for": true, "this": true, "that": true, "near": true, "by": true,
	"be": true, "are": true, "from": true, "as": true, "there": true,
}

// NormalizeText lowercases a string and strips everything that is not a
// letter, digit or space.
func NormalizeText(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokens splits a string into normalized tokens with stopwords and
// single characters removed, preserving order of first occurrence.
func Tokens(s string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tok := range strings.Fields(NormalizeText(s)) {
		if len(tok) < 2 || stopwords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// TokenSet returns Tokens as a membership set.
func TokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range Tokens(s) {
		set[tok] = true
	}
	return set
}

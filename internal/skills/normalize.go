package skills

import (
	"sort"
	"strings"
)

// minTokenLength is the shortest skill token kept by normalization. One- and
// two-character fragments are almost always extraction noise ("a", "of", "to").
const minTokenLength = 3

// NormalizeToken canonicalizes a single raw skill name: lower-cased, trimmed
// of surrounding whitespace and trailing punctuation. Returns "" when nothing
// usable remains.
func NormalizeToken(raw string) string {
	token := strings.ToLower(strings.TrimSpace(raw))
	token = strings.TrimRight(token, ".,;:!")
	token = strings.TrimSpace(token)
	if len(token) < minTokenLength {
		return ""
	}
	return token
}

// Normalize canonicalizes extracted skill records into the required-skill
// set: deduplicated exact-string (post-normalization) and sorted
// alphabetically. Records with empty or too-short names are dropped; nothing
// else is filtered. Normalize is idempotent over its own output.
func Normalize(records []Record) []string {
	seen := make(map[string]bool, len(records))
	out := make([]string, 0, len(records))

	for _, record := range records {
		token := NormalizeToken(record.SkillName())
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		out = append(out, token)
	}

	sort.Strings(out)
	return out
}

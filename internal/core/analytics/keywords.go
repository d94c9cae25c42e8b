package analytics

import "strings"

// minKeywordLen filters out short filler words; tokens must be strictly
// longer than this to qualify as keywords.
const minKeywordLen = 3

// ExtractKeywords normalizes a message into its keyword set: lowercase,
// punctuation stripped, split on whitespace, tokens longer than three
// characters, deduplicated in first-seen order.
func ExtractKeywords(message string) []string {
	normalized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			return r
		}
		return -1
	}, message)

	var keywords []string
	seen := make(map[string]struct{})
	for _, word := range strings.Fields(normalized) {
		if len(word) <= minKeywordLen {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
	}
	return keywords
}

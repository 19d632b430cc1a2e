// Package wordlist prepares dictionary word lists.
package wordlist

import "strings"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific filter for word lists.
func FilterForLang(lang string) FilterFunc {
	switch strings.ToLower(lang) {
	case "en":
		return filterEnglishASCII
	default:
		return func(word string) bool { return word != "" }
	}
}

func filterEnglishASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

// Normalize trims and lowercases lines, drops words rejected by filter and
// removes repeats, keeping the first occurrence.
func Normalize(lines []string, filter FilterFunc) []string {
	if filter == nil {
		filter = FilterForLang("")
	}
	seen := make(map[string]struct{}, len(lines))
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		word := strings.ToLower(strings.TrimSpace(line))
		if !filter(word) {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	return words
}

package jumble

import (
	"fmt"
	"strings"
)

// Output formats accepted by Format.
const (
	FormatNameList  = "list"
	FormatNameLines = "lines"
)

// FormatList renders words on one line as a bracketed, comma-separated list.
func FormatList(words []string) string {
	return "[" + strings.Join(words, ", ") + "]"
}

// FormatLines renders one word per line. An empty result renders as an empty string.
func FormatLines(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return strings.Join(words, "\n") + "\n"
}

// Format renders words using the named output format.
func Format(name string, words []string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatNameList:
		return FormatList(words) + "\n", nil
	case FormatNameLines:
		return FormatLines(words), nil
	default:
		return "", fmt.Errorf("unknown output format %q (available: %s, %s)", name, FormatNameList, FormatNameLines)
	}
}

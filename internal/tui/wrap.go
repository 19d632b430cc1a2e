package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const wordSeparator = "  "

// wrapWords packs words into lines no wider than width. A word wider than
// width gets a line of its own. Non-positive width yields a single line.
func wrapWords(words []string, width int) []string {
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, wordSeparator)}
	}
	sepWidth := runewidth.StringWidth(wordSeparator)
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+sepWidth+wordWidth > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteString(wordSeparator)
			lineWidth += sepWidth
		}
		line.WriteString(word)
		lineWidth += wordWidth
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

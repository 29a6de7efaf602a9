package layout

import (
	"strings"
)

const ellipsis = "..."

// Wrap breaks text into lines no wider than width. Words are kept whole
// unless a single word is wider than width, in which case it is split
// between runes.
func Wrap(text string, width float64, m Measurer) []string {
	var lines []string
	line := ""

	for _, word := range strings.Fields(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if m.StringWidth(candidate) <= width {
			line = candidate
			continue
		}

		if line != "" {
			lines = append(lines, line)
			line = ""
		}
		if m.StringWidth(word) <= width {
			line = word
			continue
		}

		pieces := splitWord(word, width, m)
		lines = append(lines, pieces[:len(pieces)-1]...)
		line = pieces[len(pieces)-1]
	}

	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// splitWord cuts an over-wide word into pieces that each fit width. Every
// piece holds at least one rune.
func splitWord(word string, width float64, m Measurer) []string {
	var pieces []string
	var current []rune
	for _, r := range word {
		next := append(current, r)
		if len(current) > 0 && m.StringWidth(string(next)) > width {
			pieces = append(pieces, string(current))
			current = []rune{r}
			continue
		}
		current = next
	}
	if len(current) > 0 {
		pieces = append(pieces, string(current))
	}
	return pieces
}

// Truncate keeps at most maxLines lines. When lines are dropped, the last
// word of the final kept line is replaced with an ellipsis, dropping more
// words until the line fits width again.
func Truncate(lines []string, maxLines int, width float64, m Measurer) ([]string, bool) {
	if maxLines <= 0 || len(lines) <= maxLines {
		return lines, false
	}

	out := make([]string, maxLines)
	copy(out, lines[:maxLines])

	words := strings.Fields(out[maxLines-1])
	if len(words) > 0 {
		words = words[:len(words)-1]
	}
	for {
		candidate := ellipsis
		if len(words) > 0 {
			candidate = strings.Join(words, " ") + " " + ellipsis
		}
		if len(words) == 0 || m.StringWidth(candidate) <= width {
			out[maxLines-1] = candidate
			break
		}
		words = words[:len(words)-1]
	}
	return out, true
}

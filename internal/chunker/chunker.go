// Package chunker turns a free-form LLM reply into an ordered list of short
// cheatsheet items.
package chunker

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minChunkRunes    = 4   // items shorter than this are noise ("-", "1.", "**")
	minSentenceRunes = 6   // fallback sentences must be longer than 5 runes
	fallbackRunes    = 200 // last-resort single item length
)

var (
	// keepLine matches bullet lines, numbered lines, and short phrases that
	// start alphanumeric and carry no sentence punctuation.
	keepLine = regexp.MustCompile(`^[-•*]|^\d+\.|^[A-Za-z0-9][^.:;!?]*$`)

	bulletPrefix   = regexp.MustCompile(`^[-•*]\s*`)
	numberPrefix   = regexp.MustCompile(`^\d+\.\s*`)
	sentenceBreaks = regexp.MustCompile(`[.!?]+`)
)

// Chunk splits raw reply text into cheatsheet items, preserving their order.
//
// Lines that look like list entries are kept with their markers and double
// quotes removed. When no line qualifies the text is split into sentences,
// and when that also yields nothing the first 200 characters are returned as
// a single item. Empty input yields an empty slice. Chunk never fails.
func Chunk(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	var chunks []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !keepLine.MatchString(line) {
			continue
		}
		item := clean(line)
		if utf8.RuneCountInString(item) < minChunkRunes {
			continue
		}
		chunks = append(chunks, item)
	}
	if len(chunks) > 0 {
		return chunks
	}

	if sentences := splitSentences(raw); len(sentences) > 0 {
		return sentences
	}

	return []string{truncateRunes(stripQuotes(raw), fallbackRunes)}
}

// clean strips a leading bullet, then a leading list number, then every
// double quote.
func clean(line string) string {
	line = bulletPrefix.ReplaceAllString(line, "")
	line = numberPrefix.ReplaceAllString(line, "")
	return strings.TrimSpace(stripQuotes(line))
}

func splitSentences(raw string) []string {
	var out []string
	for _, piece := range sentenceBreaks.Split(raw, -1) {
		piece = strings.TrimSpace(stripQuotes(piece))
		if utf8.RuneCountInString(piece) >= minSentenceRunes {
			out = append(out, piece)
		}
	}
	return out
}

func stripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}

func truncateRunes(s string, n int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n]))
}

package render

import "strings"

const (
	// TextFileName is the download name of the plain text export.
	TextFileName = "summary.txt"
	// TextContentType is the media type of the plain text export.
	TextContentType = "text/plain; charset=utf-8"
)

// Text serializes chunks in order, separated by a blank line.
func Text(chunks []string) []byte {
	return []byte(strings.Join(chunks, "\n\n"))
}

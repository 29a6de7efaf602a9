// Package extract decodes uploaded documents into plain text.
//
// PDF decoding uses ledongthuc/pdf and works page by page. Plain text files
// are accepted as UTF-8, or as UTF-16 when they carry a byte order mark.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	TypePDF  = "application/pdf"
	TypeText = "text/plain"
)

var (
	// ErrUnsupportedFileType is returned for anything other than PDF or plain text.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrExtraction is returned when the bytes are not a valid document of the resolved type.
	ErrExtraction = errors.New("extraction failed")
)

// Extractor converts PDF and plain text documents into text.
type Extractor struct{}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ResolveType returns the media type a document is handled as. The declared
// type wins unless it is empty or generic, in which case the content is sniffed.
func ResolveType(data []byte, declared string) string {
	if mediaType, _, err := mime.ParseMediaType(declared); err == nil {
		mediaType = strings.ToLower(mediaType)
		if mediaType != "application/octet-stream" {
			return mediaType
		}
	}

	detected := mimetype.Detect(data)
	switch {
	case detected.Is(TypePDF):
		return TypePDF
	case detected.Is(TypeText):
		return TypeText
	}
	mediaType, _, _ := mime.ParseMediaType(detected.String())
	return mediaType
}

// Extract returns the full text of data. declaredType is the media type
// reported by the client, which may be empty.
func (e *Extractor) Extract(ctx context.Context, data []byte, declaredType string) (string, error) {
	switch mediaType := ResolveType(data, declaredType); mediaType {
	case TypePDF:
		return e.extractPDF(ctx, data)
	case TypeText:
		return extractText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, mediaType)
	}
}

func (e *Extractor) extractPDF(ctx context.Context, data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty PDF content", ErrExtraction)
	}

	// The decoder panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: malformed PDF: %v", ErrExtraction, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: open pdf: %v", ErrExtraction, err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrExtraction, i, err)
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(pageText)
	}

	return b.String(), nil
}

func extractText(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}), bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		decoder := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		out, _, err := transform.Bytes(decoder, data)
		if err != nil {
			return "", fmt.Errorf("%w: decode utf-16: %v", ErrExtraction, err)
		}
		return string(out), nil
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		data = data[3:]
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: text is not valid UTF-8", ErrExtraction)
	}
	return string(data), nil
}

// Package prompt renders the cheatsheet instruction sent to the model.
package prompt

import (
	"fmt"
	"strings"

	"github.com/tyler-sommer/stick"
)

// DefaultMaxChars is how much of a document is sent to the model.
const DefaultMaxChars = 300000

// CheatsheetTemplate asks for a bullet-style cheatsheet of the document.
const CheatsheetTemplate = `Please analyze the following text and generate a slightly detailed cheatsheet with these guidelines:
- Cover all major concepts, terms, and key points
- For each item, include a short explanation (1-2 sentences)
- Group related concepts under clear headings and subheadings
- Use bullet points or numbered lists for clarity
- Include examples, formulas, or quick tips where applicable
- Keep it compact but informative, suitable for quick revision

Text: {{ document }}`

// Builder renders a Twig template around document text.
type Builder struct {
	env      *stick.Env
	template string
	maxChars int
}

// Option configures a Builder.
type Option func(*Builder)

// WithTemplate replaces the instruction template. The document is exposed
// to it as {{ document }}.
func WithTemplate(tpl string) Option {
	return func(b *Builder) { b.template = tpl }
}

// WithMaxChars sets the truncation limit in characters. Values below 1 are ignored.
func WithMaxChars(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.maxChars = n
		}
	}
}

// NewBuilder creates a Builder using CheatsheetTemplate and DefaultMaxChars
// unless overridden.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		env:      stick.New(nil),
		template: CheatsheetTemplate,
		maxChars: DefaultMaxChars,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build truncates document and renders it into the template.
func (b *Builder) Build(document string) (string, error) {
	ctx := map[string]stick.Value{
		"document": Truncate(document, b.maxChars),
	}

	var out strings.Builder
	if err := b.env.Execute(b.template, &out, ctx); err != nil {
		return "", fmt.Errorf("execute prompt template: %w", err)
	}
	return out.String(), nil
}

// Truncate returns at most n characters of s.
func Truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

package render

import (
	"github.com/go-pdf/fpdf"
)

const (
	bodyFont     = "Helvetica"
	bodyFontSize = 9
)

// FontMeasurer measures strings with the core Helvetica metrics used for card
// text. It is not safe for concurrent use; create one per export.
type FontMeasurer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// NewFontMeasurer creates a measurer for 9pt Helvetica in points.
func NewFontMeasurer() *FontMeasurer {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetFont(bodyFont, "", bodyFontSize)
	return &FontMeasurer{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// StringWidth returns the width of s in points once encoded for the PDF.
func (m *FontMeasurer) StringWidth(s string) float64 {
	return m.pdf.GetStringWidth(m.tr(s))
}

// Package layout provides the drawing primitives and page flow control
// used by the report section renderers: section header bars, labeled
// fields with word wrap, paragraphs, and table grids with alternating row
// shading. Primitives draw at the current cursor and advance it; none of
// them decide pagination, which belongs to Flow.
package layout

import (
	"strings"

	"github.com/go-pdf/fpdf"
)

// RGB is an RGB color triple.
type RGB struct {
	R, G, B int
}

// Style carries the colors and font roles shared by all primitives.
type Style struct {
	Primary    RGB // section bars, table headers
	Secondary  RGB // sub-headings, accents
	FontFamily string

	TitleSize    float64
	SubtitleSize float64
	HeaderSize   float64
	BodySize     float64
}

// Drawing constants, in millimeters.
const (
	barHeight    = 8.0  // section header bar
	barGap       = 3.0  // gap after a bar
	minRowHeight = 7.0  // labeled field / table row floor
	cellPadX     = 1.5  // horizontal text inset inside table cells
	fieldGap     = 1.0  // gap after a labeled field
	paragraphGap = 2.5  // gap after a paragraph
)

// Sheet is a style-carrying drawing surface over one PDF document. It is
// instance-local: concurrent renders each construct their own Sheet.
type Sheet struct {
	pdf   *fpdf.Fpdf
	style Style
	tr    func(string) string // cp1252 translator for the core fonts
}

// NewSheet wraps pdf with the given style.
func NewSheet(pdf *fpdf.Fpdf, style Style) *Sheet {
	return &Sheet{
		pdf:   pdf,
		style: style,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// T translates UTF-8 text to the code page of the built-in fonts.
func (s *Sheet) T(text string) string {
	return s.tr(text)
}

// PDF exposes the underlying document for the assembler.
func (s *Sheet) PDF() *fpdf.Fpdf { return s.pdf }

// Style returns the sheet's style.
func (s *Sheet) Style() Style { return s.style }

// LineHeight is the vertical advance of one body text line.
func (s *Sheet) LineHeight() float64 {
	return s.style.BodySize * 0.5
}

// ContentWidth is the printable width between the left and right margins.
func (s *Sheet) ContentWidth() float64 {
	pageW, _ := s.pdf.GetPageSize()
	lm, _, rm, _ := s.pdf.GetMargins()
	return pageW - lm - rm
}

// Wrap splits text into lines constrained to width using the document's
// active font metrics. All vertical space consumption derives from the
// line counts this returns.
func (s *Sheet) Wrap(text string, width float64) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return s.pdf.SplitText(text, width)
}

// BodyFont resets the active font to the body role.
func (s *Sheet) BodyFont() {
	s.pdf.SetFont(s.style.FontFamily, "", s.style.BodySize)
}

// SectionBar draws a full-width primary-colored bar with white bold title
// text and advances the cursor below it.
func (s *Sheet) SectionBar(title string) {
	lm, _, _, _ := s.pdf.GetMargins()
	y := s.pdf.GetY()

	s.pdf.SetFillColor(s.style.Primary.R, s.style.Primary.G, s.style.Primary.B)
	s.pdf.Rect(lm, y, s.ContentWidth(), barHeight, "F")

	s.pdf.SetFont(s.style.FontFamily, "B", s.style.HeaderSize)
	s.pdf.SetTextColor(255, 255, 255)
	s.pdf.SetXY(lm+2, y)
	s.pdf.CellFormat(s.ContentWidth()-4, barHeight, s.tr(title), "", 0, "L", false, 0, "")

	s.pdf.SetTextColor(0, 0, 0)
	s.BodyFont()
	s.pdf.SetXY(lm, y+barHeight+barGap)
}

// SubHeading draws a bold secondary-colored line, e.g. per-injury titles.
func (s *Sheet) SubHeading(text string) {
	lm, _, _, _ := s.pdf.GetMargins()
	s.pdf.SetX(lm)
	s.pdf.SetFont(s.style.FontFamily, "B", s.style.BodySize+1)
	s.pdf.SetTextColor(s.style.Secondary.R, s.style.Secondary.G, s.style.Secondary.B)
	s.pdf.CellFormat(s.ContentWidth(), s.LineHeight()+2, s.tr(text), "", 1, "L", false, 0, "")
	s.pdf.SetTextColor(0, 0, 0)
	s.BodyFont()
	s.pdf.Ln(1)
}

// Field draws a bold label followed by a wrapped value and advances the
// cursor by max(minRowHeight, lines*LineHeight) plus a small gap.
func (s *Sheet) Field(label, value string, labelW float64) {
	lm, _, _, _ := s.pdf.GetMargins()
	y := s.pdf.GetY()
	valueW := s.ContentWidth() - labelW

	s.pdf.SetXY(lm, y)
	s.pdf.SetFont(s.style.FontFamily, "B", s.style.BodySize)
	s.pdf.CellFormat(labelW, s.LineHeight(), s.tr(label), "", 0, "L", false, 0, "")

	s.BodyFont()
	lines := s.Wrap(value, valueW)
	for i, line := range lines {
		s.pdf.SetXY(lm+labelW, y+float64(i)*s.LineHeight())
		s.pdf.CellFormat(valueW, s.LineHeight(), s.tr(line), "", 0, "L", false, 0, "")
	}

	h := float64(len(lines)) * s.LineHeight()
	if h < minRowHeight {
		h = minRowHeight
	}
	s.pdf.SetXY(lm, y+h+fieldGap)
}

// FieldHeight is the vertical space Field will consume for value.
func (s *Sheet) FieldHeight(value string, labelW float64) float64 {
	s.BodyFont()
	h := float64(len(s.Wrap(value, s.ContentWidth()-labelW))) * s.LineHeight()
	if h < minRowHeight {
		h = minRowHeight
	}
	return h + fieldGap
}

// Paragraph draws wrapped body text across the content width.
func (s *Sheet) Paragraph(text string) {
	lm, _, _, _ := s.pdf.GetMargins()
	s.pdf.SetX(lm)
	s.BodyFont()
	s.pdf.MultiCell(s.ContentWidth(), s.LineHeight(), s.tr(text), "", "L", false)
	s.pdf.Ln(paragraphGap)
}

// ParagraphHeight is the vertical space Paragraph will consume for text.
func (s *Sheet) ParagraphHeight(text string) float64 {
	s.BodyFont()
	return float64(len(s.Wrap(text, s.ContentWidth())))*s.LineHeight() + paragraphGap
}

// Bullet draws one bulleted list item, indented from the left margin.
func (s *Sheet) Bullet(text string) {
	lm, _, _, _ := s.pdf.GetMargins()
	s.pdf.SetX(lm + 4)
	s.BodyFont()
	s.pdf.MultiCell(s.ContentWidth()-4, s.LineHeight(), s.tr("• "+text), "", "L", false)
}

// Spacer advances the cursor by h.
func (s *Sheet) Spacer(h float64) {
	s.pdf.Ln(h)
}

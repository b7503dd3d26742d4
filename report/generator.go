// Package report assembles the medico-legal case report: it drives the
// section renderers in fixed order over a Case snapshot, controls page
// flow, and finishes with a correction pass that rewrites every footer
// once the true page count is known.
package report

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/verilex/medreport"
	"github.com/verilex/medreport/format"
	"github.com/verilex/medreport/layout"
)

// Page geometry in millimeters.
const (
	marginLeft   = 15.0
	marginTop    = 15.0
	marginRight  = 15.0
	marginBottom = 20.0
	footerY      = 12.0 // footer baseline, measured from the page bottom
)

// Artifact is one finished report document.
type Artifact struct {
	PDF         []byte
	Pages       int
	GeneratedAt time.Time
}

// DataURI encodes the document as a data-URI string for embedding.
func (a *Artifact) DataURI() string {
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(a.PDF)
}

// Generator renders Case snapshots into report documents. A Generator is
// immutable after construction and safe for concurrent use: every Generate
// call builds its own document and cursor state.
type Generator struct {
	opts medreport.Options
}

// New creates a Generator from DefaultOptions plus the given options.
func New(opts ...medreport.Option) *Generator {
	o := medreport.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{opts: o}
}

// Options returns a copy of the generator's effective configuration.
func (g *Generator) Options() medreport.Options {
	return g.opts
}

// Generate renders the case into a paginated PDF artifact. The only fatal
// input condition is a nil case; missing fields and sections render as
// placeholders, and a failed signature asset degrades to text.
func (g *Generator) Generate(c *medreport.Case) (*Artifact, error) {
	if c == nil {
		return nil, medreport.ErrNoCase
	}

	opts := g.opts
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}

	r := newRun(c, opts)
	r.build()

	if r.pdf.Err() {
		return nil, medreport.NewRenderError("Generate", r.pdf.Error())
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, medreport.NewRenderError("Output", errors.Join(medreport.ErrOutput, err))
	}
	return &Artifact{
		PDF:         buf.Bytes(),
		Pages:       r.pages,
		GeneratedAt: opts.GeneratedAt,
	}, nil
}

// Render is a convenience wrapper that writes the PDF to w.
func Render(w io.Writer, c *medreport.Case, opts ...medreport.Option) error {
	a, err := New(opts...).Generate(c)
	if err != nil {
		return err
	}
	if _, err := w.Write(a.PDF); err != nil {
		return medreport.NewRenderError("Render", errors.Join(medreport.ErrOutput, err))
	}
	return nil
}

// RenderDataURI renders the case and returns the data-URI encoding.
func RenderDataURI(c *medreport.Case, opts ...medreport.Option) (string, error) {
	a, err := New(opts...).Generate(c)
	if err != nil {
		return "", err
	}
	return a.DataURI(), nil
}

// tocEntry records a section title and the page it starts on.
type tocEntry struct {
	title string
	page  int
}

// run holds the state of one render invocation. All of it is local to the
// invocation; nothing is shared across concurrent renders.
type run struct {
	c    *medreport.Case
	opts medreport.Options

	pdf   *fpdf.Fpdf
	sheet *layout.Sheet
	flow  *layout.Flow

	sectionNo int
	toc       []tocEntry
	tocPage   int
	pages     int
}

func newRun(c *medreport.Case, opts medreport.Options) *run {
	orientation := "P"
	if opts.Orientation == medreport.OrientationLandscape {
		orientation = "L"
	}
	size := "A4"
	if opts.PageSize == medreport.PageSizeLetter {
		size = "Letter"
	}

	pdf := fpdf.New(orientation, "mm", size, "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	// The Flow is the sole pagination authority.
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(opts.Compress)
	// Emit catalog objects in sorted order so identical inputs produce
	// byte-identical PDFs.
	pdf.SetCatalogSort(true)

	pdf.SetTitle("Medico-Legal Report "+format.Or(c.CaseNumber, format.NotProvided), true)
	pdf.SetSubject("Road Traffic Accident - Personal Injury Assessment", true)
	if c.ExpertDetails != nil && c.ExpertDetails.Name != "" {
		pdf.SetAuthor(c.ExpertDetails.Name, true)
	}
	pdf.SetCreationDate(opts.GeneratedAt)
	pdf.SetModificationDate(opts.GeneratedAt)

	style := layout.Style{
		Primary:      layout.RGB(opts.PrimaryColor),
		Secondary:    layout.RGB(opts.SecondaryColor),
		FontFamily:   opts.FontFamily,
		TitleSize:    opts.FontSize.Title,
		SubtitleSize: opts.FontSize.Subtitle,
		HeaderSize:   opts.FontSize.SectionHeader,
		BodySize:     opts.FontSize.Body,
	}
	sheet := layout.NewSheet(pdf, style)

	return &run{
		c:     c,
		opts:  opts,
		pdf:   pdf,
		sheet: sheet,
		flow:  layout.NewFlow(sheet, marginBottom),
	}
}

// build lays out the full page sequence, then corrects footers and fills
// the table of contents once the final page count is known.
func (r *run) build() {
	if r.opts.IncludeCoverPage {
		r.coverPage()
	}
	if r.opts.IncludeTableOfContents {
		r.tocPlaceholder()
	}

	r.pdf.AddPage()

	s := r.opts.Sections
	if s.ClaimantDetails {
		r.claimantSection()
	}
	if s.AccidentDetails {
		r.accidentSection()
	}
	if s.PhysicalInjury {
		r.injurySection()
	}
	if s.PsychologicalInjuries {
		r.psychologicalSection()
	}
	if s.Treatments {
		r.treatmentsSection()
	}
	if s.LifestyleImpact {
		r.lifestyleSection()
	}
	if s.FamilyHistory {
		r.familyHistorySection()
	}
	if r.opts.IncludeDeclaration {
		r.declarationSection()
	}
	if r.opts.IncludeExpertCV {
		r.expertCVSection()
	}
	if s.ExpertDetails {
		r.signatureBlock()
	}

	// Correction pass: the true total is unknown until layout finishes.
	r.pages = r.pdf.PageCount()
	r.fillTOC()
	r.writeFooters()
}

// startSection numbers and opens a content section, recording it for the
// table of contents.
func (r *run) startSection(title string) {
	r.sectionNo++
	numbered := fmt.Sprintf("%d. %s", r.sectionNo, title)
	r.flow.StartSection(numbered)
	r.toc = append(r.toc, tocEntry{title: numbered, page: r.pdf.PageNo()})
}

func (r *run) endSection() {
	r.flow.EndSection()
	r.sheet.Spacer(4)
}

// tocPlaceholder reserves the table of contents page; entries and page
// numbers are written by fillTOC after layout completes.
func (r *run) tocPlaceholder() {
	r.pdf.AddPage()
	r.tocPage = r.pdf.PageNo()
	r.sheet.SectionBar("TABLE OF CONTENTS")
}

// fillTOC revisits the reserved page and writes the recorded entries.
func (r *run) fillTOC() {
	if r.tocPage == 0 {
		return
	}
	r.pdf.SetPage(r.tocPage)
	r.pdf.SetY(marginTop + 14)

	cw := r.sheet.ContentWidth()
	for _, e := range r.toc {
		r.pdf.SetX(marginLeft)
		r.sheet.BodyFont()
		r.pdf.CellFormat(cw-14, 7, r.sheet.T(e.title), "", 0, "L", false, 0, "")
		r.pdf.CellFormat(14, 7, fmt.Sprintf("%d", e.page), "", 1, "R", false, 0, "")
	}
}

// writeFooters overlays the final footer strip on every page now that the
// total page count is known. The cover page is skipped unless footers are
// requested on every page.
func (r *run) writeFooters() {
	first := 1
	if r.opts.IncludeCoverPage && !r.opts.FooterOnEveryPage {
		first = 2
	}

	name := format.Or(r.c.ClaimantName(), format.NotProvided)
	caseNo := format.Or(r.c.CaseNumber, format.NotProvided)

	for page := first; page <= r.pages; page++ {
		r.pdf.SetPage(page)
		pageW, pageH := r.pdf.GetPageSize()

		r.pdf.SetDrawColor(200, 200, 200)
		r.pdf.SetLineWidth(0.3)
		r.pdf.Line(marginLeft, pageH-footerY-2, pageW-marginRight, pageH-footerY-2)
		r.pdf.SetDrawColor(0, 0, 0)

		r.pdf.SetFont(r.opts.FontFamily, "", 8)
		r.pdf.SetTextColor(127, 140, 141)
		r.pdf.SetXY(marginLeft, pageH-footerY)
		footer := fmt.Sprintf("Page %d of %d | %s | %s", page, r.pages, name, caseNo)
		r.pdf.CellFormat(pageW-marginLeft-marginRight, 5, r.sheet.T(footer), "", 0, "C", false, 0, "")
		r.pdf.SetTextColor(0, 0, 0)
	}
}

// field emits one labeled field, breaking the page first when needed.
func (r *run) field(label, value string) {
	r.flow.EnsureSpace(layout.SpaceField)
	r.sheet.Field(label, format.Or(value, format.NotProvided), 55)
}

// paragraph emits wrapped prose, breaking the page first when needed.
func (r *run) paragraph(text string) {
	r.flow.EnsureSpace(layout.SpaceParagraph)
	r.sheet.Paragraph(text)
}

// missingSection renders the explicit placeholder body for a section whose
// data is absent. Sections are never silently skipped unless configured out.
func (r *run) missingSection() {
	r.paragraph("No information has been provided for this section.")
}

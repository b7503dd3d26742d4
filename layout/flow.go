package layout

import "github.com/go-pdf/fpdf"

// Conservative space requirements per content-block type, in millimeters.
// A page break is taken proactively when the remaining printable height is
// below the block's requirement, so no block is split mid-draw. One
// constant per block type, applied uniformly by every section renderer.
const (
	SpaceField     = 14.0 // labeled field with a short wrapped value
	SpaceRow       = 12.0 // one table row
	SpaceParagraph = 28.0 // multi-line paragraph lead-in
	SpaceSection   = 40.0 // section header plus its first block
)

// Flow is the page flow controller. It owns the decision to close the
// current page and open a new one, re-emitting the active section's header
// bar with a "(CONTINUED)" suffix. All state is instance-local; concurrent
// renders never share a Flow.
type Flow struct {
	sheet   *Sheet
	pdf     *fpdf.Fpdf
	bottom  float64 // printable-area bottom Y
	section string  // active section title, "" outside sections
}

// NewFlow creates a Flow over sheet with the given bottom margin.
func NewFlow(sheet *Sheet, bottomMargin float64) *Flow {
	_, pageH := sheet.PDF().GetPageSize()
	return &Flow{
		sheet:  sheet,
		pdf:    sheet.PDF(),
		bottom: pageH - bottomMargin,
	}
}

// StartSection emits the section's header bar and records its title so
// page breaks inside the section repeat it with a continuation suffix.
func (f *Flow) StartSection(title string) {
	f.EnsureSpace(SpaceSection)
	f.section = title
	f.sheet.SectionBar(title)
}

// EndSection clears the active section; subsequent page breaks will not
// repeat a header bar.
func (f *Flow) EndSection() {
	f.section = ""
}

// EnsureSpace starts a new page when fewer than required millimeters
// remain in the printable area, and reports whether a break occurred.
// Renderers call this before each logical block that could overflow.
func (f *Flow) EnsureSpace(required float64) bool {
	if f.pdf.GetY()+required <= f.bottom {
		return false
	}
	f.NewPage()
	return true
}

// NewPage unconditionally closes the current page and opens a new one,
// repeating the active section's header bar marked as continued.
func (f *Flow) NewPage() {
	f.pdf.AddPage()
	if f.section != "" {
		f.sheet.SectionBar(f.section + " (CONTINUED)")
	}
}

// Bottom returns the printable-area bottom Y coordinate.
func (f *Flow) Bottom() float64 {
	return f.bottom
}

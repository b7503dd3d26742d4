package layout

// Column defines one fixed-width table column.
type Column struct {
	Title string
	Width float64
	Align string // "L", "C", "R"; default "L"
}

// Grid draws a fixed-column table with an accent-colored header row,
// alternating body row shading, cell borders, and per-cell text clipping.
// Pagination is delegated to the Flow: each row checks remaining space
// first, and after a break the header row is repeated on the new page.
type Grid struct {
	sheet *Sheet
	flow  *Flow
	cols  []Column

	bodyRows int // body rows drawn so far, drives alternating shading
}

// Row shading and border colors.
var (
	gridShade  = RGB{R: 241, G: 245, B: 249}
	gridBorder = RGB{R: 200, G: 200, B: 200}
)

// Maximum wrapped lines kept per cell before ellipsizing.
const cellMaxLines = 2

// NewGrid creates a grid with the given columns.
func NewGrid(sheet *Sheet, flow *Flow, cols ...Column) *Grid {
	return &Grid{sheet: sheet, flow: flow, cols: cols}
}

// Header draws the header row: primary fill, white bold text.
func (g *Grid) Header() {
	pdf := g.sheet.pdf
	style := g.sheet.style
	lm, _, _, _ := pdf.GetMargins()
	y := pdf.GetY()

	pdf.SetFont(style.FontFamily, "B", style.BodySize)
	pdf.SetFillColor(style.Primary.R, style.Primary.G, style.Primary.B)
	pdf.SetTextColor(255, 255, 255)

	x := lm
	h := minRowHeight
	for _, col := range g.cols {
		pdf.Rect(x, y, col.Width, h, "F")
		pdf.SetXY(x+cellPadX, y)
		pdf.CellFormat(col.Width-2*cellPadX, h, g.sheet.tr(col.Title), "", 0, align(col.Align), false, 0, "")
		x += col.Width
	}

	pdf.SetTextColor(0, 0, 0)
	g.sheet.BodyFont()
	pdf.SetXY(lm, y+h)
}

// Row draws one body row, breaking the page (and repeating the header)
// when the row would not fit. Cell text wraps within the column width and
// is clipped to cellMaxLines lines with a trailing ellipsis.
func (g *Grid) Row(cells ...string) {
	pdf := g.sheet.pdf
	lm, _, _, _ := pdf.GetMargins()

	g.sheet.BodyFont()
	lines := make([][]string, len(g.cols))
	rowLines := 1
	for i := range g.cols {
		var text string
		if i < len(cells) {
			text = cells[i]
		}
		lines[i] = g.clip(text, g.cols[i].Width-2*cellPadX)
		if n := len(lines[i]); n > rowLines {
			rowLines = n
		}
	}

	rowH := float64(rowLines)*g.sheet.LineHeight() + 2
	if rowH < minRowHeight {
		rowH = minRowHeight
	}

	if g.flow.EnsureSpace(rowH + SpaceRow) {
		g.Header()
	}

	y := pdf.GetY()
	shaded := g.bodyRows%2 == 1
	x := lm
	for i, col := range g.cols {
		if shaded {
			pdf.SetFillColor(gridShade.R, gridShade.G, gridShade.B)
			pdf.Rect(x, y, col.Width, rowH, "F")
		}
		pdf.SetDrawColor(gridBorder.R, gridBorder.G, gridBorder.B)
		pdf.Rect(x, y, col.Width, rowH, "D")

		for j, line := range lines[i] {
			pdf.SetXY(x+cellPadX, y+1+float64(j)*g.sheet.LineHeight())
			pdf.CellFormat(col.Width-2*cellPadX, g.sheet.LineHeight(), g.sheet.tr(line), "", 0, align(col.Align), false, 0, "")
		}
		x += col.Width
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetXY(lm, y+rowH)
	g.bodyRows++
}

// clip wraps text to the cell width and keeps at most cellMaxLines lines,
// ellipsizing the last kept line when content is cut.
func (g *Grid) clip(text string, width float64) []string {
	lines := g.sheet.Wrap(text, width)
	if len(lines) <= cellMaxLines {
		return lines
	}
	kept := lines[:cellMaxLines]
	kept[cellMaxLines-1] = g.ellipsize(kept[cellMaxLines-1], width)
	return kept
}

func (g *Grid) ellipsize(line string, width float64) string {
	pdf := g.sheet.pdf
	runes := []rune(line)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

func align(a string) string {
	if a == "" {
		return "L"
	}
	return a
}

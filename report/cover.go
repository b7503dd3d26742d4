package report

import (
	"bytes"
	"image/png"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/go-pdf/fpdf"

	"github.com/verilex/medreport/format"
	"github.com/verilex/medreport/layout"
)

// coverPage lays out the title page: accent bars, report title, claimant
// and case identifiers, expert attribution, and the case-reference stamp.
func (r *run) coverPage() {
	r.pdf.AddPage()
	pageW, pageH := r.pdf.GetPageSize()
	style := r.sheet.Style()

	// Top and bottom accent bars.
	r.pdf.SetFillColor(style.Primary.R, style.Primary.G, style.Primary.B)
	r.pdf.Rect(0, 0, pageW, 8, "F")
	r.pdf.Rect(0, pageH-8, pageW, 8, "F")

	r.pdf.SetY(55)
	r.pdf.SetFont(style.FontFamily, "B", style.TitleSize)
	r.pdf.SetTextColor(style.Primary.R, style.Primary.G, style.Primary.B)
	r.pdf.CellFormat(0, 14, r.sheet.T("MEDICO-LEGAL REPORT"), "", 1, "C", false, 0, "")

	r.pdf.SetFont(style.FontFamily, "", style.SubtitleSize)
	r.pdf.SetTextColor(style.Secondary.R, style.Secondary.G, style.Secondary.B)
	r.pdf.CellFormat(0, 9, r.sheet.T("Road Traffic Accident - Personal Injury Assessment"), "", 1, "C", false, 0, "")
	r.pdf.SetTextColor(0, 0, 0)

	// Claimant and case identifiers inside a framed box.
	boxX, boxW := 40.0, pageW-80
	boxY := 105.0
	r.pdf.SetDrawColor(200, 200, 200)
	r.pdf.SetFillColor(248, 249, 250)
	r.pdf.Rect(boxX, boxY, boxW, 52, "FD")
	r.pdf.SetDrawColor(0, 0, 0)

	r.pdf.SetY(boxY + 6)
	r.coverLine("CLAIMANT", 9, true, style.Secondary)
	r.coverLine(format.Or(r.c.ClaimantName(), format.NotProvided), 15, true, style.Primary)
	r.coverLine("CASE REFERENCE", 9, true, style.Secondary)
	r.coverLine(format.Or(r.c.CaseNumber, format.NotProvided), 12, false, style.Primary)

	// Examination and instruction details.
	r.pdf.SetY(175)
	if cd := r.c.ClaimantDetails; cd != nil {
		r.coverLine("Date of Examination: "+format.Date(cd.DateOfExamination), 10, false, style.Secondary)
		if strings.TrimSpace(cd.InstructingParty) != "" {
			r.coverLine("Instructed by: "+cd.InstructingParty, 10, false, style.Secondary)
		}
	}
	if ed := r.c.ExpertDetails; ed != nil && strings.TrimSpace(ed.Name) != "" {
		prepared := "Prepared by: " + ed.Name
		if strings.TrimSpace(ed.Credentials) != "" {
			prepared += ", " + ed.Credentials
		}
		r.coverLine(prepared, 10, false, style.Secondary)
	}

	r.pdf.SetY(pageH - 40)
	r.pdf.SetFont(style.FontFamily, "B", 10)
	r.pdf.SetTextColor(style.Primary.R, style.Primary.G, style.Primary.B)
	r.pdf.CellFormat(0, 6, r.sheet.T("STRICTLY PRIVATE & CONFIDENTIAL"), "", 1, "C", false, 0, "")
	r.pdf.SetTextColor(0, 0, 0)

	r.caseStamp(pageW-marginRight-24, pageH-42, 24)
}

func (r *run) coverLine(text string, size float64, bold bool, color layout.RGB) {
	style := ""
	if bold {
		style = "B"
	}
	r.pdf.SetFont(r.opts.FontFamily, style, size)
	r.pdf.SetTextColor(color.R, color.G, color.B)
	r.pdf.CellFormat(0, size*0.65, r.sheet.T(text), "", 1, "C", false, 0, "")
	r.pdf.SetTextColor(0, 0, 0)
}

// caseStamp draws a machine-readable QR stamp of the case number. Stamp
// failures are silently skipped; the stamp is an aid, not report content.
func (r *run) caseStamp(x, y, size float64) {
	num := strings.TrimSpace(r.c.CaseNumber)
	if num == "" {
		return
	}
	code, err := qr.Encode(num, qr.M, qr.Auto)
	if err != nil {
		return
	}
	scaled, err := barcode.Scale(code, 128, 128)
	if err != nil {
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	r.pdf.RegisterImageOptionsReader("case-stamp", opts, &buf)
	r.pdf.ImageOptions("case-stamp", x, y, size, size, false, opts, 0, "")
}

package layout_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/go-pdf/fpdf"

	"github.com/verilex/medreport/layout"
)

func testStyle() layout.Style {
	return layout.Style{
		Primary:      layout.RGB{R: 30, G: 58, B: 95},
		Secondary:    layout.RGB{R: 52, G: 73, B: 94},
		FontFamily:   "Helvetica",
		TitleSize:    24,
		SubtitleSize: 14,
		HeaderSize:   12,
		BodySize:     10,
	}
}

func newTestSheet() (*layout.Sheet, *layout.Flow) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(false, 0)
	sheet := layout.NewSheet(pdf, testStyle())
	sheet.BodyFont()
	pdf.AddPage()
	return sheet, layout.NewFlow(sheet, 20)
}

func TestFieldAdvancesCursor(t *testing.T) {
	sheet, _ := newTestSheet()
	pdf := sheet.PDF()

	before := pdf.GetY()
	sheet.Field("Name:", "Jane Doe", 50)
	after := pdf.GetY()
	if after <= before {
		t.Fatalf("cursor did not advance: %f -> %f", before, after)
	}

	// A long value must advance further than a short one.
	long := "The claimant reports persistent discomfort in the cervical region, aggravated by prolonged sitting, driving and lifting, with intermittent radiation to the left shoulder."
	start := pdf.GetY()
	sheet.Field("Summary:", long, 50)
	if pdf.GetY()-start <= after-before {
		t.Error("multi-line value did not consume more vertical space")
	}
}

func TestFieldHeightMatchesAdvance(t *testing.T) {
	sheet, _ := newTestSheet()
	pdf := sheet.PDF()

	value := "A value long enough to wrap across at least two lines on an A4 content width with a fifty millimeter label."
	want := sheet.FieldHeight(value, 50)
	before := pdf.GetY()
	sheet.Field("Label:", value, 50)
	got := pdf.GetY() - before
	if diff := got - want; diff > 0.01 || diff < -0.01 {
		t.Errorf("FieldHeight %f != consumed %f", want, got)
	}
}

func TestEnsureSpaceBreaksPage(t *testing.T) {
	sheet, flow := newTestSheet()
	pdf := sheet.PDF()

	flow.StartSection("2. ACCIDENT DETAILS")
	for i := 0; i < 60; i++ {
		flow.EnsureSpace(layout.SpaceField)
		sheet.Field(fmt.Sprintf("Field %d:", i), "value", 50)
	}
	if pdf.PageCount() < 2 {
		t.Fatalf("expected page break after 60 fields, got %d page(s)", pdf.PageCount())
	}

	var buf bytes.Buffer
	pdf.SetCompression(false)
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("CONTINUED")) {
		t.Error("continuation header bar not emitted on page break")
	}
}

func TestEnsureSpaceNoBreakWhenRoomRemains(t *testing.T) {
	sheet, flow := newTestSheet()
	if flow.EnsureSpace(layout.SpaceField) {
		t.Error("page break on a fresh page")
	}
	if sheet.PDF().PageCount() != 1 {
		t.Errorf("page count = %d, want 1", sheet.PDF().PageCount())
	}
}

func TestNoContinuationOutsideSection(t *testing.T) {
	sheet, flow := newTestSheet()
	pdf := sheet.PDF()

	flow.StartSection("1. CLAIMANT DETAILS")
	flow.EndSection()
	pdf.SetY(flow.Bottom() - 5)
	flow.EnsureSpace(layout.SpaceParagraph)

	pdf.SetCompression(false)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if bytes.Contains(buf.Bytes(), []byte("CONTINUED")) {
		t.Error("continuation bar drawn after EndSection")
	}
}

func TestGridRendersRows(t *testing.T) {
	sheet, flow := newTestSheet()
	pdf := sheet.PDF()

	grid := layout.NewGrid(sheet, flow,
		layout.Column{Title: "No.", Width: 12, Align: "C"},
		layout.Column{Title: "Injury", Width: 60},
		layout.Column{Title: "Severity", Width: 48},
		layout.Column{Title: "Prognosis", Width: 50},
	)
	grid.Header()
	grid.Row("1", "Neck pain", "Mild", "3 months")
	grid.Row("2", "Bruising to left knee", "Resolved", "Resolved")

	pdf.SetCompression(false)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	for _, want := range []string{"Injury", "Neck pain", "Resolved"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("grid output missing %q", want)
		}
	}
}

func TestGridRepeatsHeaderAcrossPages(t *testing.T) {
	sheet, flow := newTestSheet()
	pdf := sheet.PDF()

	flow.StartSection("3. PHYSICAL INJURIES")
	grid := layout.NewGrid(sheet, flow,
		layout.Column{Title: "No.", Width: 12, Align: "C"},
		layout.Column{Title: "Injury", Width: 80},
		layout.Column{Title: "Status", Width: 78},
	)
	grid.Header()
	for i := 0; i < 60; i++ {
		grid.Row(fmt.Sprintf("%d", i+1), "Neck pain radiating to the left shoulder", "Ongoing")
	}

	if pdf.PageCount() < 2 {
		t.Fatalf("expected multi-page grid, got %d page(s)", pdf.PageCount())
	}

	pdf.SetCompression(false)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if n := bytes.Count(buf.Bytes(), []byte("No.")); n < 2 {
		t.Errorf("header drawn %d time(s), want once per page", n)
	}
}

func TestGridClipsLongCellText(t *testing.T) {
	sheet, flow := newTestSheet()
	pdf := sheet.PDF()

	grid := layout.NewGrid(sheet, flow,
		layout.Column{Title: "Statement", Width: 40},
	)
	grid.Header()
	before := pdf.GetY()
	grid.Row("An extremely long witness statement that would wrap across many lines if the cell did not clip its content to the allowed line count.")
	consumed := pdf.GetY() - before

	// Two clipped lines plus padding, never the full wrapped height.
	max := 3*sheet.LineHeight() + 3
	if consumed > max {
		t.Errorf("cell consumed %fmm, want clipped to <= %fmm", consumed, max)
	}
}

func TestParagraphHeightMatchesAdvance(t *testing.T) {
	sheet, _ := newTestSheet()
	pdf := sheet.PDF()

	text := "The claimant reports that domestic activities including cleaning, carrying shopping and gardening were restricted for a period of six weeks following the accident."
	want := sheet.ParagraphHeight(text)
	before := pdf.GetY()
	sheet.Paragraph(text)
	got := pdf.GetY() - before
	if diff := got - want; diff > 0.01 || diff < -0.01 {
		t.Errorf("ParagraphHeight %f != consumed %f", want, got)
	}
}

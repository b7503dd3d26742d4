package report

import (
	"fmt"
	"strconv"

	"github.com/verilex/medreport"
	"github.com/verilex/medreport/format"
	"github.com/verilex/medreport/layout"
	"github.com/verilex/medreport/narrative"
)

// Injury summary table column shares of the content width.
var injuryColumns = []struct {
	title string
	share float64
	align string
}{
	{"No.", 0.05, "C"},
	{"Injury", 0.21, "L"},
	{"Onset", 0.13, "L"},
	{"Initial", 0.11, "C"},
	{"Current", 0.11, "C"},
	{"Classification", 0.24, "L"},
	{"Prognosis", 0.15, "L"},
}

func (r *run) injurySection() {
	r.startSection("PHYSICAL INJURIES")
	defer r.endSection()

	pi := r.c.PhysicalInjury
	if pi == nil {
		r.missingSection()
		return
	}

	r.paragraph(narrative.InjurySummary(pi.Injuries))

	if len(pi.Injuries) > 0 {
		r.injuryTable(pi.Injuries)
		r.sheet.Spacer(3)
		r.injuryDetails(pi.Injuries)
	}

	r.paragraph(format.Or(pi.Summary, format.NoInformation))
	if pi.Notes != "" {
		r.field("Notes:", pi.Notes)
	}
}

func (r *run) injuryTable(injuries []medreport.Injury) {
	cw := r.sheet.ContentWidth()
	cols := make([]layout.Column, len(injuryColumns))
	for i, c := range injuryColumns {
		cols[i] = layout.Column{Title: c.title, Width: c.share * cw, Align: c.align}
	}

	r.flow.EnsureSpace(3 * layout.SpaceRow)
	grid := layout.NewGrid(r.sheet, r.flow, cols...)
	grid.Header()
	for i, inj := range injuries {
		grid.Row(
			strconv.Itoa(i+1),
			format.Or(inj.Type, format.NotProvided),
			format.Or(inj.Onset, format.NotProvided),
			format.Or(inj.InitialSeverity, format.NotProvided),
			format.Or(inj.CurrentSeverity, format.NotProvided),
			string(narrative.Classify(inj.Type)),
			narrative.Prognosis(inj.CurrentSeverity, inj.SpecialistReferral),
		)
	}
}

func (r *run) injuryDetails(injuries []medreport.Injury) {
	impact := ""
	if r.c.AccidentDetails != nil {
		impact = r.c.AccidentDetails.ImpactLocation
	}
	physioPreferred := r.c.Treatments != nil && r.c.Treatments.PhysiotherapyPreferred

	for i, inj := range injuries {
		r.flow.EnsureSpace(6 * layout.SpaceField)
		r.sheet.SubHeading(fmt.Sprintf("Injury %d: %s", i+1, format.Or(inj.Type, format.NotProvided)))

		r.field("Classification:", string(narrative.Classify(inj.Type)))
		r.field("Mechanism of Injury:", narrative.MechanismText(impact))
		r.field("Onset of Symptoms:", inj.Onset)
		r.field("Initial Severity:", inj.InitialSeverity)
		r.field("Current Severity:", inj.CurrentSeverity)

		if inj.Resolved() {
			resolution := "Resolved"
			if inj.ResolutionDays > 0 {
				resolution = fmt.Sprintf("Resolved after %d days", inj.ResolutionDays)
			}
			r.field("Resolution:", resolution)
		}
		r.field("Prognosis:", narrative.Prognosis(inj.CurrentSeverity, inj.SpecialistReferral))
		r.field("Recommended Treatment:", narrative.Recommendation(inj.CurrentSeverity, physioPreferred))
		r.sheet.Spacer(2)
	}
}

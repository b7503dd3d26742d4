package report

import (
	"fmt"
	"strconv"

	"github.com/verilex/medreport/format"
	"github.com/verilex/medreport/layout"
	"github.com/verilex/medreport/narrative"
)

func (r *run) psychologicalSection() {
	r.startSection("PSYCHOLOGICAL INJURIES")
	defer r.endSection()

	p := r.c.PsychologicalInjuries
	if p == nil {
		r.missingSection()
		return
	}

	r.flow.EnsureSpace(layout.SpaceParagraph)
	r.sheet.SubHeading("Reported Symptoms")
	if len(p.Symptoms) == 0 {
		r.paragraph(format.NoneReported)
	} else {
		for _, symptom := range p.Symptoms {
			r.flow.EnsureSpace(layout.SpaceField)
			r.sheet.Bullet(symptom)
		}
		r.sheet.Spacer(2)
	}

	r.flow.EnsureSpace(layout.SpaceParagraph)
	r.sheet.SubHeading("Formal Diagnoses")
	if len(p.Diagnoses) == 0 {
		r.paragraph(format.NoneReported)
	} else {
		cw := r.sheet.ContentWidth()
		grid := layout.NewGrid(r.sheet, r.flow,
			layout.Column{Title: "Diagnosis", Width: 0.5 * cw},
			layout.Column{Title: "Date", Width: 0.2 * cw, Align: "C"},
			layout.Column{Title: "Diagnosed By", Width: 0.3 * cw},
		)
		grid.Header()
		for _, d := range p.Diagnoses {
			grid.Row(
				format.Or(d.Diagnosis, format.NotProvided),
				format.Date(d.Date),
				format.Or(d.Provider, format.NotProvided),
			)
		}
		r.sheet.Spacer(3)
	}

	r.flow.EnsureSpace(layout.SpaceParagraph)
	r.sheet.SubHeading("Travel Anxiety")
	r.paragraph(narrative.TravelAnxietySummary(p))
	for _, symptom := range p.TravelAnxietySymptoms {
		r.flow.EnsureSpace(layout.SpaceField)
		r.sheet.Bullet(symptom)
	}
}

func (r *run) treatmentsSection() {
	r.startSection("TREATMENT")
	defer r.endSection()

	t := r.c.Treatments
	if t == nil {
		r.missingSection()
		return
	}

	scene := format.YesNo(t.TreatedAtScene)
	if t.TreatedAtScene {
		scene = format.Or(t.SceneTreatment, "Yes")
	}
	r.field("Treatment at Scene:", scene)

	hospital := format.YesNo(t.AttendedHospital)
	if t.AttendedHospital {
		hospital = format.Or(t.HospitalName, "Yes")
		if t.HospitalTreatment != "" {
			hospital += " - " + t.HospitalTreatment
		}
	}
	r.field("Hospital Attendance:", hospital)

	gp := format.YesNo(t.VisitedGP)
	if t.VisitedGP && t.GPVisitCount > 0 {
		gp = fmt.Sprintf("Yes (%d visits)", t.GPVisitCount)
	}
	r.field("GP Attendance:", gp)

	medication := format.YesNo(t.TakingMedication)
	if t.TakingMedication {
		medication = format.Or(t.Medication, "Yes")
	}
	r.field("Medication:", medication)

	physio := format.NoneReported
	if t.PhysiotherapySessions > 0 {
		physio = strconv.Itoa(t.PhysiotherapySessions) + " sessions"
	}
	r.field("Physiotherapy:", physio)
	r.field("Physiotherapy Preferred:", format.YesNo(t.PhysiotherapyPreferred))

	r.paragraph(format.Or(t.Summary, format.NoInformation))
}

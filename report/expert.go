package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verilex/medreport/format"
	"github.com/verilex/medreport/narrative"
)

func (r *run) declarationSection() {
	r.startSection("CLASSIFICATION & DECLARATION")
	defer r.endSection()

	r.classificationSummary()

	expert := format.NotProvided
	if ed := r.c.ExpertDetails; ed != nil && strings.TrimSpace(ed.Name) != "" {
		expert = ed.Name
		if strings.TrimSpace(ed.Credentials) != "" {
			expert += ", " + ed.Credentials
		}
	}

	r.paragraph(fmt.Sprintf(
		"I, %s, confirm that I have examined the claimant and that the opinions "+
			"expressed in this report are my own, based on the examination findings "+
			"and the information made available to me.", expert))
	r.paragraph(
		"I understand that my duty in providing this report is to the court, and " +
			"that this duty overrides any obligation to the person from whom I have " +
			"received instructions or by whom I am paid. I confirm that I have " +
			"complied with that duty and will continue to do so.")
	r.paragraph(
		"I confirm that I have made clear which facts and matters referred to in " +
			"this report are within my own knowledge and which are not. Those that " +
			"are within my own knowledge I confirm to be true. The opinions I have " +
			"expressed represent my true and complete professional opinions on the " +
			"matters to which they refer.")
}

// classificationSummary aggregates the derived injury classifications.
func (r *run) classificationSummary() {
	if r.c.PhysicalInjury == nil || len(r.c.PhysicalInjury.Injuries) == 0 {
		r.paragraph("No physical injuries were reported; no injury classification applies.")
		return
	}

	counts := map[narrative.Classification]int{}
	order := []narrative.Classification{
		narrative.Whiplash,
		narrative.WhiplashAssociated,
		narrative.NonWhiplash,
		narrative.Psychological,
	}
	for _, inj := range r.c.PhysicalInjury.Injuries {
		counts[narrative.Classify(inj.Type)]++
	}

	var parts []string
	for _, class := range order {
		if n := counts[class]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s (%d)", string(class), n))
		}
	}
	r.paragraph("The injuries sustained in this accident are classified as follows: " +
		strings.Join(parts, "; ") + ".")
}

func (r *run) expertCVSection() {
	ed := r.c.ExpertDetails

	r.flow.NewPage()
	r.flow.StartSection("EXPERT CURRICULUM VITAE")
	defer r.endSection()
	r.toc = append(r.toc, tocEntry{title: "EXPERT CURRICULUM VITAE", page: r.pdf.PageNo()})

	if ed == nil {
		r.missingSection()
		return
	}

	r.field("Name:", ed.Name)
	r.field("Credentials:", ed.Credentials)
	r.field("Specialty:", ed.Specialty)
	r.field("License Number:", ed.LicenseNumber)
	r.field("Licensing Body:", ed.LicensingBody)

	experience := format.NotProvided
	if ed.YearsOfExperience > 0 {
		experience = strconv.Itoa(ed.YearsOfExperience) + " years"
	}
	r.field("Experience:", experience)
	r.field("Email:", ed.Email)
	r.field("Phone:", ed.Phone)

	if ed.YearsOfExperience > 0 && strings.TrimSpace(ed.Specialty) != "" {
		r.paragraph(fmt.Sprintf(
			"The examiner has %d years of clinical experience in %s and regularly "+
				"prepares medico-legal reports in this field.",
			ed.YearsOfExperience, strings.ToLower(ed.Specialty)))
	}
}

// signatureBlock closes the report with the expert's signature, image or
// text fallback, and the signature date.
func (r *run) signatureBlock() {
	r.flow.EnsureSpace(60)
	r.flow.EndSection()
	r.sheet.Spacer(6)
	r.sheet.SubHeading("Signature")

	if name, ok := r.signatureImage(); ok {
		y := r.pdf.GetY()
		r.pdf.ImageOptions(name, marginLeft, y, 50, 0, false, signatureImageOptions, 0, "")
		r.pdf.SetY(y + 22)
	} else {
		r.paragraph("Signature on file")
	}

	ed := r.c.ExpertDetails
	if ed == nil {
		r.field("Signed:", format.NotProvided)
		r.field("Date:", format.Date(r.opts.GeneratedAt.Format("2006-01-02")))
		return
	}

	signed := format.Or(ed.Name, format.NotProvided)
	if strings.TrimSpace(ed.Credentials) != "" {
		signed += ", " + ed.Credentials
	}
	r.field("Signed:", signed)

	date := ed.SignatureDate
	if strings.TrimSpace(date) == "" {
		date = r.opts.GeneratedAt.Format("2006-01-02")
	}
	r.field("Date:", format.Date(date))
}

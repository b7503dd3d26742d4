package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verilex/medreport"
	"github.com/verilex/medreport/format"
	"github.com/verilex/medreport/layout"
	"github.com/verilex/medreport/narrative"
)

func (r *run) claimantSection() {
	r.startSection("CLAIMANT DETAILS")
	defer r.endSection()

	cd := r.c.ClaimantDetails
	if cd == nil {
		r.missingSection()
		return
	}

	r.field("Full Name:", cd.FullName)

	dob := format.Date(cd.DateOfBirth)
	if age := format.AgeText(cd.DateOfBirth, cd.DateOfExamination); age != format.NotCalculated {
		dob = fmt.Sprintf("%s (age %s at examination)", dob, age)
	}
	r.field("Date of Birth:", dob)

	r.field("Gender:", cd.Gender)
	r.field("Address:", cd.Address)
	r.field("Identification:", cd.IdentificationType)
	r.field("Accompanied By:", format.Or(cd.AccompaniedBy, "Unaccompanied"))
	r.field("Date of Examination:", format.Date(cd.DateOfExamination))
	r.field("Place of Examination:", cd.PlaceOfExamination)
	r.field("Time Spent:", cd.TimeSpent)
	r.field("Instructing Party:", cd.InstructingParty)
	r.field("Solicitor:", cd.Solicitor)
	r.field("Reference:", cd.Reference)
}

func (r *run) accidentSection() {
	r.startSection("ACCIDENT DETAILS")
	defer r.endSection()

	acc := r.c.AccidentDetails
	if acc == nil {
		r.missingSection()
		return
	}

	r.paragraph(narrative.AccidentSummary(acc))

	r.field("Date of Accident:", format.Date(acc.Date))
	r.field("Time:", acc.Time)
	r.field("Location:", acc.Location)
	r.field("Weather Conditions:", acc.Weather)
	r.field("Accident Type:", acc.AccidentType)
	r.field("Vehicle Type:", acc.VehicleType)
	r.field("Claimant's Position:", acc.VehiclePosition)
	r.field("Vehicle Movement:", acc.VehicleMovement)
	r.field("Impact Location:", acc.ImpactLocation)
	r.field("Damage Severity:", acc.DamageSeverity)
	r.field("Seatbelt Worn:", format.YesNo(acc.SeatbeltWorn))
	r.field("Headrest Fitted:", format.YesNo(acc.HeadrestFitted))
	r.field("Airbag Deployed:", format.YesNo(acc.AirbagDeployed))

	police := format.YesNo(acc.PoliceAttended)
	if acc.PoliceAttended && strings.TrimSpace(acc.PoliceReportNumber) != "" {
		police = fmt.Sprintf("Yes (report %s)", acc.PoliceReportNumber)
	}
	r.field("Police Attended:", police)

	if strings.TrimSpace(acc.Description) != "" {
		r.paragraph(acc.Description)
	}

	r.flow.EnsureSpace(layout.SpaceParagraph)
	r.sheet.SubHeading("Witnesses")
	if len(acc.Witnesses) == 0 {
		r.paragraph(format.NoneReported)
		return
	}
	for i, w := range acc.Witnesses {
		r.flow.EnsureSpace(3 * layout.SpaceField)
		r.sheet.Field(fmt.Sprintf("Witness %d:", i+1), format.Or(w.Name, format.NotProvided), 55)
		r.sheet.Field("Phone:", format.Or(w.Phone, format.NotProvided), 55)
		r.sheet.Field("Statement:", format.Or(w.Statement, format.NotProvided), 55)
		r.sheet.Spacer(2)
	}
}

func (r *run) lifestyleSection() {
	r.startSection("IMPACT ON LIFESTYLE")
	defer r.endSection()

	li := r.c.LifestyleImpact
	if li == nil {
		r.missingSection()
		return
	}

	r.field("Occupation:", li.Occupation)
	r.field("Work Status:", li.WorkStatus)

	daysOff := format.NoneReported
	switch {
	case li.DaysOffWork > 0:
		daysOff = strconv.Itoa(li.DaysOffWork) + " days"
	case li.WorkedThrough:
		daysOff = "None - worked through"
	}
	r.field("Time Off Work:", daysOff)

	r.impactField("Domestic Activities:", li.Domestic)
	r.impactField("Leisure Activities:", li.Leisure)
	r.impactField("Social Activities:", li.Social)
	r.impactField("Sleep:", li.Sleep)

	r.paragraph(format.Or(li.Summary, format.NoInformation))
}

// impactField renders one affected/not-affected pair with its detail.
func (r *run) impactField(label string, d medreport.ImpactDetail) {
	value := format.NoneReported
	if d.Affected {
		value = "Affected - " + format.Or(d.Details, "no details given")
	}
	r.field(label, value)
}

func (r *run) familyHistorySection() {
	r.startSection("FAMILY HISTORY & PRIOR CONDITIONS")
	defer r.endSection()

	fh := r.c.FamilyHistory
	if fh == nil {
		r.missingSection()
		return
	}

	prev := format.NoneReported
	if fh.PreviousAccident {
		prev = format.Or(fh.PreviousAccidentDetails, "Yes")
	}
	r.field("Previous Accidents:", prev)

	pre := format.NoneReported
	if fh.PreExistingCondition {
		pre = format.Or(fh.PreExistingDetails, "Yes")
	}
	r.field("Pre-existing Conditions:", pre)

	exc := "No"
	if fh.ExceptionalCircumstances {
		exc = format.Or(fh.ExceptionalDetails, "Yes")
	}
	r.field("Exceptional Circumstances:", exc)

	r.paragraph(format.Or(fh.Summary, format.NoInformation))
}

// Package narrative derives the report's prose from structured case fields
// using fixed rule tables: impact location to jolt direction, severity to
// prognosis duration, injury name to classification.
//
// Every function is total and deterministic: missing fields produce a
// sensible default string, and the same input always yields the same text.
package narrative

import (
	"fmt"
	"strings"

	"github.com/verilex/medreport"
	"github.com/verilex/medreport/format"
)

// Classification is the derived injury category.
type Classification string

const (
	Whiplash           Classification = "Whiplash"
	WhiplashAssociated Classification = "Whiplash Associated Disorder"
	NonWhiplash        Classification = "Non-whiplash"
	Psychological      Classification = "Psychological"
)

// Keyword tables for Classify, matched against the lowercased injury name.
var (
	whiplashKeywords = []string{"neck", "shoulder", "back", "spine", "cervical", "lumbar", "thoracic"}
	wadKeywords      = []string{"headache", "dizziness", "tinnitus", "jaw"}
	psychKeywords    = []string{"anxiety", "depression", "stress", "ptsd", "psycholog", "shock", "phobia"}
)

// Classify maps an injury name to one of the four classes. The derivation
// is total: unrecognized names classify as NonWhiplash.
func Classify(injuryName string) Classification {
	name := strings.ToLower(injuryName)
	for _, kw := range whiplashKeywords {
		if strings.Contains(name, kw) {
			return Whiplash
		}
	}
	for _, kw := range wadKeywords {
		if strings.Contains(name, kw) {
			return WhiplashAssociated
		}
	}
	for _, kw := range psychKeywords {
		if strings.Contains(name, kw) {
			return Psychological
		}
	}
	return NonWhiplash
}

// JoltDirection maps the vehicle impact location to the direction the
// occupants were jolted.
func JoltDirection(impactLocation string) string {
	loc := strings.ToLower(impactLocation)
	switch {
	case strings.Contains(loc, "rear"):
		return "forward"
	case strings.Contains(loc, "front"), strings.Contains(loc, "head-on"):
		return "backward"
	case strings.Contains(loc, "side"), strings.Contains(loc, "left"), strings.Contains(loc, "right"):
		return "sideways"
	default:
		return "forward/backward"
	}
}

// Prognosis maps the current severity to an expected recovery window.
// Resolved injuries always report "Resolved", never a projected window.
// A specialist referral overrides the table: prognosis defers to the
// specialist's own report.
func Prognosis(currentSeverity string, specialistReferral bool) string {
	if strings.EqualFold(currentSeverity, "Resolved") {
		return "Resolved"
	}
	if specialistReferral {
		return "Per specialist report"
	}
	switch strings.ToLower(currentSeverity) {
	case "mild":
		return "3 months"
	case "moderate":
		return "6 months"
	case "severe":
		return "9 months"
	default:
		return "To be determined"
	}
}

// Recommendation maps the injury state to a treatment recommendation.
// Physiotherapy is recommended only on the claimant's explicit preference
// flag; otherwise standard conservative care applies.
func Recommendation(currentSeverity string, physiotherapyPreferred bool) string {
	if strings.EqualFold(currentSeverity, "Resolved") {
		return "No further treatment required"
	}
	if physiotherapyPreferred {
		return "Physiotherapy"
	}
	return "Pain medication and standard care advised"
}

// MechanismText describes the mechanism of a single injury from the impact
// location, e.g. "Sudden forward jolting movement caused by rear impact."
func MechanismText(impactLocation string) string {
	direction := JoltDirection(impactLocation)
	impact := strings.TrimSpace(strings.ToLower(impactLocation))
	if impact == "" {
		return fmt.Sprintf("Sudden %s jolting movement of the body caused by the impact.", direction)
	}
	return fmt.Sprintf("Sudden %s jolting movement of the body caused by the %s impact.", direction, impact)
}

// AccidentSummary composes the accident narrative paragraph.
func AccidentSummary(acc *medreport.AccidentDetails) string {
	if acc == nil {
		return "No accident details have been provided."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "On %s, the claimant was involved in a road traffic accident", format.Date(acc.Date))
	if strings.TrimSpace(acc.Location) != "" {
		fmt.Fprintf(&b, " at %s", acc.Location)
	}
	b.WriteString(". ")

	if strings.TrimSpace(acc.VehiclePosition) != "" {
		fmt.Fprintf(&b, "The claimant was the %s of a %s",
			strings.ToLower(acc.VehiclePosition),
			format.Or(strings.ToLower(acc.VehicleType), "vehicle"))
	} else {
		fmt.Fprintf(&b, "The claimant was travelling in a %s",
			format.Or(strings.ToLower(acc.VehicleType), "vehicle"))
	}
	if strings.TrimSpace(acc.VehicleMovement) != "" {
		fmt.Fprintf(&b, " which was %s at the time", strings.ToLower(acc.VehicleMovement))
	}
	b.WriteString(". ")

	if strings.TrimSpace(acc.ImpactLocation) != "" {
		fmt.Fprintf(&b, "The vehicle sustained a %s impact and the occupants were jolted %s. ",
			strings.ToLower(acc.ImpactLocation), JoltDirection(acc.ImpactLocation))
	}

	var safety []string
	if acc.SeatbeltWorn {
		safety = append(safety, "a seatbelt was worn")
	}
	if acc.HeadrestFitted {
		safety = append(safety, "a headrest was fitted")
	}
	if acc.AirbagDeployed {
		safety = append(safety, "the airbags deployed")
	}
	if len(safety) > 0 {
		b.WriteString("At the time of the accident " + joinClauses(safety) + ". ")
	}

	if acc.PoliceAttended {
		b.WriteString("The police attended the scene")
		if strings.TrimSpace(acc.PoliceReportNumber) != "" {
			fmt.Fprintf(&b, " (report reference %s)", acc.PoliceReportNumber)
		}
		b.WriteString(". ")
	}

	return strings.TrimSpace(b.String())
}

// InjurySummary composes the overview paragraph for the injury section.
func InjurySummary(injuries []medreport.Injury) string {
	if len(injuries) == 0 {
		return "No physical injuries have been reported."
	}

	names := make([]string, 0, len(injuries))
	resolved := 0
	for _, inj := range injuries {
		names = append(names, format.Or(strings.ToLower(inj.Type), "an unspecified injury"))
		if inj.Resolved() {
			resolved++
		}
	}

	var b strings.Builder
	if len(injuries) == 1 {
		fmt.Fprintf(&b, "As a result of the accident the claimant sustained %s. ", names[0])
	} else {
		fmt.Fprintf(&b, "As a result of the accident the claimant sustained %d injuries: %s. ",
			len(injuries), joinClauses(names))
	}

	switch {
	case resolved == len(injuries):
		b.WriteString("All reported injuries have since resolved.")
	case resolved > 0:
		fmt.Fprintf(&b, "%d of the reported injuries have since resolved; the remainder are ongoing.", resolved)
	default:
		b.WriteString("The reported injuries remain ongoing at the date of examination.")
	}

	return b.String()
}

// TravelAnxietySummary composes the travel anxiety paragraph.
func TravelAnxietySummary(p *medreport.PsychologicalInjuries) string {
	if p == nil || len(p.TravelAnxietySymptoms) == 0 {
		return "No travel anxiety has been reported."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "The claimant reports travel anxiety manifesting as %s",
		joinClauses(lowerAll(p.TravelAnxietySymptoms)))
	if strings.TrimSpace(p.TravelAnxietyOnset) != "" {
		fmt.Fprintf(&b, ", with onset %s", strings.ToLower(p.TravelAnxietyOnset))
	}
	b.WriteString(". ")
	if strings.TrimSpace(p.TravelAnxietySeverity) != "" {
		fmt.Fprintf(&b, "Current severity is %s. ", strings.ToLower(p.TravelAnxietySeverity))
	}
	if strings.TrimSpace(p.TravelAnxietyResolution) != "" {
		fmt.Fprintf(&b, "Expected resolution: %s.", p.TravelAnxietyResolution)
	}
	return strings.TrimSpace(b.String())
}

func joinClauses(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.ToLower(s)
	}
	return out
}

package narrative

import (
	"strings"
	"testing"

	"github.com/verilex/medreport"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Classification
	}{
		{"Neck", Whiplash},
		{"neck pain", Whiplash},
		{"Shoulder strain", Whiplash},
		{"Lower Back", Whiplash},
		{"Cervical spine injury", Whiplash},
		{"Headache", WhiplashAssociated},
		{"Recurring headaches", WhiplashAssociated},
		{"Dizziness", WhiplashAssociated},
		{"Anxiety", Psychological},
		{"Post-traumatic stress", Psychological},
		{"Psychological distress", Psychological},
		{"Bruising", NonWhiplash},
		{"Bruising to left knee", NonWhiplash},
		{"Laceration", NonWhiplash},
		{"", NonWhiplash},
	}
	for _, tt := range tests {
		if got := Classify(tt.name); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		if Classify("Neck") != Whiplash {
			t.Fatal("Classify(Neck) unstable")
		}
	}
}

func TestJoltDirection(t *testing.T) {
	tests := []struct {
		impact string
		want   string
	}{
		{"rear", "forward"},
		{"rear-end", "forward"},
		{"Rear offside", "forward"},
		{"front", "backward"},
		{"head-on", "backward"},
		{"side", "sideways"},
		{"left side", "sideways"},
		{"nearside (left)", "sideways"},
		{"", "forward/backward"},
		{"unknown", "forward/backward"},
	}
	for _, tt := range tests {
		if got := JoltDirection(tt.impact); got != tt.want {
			t.Errorf("JoltDirection(%q) = %q, want %q", tt.impact, got, tt.want)
		}
	}
}

func TestPrognosis(t *testing.T) {
	tests := []struct {
		severity   string
		specialist bool
		want       string
	}{
		{"Mild", false, "3 months"},
		{"mild", false, "3 months"},
		{"Moderate", false, "6 months"},
		{"Severe", false, "9 months"},
		{"Resolved", false, "Resolved"},
		{"resolved", true, "Resolved"}, // resolved wins over referral
		{"Mild", true, "Per specialist report"},
		{"", false, "To be determined"},
		{"Unknown", false, "To be determined"},
	}
	for _, tt := range tests {
		if got := Prognosis(tt.severity, tt.specialist); got != tt.want {
			t.Errorf("Prognosis(%q, %v) = %q, want %q", tt.severity, tt.specialist, got, tt.want)
		}
	}
}

func TestResolvedNeverProjectsRecovery(t *testing.T) {
	got := Prognosis("Resolved", false)
	if strings.Contains(got, "month") {
		t.Errorf("resolved injury projected a recovery window: %q", got)
	}
	if got != "Resolved" {
		t.Errorf("Prognosis(Resolved) = %q, want Resolved", got)
	}
}

func TestRecommendation(t *testing.T) {
	tests := []struct {
		severity string
		physio   bool
		want     string
	}{
		{"Resolved", false, "No further treatment required"},
		{"Resolved", true, "No further treatment required"},
		{"Mild", true, "Physiotherapy"},
		{"Mild", false, "Pain medication and standard care advised"},
		{"", false, "Pain medication and standard care advised"},
	}
	for _, tt := range tests {
		if got := Recommendation(tt.severity, tt.physio); got != tt.want {
			t.Errorf("Recommendation(%q, %v) = %q, want %q", tt.severity, tt.physio, got, tt.want)
		}
	}
}

func TestMechanismText(t *testing.T) {
	got := MechanismText("rear-end")
	if !strings.Contains(got, "forward") {
		t.Errorf("rear impact mechanism %q lacks forward jolt", got)
	}
	if !strings.Contains(got, "rear-end") {
		t.Errorf("mechanism %q lacks impact location", got)
	}

	// Absent impact still yields a complete sentence.
	got = MechanismText("")
	if got == "" || strings.Contains(got, "  ") {
		t.Errorf("mechanism for empty impact malformed: %q", got)
	}
}

func TestAccidentSummary(t *testing.T) {
	acc := &medreport.AccidentDetails{
		Date:            "2024-01-15",
		Location:        "the A40 near Oxford",
		VehicleType:     "Car",
		VehiclePosition: "Driver",
		VehicleMovement: "Stationary",
		ImpactLocation:  "rear",
		SeatbeltWorn:    true,
		HeadrestFitted:  true,
		PoliceAttended:  true,
	}
	got := AccidentSummary(acc)

	for _, want := range []string{"15/Jan/2024", "A40", "driver", "stationary", "jolted forward", "seatbelt", "police"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q: %s", want, got)
		}
	}
}

func TestAccidentSummaryNilSection(t *testing.T) {
	got := AccidentSummary(nil)
	if got == "" || strings.Contains(got, "undefined") {
		t.Errorf("nil section summary malformed: %q", got)
	}
}

func TestInjurySummary(t *testing.T) {
	injuries := []medreport.Injury{
		{Type: "Neck", CurrentSeverity: "Mild"},
		{Type: "Bruising", CurrentSeverity: "Resolved"},
	}
	got := InjurySummary(injuries)
	for _, want := range []string{"2 injuries", "neck", "bruising", "resolved"} {
		if !strings.Contains(got, want) {
			t.Errorf("injury summary missing %q: %s", want, got)
		}
	}

	if got := InjurySummary(nil); !strings.Contains(got, "No physical injuries") {
		t.Errorf("empty injury summary = %q", got)
	}
}

func TestTravelAnxietySummary(t *testing.T) {
	p := &medreport.PsychologicalInjuries{
		TravelAnxietySymptoms: []string{"Fear as a passenger", "Avoidance of motorways"},
		TravelAnxietyOnset:    "Same Day",
		TravelAnxietySeverity: "Moderate",
	}
	got := TravelAnxietySummary(p)
	for _, want := range []string{"fear as a passenger", "avoidance of motorways", "same day", "moderate"} {
		if !strings.Contains(got, want) {
			t.Errorf("travel anxiety summary missing %q: %s", want, got)
		}
	}

	if got := TravelAnxietySummary(nil); !strings.Contains(got, "No travel anxiety") {
		t.Errorf("nil travel anxiety summary = %q", got)
	}
}

// The spec scenario: a mild neck injury from a rear-end impact.
func TestRearEndNeckScenario(t *testing.T) {
	if got := MechanismText("rear-end"); !strings.Contains(got, "forward") {
		t.Errorf("mechanism %q should contain forward", got)
	}
	if got := Classify("Neck"); got != Whiplash {
		t.Errorf("classification = %q, want Whiplash", got)
	}
	if got := Prognosis("Mild", false); got != "3 months" {
		t.Errorf("prognosis = %q, want 3 months", got)
	}
}

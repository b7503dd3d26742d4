package medreport

import (
	"errors"
	"testing"
)

func TestParseCase(t *testing.T) {
	data := []byte(`{
		"caseNumber": "RTA-2024-0001",
		"claimantDetails": {"fullName": "Jane Doe", "dateOfBirth": "1985-07-14"},
		"physicalInjury": {
			"injuries": [
				{"type": "Neck", "onset": "Same Day", "currentSeverity": "Mild"},
				{"type": "Bruising", "currentSeverity": "Resolved", "resolutionDays": 21}
			]
		}
	}`)

	c, err := ParseCase(data)
	if err != nil {
		t.Fatalf("ParseCase: %v", err)
	}
	if c.CaseNumber != "RTA-2024-0001" {
		t.Errorf("CaseNumber = %q", c.CaseNumber)
	}
	if got := c.ClaimantName(); got != "Jane Doe" {
		t.Errorf("ClaimantName = %q", got)
	}
	if n := len(c.PhysicalInjury.Injuries); n != 2 {
		t.Fatalf("injuries = %d, want 2", n)
	}
	if c.PhysicalInjury.Injuries[0].Resolved() {
		t.Error("mild injury reported resolved")
	}
	if !c.PhysicalInjury.Injuries[1].Resolved() {
		t.Error("resolved injury not detected")
	}
	if c.Treatments != nil {
		t.Error("absent section decoded non-nil")
	}
}

func TestParseCaseInvalidJSON(t *testing.T) {
	_, err := ParseCase([]byte(`{"caseNumber": `))
	if err == nil {
		t.Fatal("expected error for truncated JSON")
	}
	var rerr *RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %T, want *RenderError", err)
	}
	if rerr.Op != "ParseCase" {
		t.Errorf("Op = %q", rerr.Op)
	}
}

func TestInjuryResolvedCaseInsensitive(t *testing.T) {
	for _, severity := range []string{"Resolved", "resolved", "RESOLVED"} {
		if !(Injury{CurrentSeverity: severity}).Resolved() {
			t.Errorf("Resolved() = false for %q", severity)
		}
	}
	for _, severity := range []string{"", "Mild", "Resolving"} {
		if (Injury{CurrentSeverity: severity}).Resolved() {
			t.Errorf("Resolved() = true for %q", severity)
		}
	}
}

func TestClaimantNameNilSafe(t *testing.T) {
	var c *Case
	if got := c.ClaimantName(); got != "" {
		t.Errorf("nil case ClaimantName = %q", got)
	}
	if got := (&Case{}).ClaimantName(); got != "" {
		t.Errorf("empty case ClaimantName = %q", got)
	}
}

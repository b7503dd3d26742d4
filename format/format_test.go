package format

import (
	"reflect"
	"strings"
	"testing"
)

func TestDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-03-01", "01/Mar/2024"},
		{"1985-07-14", "14/Jul/1985"},
		{"2024-03-01T10:30:00Z", "01/Mar/2024"},
		{"", NotProvided},
		{"   ", NotProvided},
		{"not-a-date", "not-a-date"},
		{"31/02/garbage", "31/02/garbage"},
	}
	for _, tt := range tests {
		if got := Date(tt.in); got != tt.want {
			t.Errorf("Date(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAge(t *testing.T) {
	tests := []struct {
		dob, ref string
		want     int
		ok       bool
	}{
		{"2000-03-01", "2024-02-28", 23, true}, // birthday not yet reached
		{"2000-03-01", "2024-03-01", 24, true}, // birthday reached
		{"2000-02-29", "2024-02-28", 23, true}, // leap-day birth, non-leap logic
		{"2000-02-29", "2024-03-01", 24, true},
		{"1990-12-31", "1991-01-01", 0, true},
		{"", "2024-01-01", 0, false},
		{"2000-01-01", "", 0, false},
		{"garbage", "2024-01-01", 0, false},
		{"2024-01-01", "2000-01-01", 0, false}, // reference before birth
	}
	for _, tt := range tests {
		got, ok := Age(tt.dob, tt.ref)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Age(%q, %q) = %d, %v, want %d, %v", tt.dob, tt.ref, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAgeText(t *testing.T) {
	if got := AgeText("2000-03-01", "2024-03-01"); got != "24" {
		t.Errorf("AgeText = %q, want 24", got)
	}
	if got := AgeText("", "2024-03-01"); got != NotCalculated {
		t.Errorf("AgeText on empty dob = %q, want %q", got, NotCalculated)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "", 20, nil},
		{"single word", "pain", 20, []string{"pain"}},
		{"simple wrap", "neck pain radiating to left shoulder", 12,
			[]string{"neck pain", "radiating to", "left", "shoulder"}},
		{"exact fit", "ab cd", 5, []string{"ab cd"}},
		{"long word hard split", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"newlines preserved as breaks", "first line\nsecond line", 20,
			[]string{"first line", "second line"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q, %d) = %v, want %v", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapNeverExceedsWidth(t *testing.T) {
	text := "The claimant reports persistent discomfort in the cervical region aggravated by prolonged sitting and driving."
	for _, width := range []int{8, 15, 30, 60} {
		for _, line := range Wrap(text, width) {
			if len([]rune(line)) > width {
				t.Errorf("width %d: line %q exceeds limit", width, line)
			}
		}
	}
}

func TestTruncate(t *testing.T) {
	text := "one two three four five six seven eight nine ten"
	got := Truncate(text, 10, 3)
	if len(got) != 3 {
		t.Fatalf("Truncate returned %d lines, want 3", len(got))
	}
	if !strings.HasSuffix(got[2], Ellipsis) {
		t.Errorf("final line %q not ellipsized", got[2])
	}
	full := Wrap(text, 10)
	if got[0] != full[0] || got[1] != full[1] {
		t.Errorf("leading lines altered: %v vs %v", got[:2], full[:2])
	}
}

func TestTruncateShortTextUntouched(t *testing.T) {
	got := Truncate("brief note", 20, 4)
	if !reflect.DeepEqual(got, []string{"brief note"}) {
		t.Errorf("Truncate altered short text: %v", got)
	}
}

func TestClipLine(t *testing.T) {
	if got := ClipLine("short", 10); got != "short" {
		t.Errorf("ClipLine left fit text altered: %q", got)
	}
	got := ClipLine("a very long cell value", 10)
	if len([]rune(got)) > 10 {
		t.Errorf("ClipLine result %q exceeds width", got)
	}
	if !strings.HasSuffix(got, Ellipsis) {
		t.Errorf("ClipLine result %q not ellipsized", got)
	}
}

func TestOr(t *testing.T) {
	if got := Or("", NotProvided); got != NotProvided {
		t.Errorf("Or empty = %q", got)
	}
	if got := Or("  ", NoInformation); got != NoInformation {
		t.Errorf("Or whitespace = %q", got)
	}
	if got := Or("value", NotProvided); got != "value" {
		t.Errorf("Or non-empty = %q", got)
	}
}

func TestYesNo(t *testing.T) {
	if YesNo(true) != "Yes" || YesNo(false) != "No" {
		t.Error("YesNo mapping wrong")
	}
}

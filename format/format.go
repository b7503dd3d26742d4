// Package format provides the formatting utilities shared by every section
// renderer: date formatting, age computation, text wrapping and truncation,
// and the placeholder sentinels substituted for absent data.
//
// Every function is total: malformed input degrades to a safe string, never
// an error that would abort an in-progress render.
package format

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Placeholder sentinels for absent data. Renderers must emit one of these
// for every missing optional field rather than omitting the field.
const (
	NotProvided   = "Not provided"
	NoInformation = "No information"
	NoneReported  = "None reported"
	NotCalculated = "Not calculated"
)

// Ellipsis terminates a truncated line.
const Ellipsis = "..."

// dateLayouts are the input forms accepted by Date and Age, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02/01/2006",
}

// Or returns s, or fallback when s is empty or whitespace.
func Or(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// YesNo renders a boolean flag as report text.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Date renders an ISO date as DD/Mon/YYYY. Empty input yields NotProvided;
// unparseable input is returned verbatim so the raw value stays visible.
func Date(iso string) string {
	s := strings.TrimSpace(iso)
	if s == "" {
		return NotProvided
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/Jan/2006")
		}
	}
	return s
}

// Age computes whole years between dob and ref, decrementing by one when
// the reference month/day falls before the birthday in the reference year.
// The month/day comparison makes the result independent of leap years.
// ok is false when either date fails to parse.
func Age(dob, ref string) (years int, ok bool) {
	b, okB := parseDate(dob)
	r, okR := parseDate(ref)
	if !okB || !okR || r.Before(b) {
		return 0, false
	}
	years = r.Year() - b.Year()
	if r.Month() < b.Month() || (r.Month() == b.Month() && r.Day() < b.Day()) {
		years--
	}
	return years, true
}

// AgeText is Age rendered as report text, with NotCalculated on failure.
func AgeText(dob, ref string) string {
	years, ok := Age(dob, ref)
	if !ok {
		return NotCalculated
	}
	return strconv.Itoa(years)
}

// Wrap splits text into lines of at most width runes, breaking on spaces.
// Words longer than width are hard-split. Callers derive vertical space as
// len(lines) * lineHeight; this is the one place wrapping is defined.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapLine(strings.TrimSpace(para), width)...)
	}
	return lines
}

func wrapLine(para string, width int) []string {
	if para == "" {
		return []string{""}
	}

	var lines []string
	var line string
	for _, word := range strings.Fields(para) {
		// Hard-split words that cannot fit on any line.
		for utf8.RuneCountInString(word) > width {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			head, tail := splitRunes(word, width)
			lines = append(lines, head)
			word = tail
		}

		switch {
		case line == "":
			line = word
		case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// Truncate wraps text to width and clips it to at most maxLines lines,
// keeping the first maxLines-1 verbatim and ellipsizing the final line.
func Truncate(text string, width, maxLines int) []string {
	lines := Wrap(text, width)
	if maxLines < 1 || len(lines) <= maxLines {
		return lines
	}

	kept := make([]string, maxLines)
	copy(kept, lines[:maxLines-1])

	last := lines[maxLines-1]
	limit := width - len(Ellipsis)
	if limit < 1 {
		limit = 1
	}
	if utf8.RuneCountInString(last) > limit {
		last, _ = splitRunes(last, limit)
	}
	kept[maxLines-1] = last + Ellipsis
	return kept
}

// ClipLine shortens a single line to at most width runes, ellipsized.
func ClipLine(text string, width int) string {
	if utf8.RuneCountInString(text) <= width {
		return text
	}
	limit := width - len(Ellipsis)
	if limit < 1 {
		limit = 1
	}
	head, _ := splitRunes(text, limit)
	return head + Ellipsis
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func splitRunes(s string, n int) (head, tail string) {
	count := 0
	for i := range s {
		if count == n {
			return s[:i], s[i:]
		}
		count++
	}
	return s, ""
}

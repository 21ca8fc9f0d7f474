package format

import (
	"testing"
	"time"
)

var sample = time.Date(2026, time.March, 7, 15, 4, 5, 0, time.UTC)

func TestDatePatterns(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{PatternUS, "03/07/2026"},
		{PatternEU, "07/03/2026"},
		{PatternISO, "2026-03-07"},
		{PatternLetter, "Mar 07, 2026"},
	}
	for _, tc := range cases {
		if got := Date(sample, tc.pattern); got != tc.want {
			t.Fatalf("pattern %q: expected %q, got %q", tc.pattern, tc.want, got)
		}
	}
}

func TestDateUnknownPatternFallsBack(t *testing.T) {
	want := Date(sample, PatternUS)
	for _, pattern := range []string{"", "YYYY/MM/DD", "MM-DD-YYYY", "garbage"} {
		if got := Date(sample, pattern); got != want {
			t.Fatalf("pattern %q: expected fallback %q, got %q", pattern, want, got)
		}
	}
}

func TestDateISOShape(t *testing.T) {
	got := Date(sample, PatternISO)
	if len(got) != 10 {
		t.Fatalf("expected 10 characters, got %d (%q)", len(got), got)
	}
	if got[4] != '-' || got[7] != '-' {
		t.Fatalf("expected dashes at positions 4 and 7, got %q", got)
	}
}

func TestDateZeroPadding(t *testing.T) {
	jan2 := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	if got := Date(jan2, PatternUS); got != "01/02/2026" {
		t.Fatalf("expected zero-padded day and month, got %q", got)
	}
	if got := Date(jan2, PatternLetter); got != "Jan 02, 2026" {
		t.Fatalf("expected zero-padded day, got %q", got)
	}
}

func TestDateUsesLocalCalendarFields(t *testing.T) {
	// 23:30 in Manila is the next calendar day relative to UTC.
	manila := time.FixedZone("PHT", 8*3600)
	late := time.Date(2026, time.March, 7, 23, 30, 0, 0, manila)
	if got := Date(late, PatternISO); got != "2026-03-07" {
		t.Fatalf("expected calendar fields of the input's own zone, got %q", got)
	}
}

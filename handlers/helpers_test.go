package handlers

import (
	"testing"
	"time"
)

func TestOptVal(t *testing.T) {
	tests := []struct {
		in        string
		wantValid bool
		want      string
	}{
		{"", false, ""},
		{"   ", false, ""},
		{"EMPTY_SELECTION", false, ""},
		{"Rosario", true, "Rosario"},
		{"  Rosario  ", true, "Rosario"},
	}

	for _, tt := range tests {
		got := optVal(tt.in)
		if got.Valid != tt.wantValid {
			t.Errorf("optVal(%q).Valid = %v, want %v", tt.in, got.Valid, tt.wantValid)
		}
		if got.Valid && got.String != tt.want {
			t.Errorf("optVal(%q) = %q, want %q", tt.in, got.String, tt.want)
		}
	}
}

func TestParseDatePinsNoon(t *testing.T) {
	d, err := parseDate("2026-03-10")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}

	if d.Hour() != 12 {
		t.Errorf("hour = %d, want 12", d.Hour())
	}
	if d.Year() != 2026 || d.Month() != time.March || d.Day() != 10 {
		t.Errorf("date = %v, want 2026-03-10", d)
	}
}

func TestParseDateRFC3339(t *testing.T) {
	d, err := parseDate("2026-03-10T09:30:00Z")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if d.Hour() != 9 || d.Minute() != 30 {
		t.Errorf("time = %v, want 09:30 UTC", d)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "10/03/2026", "not-a-date"} {
		if _, err := parseDate(in); err == nil {
			t.Errorf("parseDate(%q) should fail", in)
		}
	}
}

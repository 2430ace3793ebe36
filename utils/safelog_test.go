package utils

import (
	"strings"
	"testing"
)

func TestMaskStringInProduction(t *testing.T) {
	orig := IsProduction
	IsProduction = true
	defer func() { IsProduction = orig }()

	tests := []struct {
		in       string
		leaks    []string
		contains string
	}{
		{"contacto leomessina@mail.com", []string{"leomessina"}, "***@***.***"},
		{"DNI 30.000.111 del cliente", []string{"30.000.111"}, "**.***.***"},
		{"CUIT 30-70707070-1", []string{"70707070"}, "**-********-*"},
	}

	for _, tt := range tests {
		got := MaskString(tt.in)
		for _, leak := range tt.leaks {
			if strings.Contains(got, leak) {
				t.Errorf("MaskString(%q) = %q, leaks %q", tt.in, got, leak)
			}
		}
		if !strings.Contains(got, tt.contains) {
			t.Errorf("MaskString(%q) = %q, want it to contain %q", tt.in, got, tt.contains)
		}
	}
}

func TestMaskStringPassthroughInDev(t *testing.T) {
	orig := IsProduction
	IsProduction = false
	defer func() { IsProduction = orig }()

	in := "DNI 30.000.111 de leomessina@mail.com"
	if got := MaskString(in); got != in {
		t.Errorf("dev mode should not mask, got %q", got)
	}
}

func TestMaskID(t *testing.T) {
	orig := IsProduction
	IsProduction = true
	defer func() { IsProduction = orig }()

	id := "123e4567-e89b-12d3-a456-426614174000"
	got := MaskID(id)
	if got != "123e4567..." {
		t.Errorf("MaskID = %q, want 123e4567...", got)
	}
	if MaskID("short") != "***" {
		t.Errorf("short ids should collapse to ***")
	}
}

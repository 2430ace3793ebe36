package services

import (
	"testing"

	"estudio-api/models"
)

func TestIsKnownTemplate(t *testing.T) {
	s := NewDocumentService()

	if !s.IsKnownTemplate("escrito_generico.docx") {
		t.Error("escrito_generico.docx should be known")
	}
	if s.IsKnownTemplate("../../etc/passwd") {
		t.Error("path traversal id should not be a known template")
	}
	if s.IsKnownTemplate("") {
		t.Error("empty id should not be a known template")
	}
}

func TestGenerateRejectsUnknownTemplate(t *testing.T) {
	s := NewDocumentService()

	_, _, err := s.Generate("inventado.docx", models.Client{}, models.Case{})
	if err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestOrBlank(t *testing.T) {
	dni := "30.000.111"

	if got := orBlank(&dni); got != dni {
		t.Errorf("orBlank = %q, want %q", got, dni)
	}
	if got := orBlank(nil); got != "__________" {
		t.Errorf("orBlank(nil) = %q, want raya", got)
	}
	empty := ""
	if got := orBlank(&empty); got != "__________" {
		t.Errorf("orBlank(empty) = %q, want raya", got)
	}
}

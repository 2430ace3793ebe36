package handlers

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Sentinela que mandan los selects del frontend cuando no se eligió nada.
const emptySelection = "EMPTY_SELECTION"

// optVal normaliza un campo opcional de formulario: vacío o el
// sentinela del select pasan a NULL.
func optVal(s string) sql.NullString {
	s = strings.TrimSpace(s)
	if s == "" || s == emptySelection {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// parseDate acepta "2006-01-02" (lo que manda un <input type="date">) y
// lo clava a las 12:00 locales para que el huso horario no corra el
// día. También acepta RFC 3339 completo.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}

	if d, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return d.Add(12 * time.Hour), nil
	}

	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return d, nil
	}

	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
}

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

func floatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}

package models

import "time"

// Movement es una entrada de historia del expediente ("se presentó
// escrito", "pasó a despacho"). Inmutable: solo alta y baja.
type Movement struct {
	ID          string    `json:"id"`
	CaseID      string    `json:"case_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateMovementRequest struct {
	CaseID      string `json:"case_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
}

package models

import "time"

// Tipos de evento de agenda.
const (
	EventHearing  = "HEARING"
	EventDeadline = "DEADLINE"
	EventMeeting  = "MEETING"
)

// Event es un vencimiento, audiencia o reunión agendada sobre un caso.
// IsDone arranca en false y solo cambia con el toggle explícito.
type Event struct {
	ID          string    `json:"id"`
	CaseID      string    `json:"case_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	IsDone      bool      `json:"is_done"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateEventRequest struct {
	CaseID      string `json:"case_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required,oneof=HEARING DEADLINE MEETING"`
	Date        string `json:"date" binding:"required"`
}

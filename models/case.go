package models

import "time"

// Fueros (áreas de práctica). Un valor desconocido se muestra como CIVIL.
const (
	AreaCivil          = "CIVIL"
	AreaFamilia        = "FAMILIA"
	AreaLaboral        = "LABORAL"
	AreaPenal          = "PENAL"
	AreaPrevisional    = "PREVISIONAL"
	AreaAdministrativo = "ADMINISTRATIVO"
)

// Estados del expediente.
const (
	StatusActive    = "ACTIVE"
	StatusMediation = "MEDIATION"
	StatusArchived  = "ARCHIVED"
)

// ValidAreas se usa para validar el alta/edición.
var ValidAreas = map[string]bool{
	AreaCivil:          true,
	AreaFamilia:        true,
	AreaLaboral:        true,
	AreaPenal:          true,
	AreaPrevisional:    true,
	AreaAdministrativo: true,
}

var ValidStatuses = map[string]bool{
	StatusActive:    true,
	StatusMediation: true,
	StatusArchived:  true,
}

// Case es un expediente judicial de un cliente.
type Case struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Caratula    string    `json:"caratula"`
	Code        string    `json:"code"`
	Juzgado     string    `json:"juzgado"`
	Description string    `json:"description"`
	Area        string    `json:"area"`
	Status      string    `json:"status"`
	TotalFee    *float64  `json:"total_fee"`
	DriveLink   *string   `json:"drive_link"`
	CreatedAt   time.Time `json:"created_at"`

	Events       []Event       `json:"events,omitempty"`
	Movements    []Movement    `json:"movements,omitempty"`
	Transactions []Transaction `json:"transactions,omitempty"`
}

type CreateCaseRequest struct {
	ClientID    string `json:"client_id" binding:"required"`
	Caratula    string `json:"caratula" binding:"required"`
	Code        string `json:"code"`
	Juzgado     string `json:"juzgado"`
	Description string `json:"description"`
	Area        string `json:"area"`
}

type UpdateCaseRequest struct {
	Caratula    string `json:"caratula" binding:"required"`
	Code        string `json:"code"`
	Juzgado     string `json:"juzgado"`
	Description string `json:"description"`
	Area        string `json:"area"`
	Status      string `json:"status"`
	TotalFee    string `json:"total_fee"`
	DriveLink   string `json:"drive_link"`
}

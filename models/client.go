package models

import "time"

// Client es la ficha de una persona o empresa del estudio.
// Los campos opcionales son punteros: NULL en la base, null en el JSON.
type Client struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DocType     string     `json:"doc_type"`
	DNI         *string    `json:"dni"`
	CUIT        *string    `json:"cuit"`
	Gender      *string    `json:"gender"`
	BirthDate   *time.Time `json:"birth_date"`
	BirthPlace  *string    `json:"birth_place"`
	Nationality *string    `json:"nationality"`
	Occupation  *string    `json:"occupation"`
	CivilStatus *string    `json:"civil_status"`
	Address     *string    `json:"address"`
	Location    *string    `json:"location"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email"`
	FamilyPhone *string    `json:"family_phone"`
	CreatedAt   time.Time  `json:"created_at"`

	// Áreas de los casos activos del cliente, para las etiquetas del listado.
	ActiveAreas []string `json:"active_areas,omitempty"`
	Cases       []Case   `json:"cases,omitempty"`
}

// ClientRequest cubre alta y edición. Los opcionales llegan como string
// y se normalizan: vacío o "EMPTY_SELECTION" pasa a NULL.
type ClientRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	DocType     string `json:"doc_type"`
	DNI         string `json:"dni"`
	CUIT        string `json:"cuit"`
	Gender      string `json:"gender"`
	BirthDate   string `json:"birth_date"`
	BirthPlace  string `json:"birth_place"`
	Nationality string `json:"nationality"`
	Occupation  string `json:"occupation"`
	CivilStatus string `json:"civil_status"`
	Address     string `json:"address"`
	Location    string `json:"location"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	FamilyPhone string `json:"family_phone"`
}

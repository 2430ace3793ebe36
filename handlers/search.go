package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"estudio-api/models"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	DB *sql.DB
}

// GlobalSearch es el buscador Ctrl+K: hasta 5 clientes (por nombre,
// apellido o DNI) y hasta 5 expedientes (por carátula, código o
// juzgado), sin ranking. Con menos de 2 caracteres no toca la base.
func (h *SearchHandler) GlobalSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	result := models.SearchResponse{
		Clients: []models.Client{},
		Cases:   []models.Case{},
	}

	if len([]rune(query)) < 2 {
		c.JSON(http.StatusOK, result)
		return
	}

	clientRows, err := h.DB.Query(`
		SELECT `+clientColumns+`
		FROM clients
		WHERE first_name ILIKE '%' || $1 || '%'
			OR last_name ILIKE '%' || $1 || '%'
			OR dni ILIKE '%' || $1 || '%'
		LIMIT 5
	`, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	defer clientRows.Close()

	for clientRows.Next() {
		cl, err := scanClient(clientRows)
		if err != nil {
			continue
		}
		result.Clients = append(result.Clients, cl)
	}

	caseRows, err := h.DB.Query(`
		SELECT `+caseColumns+`
		FROM cases
		WHERE caratula ILIKE '%' || $1 || '%'
			OR code ILIKE '%' || $1 || '%'
			OR juzgado ILIKE '%' || $1 || '%'
		LIMIT 5
	`, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	defer caseRows.Close()

	for caseRows.Next() {
		cs, err := scanCase(caseRows)
		if err != nil {
			continue
		}
		result.Cases = append(result.Cases, cs)
	}

	c.JSON(http.StatusOK, result)
}

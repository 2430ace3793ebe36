package handlers

import (
	"database/sql"
	"net/http"

	"estudio-api/models"
	"estudio-api/utils"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	DB *sql.DB
	WS *WSHandler
}

const clientColumns = `id, first_name, last_name, doc_type, dni, cuit, gender,
	birth_date, birth_place, nationality, occupation, civil_status,
	address, location, phone, email, family_phone, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(row rowScanner) (models.Client, error) {
	var cl models.Client
	var dni, cuit, gender, birthPlace, nationality, occupation sql.NullString
	var civilStatus, address, location, phone, email, familyPhone sql.NullString
	var birthDate sql.NullTime

	err := row.Scan(&cl.ID, &cl.FirstName, &cl.LastName, &cl.DocType,
		&dni, &cuit, &gender, &birthDate, &birthPlace, &nationality,
		&occupation, &civilStatus, &address, &location, &phone, &email,
		&familyPhone, &cl.CreatedAt)
	if err != nil {
		return cl, err
	}

	cl.DNI = strPtr(dni)
	cl.CUIT = strPtr(cuit)
	cl.Gender = strPtr(gender)
	cl.BirthDate = timePtr(birthDate)
	cl.BirthPlace = strPtr(birthPlace)
	cl.Nationality = strPtr(nationality)
	cl.Occupation = strPtr(occupation)
	cl.CivilStatus = strPtr(civilStatus)
	cl.Address = strPtr(address)
	cl.Location = strPtr(location)
	cl.Phone = strPtr(phone)
	cl.Email = strPtr(email)
	cl.FamilyPhone = strPtr(familyPhone)
	return cl, nil
}

// clientArgs arma los valores normalizados de un alta/edición, en el
// mismo orden que las columnas del INSERT y el UPDATE.
func clientArgs(req models.ClientRequest) ([]interface{}, error) {
	docType := req.DocType
	if docType == "" {
		docType = "DNI"
	}

	var birthDate interface{}
	if req.BirthDate != "" {
		d, err := parseDate(req.BirthDate)
		if err != nil {
			return nil, err
		}
		birthDate = d
	}

	return []interface{}{
		req.FirstName, req.LastName, docType,
		optVal(req.DNI), optVal(req.CUIT), optVal(req.Gender),
		birthDate, optVal(req.BirthPlace), optVal(req.Nationality),
		optVal(req.Occupation), optVal(req.CivilStatus),
		optVal(req.Address), optVal(req.Location), optVal(req.Phone),
		optVal(req.Email), optVal(req.FamilyPhone),
	}, nil
}

// CreateClient da de alta la ficha de un cliente.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req models.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	args, err := clientArgs(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var clientID string
	err = h.DB.QueryRow(`
		INSERT INTO clients (first_name, last_name, doc_type, dni, cuit, gender,
			birth_date, birth_place, nationality, occupation, civil_status,
			address, location, phone, email, family_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`, args...).Scan(&clientID)

	if err != nil {
		utils.SafeError("create client failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		return
	}

	utils.LogMutation("create", "Client", clientID)
	h.WS.Invalidate("/")

	c.JSON(http.StatusCreated, gin.H{"id": clientID})
}

// GetClients lista clientes con los filtros del tablero: búsqueda por
// nombre y filtro por fuero (clientes con algún caso ACTIVO en ese
// fuero). Incluye las áreas activas de cada cliente para las etiquetas.
func (h *ClientHandler) GetClients(c *gin.Context) {
	query := c.Query("q")
	area := c.Query("area")

	sqlQuery := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE (first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%')`
	args := []interface{}{query}

	if area != "" {
		sqlQuery += `
		AND id IN (SELECT client_id FROM cases WHERE status = 'ACTIVE' AND area = $2)`
		args = append(args, area)
	}
	sqlQuery += `
		ORDER BY created_at DESC`

	rows, err := h.DB.Query(sqlQuery, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch clients"})
		return
	}
	defer rows.Close()

	clients := []models.Client{}
	ids := []string{}
	for rows.Next() {
		cl, err := scanClient(rows)
		if err != nil {
			continue
		}
		cl.ActiveAreas = []string{}
		clients = append(clients, cl)
		ids = append(ids, cl.ID)
	}

	if len(ids) > 0 {
		// Una sola consulta para las etiquetas de área de todo el listado.
		areaRows, err := h.DB.Query(`
			SELECT client_id, area FROM cases WHERE status = 'ACTIVE'
		`)
		if err == nil {
			defer areaRows.Close()
			byClient := map[string][]string{}
			for areaRows.Next() {
				var clientID, caseArea string
				if err := areaRows.Scan(&clientID, &caseArea); err != nil {
					continue
				}
				byClient[clientID] = append(byClient[clientID], caseArea)
			}
			for i := range clients {
				if areas, ok := byClient[clients[i].ID]; ok {
					clients[i].ActiveAreas = areas
				}
			}
		}
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient devuelve la ficha completa con sus expedientes.
func (h *ClientHandler) GetClient(c *gin.Context) {
	clientID := c.Param("id")

	row := h.DB.QueryRow(`SELECT `+clientColumns+` FROM clients WHERE id = $1`, clientID)
	client, err := scanClient(row)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch client"})
		return
	}

	client.Cases = []models.Case{}
	rows, err := h.DB.Query(`
		SELECT `+caseColumns+`
		FROM cases
		WHERE client_id = $1
		ORDER BY created_at DESC
	`, clientID)
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			cs, err := scanCase(rows)
			if err != nil {
				continue
			}
			client.Cases = append(client.Cases, cs)
		}
	}

	c.JSON(http.StatusOK, client)
}

// UpdateClient edita la ficha completa (mismos campos que el alta).
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	clientID := c.Param("id")

	var req models.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	args, err := clientArgs(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	args = append(args, clientID)

	result, err := h.DB.Exec(`
		UPDATE clients
		SET first_name = $1, last_name = $2, doc_type = $3, dni = $4,
			cuit = $5, gender = $6, birth_date = $7, birth_place = $8,
			nationality = $9, occupation = $10, civil_status = $11,
			address = $12, location = $13, phone = $14, email = $15,
			family_phone = $16
		WHERE id = $17
	`, args...)

	if err != nil {
		utils.SafeError("update client %s failed: %v", clientID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	utils.LogMutation("update", "Client", clientID)
	h.WS.Invalidate("/clients/"+clientID, "/")

	c.JSON(http.StatusOK, gin.H{"message": "Client updated"})
}

// DeleteClient borra la ficha; los expedientes dependientes caen por
// cascada de la base, no por lógica de la aplicación.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	clientID := c.Param("id")

	result, err := h.DB.Exec(`DELETE FROM clients WHERE id = $1`, clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	utils.LogMutation("delete", "Client", clientID)
	h.WS.Invalidate("/")

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}

package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"estudio-api/models"
	"estudio-api/utils"

	"github.com/gin-gonic/gin"
)

type CaseHandler struct {
	DB *sql.DB
	WS *WSHandler
}

const caseColumns = `id, client_id, caratula, code, juzgado, description,
	area, status, total_fee, drive_link, created_at`

func scanCase(row rowScanner) (models.Case, error) {
	var cs models.Case
	var totalFee sql.NullFloat64
	var driveLink sql.NullString

	err := row.Scan(&cs.ID, &cs.ClientID, &cs.Caratula, &cs.Code,
		&cs.Juzgado, &cs.Description, &cs.Area, &cs.Status,
		&totalFee, &driveLink, &cs.CreatedAt)
	if err != nil {
		return cs, err
	}

	cs.TotalFee = floatPtr(totalFee)
	cs.DriveLink = strPtr(driveLink)
	return cs, nil
}

// CreateCase abre un expediente para un cliente. Sin área viene CIVIL.
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var req models.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	area := req.Area
	if area == "" {
		area = models.AreaCivil
	}
	if !models.ValidAreas[area] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid area"})
		return
	}

	var caseID string
	err := h.DB.QueryRow(`
		INSERT INTO cases (client_id, caratula, code, juzgado, description, area)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, req.ClientID, req.Caratula, req.Code, req.Juzgado, req.Description, area).Scan(&caseID)

	if err != nil {
		utils.SafeError("create case failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create case"})
		return
	}

	utils.LogMutation("create", "Case", caseID)
	h.WS.Invalidate("/clients/" + req.ClientID)

	c.JSON(http.StatusCreated, gin.H{"id": caseID})
}

// GetCase devuelve el expediente con su agenda pendiente (próxima
// primero), la historia (más nueva primero), la caja (ídem) y el saldo
// del expediente.
func (h *CaseHandler) GetCase(c *gin.Context) {
	caseID := c.Param("id")

	row := h.DB.QueryRow(`SELECT `+caseColumns+` FROM cases WHERE id = $1`, caseID)
	legalCase, err := scanCase(row)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch case"})
		return
	}

	legalCase.Events = []models.Event{}
	eventRows, err := h.DB.Query(`
		SELECT id, case_id, title, description, type, date, is_done, created_at
		FROM events
		WHERE case_id = $1 AND is_done = FALSE
		ORDER BY date ASC
	`, caseID)
	if err == nil {
		defer eventRows.Close()
		for eventRows.Next() {
			var ev models.Event
			if err := eventRows.Scan(&ev.ID, &ev.CaseID, &ev.Title, &ev.Description,
				&ev.Type, &ev.Date, &ev.IsDone, &ev.CreatedAt); err != nil {
				continue
			}
			legalCase.Events = append(legalCase.Events, ev)
		}
	}

	legalCase.Movements = []models.Movement{}
	movRows, err := h.DB.Query(`
		SELECT id, case_id, title, description, date, created_at
		FROM movements
		WHERE case_id = $1
		ORDER BY date DESC
	`, caseID)
	if err == nil {
		defer movRows.Close()
		for movRows.Next() {
			var mv models.Movement
			if err := movRows.Scan(&mv.ID, &mv.CaseID, &mv.Title,
				&mv.Description, &mv.Date, &mv.CreatedAt); err != nil {
				continue
			}
			legalCase.Movements = append(legalCase.Movements, mv)
		}
	}

	legalCase.Transactions = []models.Transaction{}
	var balance float64
	txRows, err := h.DB.Query(`
		SELECT id, case_id, description, type, amount, date, created_at
		FROM transactions
		WHERE case_id = $1
		ORDER BY date DESC
	`, caseID)
	if err == nil {
		defer txRows.Close()
		for txRows.Next() {
			var tx models.Transaction
			if err := txRows.Scan(&tx.ID, &tx.CaseID, &tx.Description,
				&tx.Type, &tx.Amount, &tx.Date, &tx.CreatedAt); err != nil {
				continue
			}
			if tx.Type == models.TxIncome {
				balance += tx.Amount
			} else {
				balance -= tx.Amount
			}
			legalCase.Transactions = append(legalCase.Transactions, tx)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"case":    legalCase,
		"balance": balance,
	})
}

// UpdateCase edita carátula, juzgado, código, estado, fuero, honorarios
// pactados, link de Drive y notas.
func (h *CaseHandler) UpdateCase(c *gin.Context) {
	caseID := c.Param("id")

	var req models.UpdateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	area := req.Area
	if area == "" {
		area = models.AreaCivil
	}
	if !models.ValidAreas[area] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid area"})
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusActive
	}
	if !models.ValidStatuses[status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var totalFee sql.NullFloat64
	if req.TotalFee != "" {
		fee, err := strconv.ParseFloat(req.TotalFee, 64)
		if err != nil || fee < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid total_fee"})
			return
		}
		totalFee = sql.NullFloat64{Float64: fee, Valid: true}
	}

	result, err := h.DB.Exec(`
		UPDATE cases
		SET caratula = $1, code = $2, juzgado = $3, description = $4,
			area = $5, status = $6, total_fee = $7, drive_link = $8
		WHERE id = $9
	`, req.Caratula, req.Code, req.Juzgado, req.Description,
		area, status, totalFee, optVal(req.DriveLink), caseID)

	if err != nil {
		utils.SafeError("update case %s failed: %v", caseID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update case"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
		return
	}

	utils.LogMutation("update", "Case", caseID)
	h.WS.Invalidate("/cases/"+caseID, "/")

	c.JSON(http.StatusOK, gin.H{"message": "Case updated"})
}

func (h *CaseHandler) DeleteCase(c *gin.Context) {
	caseID := c.Param("id")

	// El client_id se busca antes de borrar para poder invalidar su página.
	var clientID string
	err := h.DB.QueryRow(`SELECT client_id FROM cases WHERE id = $1`, caseID).Scan(&clientID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete case"})
		return
	}

	if _, err := h.DB.Exec(`DELETE FROM cases WHERE id = $1`, caseID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete case"})
		return
	}

	utils.LogMutation("delete", "Case", caseID)
	h.WS.Invalidate("/clients/" + clientID)

	c.JSON(http.StatusOK, gin.H{"message": "Case deleted"})
}

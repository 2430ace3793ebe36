package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"estudio-api/models"
	"estudio-api/utils"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	DB *sql.DB
	WS *WSHandler
}

// CreateTransaction registra un ingreso o gasto en la caja del
// expediente. El monto llega positivo; el signo lo da el tipo.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if req.Date != "" {
		d, err := parseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		date = d
	}

	var txID string
	err := h.DB.QueryRow(`
		INSERT INTO transactions (case_id, description, type, amount, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, req.CaseID, req.Description, req.Type, req.Amount, date).Scan(&txID)

	if err != nil {
		utils.SafeError("create transaction failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}

	utils.LogMutation("create", "Transaction", txID)
	// El balance del tablero y los reportes dependen de la caja.
	h.WS.Invalidate("/cases/"+req.CaseID, "/", "/reports")

	c.JSON(http.StatusCreated, gin.H{"id": txID})
}

func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	txID := c.Param("id")

	var caseID string
	err := h.DB.QueryRow(`
		DELETE FROM transactions WHERE id = $1 RETURNING case_id
	`, txID).Scan(&caseID)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}

	utils.LogMutation("delete", "Transaction", txID)
	h.WS.Invalidate("/cases/"+caseID, "/", "/reports")

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}

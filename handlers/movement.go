package handlers

import (
	"database/sql"
	"net/http"

	"estudio-api/models"
	"estudio-api/utils"

	"github.com/gin-gonic/gin"
)

type MovementHandler struct {
	DB *sql.DB
	WS *WSHandler
}

// CreateMovement agrega una entrada a la historia del expediente.
func (h *MovementHandler) CreateMovement(c *gin.Context) {
	var req models.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var movementID string
	err = h.DB.QueryRow(`
		INSERT INTO movements (case_id, title, description, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, req.CaseID, req.Title, req.Description, date).Scan(&movementID)

	if err != nil {
		utils.SafeError("create movement failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create movement"})
		return
	}

	utils.LogMutation("create", "Movement", movementID)
	h.WS.Invalidate("/cases/" + req.CaseID)

	c.JSON(http.StatusCreated, gin.H{"id": movementID})
}

// DeleteMovement borra una entrada. La historia no se edita.
func (h *MovementHandler) DeleteMovement(c *gin.Context) {
	movementID := c.Param("id")

	var caseID string
	err := h.DB.QueryRow(`
		DELETE FROM movements WHERE id = $1 RETURNING case_id
	`, movementID).Scan(&caseID)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movement not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete movement"})
		return
	}

	utils.LogMutation("delete", "Movement", movementID)
	h.WS.Invalidate("/cases/" + caseID)

	c.JSON(http.StatusOK, gin.H{"message": "Movement deleted"})
}

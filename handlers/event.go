package handlers

import (
	"database/sql"
	"net/http"

	"estudio-api/models"
	"estudio-api/utils"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	DB *sql.DB
	WS *WSHandler
}

// CreateEvent agenda una audiencia, vencimiento o reunión. Siempre nace
// pendiente.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var eventID string
	err = h.DB.QueryRow(`
		INSERT INTO events (case_id, title, description, type, date, is_done)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING id
	`, req.CaseID, req.Title, req.Description, req.Type, date).Scan(&eventID)

	if err != nil {
		utils.SafeError("create event failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	utils.LogMutation("create", "Event", eventID)
	// La agenda del tablero también muestra este evento.
	h.WS.Invalidate("/cases/"+req.CaseID, "/")

	c.JSON(http.StatusCreated, gin.H{"id": eventID})
}

// ToggleEvent marca el evento como hecho o lo vuelve a pendiente.
func (h *EventHandler) ToggleEvent(c *gin.Context) {
	eventID := c.Param("id")

	var isDone bool
	err := h.DB.QueryRow(`
		UPDATE events SET is_done = NOT is_done WHERE id = $1
		RETURNING is_done
	`, eventID).Scan(&isDone)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle event"})
		return
	}

	utils.LogMutation("toggle", "Event", eventID)
	h.WS.Invalidate("/")

	c.JSON(http.StatusOK, gin.H{"is_done": isDone})
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	eventID := c.Param("id")

	var caseID string
	err := h.DB.QueryRow(`
		DELETE FROM events WHERE id = $1 RETURNING case_id
	`, eventID).Scan(&caseID)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	utils.LogMutation("delete", "Event", eventID)
	h.WS.Invalidate("/cases/"+caseID, "/")

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

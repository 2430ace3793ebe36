package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"estudio-api/models"
	"estudio-api/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	DB *sql.DB
}

// GetDashboard arma el tablero principal: la agenda de vencimientos
// clasificada por urgencia, el resumen de caja histórico y los últimos
// pagos. Son consultas independientes, sin transacción que las agrupe.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	now := time.Now()

	upcoming := []models.AgendaItem{}
	eventRows, err := h.DB.Query(`
		SELECT e.id, e.case_id, e.title, e.description, e.type, e.date,
			e.is_done, e.created_at, cs.caratula, cs.client_id, cl.last_name
		FROM events e
		INNER JOIN cases cs ON cs.id = e.case_id
		INNER JOIN clients cl ON cl.id = cs.client_id
		WHERE e.is_done = FALSE
		ORDER BY e.date ASC
		LIMIT 6
	`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch agenda"})
		return
	}
	defer eventRows.Close()

	for eventRows.Next() {
		var item models.AgendaItem
		if err := eventRows.Scan(&item.ID, &item.CaseID, &item.Title,
			&item.Description, &item.Type, &item.Date, &item.IsDone,
			&item.CreatedAt, &item.CaseCaratula, &item.ClientID,
			&item.ClientName); err != nil {
			continue
		}
		item.DaysLeft, item.Urgency, item.StatusText = services.ClassifyEvent(item.Date, now)
		upcoming = append(upcoming, item)
	}

	var pendingCount int
	if err := h.DB.QueryRow(`
		SELECT COUNT(*) FROM events WHERE is_done = FALSE
	`).Scan(&pendingCount); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count agenda"})
		return
	}

	txs := []models.Transaction{}
	txRows, err := h.DB.Query(`
		SELECT t.id, t.case_id, t.description, t.type, t.amount, t.date,
			t.created_at, cs.caratula, cs.client_id
		FROM transactions t
		INNER JOIN cases cs ON cs.id = t.case_id
		ORDER BY t.date DESC
	`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}
	defer txRows.Close()

	for txRows.Next() {
		var tx models.Transaction
		if err := txRows.Scan(&tx.ID, &tx.CaseID, &tx.Description, &tx.Type,
			&tx.Amount, &tx.Date, &tx.CreatedAt, &tx.CaseCaratula,
			&tx.ClientID); err != nil {
			continue
		}
		txs = append(txs, tx)
	}

	stats := services.AnalyzeCashflow(txs, now)

	recent := txs
	if len(recent) > 5 {
		recent = recent[:5]
	}

	c.JSON(http.StatusOK, models.DashboardResponse{
		UpcomingEvents:     upcoming,
		PendingCount:       pendingCount,
		TotalIngresos:      stats.TotalIngresos,
		TotalGastos:        stats.TotalGastos,
		Balance:            stats.Balance,
		RecentTransactions: recent,
	})
}

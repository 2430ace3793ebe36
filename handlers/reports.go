package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"estudio-api/models"
	"estudio-api/services"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct {
	DB *sql.DB
}

// GetReports arma el dashboard de reportes: flujo de caja de los
// últimos 6 meses, distribución de casos por fuero y los KPI.
func (h *ReportsHandler) GetReports(c *gin.Context) {
	now := time.Now()

	txs := []models.Transaction{}
	txRows, err := h.DB.Query(`
		SELECT id, case_id, description, type, amount, date, created_at
		FROM transactions
		ORDER BY date ASC
	`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}
	defer txRows.Close()

	for txRows.Next() {
		var tx models.Transaction
		if err := txRows.Scan(&tx.ID, &tx.CaseID, &tx.Description, &tx.Type,
			&tx.Amount, &tx.Date, &tx.CreatedAt); err != nil {
			continue
		}
		txs = append(txs, tx)
	}

	cases := []models.Case{}
	caseRows, err := h.DB.Query(`SELECT ` + caseColumns + ` FROM cases`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cases"})
		return
	}
	defer caseRows.Close()

	activeCount := 0
	for caseRows.Next() {
		cs, err := scanCase(caseRows)
		if err != nil {
			continue
		}
		if cs.Status == models.StatusActive {
			activeCount++
		}
		cases = append(cases, cs)
	}

	var clientCount int
	if err := h.DB.QueryRow(`SELECT COUNT(*) FROM clients`).Scan(&clientCount); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count clients"})
		return
	}

	stats := services.AnalyzeCashflow(txs, now)

	c.JSON(http.StatusOK, models.ReportsResponse{
		FinancialData: stats.Buckets,
		AreaData:      services.CaseAreaDistribution(cases),
		KPI: models.ReportKPIs{
			TotalActive:   activeCount,
			TotalClients:  clientCount,
			MonthlyIncome: stats.CurrentIncome,
			MonthlyGrowth: stats.Growth,
		},
		Balance: stats.Balance,
	})
}

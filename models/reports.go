package models

import "time"

// MonthBucket es una barra del gráfico de flujo de caja: un mes
// calendario con sus ingresos y gastos sumados.
type MonthBucket struct {
	Year     int     `json:"-"`
	Month    int     `json:"-"`
	Name     string  `json:"name"` // etiqueta corta: "ene", "feb"...
	Ingresos float64 `json:"ingresos"`
	Gastos   float64 `json:"gastos"`
}

// AreaSlice es una porción del gráfico de torta por fuero.
type AreaSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type ReportKPIs struct {
	TotalActive   int     `json:"total_active"`
	TotalClients  int     `json:"total_clients"`
	MonthlyIncome float64 `json:"monthly_income"`
	MonthlyGrowth int     `json:"monthly_growth"`
}

type ReportsResponse struct {
	FinancialData []MonthBucket `json:"financial_data"`
	AreaData      []AreaSlice   `json:"area_data"`
	KPI           ReportKPIs    `json:"kpi"`
	Balance       float64       `json:"balance"`
}

// Niveles de urgencia de la agenda.
const (
	UrgencyOverdue  = "overdue"
	UrgencyCritical = "critical"
	UrgencyWarning  = "warning"
	UrgencyNormal   = "normal"
)

// AgendaItem es un evento pendiente clasificado para el tablero.
type AgendaItem struct {
	Event
	DaysLeft   int    `json:"days_left"`
	Urgency    string `json:"urgency"`
	StatusText string `json:"status_text"`

	CaseCaratula string `json:"case_caratula"`
	ClientID     string `json:"client_id"`
	ClientName   string `json:"client_name"`
}

type DashboardResponse struct {
	UpcomingEvents     []AgendaItem  `json:"upcoming_events"`
	PendingCount       int           `json:"pending_count"`
	TotalIngresos      float64       `json:"total_ingresos"`
	TotalGastos        float64       `json:"total_gastos"`
	Balance            float64       `json:"balance"`
	RecentTransactions []Transaction `json:"recent_transactions"`
}

// DolarQuote es la cotización compra/venta del feed externo. Cuando el
// feed falla se devuelven punteros nil y el frontend muestra "---".
type DolarQuote struct {
	Compra    *float64   `json:"compra"`
	Venta     *float64   `json:"venta"`
	FetchedAt *time.Time `json:"fetched_at"`
	Source    string     `json:"source"`
}

type SearchResponse struct {
	Clients []Client `json:"clients"`
	Cases   []Case   `json:"cases"`
}

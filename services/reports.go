package services

import (
	"fmt"
	"math"
	"time"

	"estudio-api/models"
)

// Etiquetas cortas de mes en es-AR, como las muestra el eje del gráfico.
var monthLabels = [12]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

func MonthLabel(m time.Month) string {
	return monthLabels[int(m)-1]
}

// CashflowStats es el resultado del agregador mensual: las 6 barras del
// gráfico más los KPI que se calculan junto con ellas.
type CashflowStats struct {
	Buckets        []models.MonthBucket
	CurrentIncome  float64
	PreviousIncome float64
	Growth         int
	TotalIngresos  float64
	TotalGastos    float64
	Balance        float64
}

// AnalyzeCashflow agrupa las transacciones en exactamente 6 meses
// calendario (el actual y los 5 anteriores, el más viejo primero).
// Los buckets se indexan por (año, mes) y no por etiqueta, así una
// ventana que cruce el año nunca mezcla dos meses con el mismo nombre;
// la etiqueta corta queda solo para el eje del gráfico. Las
// transacciones fuera de la ventana no entran al gráfico pero sí a los
// totales históricos y al balance.
func AnalyzeCashflow(txs []models.Transaction, now time.Time) CashflowStats {
	buckets := make([]models.MonthBucket, 6)
	index := make(map[[2]int]int, 6)

	for i := 5; i >= 0; i-- {
		d := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		pos := 5 - i
		buckets[pos] = models.MonthBucket{
			Year:  d.Year(),
			Month: int(d.Month()),
			Name:  MonthLabel(d.Month()),
		}
		index[[2]int{d.Year(), int(d.Month())}] = pos
	}

	stats := CashflowStats{}

	for _, t := range txs {
		switch t.Type {
		case models.TxIncome:
			stats.TotalIngresos += t.Amount
		case models.TxExpense:
			stats.TotalGastos += t.Amount
		}

		pos, ok := index[[2]int{t.Date.Year(), int(t.Date.Month())}]
		if !ok {
			continue
		}
		switch t.Type {
		case models.TxIncome:
			buckets[pos].Ingresos += t.Amount
		case models.TxExpense:
			buckets[pos].Gastos += t.Amount
		}
	}

	stats.Buckets = buckets
	stats.Balance = stats.TotalIngresos - stats.TotalGastos
	stats.CurrentIncome = buckets[5].Ingresos
	stats.PreviousIncome = buckets[4].Ingresos

	// Crecimiento mes a mes. Con mes anterior en cero el denominador
	// pasa a 1: el porcentaje resultante es un fallback de display, no
	// una estadística.
	denom := stats.PreviousIncome
	if denom == 0 {
		denom = 1
	}
	stats.Growth = int(math.Round((stats.CurrentIncome - stats.PreviousIncome) / denom * 100))

	return stats
}

// SinClasificar es el bucket de los casos sin fuero asignado.
const SinClasificar = "SIN CLASIFICAR"

// CaseAreaDistribution cuenta casos por fuero para el gráfico de torta.
// El orden es el de primera aparición, igual que un Map de inserción.
func CaseAreaDistribution(cases []models.Case) []models.AreaSlice {
	order := []string{}
	counts := map[string]int{}

	for _, c := range cases {
		area := c.Area
		if area == "" {
			area = SinClasificar
		}
		if _, seen := counts[area]; !seen {
			order = append(order, area)
		}
		counts[area]++
	}

	slices := make([]models.AreaSlice, 0, len(order))
	for _, name := range order {
		slices = append(slices, models.AreaSlice{Name: name, Value: counts[name]})
	}
	return slices
}

// DaysUntil devuelve los días enteros entre hoy y la fecha del evento,
// ambos normalizados a medianoche local. Redondeo hacia arriba: un
// evento de hoy da 0 aunque ya haya pasado la hora.
func DaysUntil(date, now time.Time) int {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	ev := date.In(now.Location())
	ey, em, ed := ev.Date()
	eventDay := time.Date(ey, em, ed, 0, 0, 0, 0, now.Location())

	return int(math.Ceil(eventDay.Sub(today).Hours() / 24))
}

// ClassifyEvent asigna el nivel de urgencia del semáforo de la agenda.
func ClassifyEvent(date, now time.Time) (daysLeft int, urgency, statusText string) {
	daysLeft = DaysUntil(date, now)

	switch {
	case daysLeft < 0:
		return daysLeft, models.UrgencyOverdue, fmt.Sprintf("Venció hace %d días", -daysLeft)
	case daysLeft == 0:
		return daysLeft, models.UrgencyCritical, "¡Vence hoy!"
	case daysLeft == 1:
		return daysLeft, models.UrgencyCritical, "¡Vence mañana!"
	case daysLeft <= 7:
		return daysLeft, models.UrgencyWarning, fmt.Sprintf("Atención: %d días", daysLeft)
	default:
		return daysLeft, models.UrgencyNormal, fmt.Sprintf("Faltan %d días", daysLeft)
	}
}

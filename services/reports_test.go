package services

import (
	"testing"
	"time"

	"estudio-api/models"
)

func tx(txType string, amount float64, date time.Time) models.Transaction {
	return models.Transaction{Type: txType, Amount: amount, Date: date}
}

func TestAnalyzeCashflowTypicalMonth(t *testing.T) {
	// Escenario de referencia: 100k ingreso y 40k gasto este mes, 80k
	// ingreso el mes pasado.
	now := time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)
	prev := now.AddDate(0, -1, -5)

	stats := AnalyzeCashflow([]models.Transaction{
		tx(models.TxIncome, 100000, now),
		tx(models.TxExpense, 40000, now),
		tx(models.TxIncome, 80000, prev),
	}, now)

	if stats.CurrentIncome != 100000 {
		t.Errorf("current income = %v, want 100000", stats.CurrentIncome)
	}
	if stats.PreviousIncome != 80000 {
		t.Errorf("previous income = %v, want 80000", stats.PreviousIncome)
	}
	if stats.Growth != 25 {
		t.Errorf("growth = %d, want 25", stats.Growth)
	}
	if stats.Balance != 140000 {
		t.Errorf("balance = %v, want 140000", stats.Balance)
	}
}

func TestAnalyzeCashflowSixZeroFilledBuckets(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	stats := AnalyzeCashflow(nil, now)

	if len(stats.Buckets) != 6 {
		t.Fatalf("buckets = %d, want 6", len(stats.Buckets))
	}

	wantNames := []string{"mar", "abr", "may", "jun", "jul", "ago"}
	for i, b := range stats.Buckets {
		if b.Name != wantNames[i] {
			t.Errorf("bucket %d name = %q, want %q", i, b.Name, wantNames[i])
		}
		if b.Ingresos != 0 || b.Gastos != 0 {
			t.Errorf("bucket %d not zero-filled: %+v", i, b)
		}
	}
}

func TestAnalyzeCashflowWindowSumsMatchTotals(t *testing.T) {
	now := time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC)

	txs := []models.Transaction{
		tx(models.TxIncome, 1000, now),
		tx(models.TxIncome, 2500, now.AddDate(0, -2, 0)),
		tx(models.TxIncome, 300, now.AddDate(0, -5, 3)),
		tx(models.TxExpense, 700, now.AddDate(0, -1, 0)),
		tx(models.TxExpense, 50, now.AddDate(0, -4, 0)),
	}

	stats := AnalyzeCashflow(txs, now)

	var ingresos, gastos float64
	for _, b := range stats.Buckets {
		ingresos += b.Ingresos
		gastos += b.Gastos
	}

	if ingresos != 3800 {
		t.Errorf("sum of bucket ingresos = %v, want 3800", ingresos)
	}
	if gastos != 750 {
		t.Errorf("sum of bucket gastos = %v, want 750", gastos)
	}
}

func TestAnalyzeCashflowOldTransactionsOnlyInTotals(t *testing.T) {
	// Una transacción de hace un año comparte etiqueta de mes con el
	// bucket actual pero no puede entrar al gráfico; el balance sí la
	// cuenta.
	now := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	old := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

	stats := AnalyzeCashflow([]models.Transaction{
		tx(models.TxIncome, 5000, old),
	}, now)

	for _, b := range stats.Buckets {
		if b.Ingresos != 0 {
			t.Errorf("bucket %s/%d should be empty, got %v", b.Name, b.Year, b.Ingresos)
		}
	}
	if stats.TotalIngresos != 5000 {
		t.Errorf("total ingresos = %v, want 5000", stats.TotalIngresos)
	}
	if stats.Balance != 5000 {
		t.Errorf("balance = %v, want 5000", stats.Balance)
	}
}

func TestAnalyzeCashflowYearBoundaryWindow(t *testing.T) {
	now := time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC)

	stats := AnalyzeCashflow([]models.Transaction{
		tx(models.TxIncome, 1200, time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC)),
	}, now)

	wantNames := []string{"sep", "oct", "nov", "dic", "ene", "feb"}
	for i, b := range stats.Buckets {
		if b.Name != wantNames[i] {
			t.Fatalf("bucket %d name = %q, want %q", i, b.Name, wantNames[i])
		}
	}

	if stats.Buckets[0].Year != 2025 || stats.Buckets[5].Year != 2026 {
		t.Errorf("window years = %d..%d, want 2025..2026", stats.Buckets[0].Year, stats.Buckets[5].Year)
	}
	if stats.Buckets[2].Ingresos != 1200 {
		t.Errorf("nov 2025 ingresos = %v, want 1200", stats.Buckets[2].Ingresos)
	}
}

func TestAnalyzeCashflowGrowthZeroDenominator(t *testing.T) {
	// Mes anterior sin ingresos: el denominador pasa a 1 y el
	// porcentaje es un fallback de display.
	now := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)

	stats := AnalyzeCashflow([]models.Transaction{
		tx(models.TxIncome, 500, now),
	}, now)

	if stats.PreviousIncome != 0 {
		t.Fatalf("previous income = %v, want 0", stats.PreviousIncome)
	}
	if stats.Growth != 50000 {
		t.Errorf("growth = %d, want 50000 (500/1*100)", stats.Growth)
	}
}

func TestAnalyzeCashflowNegativeGrowth(t *testing.T) {
	now := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)

	stats := AnalyzeCashflow([]models.Transaction{
		tx(models.TxIncome, 60000, now),
		tx(models.TxIncome, 80000, now.AddDate(0, -1, 0)),
	}, now)

	// round(((60000-80000)/80000)*100) = -25
	if stats.Growth != -25 {
		t.Errorf("growth = %d, want -25", stats.Growth)
	}
}

func TestCaseAreaDistribution(t *testing.T) {
	cases := []models.Case{
		{Area: models.AreaCivil},
		{Area: models.AreaFamilia},
		{Area: models.AreaCivil},
		{Area: ""},
		{Area: models.AreaPenal},
		{Area: ""},
	}

	slices := CaseAreaDistribution(cases)

	want := map[string]int{
		models.AreaCivil:   2,
		models.AreaFamilia: 1,
		models.AreaPenal:   1,
		SinClasificar:      2,
	}

	if len(slices) != len(want) {
		t.Fatalf("slices = %d, want %d", len(slices), len(want))
	}
	for _, s := range slices {
		if want[s.Name] != s.Value {
			t.Errorf("area %q = %d, want %d", s.Name, s.Value, want[s.Name])
		}
	}

	// El orden es el de primera aparición.
	if slices[0].Name != models.AreaCivil {
		t.Errorf("first slice = %q, want CIVIL", slices[0].Name)
	}
	if slices[2].Name != SinClasificar {
		t.Errorf("third slice = %q, want SIN CLASIFICAR", slices[2].Name)
	}
}

func TestClassifyEventTiers(t *testing.T) {
	now := time.Date(2026, time.August, 15, 14, 30, 0, 0, time.UTC)

	day := func(offset int) time.Time {
		return now.AddDate(0, 0, offset)
	}

	tests := []struct {
		name        string
		date        time.Time
		wantDays    int
		wantUrgency string
		wantText    string
	}{
		{"overdue", day(-1), -1, models.UrgencyOverdue, "Venció hace 1 días"},
		{"today", day(0), 0, models.UrgencyCritical, "¡Vence hoy!"},
		{"tomorrow", day(1), 1, models.UrgencyCritical, "¡Vence mañana!"},
		{"warning lower bound", day(2), 2, models.UrgencyWarning, "Atención: 2 días"},
		{"warning upper bound", day(7), 7, models.UrgencyWarning, "Atención: 7 días"},
		{"normal", day(8), 8, models.UrgencyNormal, "Faltan 8 días"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, urgency, text := ClassifyEvent(tt.date, now)
			if days != tt.wantDays {
				t.Errorf("daysLeft = %d, want %d", days, tt.wantDays)
			}
			if urgency != tt.wantUrgency {
				t.Errorf("urgency = %q, want %q", urgency, tt.wantUrgency)
			}
			if text != tt.wantText {
				t.Errorf("statusText = %q, want %q", text, tt.wantText)
			}
		})
	}
}

func TestDaysUntilSameDayWithLaterHour(t *testing.T) {
	// Un evento de hoy a las 23:00 da 0 aunque ya sean las 14:30.
	now := time.Date(2026, time.August, 15, 14, 30, 0, 0, time.UTC)
	event := time.Date(2026, time.August, 15, 23, 0, 0, 0, time.UTC)

	if d := DaysUntil(event, now); d != 0 {
		t.Errorf("DaysUntil = %d, want 0", d)
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel(time.January); got != "ene" {
		t.Errorf("MonthLabel(January) = %q, want ene", got)
	}
	if got := MonthLabel(time.December); got != "dic" {
		t.Errorf("MonthLabel(December) = %q, want dic", got)
	}
}

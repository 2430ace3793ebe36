package models

import "time"

// Tipos de movimiento de caja. El monto se guarda siempre positivo;
// el signo lo da el tipo.
const (
	TxIncome  = "INCOME"
	TxExpense = "EXPENSE"
)

type Transaction struct {
	ID          string    `json:"id"`
	CaseID      string    `json:"case_id"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`

	// Contexto para los listados del tablero.
	CaseCaratula string `json:"case_caratula,omitempty"`
	ClientID     string `json:"client_id,omitempty"`
}

type CreateTransactionRequest struct {
	CaseID      string  `json:"case_id" binding:"required"`
	Description string  `json:"description"`
	Type        string  `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date"`
}

package models

import "time"

// Transaction is a single income or expense record.
type Transaction struct {
	ID          int64     `json:"id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	IsExpense   bool      `json:"is_expense"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// MonthlyAggregate is one calendar month's income/expense totals.
// The backend only returns months with at least one transaction.
type MonthlyAggregate struct {
	Month        string  `json:"month"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
}

// AddTransactionRequest represents the request body for recording a transaction
type AddTransactionRequest struct {
	Amount      float64 `json:"amount" validate:"gt=0"`
	Category    string  `json:"category" validate:"required"`
	IsExpense   bool    `json:"is_expense"`
	Description string  `json:"description"`
}

// UpdateTransactionRequest represents the request body for editing a transaction
type UpdateTransactionRequest struct {
	Amount      float64 `json:"amount" validate:"gt=0"`
	Category    string  `json:"category" validate:"required"`
	IsExpense   bool    `json:"is_expense"`
	Description string  `json:"description"`
}

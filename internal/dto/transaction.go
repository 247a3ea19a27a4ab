package dto

import (
	"time"

	"github.com/google/uuid"
)

// TransactionView represents a transaction in API responses, optionally
// valued in a requested display currency
type TransactionView struct {
	ID           int64     `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	StatementID  int64     `json:"statement_id"`
	TxDate       time.Time `json:"tx_date"`
	Amount       int64     `json:"amount"`
	Currency     string    `json:"currency"`
	CategoryID   int       `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Description  string    `json:"description"`
	Status       int16     `json:"status"`

	// Populated only when a display currency was requested and the
	// valuation for this transaction's group succeeded.
	ValuedAmount   *int64     `json:"valued_amount,omitempty"`
	ValuedCurrency string     `json:"valued_currency,omitempty"`
	RateDate       *time.Time `json:"rate_date,omitempty"`
	ValuationError string     `json:"valuation_error,omitempty"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionView `json:"transactions"`
	Pagination   PaginationInfo    `json:"pagination"`
}

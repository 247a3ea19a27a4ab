package dto

import (
	"ledger-engine/internal/models"
)

// Statement Request DTOs

// UploadStatementRequest represents the multipart form fields accompanying
// a statement file upload
type UploadStatementRequest struct {
	UserID   string `form:"user_id" validate:"required,uuid"`
	Bank     string `form:"bank" validate:"required"`
	Currency string `form:"currency" validate:"required"`
}

// Statement Response DTOs

// UploadStatementResponse represents the response after accepting a statement
// upload for background parsing
type UploadStatementResponse struct {
	Statement *models.Statement `json:"statement"`
	Message   string            `json:"message"`
}

// PaginationInfo contains pagination metadata for offset-based listings
type PaginationInfo struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}

// ListStatementsResponse represents the response for listing statements
type ListStatementsResponse struct {
	Statements []models.Statement `json:"statements"`
	Pagination PaginationInfo     `json:"pagination"`
}

package dto

import (
	"github.com/condobooks/condo_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DuplicateResponse describes one skipped row and why it was skipped.
type DuplicateResponse struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason"`
}

// ImportSummary reports the outcome of one statement import. Row-level
// parse errors are carried here rather than failing the import.
type ImportSummary struct {
	BatchID           string              `json:"batchID"`
	Filename          string              `json:"filename"`
	Imported          int                 `json:"imported"`
	DuplicatesSkipped int                 `json:"duplicatesSkipped"`
	Duplicates        []DuplicateResponse `json:"duplicates"`
	ParseErrors       []string            `json:"parseErrors"`
	DateFrom          string              `json:"dateFrom"`
	DateTo            string              `json:"dateTo"`
}

// ImportBatchResponse is the API shape of a recorded import batch.
type ImportBatchResponse struct {
	BatchID           string `json:"batchID"`
	Filename          string `json:"filename"`
	AccountID         string `json:"accountID"`
	AccountType       string `json:"accountType"`
	TransactionCount  int    `json:"transactionCount"`
	DateFrom          string `json:"dateFrom"`
	DateTo            string `json:"dateTo"`
	DuplicatesSkipped int    `json:"duplicatesSkipped"`
}

// ToImportBatchResponse converts a domain.ImportBatch.
func ToImportBatchResponse(b *domain.ImportBatch) ImportBatchResponse {
	return ImportBatchResponse{
		BatchID:           b.BatchID,
		Filename:          b.Filename,
		AccountID:         b.AccountID,
		AccountType:       string(b.AccountType),
		TransactionCount:  b.TransactionCount,
		DateFrom:          b.DateFrom,
		DateTo:            b.DateTo,
		DuplicatesSkipped: b.DuplicatesSkipped,
	}
}

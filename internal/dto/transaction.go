package dto

import (
	"github.com/condobooks/condo_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionFilter narrows ListTransactions. Zero values mean "no
// constraint"; dates are ISO strings compared lexicographically.
type TransactionFilter struct {
	AccountID string
	FromDate  string
	ToDate    string
	Category  string
	Type      string
	Approved  *bool
}

// CreateTransactionRequest is a manual entry from account drill-down.
type CreateTransactionRequest struct {
	Date        string          `json:"date" binding:"required,isodate"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=revenue expense transfer"`
	Category    string          `json:"category"`
	AccountID   string          `json:"accountID" binding:"required"`
}

// UpdateTransactionRequest carries user edits. Nil fields are unchanged.
// Setting Category marks the categorization as manual.
type UpdateTransactionRequest struct {
	Date        *string          `json:"date,omitempty" binding:"omitempty,isodate"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Type        *string          `json:"type,omitempty" binding:"omitempty,oneof=revenue expense transfer"`
	Category    *string          `json:"category,omitempty"`
}

// ApproveTransactionRequest approves a transaction, optionally correcting
// the category in the same step.
type ApproveTransactionRequest struct {
	Category *string `json:"category,omitempty"`
}

// ApproveBatchRequest approves several transactions in order.
type ApproveBatchRequest struct {
	TransactionIDs []string `json:"transactionIDs" binding:"required,min=1"`
}

// TransactionResponse is the API shape of a transaction.
type TransactionResponse struct {
	TransactionID        string           `json:"transactionID"`
	Date                 string           `json:"date"`
	Description          string           `json:"description"`
	OriginalDescription  string           `json:"originalDescription"`
	Amount               decimal.Decimal  `json:"amount"`
	Type                 string           `json:"type"`
	Category             string           `json:"category"`
	AccountID            string           `json:"accountID"`
	ReferenceNumber      *string          `json:"referenceNumber,omitempty"`
	Address              *string          `json:"address,omitempty"`
	RunningBalance       *decimal.Decimal `json:"runningBalance,omitempty"`
	IsTransfer           bool             `json:"isTransfer"`
	Approved             bool             `json:"approved"`
	CategorizationSource string           `json:"categorizationSource"`
	Confidence           string           `json:"confidence"`
	VendorKey            string           `json:"vendorKey"`
}

// ToTransactionResponse converts a domain.Transaction to its API shape.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:        t.TransactionID,
		Date:                 t.Date,
		Description:          t.Description,
		OriginalDescription:  t.OriginalDescription,
		Amount:               t.Amount,
		Type:                 string(t.Type),
		Category:             t.Category,
		AccountID:            t.AccountID,
		ReferenceNumber:      t.ReferenceNumber,
		Address:              t.Address,
		RunningBalance:       t.RunningBalance,
		IsTransfer:           t.IsTransfer,
		Approved:             t.Approved,
		CategorizationSource: string(t.CategorizationSource),
		Confidence:           string(t.Confidence),
		VendorKey:            t.VendorKey,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

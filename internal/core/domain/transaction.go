package domain

import "github.com/shopspring/decimal"

// TransactionType classifies a bank transaction's effect on the books.
type TransactionType string

const (
	Revenue  TransactionType = "revenue"
	Expense  TransactionType = "expense"
	Transfer TransactionType = "transfer"
)

// CategorizationSource records which layer of the categorization engine
// assigned the current category.
type CategorizationSource string

const (
	SourceRule    CategorizationSource = "rule"
	SourceLearned CategorizationSource = "learned"
	SourceSmart   CategorizationSource = "smart"
	SourceManual  CategorizationSource = "manual"
	SourceNone    CategorizationSource = ""
)

// Confidence expresses how strongly the engine believes its category pick.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	ConfidenceNone   Confidence = "none"
)

// Transaction represents one financial event imported from a statement or
// entered by hand.
//
// Dates are ISO YYYY-MM-DD strings and are always compared
// lexicographically, never parsed, so report boundaries cannot drift with
// timezones. Amount is a non-negative magnitude; the sign lives in Type.
// Invariant: IsTransfer is true exactly when Type == Transfer.
type Transaction struct {
	TransactionID        string               `json:"transactionID"`
	Date                 string               `json:"date"`
	Description          string               `json:"description"`         // cleaned display text
	OriginalDescription  string               `json:"originalDescription"` // raw statement text, preserved verbatim
	Amount               decimal.Decimal      `json:"amount"`
	Type                 TransactionType      `json:"type"`
	Category             string               `json:"category"` // empty if uncategorized
	AccountID            string               `json:"accountID"`
	BatchID              string               `json:"batchID"`    // import provenance, empty for manual entries
	SourceFile           string               `json:"sourceFile"` // filename the row came from
	ReferenceNumber      *string              `json:"referenceNumber,omitempty"`
	Address              *string              `json:"address,omitempty"`
	RunningBalance       *decimal.Decimal     `json:"runningBalance,omitempty"` // informational only
	IsTransfer           bool                 `json:"isTransfer"`
	Approved             bool                 `json:"approved"`
	CategorizationSource CategorizationSource `json:"categorizationSource"`
	Confidence           Confidence           `json:"confidence"`
	VendorKey            string               `json:"vendorKey"`
	AuditFields
}

// ManuallyCategorized reports whether the user has pinned a category on
// this transaction. The re-apply batch operation must leave these alone.
func (t *Transaction) ManuallyCategorized() bool {
	return t.CategorizationSource == SourceManual && t.Category != ""
}

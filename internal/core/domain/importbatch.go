package domain

// ImportBatch is the write-once metadata record of one statement file
// import, kept for dashboard and audit display. It is never mutated after
// creation.
type ImportBatch struct {
	BatchID           string          `json:"batchID"`
	Filename          string          `json:"filename"`
	AccountID         string          `json:"accountID"`
	AccountType       BankAccountType `json:"accountType"`
	TransactionCount  int             `json:"transactionCount"`
	DateFrom          string          `json:"dateFrom"` // ISO YYYY-MM-DD, earliest imported row
	DateTo            string          `json:"dateTo"`   // ISO YYYY-MM-DD, latest imported row
	DuplicatesSkipped int             `json:"duplicatesSkipped"`
	ParseErrors       []string        `json:"parseErrors,omitempty"`
	AuditFields
}

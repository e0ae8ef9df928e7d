package domain

import "github.com/shopspring/decimal"

// BankAccountType identifies which statement parser applies to an account
// and how its balance maps into the balance sheet.
type BankAccountType string

const (
	Checking   BankAccountType = "checking"
	Savings    BankAccountType = "savings"
	CreditCard BankAccountType = "credit_card"
)

// Account represents a bank or credit-card account that transactions
// reference by ID.
type Account struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	Type           BankAccountType `json:"type"`
	Institution    string          `json:"institution"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	OpeningDate    string          `json:"openingDate"` // ISO YYYY-MM-DD
	IsActive       bool            `json:"isActive"`
	AuditFields
}

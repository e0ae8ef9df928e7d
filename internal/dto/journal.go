package dto

import "github.com/shopspring/decimal"

// JournalLineRequest is one leg of a journal entry to post.
type JournalLineRequest struct {
	Account string          `json:"account" binding:"required"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// CreateJournalEntryRequest posts a balanced adjustment. Balance is
// validated before anything is persisted.
type CreateJournalEntryRequest struct {
	Date  string               `json:"date" binding:"required,isodate"`
	Memo  string               `json:"memo"`
	Lines []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// OpeningBalancesRequest replaces the opening balance map for
// balance-sheet accounts. Liabilities follow the ledger convention and
// are entered negative.
type OpeningBalancesRequest struct {
	Balances map[string]decimal.Decimal `json:"balances" binding:"required"`
}

// OpeningBalancesResponse is the stored opening balance map.
type OpeningBalancesResponse struct {
	Balances map[string]decimal.Decimal `json:"balances"`
}

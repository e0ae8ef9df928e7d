package domain

import "github.com/shopspring/decimal"

// JournalLine is one leg of a journal entry, posted against a chart of
// accounts name. Exactly one of Debit/Credit is normally non-zero.
type JournalLine struct {
	Account string          `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// JournalEntry represents a balanced double-entry adjustment that is not
// backed by a bank transaction (depreciation, owner draws, mortgage
// principal/interest splits). Invariant: sum of debits equals sum of
// credits, enforced before the entry is ever persisted.
type JournalEntry struct {
	EntryID string        `json:"entryID"`
	Date    string        `json:"date"` // ISO YYYY-MM-DD
	Memo    string        `json:"memo"`
	Lines   []JournalLine `json:"lines"`
	AuditFields
}

// TotalDebits sums the debit side of the entry.
func (e *JournalEntry) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredits sums the credit side of the entry.
func (e *JournalEntry) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is the whole application state: one source of truth, loaded
// wholesale at startup and overwritten wholesale on every save. It is not
// a queryable database; every mutation is applied to the in-memory copy
// and the full snapshot is re-persisted.
type Snapshot struct {
	Transactions    []Transaction              `json:"transactions"`
	Rules           []Rule                     `json:"rules"`
	Patterns        map[string]LearnedPattern  `json:"patterns"` // keyed by vendor key
	JournalEntries  []JournalEntry             `json:"journalEntries"`
	Accounts        []Account                  `json:"accounts"`
	Batches         []ImportBatch              `json:"batches"`
	OpeningBalances map[string]decimal.Decimal `json:"openingBalances"` // balance-sheet account name -> opening balance
}

// defaultRuleSeed is the pre-seeded rule set carried over from years of
// hand-categorizing the same condo's statements.
var defaultRuleSeed = []struct {
	match    string
	txnType  TransactionType
	category string
}{
	{"spectrum", Expense, "Internet & Cable"},
	{"so cal edison", Expense, "Utilities"},
	{"edison", Expense, "Utilities"},
	{"socal gas", Expense, "Utilities"},
	{"desert water", Expense, "Utilities"},
	{"coachella valley", Expense, "Utilities"},
	{"waste management", Expense, "Utilities"},
	{"burrtec", Expense, "Utilities"},
	{"hoa", Expense, "HOA Fees"},
	{"desert falls", Expense, "HOA Fees"},
	{"gaffney", Expense, "HOA Fees"},
	{"paylease", Expense, "HOA Fees"},
	{"home depot", Expense, "Repairs & Maintenance"},
	{"lowes", Expense, "Repairs & Maintenance"},
	{"ace hardware", Expense, "Repairs & Maintenance"},
	{"terminix", Expense, "Pest Control"},
	{"orkin", Expense, "Pest Control"},
	{"mr.cooper", Expense, "Mortgage Interest"},
	{"nsm dbamr", Expense, "Mortgage Interest"},
	{"county of riverside", Expense, "Property Tax"},
	{"property tax", Expense, "Property Tax"},
	{"insurance", Expense, "Insurance"},
	{"bank of america fee", Expense, "Bank & Merchant Fees"},
	{"monthly maint", Expense, "Bank & Merchant Fees"},
	{"amazon", Expense, "Supplies"},
	{"zelle", Revenue, "Rental Income"},
	{"irs", Expense, OtherExpenseCategory},
	{"franchise tax", Expense, OtherExpenseCategory},
}

// DefaultRules returns the seeded explicit rules, in evaluation order.
func DefaultRules() []Rule {
	now := time.Now().UTC()
	rules := make([]Rule, 0, len(defaultRuleSeed))
	for _, seed := range defaultRuleSeed {
		rules = append(rules, Rule{
			RuleID:    uuid.NewString(),
			Match:     seed.match,
			MatchType: MatchContains,
			Type:      seed.txnType,
			Category:  seed.category,
			Active:    true,
			AuditFields: AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		})
	}
	return rules
}

// DefaultSnapshot builds the dataset used when the store is empty or
// unreachable: seeded rules, empty collections, zero opening balances.
func DefaultSnapshot() *Snapshot {
	return &Snapshot{
		Transactions:    []Transaction{},
		Rules:           DefaultRules(),
		Patterns:        map[string]LearnedPattern{},
		JournalEntries:  []JournalEntry{},
		Accounts:        []Account{},
		Batches:         []ImportBatch{},
		OpeningBalances: map[string]decimal.Decimal{},
	}
}

// Normalize fills collections that may be nil after deserializing an
// older snapshot, so callers never have to nil-check.
func (s *Snapshot) Normalize() {
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
	if s.Rules == nil {
		s.Rules = []Rule{}
	}
	if s.Patterns == nil {
		s.Patterns = map[string]LearnedPattern{}
	}
	if s.JournalEntries == nil {
		s.JournalEntries = []JournalEntry{}
	}
	if s.Accounts == nil {
		s.Accounts = []Account{}
	}
	if s.Batches == nil {
		s.Batches = []ImportBatch{}
	}
	if s.OpeningBalances == nil {
		s.OpeningBalances = map[string]decimal.Decimal{}
	}
}

// FindTransaction returns a pointer into the snapshot's transaction slice
// or nil when the ID is unknown.
func (s *Snapshot) FindTransaction(id string) *Transaction {
	for i := range s.Transactions {
		if s.Transactions[i].TransactionID == id {
			return &s.Transactions[i]
		}
	}
	return nil
}

// FindAccount returns a pointer into the snapshot's account slice or nil.
func (s *Snapshot) FindAccount(id string) *Account {
	for i := range s.Accounts {
		if s.Accounts[i].AccountID == id {
			return &s.Accounts[i]
		}
	}
	return nil
}

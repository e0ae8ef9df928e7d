package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/condobooks/condo_books_app/internal/core/domain"
)

func approvedTxn(date string, txnType domain.TransactionType, category string, amount float64) domain.Transaction {
	return domain.Transaction{
		TransactionID: "t-" + date + "-" + category,
		Date:          date,
		Description:   category,
		Amount:        decimal.NewFromFloat(amount),
		Type:          txnType,
		Category:      category,
		Approved:      true,
	}
}

func journalEntry(date string, lines ...domain.JournalLine) domain.JournalEntry {
	return domain.JournalEntry{EntryID: "e-" + date, Date: date, Lines: lines}
}

func openingsSnapshot() *domain.Snapshot {
	snap := domain.DefaultSnapshot()
	snap.OpeningBalances = map[string]decimal.Decimal{
		"Checking Account": decimal.NewFromInt(50000),
		"Rental Property":  decimal.NewFromInt(450000),
		"Mortgage Payable": decimal.NewFromInt(-400000),
		"Owner's Capital":  decimal.NewFromInt(100000),
	}
	return snap
}

func findBalance(t *testing.T, rows []domain.AccountBalance, name string) decimal.Decimal {
	t.Helper()
	for _, row := range rows {
		if row.Name == name {
			return row.Balance
		}
	}
	t.Fatalf("account %q not found", name)
	return decimal.Zero
}

func TestGeneratePL(t *testing.T) {
	snap := domain.DefaultSnapshot()
	snap.Transactions = []domain.Transaction{
		approvedTxn("2025-01-06", domain.Revenue, "Rental Income", 1850),
		approvedTxn("2025-02-06", domain.Revenue, "Rental Income", 1850),
		approvedTxn("2025-01-15", domain.Expense, "Utilities", 142.19),
		approvedTxn("2025-01-20", domain.Expense, "Window Washing", 50), // unknown category
		approvedTxn("2024-12-31", domain.Expense, "Utilities", 999),     // out of range
		{TransactionID: "unapproved", Date: "2025-01-10", Amount: decimal.NewFromInt(100), Type: domain.Expense, Category: "Supplies"},
		{TransactionID: "transfer", Date: "2025-01-11", Amount: decimal.NewFromInt(500), Type: domain.Transfer, IsTransfer: true, Approved: true},
	}
	snap.JournalEntries = []domain.JournalEntry{
		journalEntry("2025-06-30",
			domain.JournalLine{Account: "Depreciation", Debit: decimal.NewFromInt(5000)},
			domain.JournalLine{Account: domain.AccumulatedDepreciationAccount, Credit: decimal.NewFromInt(5000)},
		),
	}

	report := GeneratePL(snap, "2025-01-01", "2025-12-31")

	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromInt(3700)), "got %s", report.TotalRevenue)
	assert.True(t, report.TotalExpenses.Equal(decimal.NewFromFloat(5192.19)), "got %s", report.TotalExpenses)
	assert.True(t, report.NetIncome.Equal(decimal.NewFromFloat(-1492.19)), "got %s", report.NetIncome)
	assert.Equal(t, 4, report.TransactionCount)

	require.Len(t, report.Revenue, 1)
	assert.Equal(t, "Rental Income", report.Revenue[0].Category)
	assert.Equal(t, "3", report.Revenue[0].ScheduleLine)

	// Non-zero expense lines only, in chart order; the unknown category
	// lands in the catch-all.
	require.Len(t, report.Expenses, 3)
	assert.Equal(t, "Utilities", report.Expenses[0].Category)
	assert.Equal(t, "Depreciation", report.Expenses[1].Category)
	assert.Equal(t, domain.OtherExpenseCategory, report.Expenses[2].Category)
	assert.True(t, report.Expenses[2].Amount.Equal(decimal.NewFromInt(50)))
}

func TestGeneratePLEmptyRange(t *testing.T) {
	report := GeneratePL(domain.DefaultSnapshot(), "2025-01-01", "2025-12-31")
	assert.Empty(t, report.Revenue)
	assert.Empty(t, report.Expenses)
	assert.True(t, report.NetIncome.IsZero())
	assert.Zero(t, report.TransactionCount)
}

func TestBalanceSheetFromOpenings(t *testing.T) {
	report := GenerateBalanceSheet(openingsSnapshot(), "2025-12-31")

	assert.True(t, report.TotalAssets.Equal(decimal.NewFromInt(500000)), "assets %s", report.TotalAssets)
	assert.True(t, report.TotalLiabilities.Equal(decimal.NewFromInt(400000)), "liabilities %s", report.TotalLiabilities)
	assert.True(t, report.TotalEquity.Equal(decimal.NewFromInt(100000)), "equity %s", report.TotalEquity)
	assert.True(t, report.Difference.IsZero())
	assert.True(t, report.IsBalanced)

	// Liability rows keep the ledger-convention sign.
	assert.True(t, findBalance(t, report.LongTermLiabilities, "Mortgage Payable").Equal(decimal.NewFromInt(-400000)))
}

func TestBalanceSheetMortgagePrincipalPayment(t *testing.T) {
	snap := openingsSnapshot()
	snap.JournalEntries = []domain.JournalEntry{
		journalEntry("2025-06-01",
			domain.JournalLine{Account: "Mortgage Payable", Debit: decimal.NewFromInt(1000)},
			domain.JournalLine{Account: "Checking Account", Credit: decimal.NewFromInt(1000)},
		),
	}

	report := GenerateBalanceSheet(snap, "2025-12-31")
	assert.True(t, findBalance(t, report.LongTermLiabilities, "Mortgage Payable").Equal(decimal.NewFromInt(-399000)))
	assert.True(t, findBalance(t, report.CurrentAssets, "Checking Account").Equal(decimal.NewFromInt(49000)))
	assert.True(t, report.TotalLiabilities.Equal(decimal.NewFromInt(399000)))
	assert.True(t, report.IsBalanced)

	// As of a date before the entry, nothing has moved.
	before := GenerateBalanceSheet(snap, "2025-05-31")
	assert.True(t, findBalance(t, before.LongTermLiabilities, "Mortgage Payable").Equal(decimal.NewFromInt(-400000)))
}

func TestBalanceSheetDepreciation(t *testing.T) {
	snap := openingsSnapshot()
	snap.JournalEntries = []domain.JournalEntry{
		journalEntry("2025-06-30",
			domain.JournalLine{Account: "Depreciation", Debit: decimal.NewFromInt(5000)},
			domain.JournalLine{Account: domain.AccumulatedDepreciationAccount, Credit: decimal.NewFromInt(5000)},
		),
	}

	report := GenerateBalanceSheet(snap, "2025-12-31")

	// Accumulated Depreciation subtracts from total assets as an absolute
	// value, and the expense flows through Retained Earnings.
	assert.True(t, report.TotalAssets.Equal(decimal.NewFromInt(495000)), "assets %s", report.TotalAssets)
	assert.True(t, findBalance(t, report.Equity, domain.RetainedEarningsAccount).Equal(decimal.NewFromInt(-5000)))
	assert.True(t, report.TotalEquity.Equal(decimal.NewFromInt(95000)), "equity %s", report.TotalEquity)
	assert.True(t, report.IsBalanced)
}

func TestBalanceSheetOwnersDraw(t *testing.T) {
	snap := openingsSnapshot()
	snap.JournalEntries = []domain.JournalEntry{
		journalEntry("2025-07-01",
			domain.JournalLine{Account: domain.OwnersDrawAccount, Debit: decimal.NewFromInt(2000)},
			domain.JournalLine{Account: "Checking Account", Credit: decimal.NewFromInt(2000)},
		),
	}

	report := GenerateBalanceSheet(snap, "2025-12-31")

	// The draw shows as a positive running total but reduces equity.
	assert.True(t, findBalance(t, report.Equity, domain.OwnersDrawAccount).Equal(decimal.NewFromInt(2000)))
	assert.True(t, report.TotalEquity.Equal(decimal.NewFromInt(98000)), "equity %s", report.TotalEquity)
	assert.True(t, report.TotalAssets.Equal(decimal.NewFromInt(498000)))
	assert.True(t, report.IsBalanced)
}

func TestBalanceSheetRetainedEarningsFromTransactions(t *testing.T) {
	snap := openingsSnapshot()
	snap.Transactions = []domain.Transaction{
		approvedTxn("2025-01-06", domain.Revenue, "Rental Income", 1850),
		approvedTxn("2025-01-15", domain.Expense, "Utilities", 150),
		approvedTxn("2026-01-06", domain.Revenue, "Rental Income", 1850), // after asOf
		{TransactionID: "pending", Date: "2025-01-20", Amount: decimal.NewFromInt(500), Type: domain.Revenue, Category: "Rental Income"},
	}

	report := GenerateBalanceSheet(snap, "2025-12-31")

	// Net income reaches equity while the bank-side rows stay at their
	// openings, so the sheet reports the gap instead of hiding it.
	assert.True(t, findBalance(t, report.Equity, domain.RetainedEarningsAccount).Equal(decimal.NewFromInt(1700)))
	assert.True(t, report.Difference.Equal(decimal.NewFromInt(-1700)), "difference %s", report.Difference)
	assert.False(t, report.IsBalanced)
}

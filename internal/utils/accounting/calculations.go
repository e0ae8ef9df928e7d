package accounting

import (
	"fmt"

	"github.com/condobooks/condo_books_app/internal/apperrors"
	"github.com/condobooks/condo_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValidateEntryBalance checks that a journal entry's debits equal its
// credits. An unbalanced entry must never reach the store, so this runs
// before persistence, not as a stored flag.
func ValidateEntryBalance(entry domain.JournalEntry) error {
	if len(entry.Lines) < 2 {
		return fmt.Errorf("%w: journal entry must have at least two lines", apperrors.ErrValidation)
	}
	for _, line := range entry.Lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w: debit and credit amounts must be non-negative for account %q", apperrors.ErrValidation, line.Account)
		}
	}
	debits := entry.TotalDebits()
	credits := entry.TotalCredits()
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits %s != credits %s", apperrors.ErrUnbalanced, debits.String(), credits.String())
	}
	return nil
}

// RevenueEffect converts a journal line posted against a revenue category
// into the amount added to that category's bucket. Revenue carries a
// credit-normal balance.
func RevenueEffect(line domain.JournalLine) decimal.Decimal {
	return line.Credit.Sub(line.Debit)
}

// ExpenseEffect converts a journal line posted against an expense
// category into the amount added to that category's bucket. Expenses
// carry a debit-normal balance.
func ExpenseEffect(line domain.JournalLine) decimal.Decimal {
	return line.Debit.Sub(line.Credit)
}

// BalanceEffect converts a journal line posted against a balance-sheet
// account into the signed change to that account's stored balance.
//
// Stored balances follow the ledger convention the openings map uses:
// assets positive when held, liabilities negative when owed. Ordinary
// assets increase on debit; liabilities increase (grow more negative) on
// credit, so a principal-reduction debit shrinks the owed magnitude.
// Accumulated Depreciation accumulates negatively on credit, matching its
// contra-asset role. Ordinary equity is stored credit-positive; Owner's
// Draw is a positive running debit total that the report negates at
// aggregation. Retained Earnings is excluded by the caller because it is
// fully recomputed, never applied per line.
func BalanceEffect(accountName string, accountType domain.CategoryType, line domain.JournalLine) decimal.Decimal {
	switch accountType {
	case domain.CategoryAsset, domain.CategoryLiability:
		return line.Debit.Sub(line.Credit)
	case domain.CategoryEquity:
		if accountName == domain.OwnersDrawAccount {
			return line.Debit.Sub(line.Credit)
		}
		return line.Credit.Sub(line.Debit)
	default:
		return decimal.Zero
	}
}

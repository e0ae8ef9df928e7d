package services

import (
	"fmt"
	"strings"

	"github.com/condobooks/condo_books_app/internal/core/domain"
)

// Duplicate pairs a skipped incoming transaction with the stored
// transaction it collided with and a user-facing reason.
type Duplicate struct {
	Transaction domain.Transaction
	Existing    domain.Transaction
	Reason      string
}

// DedupResult partitions an incoming batch into importable transactions
// and duplicates.
type DedupResult struct {
	Clean      []domain.Transaction
	Duplicates []Duplicate
}

// FindDuplicates checks each new transaction against the existing set.
//
// The reference-number check runs first and is definitive: a credit-card
// reference number can legitimately appear only once, so a hit skips the
// fingerprint check entirely. The fingerprint
// (date|description|amount) check deliberately accepts false positives:
// skipping a legitimate re-import beats double-counting an expense.
func FindDuplicates(newTxns, existing []domain.Transaction) DedupResult {
	refIndex := make(map[string]*domain.Transaction)
	fpIndex := make(map[string]*domain.Transaction)
	for i := range existing {
		e := &existing[i]
		if e.ReferenceNumber != nil && *e.ReferenceNumber != "" {
			if _, seen := refIndex[*e.ReferenceNumber]; !seen {
				refIndex[*e.ReferenceNumber] = e
			}
		}
		key := fingerprint(e)
		if _, seen := fpIndex[key]; !seen {
			fpIndex[key] = e
		}
	}

	result := DedupResult{Clean: []domain.Transaction{}, Duplicates: []Duplicate{}}
	for _, txn := range newTxns {
		if txn.ReferenceNumber != nil && *txn.ReferenceNumber != "" {
			if e, ok := refIndex[*txn.ReferenceNumber]; ok {
				result.Duplicates = append(result.Duplicates, Duplicate{
					Transaction: txn,
					Existing:    *e,
					Reason:      fmt.Sprintf("reference number %s already imported", *txn.ReferenceNumber),
				})
				continue
			}
		}
		if e, ok := fpIndex[fingerprint(&txn)]; ok {
			result.Duplicates = append(result.Duplicates, Duplicate{
				Transaction: txn,
				Existing:    *e,
				Reason:      "matches the date, description and amount of an existing transaction",
			})
			continue
		}
		result.Clean = append(result.Clean, txn)
	}
	return result
}

// fingerprint builds the non-definitive duplicate key. Amounts are
// abs-ed defensively: the model keeps them non-negative already, but a
// residual signed value must not split the key.
func fingerprint(t *domain.Transaction) string {
	desc := t.OriginalDescription
	if desc == "" {
		desc = t.Description
	}
	return t.Date + "|" + strings.ToLower(strings.TrimSpace(desc)) + "|" + t.Amount.Abs().StringFixed(2)
}

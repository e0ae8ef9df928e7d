package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/condobooks/condo_books_app/internal/core/domain"
)

func txnWithRef(id, date, desc string, amount float64, ref string) domain.Transaction {
	t := domain.Transaction{
		TransactionID:       id,
		Date:                date,
		OriginalDescription: desc,
		Description:         desc,
		Amount:              decimal.NewFromFloat(amount),
	}
	if ref != "" {
		t.ReferenceNumber = &ref
	}
	return t
}

func TestFindDuplicatesByReferenceNumber(t *testing.T) {
	existing := []domain.Transaction{
		txnWithRef("e1", "2025-01-06", "HOME DEPOT #6979", 85.12, "24692165012345"),
	}
	incoming := []domain.Transaction{
		// Same reference but different date and amount: reference alone is
		// definitive.
		txnWithRef("n1", "2025-01-07", "HOME DEPOT #6979 ADJUSTED", 90.00, "24692165012345"),
		txnWithRef("n2", "2025-01-08", "LOWES #02516", 42.00, "99999999999999"),
	}

	result := FindDuplicates(incoming, existing)
	require.Len(t, result.Duplicates, 1)
	require.Len(t, result.Clean, 1)
	assert.Equal(t, "n1", result.Duplicates[0].Transaction.TransactionID)
	assert.Equal(t, "e1", result.Duplicates[0].Existing.TransactionID)
	assert.Contains(t, result.Duplicates[0].Reason, "reference number")
	assert.Equal(t, "n2", result.Clean[0].TransactionID)
}

func TestFindDuplicatesByFingerprint(t *testing.T) {
	existing := []domain.Transaction{
		txnWithRef("e1", "2025-01-06", "ZELLE PAYMENT FROM JOHN SMITH", 1850, ""),
	}
	incoming := []domain.Transaction{
		// Case and surrounding whitespace do not split the fingerprint.
		txnWithRef("n1", "2025-01-06", "  zelle payment from john smith ", 1850, ""),
		// Same description, different date: not a duplicate.
		txnWithRef("n2", "2025-02-06", "ZELLE PAYMENT FROM JOHN SMITH", 1850, ""),
		// Same date and description, different amount: not a duplicate.
		txnWithRef("n3", "2025-01-06", "ZELLE PAYMENT FROM JOHN SMITH", 1800, ""),
	}

	result := FindDuplicates(incoming, existing)
	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, "n1", result.Duplicates[0].Transaction.TransactionID)
	assert.Len(t, result.Clean, 2)
}

func TestFindDuplicatesAbsoluteAmount(t *testing.T) {
	// Stored amounts are non-negative but a signed residual must hash to
	// the same fingerprint.
	existing := []domain.Transaction{
		txnWithRef("e1", "2025-01-06", "HOME DEPOT", 85.12, ""),
	}
	incoming := []domain.Transaction{
		txnWithRef("n1", "2025-01-06", "HOME DEPOT", -85.12, ""),
	}
	result := FindDuplicates(incoming, existing)
	assert.Len(t, result.Duplicates, 1)
	assert.Empty(t, result.Clean)
}

func TestFindDuplicatesNewReferenceFallsThroughToFingerprint(t *testing.T) {
	existing := []domain.Transaction{
		txnWithRef("e1", "2025-01-06", "HOME DEPOT", 85.12, "111"),
	}
	incoming := []domain.Transaction{
		// Unknown reference, but the fingerprint still matches.
		txnWithRef("n1", "2025-01-06", "HOME DEPOT", 85.12, "222"),
	}
	result := FindDuplicates(incoming, existing)
	require.Len(t, result.Duplicates, 1)
	assert.Contains(t, result.Duplicates[0].Reason, "existing transaction")
}

func TestFindDuplicatesFingerprintFallsBackToDescription(t *testing.T) {
	existing := []domain.Transaction{
		{TransactionID: "e1", Date: "2025-01-06", Description: "MANUAL RENT ENTRY", Amount: decimal.NewFromInt(1850)},
	}
	incoming := []domain.Transaction{
		{TransactionID: "n1", Date: "2025-01-06", Description: "MANUAL RENT ENTRY", Amount: decimal.NewFromInt(1850)},
	}
	result := FindDuplicates(incoming, existing)
	assert.Len(t, result.Duplicates, 1)
}

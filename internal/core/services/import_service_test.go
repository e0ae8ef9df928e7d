package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/condobooks/condo_books_app/internal/apperrors"
	"github.com/condobooks/condo_books_app/internal/core/domain"
	"github.com/condobooks/condo_books_app/internal/dto"
)

const checkingCSV = `Date,Description,Amount,Running Bal.
Beginning balance as of 01/01/2025,,,"5,000.00"
01/06/2025,ZELLE PAYMENT FROM JOHN SMITH,"1,850.00","6,850.00"
01/10/2025,HOME DEPOT #6979 PALM SPRINGS CA,-85.12,"6,764.88"
01/15/2025,Online transfer to CHK 7948,-500.00,"6,264.88"
01/20/2025,SOME UNKNOWN VENDOR,-42.00,"6,222.88"
bad-date,BROKEN ROW,-1.00,
`

func importTestAccount(t *testing.T, store *StoreService, accountType string) *domain.Account {
	t.Helper()
	account, err := NewAccountService(store).CreateAccount(context.Background(), dto.CreateAccountRequest{
		Name: "Test " + accountType,
		Type: accountType,
	})
	require.NoError(t, err)
	return account
}

func TestImportStatementEndToEnd(t *testing.T) {
	store := newTestStore(t)
	svc := NewImportService(store)
	account := importTestAccount(t, store, "checking")

	summary, err := svc.ImportStatement(context.Background(), "jan.csv", account.AccountID, strings.NewReader(checkingCSV))
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Imported)
	assert.Zero(t, summary.DuplicatesSkipped)
	require.Len(t, summary.ParseErrors, 1)
	assert.Contains(t, summary.ParseErrors[0], "unparseable date")
	assert.Equal(t, "2025-01-06", summary.DateFrom)
	assert.Equal(t, "2025-01-20", summary.DateTo)

	txns, err := NewTransactionService(store).ListTransactions(context.Background(), dto.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, txns, 4)

	byDesc := map[string]domain.Transaction{}
	for _, txn := range txns {
		byDesc[txn.OriginalDescription] = txn
	}

	zelle := byDesc["ZELLE PAYMENT FROM JOHN SMITH"]
	assert.Equal(t, domain.Revenue, zelle.Type)
	// The seeded zelle rule categorizes it immediately.
	assert.Equal(t, "Rental Income", zelle.Category)
	assert.Equal(t, domain.SourceRule, zelle.CategorizationSource)
	// Amounts are stored non-negative with the sign in the type.
	assert.False(t, zelle.Amount.IsNegative())

	depot := byDesc["HOME DEPOT #6979 PALM SPRINGS CA"]
	assert.Equal(t, domain.Expense, depot.Type)
	assert.Equal(t, "Repairs & Maintenance", depot.Category)
	assert.Equal(t, "home depot", depot.VendorKey)
	assert.False(t, depot.Amount.IsNegative())

	transfer := byDesc["Online transfer to CHK 7948"]
	assert.True(t, transfer.IsTransfer)
	assert.Equal(t, domain.Transfer, transfer.Type)
	assert.Empty(t, transfer.Category)

	unknown := byDesc["SOME UNKNOWN VENDOR"]
	assert.Empty(t, unknown.Category)
	assert.Equal(t, domain.SourceNone, unknown.CategorizationSource)

	batches, err := svc.ListBatches(context.Background())
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, "jan.csv", batches[0].Filename)
	assert.Equal(t, 4, batches[0].TransactionCount)
}

func TestImportStatementSkipsDuplicatesOnReimport(t *testing.T) {
	store := newTestStore(t)
	svc := NewImportService(store)
	account := importTestAccount(t, store, "checking")

	_, err := svc.ImportStatement(context.Background(), "jan.csv", account.AccountID, strings.NewReader(checkingCSV))
	require.NoError(t, err)

	summary, err := svc.ImportStatement(context.Background(), "jan-again.csv", account.AccountID, strings.NewReader(checkingCSV))
	require.NoError(t, err)
	assert.Zero(t, summary.Imported)
	assert.Equal(t, 4, summary.DuplicatesSkipped)
	require.Len(t, summary.Duplicates, 4)
	for _, dup := range summary.Duplicates {
		assert.NotEmpty(t, dup.Reason)
	}

	txns, err := NewTransactionService(store).ListTransactions(context.Background(), dto.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, txns, 4)
}

func TestImportStatementUnknownAccount(t *testing.T) {
	store := newTestStore(t)
	svc := NewImportService(store)

	_, err := svc.ImportStatement(context.Background(), "jan.csv", "missing", strings.NewReader(checkingCSV))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestImportStatementUnparseableFile(t *testing.T) {
	store := newTestStore(t)
	svc := NewImportService(store)
	account := importTestAccount(t, store, "checking")

	_, err := svc.ImportStatement(context.Background(), "junk.csv", account.AccountID, strings.NewReader("no table here\nat all\n"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestImportStatementCreditCardClassification(t *testing.T) {
	store := newTestStore(t)
	svc := NewImportService(store)
	account := importTestAccount(t, store, "credit_card")

	csv := `Posted Date,Payee,Amount,Reference
01/06/2025,SPECTRUM 855-707-7328,94.99,1111
01/20/2025,AUTOPAY PAYMENT - THANK YOU,-500.00,2222
`
	summary, err := svc.ImportStatement(context.Background(), "card.csv", account.AccountID, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)

	txns, err := NewTransactionService(store).ListTransactions(context.Background(), dto.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, txns, 2)

	byDesc := map[string]domain.Transaction{}
	for _, txn := range txns {
		byDesc[txn.OriginalDescription] = txn
	}
	assert.Equal(t, domain.Expense, byDesc["SPECTRUM 855-707-7328"].Type)
	assert.Equal(t, "Internet & Cable", byDesc["SPECTRUM 855-707-7328"].Category)
	assert.True(t, byDesc["AUTOPAY PAYMENT - THANK YOU"].IsTransfer)
}

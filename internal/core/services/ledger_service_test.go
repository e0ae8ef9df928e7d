package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/condobooks/condo_books_app/internal/apperrors"
	"github.com/condobooks/condo_books_app/internal/core/domain"
	"github.com/condobooks/condo_books_app/internal/dto"
	"github.com/condobooks/condo_books_app/internal/repositories/memory"
)

func newTestStore(t *testing.T) *StoreService {
	t.Helper()
	return NewStoreService(context.Background(), memory.NewSnapshotRepository())
}

func TestCreateEntryRejectsUnbalanced(t *testing.T) {
	store := newTestStore(t)
	svc := NewLedgerService(store)

	_, err := svc.CreateEntry(context.Background(), dto.CreateJournalEntryRequest{
		Date: "2025-06-30",
		Memo: "annual depreciation",
		Lines: []dto.JournalLineRequest{
			{Account: "Depreciation", Debit: decimal.NewFromInt(5000)},
			{Account: domain.AccumulatedDepreciationAccount, Credit: decimal.NewFromInt(4000)},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnbalanced)

	// Nothing was persisted.
	entries, err := svc.ListEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreateEntryRejectsUnknownAndRetainedEarnings(t *testing.T) {
	store := newTestStore(t)
	svc := NewLedgerService(store)

	_, err := svc.CreateEntry(context.Background(), dto.CreateJournalEntryRequest{
		Date: "2025-06-30",
		Lines: []dto.JournalLineRequest{
			{Account: "Petty Cash", Debit: decimal.NewFromInt(100)},
			{Account: "Checking Account", Credit: decimal.NewFromInt(100)},
		},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.CreateEntry(context.Background(), dto.CreateJournalEntryRequest{
		Date: "2025-06-30",
		Lines: []dto.JournalLineRequest{
			{Account: domain.RetainedEarningsAccount, Debit: decimal.NewFromInt(100)},
			{Account: "Checking Account", Credit: decimal.NewFromInt(100)},
		},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateAndListEntries(t *testing.T) {
	store := newTestStore(t)
	svc := NewLedgerService(store)

	later, err := svc.CreateEntry(context.Background(), dto.CreateJournalEntryRequest{
		Date: "2025-07-01",
		Memo: "owner draw",
		Lines: []dto.JournalLineRequest{
			{Account: domain.OwnersDrawAccount, Debit: decimal.NewFromInt(2000)},
			{Account: "Checking Account", Credit: decimal.NewFromInt(2000)},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, later.EntryID)

	_, err = svc.CreateEntry(context.Background(), dto.CreateJournalEntryRequest{
		Date: "2025-06-30",
		Lines: []dto.JournalLineRequest{
			{Account: "Depreciation", Debit: decimal.NewFromInt(5000)},
			{Account: domain.AccumulatedDepreciationAccount, Credit: decimal.NewFromInt(5000)},
		},
	})
	require.NoError(t, err)

	entries, err := svc.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2025-06-30", entries[0].Date)
	assert.Equal(t, "2025-07-01", entries[1].Date)
}

func TestOpeningBalances(t *testing.T) {
	store := newTestStore(t)
	svc := NewLedgerService(store)

	err := svc.SetOpeningBalances(context.Background(), dto.OpeningBalancesRequest{
		Balances: map[string]decimal.Decimal{
			"Checking Account": decimal.NewFromInt(50000),
			"Mortgage Payable": decimal.NewFromInt(-400000),
		},
	})
	require.NoError(t, err)

	response, err := svc.GetOpeningBalances(context.Background())
	require.NoError(t, err)
	assert.True(t, response.Balances["Checking Account"].Equal(decimal.NewFromInt(50000)))
	assert.True(t, response.Balances["Mortgage Payable"].Equal(decimal.NewFromInt(-400000)))
	// Unset accounts report zero rather than being absent.
	balance, ok := response.Balances["Savings Account"]
	require.True(t, ok)
	assert.True(t, balance.IsZero())

	// Revenue categories are not balance-sheet accounts.
	err = svc.SetOpeningBalances(context.Background(), dto.OpeningBalancesRequest{
		Balances: map[string]decimal.Decimal{"Rental Income": decimal.NewFromInt(1)},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

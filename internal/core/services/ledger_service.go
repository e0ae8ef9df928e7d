package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condobooks/condo_books_app/internal/apperrors"
	"github.com/condobooks/condo_books_app/internal/core/domain"
	portssvc "github.com/condobooks/condo_books_app/internal/core/ports/services"
	"github.com/condobooks/condo_books_app/internal/dto"
	"github.com/condobooks/condo_books_app/internal/utils/accounting"
)

type ledgerService struct {
	BaseService
	store *StoreService
}

// NewLedgerService creates the journal entry service.
func NewLedgerService(store *StoreService) portssvc.LedgerService {
	return &ledgerService{store: store}
}

// CreateEntry posts a journal entry. The entry is validated balanced and
// every line checked against the chart before anything is persisted.
func (s *ledgerService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	var created domain.JournalEntry
	err := s.store.Update(ctx, func(snapshot *domain.Snapshot) error {
		now := time.Now().UTC()
		entry := domain.JournalEntry{
			EntryID: uuid.NewString(),
			Date:    req.Date,
			Memo:    req.Memo,
			Lines:   make([]domain.JournalLine, 0, len(req.Lines)),
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
		for _, line := range req.Lines {
			if domain.CategoryTypeOf(line.Account) == "" {
				return fmt.Errorf("%w: unknown account %q", apperrors.ErrValidation, line.Account)
			}
			if line.Account == domain.RetainedEarningsAccount {
				return fmt.Errorf("%w: %s is recomputed and cannot be posted to", apperrors.ErrValidation, domain.RetainedEarningsAccount)
			}
			entry.Lines = append(entry.Lines, domain.JournalLine{
				Account: line.Account,
				Debit:   line.Debit,
				Credit:  line.Credit,
			})
		}
		if err := accounting.ValidateEntryBalance(entry); err != nil {
			return err
		}
		snapshot.JournalEntries = append(snapshot.JournalEntries, entry)
		created = entry
		s.LogInfo(ctx, "journal entry posted", "entryID", entry.EntryID, "date", entry.Date, "lines", len(entry.Lines))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListEntries returns all journal entries ordered by date, oldest first.
func (s *ledgerService) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	s.store.View(func(snapshot *domain.Snapshot) {
		entries = make([]domain.JournalEntry, len(snapshot.JournalEntries))
		copy(entries, snapshot.JournalEntries)
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return entries, nil
}

// SetOpeningBalances replaces the opening balance map. Balances follow
// the ledger convention: assets positive, liabilities negative when
// owed. Unknown account names are rejected rather than silently dropped
// at report time.
func (s *ledgerService) SetOpeningBalances(ctx context.Context, req dto.OpeningBalancesRequest) error {
	return s.store.Update(ctx, func(snapshot *domain.Snapshot) error {
		balances := make(map[string]decimal.Decimal, len(req.Balances))
		for name, amount := range req.Balances {
			kind := domain.CategoryTypeOf(name)
			if kind != domain.CategoryAsset && kind != domain.CategoryLiability && kind != domain.CategoryEquity {
				return fmt.Errorf("%w: %q is not a balance-sheet account", apperrors.ErrValidation, name)
			}
			balances[name] = amount
		}
		snapshot.OpeningBalances = balances
		return nil
	})
}

// GetOpeningBalances returns every balance-sheet account with its stored
// opening balance, zero when unset.
func (s *ledgerService) GetOpeningBalances(ctx context.Context) (dto.OpeningBalancesResponse, error) {
	balances := make(map[string]decimal.Decimal, len(domain.BalanceAccounts))
	s.store.View(func(snapshot *domain.Snapshot) {
		for _, account := range domain.BalanceAccounts {
			balances[account.Name] = snapshot.OpeningBalances[account.Name]
		}
	})
	return dto.OpeningBalancesResponse{Balances: balances}, nil
}

package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/condobooks/condo_books_app/internal/apperrors"
	"github.com/condobooks/condo_books_app/internal/core/domain"
	portssvc "github.com/condobooks/condo_books_app/internal/core/ports/services"
	"github.com/condobooks/condo_books_app/internal/dto"
	"github.com/condobooks/condo_books_app/internal/utils/bankdesc"
)

type transactionService struct {
	BaseService
	store *StoreService
}

// NewTransactionService creates the transaction review service.
func NewTransactionService(store *StoreService) portssvc.TransactionService {
	return &transactionService{store: store}
}

// ListTransactions returns transactions matching the filter, newest
// first.
func (s *transactionService) ListTransactions(ctx context.Context, filter dto.TransactionFilter) ([]domain.Transaction, error) {
	var matched []domain.Transaction
	s.store.View(func(snapshot *domain.Snapshot) {
		matched = make([]domain.Transaction, 0, len(snapshot.Transactions))
		for _, t := range snapshot.Transactions {
			if matchesFilter(&t, filter) {
				matched = append(matched, t)
			}
		}
	})
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date > matched[j].Date
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func matchesFilter(t *domain.Transaction, filter dto.TransactionFilter) bool {
	if filter.AccountID != "" && t.AccountID != filter.AccountID {
		return false
	}
	if filter.FromDate != "" && t.Date < filter.FromDate {
		return false
	}
	if filter.ToDate != "" && t.Date > filter.ToDate {
		return false
	}
	if filter.Category != "" && t.Category != filter.Category {
		return false
	}
	if filter.Type != "" && string(t.Type) != filter.Type {
		return false
	}
	if filter.Approved != nil && t.Approved != *filter.Approved {
		return false
	}
	return true
}

// CreateTransaction records a manual entry. A category supplied by the
// user is a manual categorization from the start.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	var created domain.Transaction
	err := s.store.Update(ctx, func(snapshot *domain.Snapshot) error {
		if snapshot.FindAccount(req.AccountID) == nil {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, req.AccountID)
		}
		if req.Amount.IsNegative() {
			return fmt.Errorf("%w: amount must be non-negative, the type carries the sign", apperrors.ErrValidation)
		}

		now := time.Now().UTC()
		txnType := domain.TransactionType(req.Type)
		txn := domain.Transaction{
			TransactionID: uuid.NewString(),
			Date:          req.Date,
			Description:   req.Description,
			Amount:        req.Amount,
			Type:          txnType,
			Category:      req.Category,
			AccountID:     req.AccountID,
			IsTransfer:    txnType == domain.Transfer,
			VendorKey:     bankdesc.VendorKey(req.Description),
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
		if txn.IsTransfer {
			txn.Category = ""
		} else if txn.Category != "" {
			txn.CategorizationSource = domain.SourceManual
			txn.Confidence = domain.ConfidenceHigh
		}
		snapshot.Transactions = append(snapshot.Transactions, txn)
		created = txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTransaction applies user edits. Setting the category marks the
// categorization manual, which shields it from re-categorization.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	var updated domain.Transaction
	err := s.store.Update(ctx, func(snapshot *domain.Snapshot) error {
		txn := snapshot.FindTransaction(transactionID)
		if txn == nil {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		if req.Date != nil {
			txn.Date = *req.Date
		}
		if req.Description != nil {
			txn.Description = *req.Description
		}
		if req.Amount != nil {
			if req.Amount.IsNegative() {
				return fmt.Errorf("%w: amount must be non-negative, the type carries the sign", apperrors.ErrValidation)
			}
			txn.Amount = *req.Amount
		}
		if req.Type != nil {
			txn.Type = domain.TransactionType(*req.Type)
			txn.IsTransfer = txn.Type == domain.Transfer
			if txn.IsTransfer {
				txn.Category = ""
				txn.CategorizationSource = domain.SourceNone
				txn.Confidence = domain.ConfidenceNone
			}
		}
		if req.Category != nil && !txn.IsTransfer {
			txn.Category = *req.Category
			txn.CategorizationSource = domain.SourceManual
			txn.Confidence = domain.ConfidenceHigh
		}
		txn.LastUpdatedAt = time.Now().UTC()
		updated = *txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ApproveTransaction approves one transaction, optionally correcting the
// category first. Approval is what feeds the pattern learner; the
// correction path resets an existing pattern to the new category.
func (s *transactionService) ApproveTransaction(ctx context.Context, transactionID string, req dto.ApproveTransactionRequest) (*domain.Transaction, error) {
	var approved domain.Transaction
	err := s.store.Update(ctx, func(snapshot *domain.Snapshot) error {
		txn := snapshot.FindTransaction(transactionID)
		if txn == nil {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		approveOne(snapshot, txn, req.Category)
		approved = *txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &approved, nil
}

// ApproveTransactions approves a batch of transactions in order. Unknown
// IDs and already-approved transactions are skipped; the count of newly
// approved transactions is returned.
func (s *transactionService) ApproveTransactions(ctx context.Context, transactionIDs []string) (int, error) {
	count := 0
	err := s.store.Update(ctx, func(snapshot *domain.Snapshot) error {
		for _, id := range transactionIDs {
			txn := snapshot.FindTransaction(id)
			if txn == nil || txn.Approved {
				continue
			}
			approveOne(snapshot, txn, nil)
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// approveOne applies a category correction, marks the transaction
// approved and feeds the learner. Re-approving an already-approved
// transaction without a correction is idempotent and does not inflate
// the pattern count.
func approveOne(snapshot *domain.Snapshot, txn *domain.Transaction, category *string) {
	corrected := false
	if category != nil && !txn.IsTransfer && *category != txn.Category {
		txn.Category = *category
		txn.CategorizationSource = domain.SourceManual
		txn.Confidence = domain.ConfidenceHigh
		switch {
		case domain.IsRevenueCategory(*category):
			txn.Type = domain.Revenue
		case domain.IsExpenseCategory(*category):
			txn.Type = domain.Expense
		}
		corrected = true
	}
	wasApproved := txn.Approved
	txn.Approved = true
	txn.LastUpdatedAt = time.Now().UTC()
	if !wasApproved || corrected {
		RecordApproval(snapshot.Patterns, txn)
	}
}

// RecategorizeAll re-runs the categorization pipeline over every
// transaction that is neither approved nor manually categorized, and
// returns how many assignments changed.
func (s *transactionService) RecategorizeAll(ctx context.Context) (int, error) {
	changed := 0
	err := s.store.Update(ctx, func(snapshot *domain.Snapshot) error {
		categorizer := NewCategorizer(snapshot.Rules, snapshot.Patterns)
		for i := range snapshot.Transactions {
			txn := &snapshot.Transactions[i]
			if txn.Approved || txn.ManuallyCategorized() {
				continue
			}
			before := *txn
			categorizer.Apply(txn)
			if txn.Category != before.Category || txn.Type != before.Type ||
				txn.CategorizationSource != before.CategorizationSource || txn.Confidence != before.Confidence {
				txn.LastUpdatedAt = time.Now().UTC()
				changed++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.LogInfo(ctx, "recategorized transactions", "changed", changed)
	return changed, nil
}

// ListPatterns returns the learned patterns, most used first.
func (s *transactionService) ListPatterns(ctx context.Context) ([]domain.LearnedPattern, error) {
	var patterns []domain.LearnedPattern
	s.store.View(func(snapshot *domain.Snapshot) {
		patterns = make([]domain.LearnedPattern, 0, len(snapshot.Patterns))
		for _, p := range snapshot.Patterns {
			patterns = append(patterns, p)
		}
	})
	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].TimesUsed != patterns[j].TimesUsed {
			return patterns[i].TimesUsed > patterns[j].TimesUsed
		}
		return patterns[i].VendorKey < patterns[j].VendorKey
	})
	return patterns, nil
}

package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/condobooks/condo_books_app/internal/apperrors"
	"github.com/condobooks/condo_books_app/internal/core/domain"
	portssvc "github.com/condobooks/condo_books_app/internal/core/ports/services"
	"github.com/condobooks/condo_books_app/internal/dto"
	"github.com/condobooks/condo_books_app/internal/parser"
	"github.com/condobooks/condo_books_app/internal/utils/bankdesc"
)

type importService struct {
	BaseService
	store *StoreService
}

// NewImportService creates the statement import service.
func NewImportService(store *StoreService) portssvc.ImportService {
	return &importService{store: store}
}

// ImportStatement parses one statement file, normalizes and classifies
// each row for the target account, drops duplicates against the stored
// transactions, categorizes the survivors and records the batch. Row
// parse errors are collected on the summary, never fatal.
func (s *importService) ImportStatement(ctx context.Context, filename, accountID string, file io.Reader) (*dto.ImportSummary, error) {
	var summary *dto.ImportSummary
	err := s.store.Update(ctx, func(snapshot *domain.Snapshot) error {
		account := snapshot.FindAccount(accountID)
		if account == nil {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}

		result, err := parser.ParseStatement(file)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}

		now := time.Now().UTC()
		batchID := uuid.NewString()
		incoming := make([]domain.Transaction, 0, len(result.Rows))
		for _, row := range result.Rows {
			txnType, isTransfer := bankdesc.Classify(row.Description, row.Amount, account.Type)
			incoming = append(incoming, domain.Transaction{
				TransactionID:       uuid.NewString(),
				Date:                row.Date,
				Description:         bankdesc.Clean(row.Description),
				OriginalDescription: row.Description,
				Amount:              row.Amount.Abs(),
				Type:                txnType,
				AccountID:           accountID,
				BatchID:             batchID,
				SourceFile:          filename,
				ReferenceNumber:     row.ReferenceNumber,
				Address:             row.Address,
				RunningBalance:      row.RunningBalance,
				IsTransfer:          isTransfer,
				VendorKey:           bankdesc.VendorKey(row.Description),
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					LastUpdatedAt: now,
				},
			})
		}

		deduped := FindDuplicates(incoming, snapshot.Transactions)

		categorizer := NewCategorizer(snapshot.Rules, snapshot.Patterns)
		for i := range deduped.Clean {
			categorizer.Apply(&deduped.Clean[i])
		}

		dateFrom, dateTo := dateRange(deduped.Clean)
		snapshot.Transactions = append(snapshot.Transactions, deduped.Clean...)

		batch := domain.ImportBatch{
			BatchID:           batchID,
			Filename:          filename,
			AccountID:         accountID,
			AccountType:       account.Type,
			TransactionCount:  len(deduped.Clean),
			DateFrom:          dateFrom,
			DateTo:            dateTo,
			DuplicatesSkipped: len(deduped.Duplicates),
			ParseErrors:       result.Errors,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
		snapshot.Batches = append(snapshot.Batches, batch)

		duplicates := make([]dto.DuplicateResponse, 0, len(deduped.Duplicates))
		for _, d := range deduped.Duplicates {
			duplicates = append(duplicates, dto.DuplicateResponse{
				Date:        d.Transaction.Date,
				Description: d.Transaction.Description,
				Amount:      d.Transaction.Amount,
				Reason:      d.Reason,
			})
		}
		summary = &dto.ImportSummary{
			BatchID:           batchID,
			Filename:          filename,
			Imported:          len(deduped.Clean),
			DuplicatesSkipped: len(deduped.Duplicates),
			Duplicates:        duplicates,
			ParseErrors:       result.Errors,
			DateFrom:          dateFrom,
			DateTo:            dateTo,
		}

		s.LogInfo(ctx, "statement imported",
			"batchID", batchID,
			"filename", filename,
			"accountID", accountID,
			"imported", len(deduped.Clean),
			"duplicatesSkipped", len(deduped.Duplicates),
			"parseErrors", len(result.Errors))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// ListBatches returns the recorded import batches, newest first.
func (s *importService) ListBatches(ctx context.Context) ([]domain.ImportBatch, error) {
	var batches []domain.ImportBatch
	s.store.View(func(snapshot *domain.Snapshot) {
		batches = make([]domain.ImportBatch, 0, len(snapshot.Batches))
		for i := len(snapshot.Batches) - 1; i >= 0; i-- {
			batches = append(batches, snapshot.Batches[i])
		}
	})
	return batches, nil
}

// dateRange returns the lexicographic min and max dates of a batch.
// ISO dates sort correctly as strings, so no parsing is needed.
func dateRange(txns []domain.Transaction) (string, string) {
	var from, to string
	for _, t := range txns {
		if from == "" || t.Date < from {
			from = t.Date
		}
		if to == "" || t.Date > to {
			to = t.Date
		}
	}
	return from, to
}

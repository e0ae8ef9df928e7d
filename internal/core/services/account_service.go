package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/condobooks/condo_books_app/internal/apperrors"
	"github.com/condobooks/condo_books_app/internal/core/domain"
	portssvc "github.com/condobooks/condo_books_app/internal/core/ports/services"
	"github.com/condobooks/condo_books_app/internal/dto"
)

type accountService struct {
	BaseService
	store *StoreService
}

// NewAccountService creates the bank account service.
func NewAccountService(store *StoreService) portssvc.AccountService {
	return &accountService{store: store}
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	s.store.View(func(snapshot *domain.Snapshot) {
		accounts = make([]domain.Account, len(snapshot.Accounts))
		copy(accounts, snapshot.Accounts)
	})
	return accounts, nil
}

func (s *accountService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	var found *domain.Account
	s.store.View(func(snapshot *domain.Snapshot) {
		if a := snapshot.FindAccount(accountID); a != nil {
			copied := *a
			found = &copied
		}
	})
	if found == nil {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return found, nil
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	var created domain.Account
	err := s.store.Update(ctx, func(snapshot *domain.Snapshot) error {
		for _, a := range snapshot.Accounts {
			if a.Name == req.Name {
				return fmt.Errorf("%w: account named %q already exists", apperrors.ErrDuplicate, req.Name)
			}
		}
		now := time.Now().UTC()
		account := domain.Account{
			AccountID:      uuid.NewString(),
			Name:           req.Name,
			Type:           domain.BankAccountType(req.Type),
			Institution:    req.Institution,
			OpeningBalance: req.OpeningBalance,
			OpeningDate:    req.OpeningDate,
			IsActive:       true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
		snapshot.Accounts = append(snapshot.Accounts, account)
		created = account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAccount edits an account. The account type is immutable because
// classification of already-imported rows depended on it.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	var updated domain.Account
	err := s.store.Update(ctx, func(snapshot *domain.Snapshot) error {
		account := snapshot.FindAccount(accountID)
		if account == nil {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		if req.Name != nil {
			account.Name = *req.Name
		}
		if req.Institution != nil {
			account.Institution = *req.Institution
		}
		if req.OpeningBalance != nil {
			account.OpeningBalance = *req.OpeningBalance
		}
		if req.OpeningDate != nil {
			account.OpeningDate = *req.OpeningDate
		}
		if req.IsActive != nil {
			account.IsActive = *req.IsActive
		}
		account.LastUpdatedAt = time.Now().UTC()
		updated = *account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Package services defines the service ports exposed to the HTTP layer.
package services

import (
	"context"
	"io"

	"github.com/condobooks/condo_books_app/internal/core/domain"
	"github.com/condobooks/condo_books_app/internal/dto"
)

// ImportService ingests statement files and records import batches.
type ImportService interface {
	ImportStatement(ctx context.Context, filename, accountID string, file io.Reader) (*dto.ImportSummary, error)
	ListBatches(ctx context.Context) ([]domain.ImportBatch, error)
}

// TransactionService covers the review workflow: listing, manual entry,
// edits, approval and batch re-categorization.
type TransactionService interface {
	ListTransactions(ctx context.Context, filter dto.TransactionFilter) ([]domain.Transaction, error)
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	ApproveTransaction(ctx context.Context, transactionID string, req dto.ApproveTransactionRequest) (*domain.Transaction, error)
	ApproveTransactions(ctx context.Context, transactionIDs []string) (int, error)
	RecategorizeAll(ctx context.Context) (int, error)
	ListPatterns(ctx context.Context) ([]domain.LearnedPattern, error)
}

// RuleService manages the explicit categorization rules.
type RuleService interface {
	ListRules(ctx context.Context) ([]domain.Rule, error)
	CreateRule(ctx context.Context, req dto.CreateRuleRequest) (*domain.Rule, error)
	UpdateRule(ctx context.Context, ruleID string, req dto.UpdateRuleRequest) (*domain.Rule, error)
	DeleteRule(ctx context.Context, ruleID string) error
	CreateRuleFromTransaction(ctx context.Context, transactionID string, req dto.RuleFromTransactionRequest) (*domain.Rule, error)
}

// AccountService manages bank and credit-card accounts.
type AccountService interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
}

// LedgerService posts and lists balanced journal entries.
type LedgerService interface {
	CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)
	SetOpeningBalances(ctx context.Context, req dto.OpeningBalancesRequest) error
	GetOpeningBalances(ctx context.Context) (dto.OpeningBalancesResponse, error)
}

// ReportingService generates the financial statements.
type ReportingService interface {
	ProfitAndLoss(ctx context.Context, fromDate, toDate string) (*domain.PLReport, error)
	BalanceSheet(ctx context.Context, asOfDate string) (*domain.BalanceSheetReport, error)
}

// AuthService authenticates the single configured user.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// SystemService covers dashboard assembly and store administration.
type SystemService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	ClearStore(ctx context.Context) error
}

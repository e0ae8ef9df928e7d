package services

import (
	"context"

	"github.com/condobooks/condo_books_app/internal/core/domain"
	portssvc "github.com/condobooks/condo_books_app/internal/core/ports/services"
	"github.com/condobooks/condo_books_app/internal/dto"
)

// recentBatchLimit bounds the dashboard's batch list.
const recentBatchLimit = 5

type systemService struct {
	BaseService
	store *StoreService
}

// NewSystemService creates the dashboard and store administration
// service.
func NewSystemService(store *StoreService) portssvc.SystemService {
	return &systemService{store: store}
}

// Dashboard summarizes the dataset for the landing view.
func (s *systemService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	response := &dto.DashboardResponse{RecentBatches: []dto.ImportBatchResponse{}}
	s.store.View(func(snapshot *domain.Snapshot) {
		response.TransactionCount = len(snapshot.Transactions)
		for _, t := range snapshot.Transactions {
			if !t.Approved {
				response.UnapprovedCount++
			}
			if t.Category == "" && !t.IsTransfer {
				response.UncategorizedCount++
			}
		}
		response.AccountCount = len(snapshot.Accounts)
		response.RuleCount = len(snapshot.Rules)
		response.PatternCount = len(snapshot.Patterns)
		for i := len(snapshot.Batches) - 1; i >= 0 && len(response.RecentBatches) < recentBatchLimit; i-- {
			response.RecentBatches = append(response.RecentBatches, dto.ToImportBatchResponse(&snapshot.Batches[i]))
		}
	})
	return response, nil
}

// ClearStore wipes the dataset back to the seeded defaults.
func (s *systemService) ClearStore(ctx context.Context) error {
	s.LogWarn(ctx, "clearing store")
	return s.store.Clear(ctx)
}

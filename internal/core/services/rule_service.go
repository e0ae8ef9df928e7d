package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/condobooks/condo_books_app/internal/apperrors"
	"github.com/condobooks/condo_books_app/internal/core/domain"
	portssvc "github.com/condobooks/condo_books_app/internal/core/ports/services"
	"github.com/condobooks/condo_books_app/internal/dto"
)

type ruleService struct {
	BaseService
	store *StoreService
}

// NewRuleService creates the categorization rule service.
func NewRuleService(store *StoreService) portssvc.RuleService {
	return &ruleService{store: store}
}

// ListRules returns the rules in evaluation order.
func (s *ruleService) ListRules(ctx context.Context) ([]domain.Rule, error) {
	var rules []domain.Rule
	s.store.View(func(snapshot *domain.Snapshot) {
		rules = make([]domain.Rule, len(snapshot.Rules))
		copy(rules, snapshot.Rules)
	})
	return rules, nil
}

// CreateRule appends a rule to the end of the evaluation order.
func (s *ruleService) CreateRule(ctx context.Context, req dto.CreateRuleRequest) (*domain.Rule, error) {
	var created domain.Rule
	err := s.store.Update(ctx, func(snapshot *domain.Snapshot) error {
		if err := validateRuleCategory(domain.TransactionType(req.Type), req.Category); err != nil {
			return err
		}
		now := time.Now().UTC()
		active := true
		if req.Active != nil {
			active = *req.Active
		}
		rule := domain.Rule{
			RuleID:    uuid.NewString(),
			Match:     req.Match,
			MatchType: domain.MatchType(req.MatchType),
			Type:      domain.TransactionType(req.Type),
			Category:  req.Category,
			Active:    active,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
		snapshot.Rules = append(snapshot.Rules, rule)
		created = rule
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRule edits a rule in place, keeping its evaluation position.
func (s *ruleService) UpdateRule(ctx context.Context, ruleID string, req dto.UpdateRuleRequest) (*domain.Rule, error) {
	var updated domain.Rule
	err := s.store.Update(ctx, func(snapshot *domain.Snapshot) error {
		rule := findRule(snapshot, ruleID)
		if rule == nil {
			return fmt.Errorf("%w: rule %s", apperrors.ErrNotFound, ruleID)
		}
		if req.Match != nil {
			rule.Match = *req.Match
		}
		if req.MatchType != nil {
			rule.MatchType = domain.MatchType(*req.MatchType)
		}
		if req.Type != nil {
			rule.Type = domain.TransactionType(*req.Type)
		}
		if req.Category != nil {
			rule.Category = *req.Category
		}
		if req.Active != nil {
			rule.Active = *req.Active
		}
		if err := validateRuleCategory(rule.Type, rule.Category); err != nil {
			return err
		}
		rule.LastUpdatedAt = time.Now().UTC()
		updated = *rule
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteRule removes a rule. Transactions it categorized keep their
// assignment until the next re-categorization.
func (s *ruleService) DeleteRule(ctx context.Context, ruleID string) error {
	return s.store.Update(ctx, func(snapshot *domain.Snapshot) error {
		for i := range snapshot.Rules {
			if snapshot.Rules[i].RuleID == ruleID {
				snapshot.Rules = append(snapshot.Rules[:i], snapshot.Rules[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: rule %s", apperrors.ErrNotFound, ruleID)
	})
}

// CreateRuleFromTransaction turns a reviewed transaction into an
// explicit rule, defaulting the match to the transaction's vendor key.
// The source transaction is re-categorized immediately unless it is
// protected by approval or a manual category.
func (s *ruleService) CreateRuleFromTransaction(ctx context.Context, transactionID string, req dto.RuleFromTransactionRequest) (*domain.Rule, error) {
	var created domain.Rule
	err := s.store.Update(ctx, func(snapshot *domain.Snapshot) error {
		txn := snapshot.FindTransaction(transactionID)
		if txn == nil {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}

		match := txn.VendorKey
		if req.Match != nil && *req.Match != "" {
			match = *req.Match
		}
		if match == "" {
			match = strings.ToLower(strings.TrimSpace(txn.Description))
		}
		if match == "" {
			return fmt.Errorf("%w: transaction has no usable match text", apperrors.ErrValidation)
		}
		matchType := domain.MatchContains
		if req.MatchType != nil {
			matchType = domain.MatchType(*req.MatchType)
		}
		txnType := domain.Expense
		if domain.IsRevenueCategory(req.Category) {
			txnType = domain.Revenue
		}
		if err := validateRuleCategory(txnType, req.Category); err != nil {
			return err
		}

		now := time.Now().UTC()
		rule := domain.Rule{
			RuleID:    uuid.NewString(),
			Match:     match,
			MatchType: matchType,
			Type:      txnType,
			Category:  req.Category,
			Active:    true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
		snapshot.Rules = append(snapshot.Rules, rule)
		created = rule

		if !txn.Approved && !txn.ManuallyCategorized() {
			NewCategorizer(snapshot.Rules, snapshot.Patterns).Apply(txn)
			txn.LastUpdatedAt = now
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func findRule(snapshot *domain.Snapshot, ruleID string) *domain.Rule {
	for i := range snapshot.Rules {
		if snapshot.Rules[i].RuleID == ruleID {
			return &snapshot.Rules[i]
		}
	}
	return nil
}

// validateRuleCategory checks that the rule targets a known category of
// the matching kind, so rules can never route money off the chart.
func validateRuleCategory(txnType domain.TransactionType, category string) error {
	switch txnType {
	case domain.Revenue:
		if !domain.IsRevenueCategory(category) {
			return fmt.Errorf("%w: %q is not a revenue category", apperrors.ErrValidation, category)
		}
	case domain.Expense:
		if !domain.IsExpenseCategory(category) {
			return fmt.Errorf("%w: %q is not an expense category", apperrors.ErrValidation, category)
		}
	default:
		return fmt.Errorf("%w: rules apply to revenue or expense transactions only", apperrors.ErrValidation)
	}
	return nil
}

package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/condobooks/condo_books_app/internal/apperrors"
	"github.com/condobooks/condo_books_app/internal/core/domain"
	portssvc "github.com/condobooks/condo_books_app/internal/core/ports/services"
	"github.com/condobooks/condo_books_app/internal/utils/accounting"
)

// balancedTolerance is the rounding slack allowed before a balance sheet
// is flagged out of balance.
var balancedTolerance = decimal.NewFromFloat(0.01)

type reportingService struct {
	BaseService
	store *StoreService
}

// NewReportingService creates the financial statement service.
func NewReportingService(store *StoreService) portssvc.ReportingService {
	return &reportingService{store: store}
}

func (s *reportingService) ProfitAndLoss(ctx context.Context, fromDate, toDate string) (*domain.PLReport, error) {
	if fromDate > toDate {
		return nil, fmt.Errorf("%w: fromDate %s is after toDate %s", apperrors.ErrValidation, fromDate, toDate)
	}
	var report *domain.PLReport
	s.store.View(func(snapshot *domain.Snapshot) {
		report = GeneratePL(snapshot, fromDate, toDate)
	})
	return report, nil
}

func (s *reportingService) BalanceSheet(ctx context.Context, asOfDate string) (*domain.BalanceSheetReport, error) {
	var report *domain.BalanceSheetReport
	s.store.View(func(snapshot *domain.Snapshot) {
		report = GenerateBalanceSheet(snapshot, asOfDate)
	})
	return report, nil
}

// GeneratePL builds a profit and loss report over an inclusive date
// range. Only approved, non-transfer transactions count; journal lines
// posted against revenue or expense categories fold into the same
// buckets. Unknown and missing categories land in the catch-alls.
func GeneratePL(snapshot *domain.Snapshot, fromDate, toDate string) *domain.PLReport {
	revenueTotals := map[string]decimal.Decimal{}
	expenseTotals := map[string]decimal.Decimal{}
	for _, c := range domain.RevenueCategories {
		revenueTotals[c.Name] = decimal.Zero
	}
	for _, c := range domain.ExpenseCategories {
		expenseTotals[c.Name] = decimal.Zero
	}

	count := 0
	for _, t := range snapshot.Transactions {
		if !t.Approved || t.IsTransfer || t.Type == domain.Transfer {
			continue
		}
		if t.Date < fromDate || t.Date > toDate {
			continue
		}
		count++
		switch t.Type {
		case domain.Revenue:
			bucket := t.Category
			if !domain.IsRevenueCategory(bucket) {
				bucket = domain.OtherRevenueCategory
			}
			revenueTotals[bucket] = revenueTotals[bucket].Add(t.Amount)
		case domain.Expense:
			bucket := t.Category
			if !domain.IsExpenseCategory(bucket) {
				bucket = domain.OtherExpenseCategory
			}
			expenseTotals[bucket] = expenseTotals[bucket].Add(t.Amount)
		}
	}

	for _, entry := range snapshot.JournalEntries {
		if entry.Date < fromDate || entry.Date > toDate {
			continue
		}
		for _, line := range entry.Lines {
			switch {
			case domain.IsRevenueCategory(line.Account):
				revenueTotals[line.Account] = revenueTotals[line.Account].Add(accounting.RevenueEffect(line))
			case domain.IsExpenseCategory(line.Account):
				expenseTotals[line.Account] = expenseTotals[line.Account].Add(accounting.ExpenseEffect(line))
			}
		}
	}

	report := &domain.PLReport{
		FromDate:         fromDate,
		ToDate:           toDate,
		Revenue:          []domain.ReportLine{},
		Expenses:         []domain.ReportLine{},
		TotalRevenue:     decimal.Zero,
		TotalExpenses:    decimal.Zero,
		TransactionCount: count,
	}
	for _, c := range domain.RevenueCategories {
		amount := revenueTotals[c.Name]
		report.TotalRevenue = report.TotalRevenue.Add(amount)
		if !amount.IsZero() {
			report.Revenue = append(report.Revenue, domain.ReportLine{Category: c.Name, ScheduleLine: c.ScheduleLine, Amount: amount})
		}
	}
	for _, c := range domain.ExpenseCategories {
		amount := expenseTotals[c.Name]
		report.TotalExpenses = report.TotalExpenses.Add(amount)
		if !amount.IsZero() {
			report.Expenses = append(report.Expenses, domain.ReportLine{Category: c.Name, ScheduleLine: c.ScheduleLine, Amount: amount})
		}
	}
	report.NetIncome = report.TotalRevenue.Sub(report.TotalExpenses)
	return report
}

// GenerateBalanceSheet builds the balance sheet as of a date.
//
// Stored account balances start from the opening balance map and apply
// every journal line dated on or before asOfDate, except Retained
// Earnings, which is recomputed from scratch: its opening value plus the
// all-time net income through asOfDate from both approved transactions
// and journal activity. Aggregation flips the ledger-convention signs
// into report-convention positives: liabilities are negated into a
// positive owed total and Owner's Draw is subtracted from equity. An
// out-of-balance sheet is still returned in full, flagged by IsBalanced.
func GenerateBalanceSheet(snapshot *domain.Snapshot, asOfDate string) *domain.BalanceSheetReport {
	balances := make(map[string]decimal.Decimal, len(domain.BalanceAccounts))
	for _, account := range domain.BalanceAccounts {
		balances[account.Name] = snapshot.OpeningBalances[account.Name]
	}

	for _, entry := range snapshot.JournalEntries {
		if entry.Date > asOfDate {
			continue
		}
		for _, line := range entry.Lines {
			if line.Account == domain.RetainedEarningsAccount {
				continue
			}
			kind := domain.CategoryTypeOf(line.Account)
			if kind == domain.CategoryAsset || kind == domain.CategoryLiability || kind == domain.CategoryEquity {
				balances[line.Account] = balances[line.Account].Add(accounting.BalanceEffect(line.Account, kind, line))
			}
		}
	}

	net := snapshot.OpeningBalances[domain.RetainedEarningsAccount]
	for _, t := range snapshot.Transactions {
		if !t.Approved || t.IsTransfer || t.Type == domain.Transfer || t.Date > asOfDate {
			continue
		}
		switch t.Type {
		case domain.Revenue:
			net = net.Add(t.Amount)
		case domain.Expense:
			net = net.Sub(t.Amount)
		}
	}
	for _, entry := range snapshot.JournalEntries {
		if entry.Date > asOfDate {
			continue
		}
		for _, line := range entry.Lines {
			switch {
			case domain.IsRevenueCategory(line.Account):
				net = net.Add(accounting.RevenueEffect(line))
			case domain.IsExpenseCategory(line.Account):
				net = net.Sub(accounting.ExpenseEffect(line))
			}
		}
	}
	balances[domain.RetainedEarningsAccount] = net

	report := &domain.BalanceSheetReport{
		AsOf:                asOfDate,
		CurrentAssets:       []domain.AccountBalance{},
		FixedAssets:         []domain.AccountBalance{},
		CurrentLiabilities:  []domain.AccountBalance{},
		LongTermLiabilities: []domain.AccountBalance{},
		Equity:              []domain.AccountBalance{},
		TotalAssets:         decimal.Zero,
		TotalLiabilities:    decimal.Zero,
		TotalEquity:         decimal.Zero,
	}
	for _, account := range domain.BalanceAccounts {
		balance := balances[account.Name]
		row := domain.AccountBalance{Name: account.Name, Balance: balance}
		switch account.Section {
		case domain.SectionCurrentAssets:
			report.CurrentAssets = append(report.CurrentAssets, row)
		case domain.SectionFixedAssets:
			report.FixedAssets = append(report.FixedAssets, row)
		case domain.SectionCurrentLiabilities:
			report.CurrentLiabilities = append(report.CurrentLiabilities, row)
		case domain.SectionLongTermLiabilities:
			report.LongTermLiabilities = append(report.LongTermLiabilities, row)
		case domain.SectionEquity:
			report.Equity = append(report.Equity, row)
		}

		switch account.Type {
		case domain.CategoryAsset:
			if account.Name == domain.AccumulatedDepreciationAccount {
				report.TotalAssets = report.TotalAssets.Sub(balance.Abs())
			} else {
				report.TotalAssets = report.TotalAssets.Add(balance)
			}
		case domain.CategoryLiability:
			// Stored negative when owed, reported as a positive total.
			report.TotalLiabilities = report.TotalLiabilities.Sub(balance)
		case domain.CategoryEquity:
			if account.Name == domain.OwnersDrawAccount {
				report.TotalEquity = report.TotalEquity.Sub(balance)
			} else {
				report.TotalEquity = report.TotalEquity.Add(balance)
			}
		}
	}

	report.Difference = report.TotalAssets.Sub(report.TotalLiabilities.Add(report.TotalEquity))
	report.IsBalanced = report.Difference.Abs().LessThan(balancedTolerance)
	return report
}

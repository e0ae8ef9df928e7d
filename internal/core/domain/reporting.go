package domain

import "github.com/shopspring/decimal"

// ReportLine is one category row on a profit and loss report.
type ReportLine struct {
	Category     string          `json:"category"`
	ScheduleLine string          `json:"scheduleLine"`
	Amount       decimal.Decimal `json:"amount"`
}

// PLReport is a profit and loss report over an inclusive date range.
// Lines appear in chart-of-accounts order and only when non-zero.
type PLReport struct {
	FromDate         string          `json:"fromDate"`
	ToDate           string          `json:"toDate"`
	Revenue          []ReportLine    `json:"revenue"`
	Expenses         []ReportLine    `json:"expenses"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	NetIncome        decimal.Decimal `json:"netIncome"`
	TransactionCount int             `json:"transactionCount"`
}

// AccountBalance is one account row on the balance sheet.
type AccountBalance struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// BalanceSheetReport is a balance sheet as of a date, partitioned into
// the fixed report sections. IsBalanced is diagnostic only: an unbalanced
// sheet is still produced in full so the user can investigate.
type BalanceSheetReport struct {
	AsOf                string           `json:"asOf"`
	CurrentAssets       []AccountBalance `json:"currentAssets"`
	FixedAssets         []AccountBalance `json:"fixedAssets"`
	CurrentLiabilities  []AccountBalance `json:"currentLiabilities"`
	LongTermLiabilities []AccountBalance `json:"longTermLiabilities"`
	Equity              []AccountBalance `json:"equity"`
	TotalAssets         decimal.Decimal  `json:"totalAssets"`
	TotalLiabilities    decimal.Decimal  `json:"totalLiabilities"`
	TotalEquity         decimal.Decimal  `json:"totalEquity"`
	Difference          decimal.Decimal  `json:"difference"`
	IsBalanced          bool             `json:"isBalanced"`
}

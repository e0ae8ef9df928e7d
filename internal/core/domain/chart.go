package domain

// CategoryType is the fundamental accounting type of a chart entry.
type CategoryType string

const (
	CategoryRevenue   CategoryType = "revenue"
	CategoryExpense   CategoryType = "expense"
	CategoryAsset     CategoryType = "asset"
	CategoryLiability CategoryType = "liability"
	CategoryEquity    CategoryType = "equity"
)

// BalanceSection names a fixed balance-sheet section.
type BalanceSection string

const (
	SectionCurrentAssets       BalanceSection = "Current Assets"
	SectionFixedAssets         BalanceSection = "Fixed Assets"
	SectionCurrentLiabilities  BalanceSection = "Current Liabilities"
	SectionLongTermLiabilities BalanceSection = "Long-Term Liabilities"
	SectionEquity              BalanceSection = "Equity"
)

// Category is one revenue or expense category with its Schedule E line
// label. ScheduleLine is used only for export and report display, never
// for matching.
type Category struct {
	Name         string `json:"name"`
	ScheduleLine string `json:"scheduleLine"` // empty when the category has no dedicated line
}

// BalanceAccount is one asset, liability or equity account on the balance
// sheet, assigned to a fixed report section.
type BalanceAccount struct {
	Name    string         `json:"name"`
	Type    CategoryType   `json:"type"`
	Section BalanceSection `json:"section"`
}

// Catch-all buckets for transactions whose category is unknown or empty.
const (
	OtherRevenueCategory = "Other Revenue"
	OtherExpenseCategory = "Other Expense"
)

// Accounts that get special sign handling on the balance sheet.
const (
	AccumulatedDepreciationAccount = "Accumulated Depreciation" // contra-asset
	OwnersDrawAccount              = "Owner's Draw"             // contra-equity
	RetainedEarningsAccount        = "Retained Earnings"        // recomputed, never posted incrementally
)

// RevenueCategories is the closed list of revenue categories, in report
// display order.
var RevenueCategories = []Category{
	{Name: "Rental Income", ScheduleLine: "3"},
	{Name: "Interest Income"},
	{Name: OtherRevenueCategory},
}

// ExpenseCategories is the closed list of expense categories, in report
// display order. Line numbers follow Schedule E part I.
var ExpenseCategories = []Category{
	{Name: "Cleaning & Maintenance", ScheduleLine: "7"},
	{Name: "Insurance", ScheduleLine: "9"},
	{Name: "Legal & Professional", ScheduleLine: "10"},
	{Name: "Management Fees", ScheduleLine: "11"},
	{Name: "Mortgage Interest", ScheduleLine: "12"},
	{Name: "Repairs & Maintenance", ScheduleLine: "14"},
	{Name: "Supplies", ScheduleLine: "15"},
	{Name: "Property Tax", ScheduleLine: "16"},
	{Name: "Utilities", ScheduleLine: "17"},
	{Name: "Internet & Cable", ScheduleLine: "17"},
	{Name: "Depreciation", ScheduleLine: "18"},
	{Name: "HOA Fees", ScheduleLine: "19"},
	{Name: "Pest Control", ScheduleLine: "19"},
	{Name: "Bank & Merchant Fees", ScheduleLine: "19"},
	{Name: OtherExpenseCategory, ScheduleLine: "19"},
}

// BalanceAccounts is the closed list of balance-sheet accounts, in report
// display order within their sections.
var BalanceAccounts = []BalanceAccount{
	{Name: "Checking Account", Type: CategoryAsset, Section: SectionCurrentAssets},
	{Name: "Savings Account", Type: CategoryAsset, Section: SectionCurrentAssets},
	{Name: "Rental Property", Type: CategoryAsset, Section: SectionFixedAssets},
	{Name: "Furniture & Equipment", Type: CategoryAsset, Section: SectionFixedAssets},
	{Name: AccumulatedDepreciationAccount, Type: CategoryAsset, Section: SectionFixedAssets},
	{Name: "Credit Card Payable", Type: CategoryLiability, Section: SectionCurrentLiabilities},
	{Name: "Security Deposits Held", Type: CategoryLiability, Section: SectionCurrentLiabilities},
	{Name: "Mortgage Payable", Type: CategoryLiability, Section: SectionLongTermLiabilities},
	{Name: "Owner's Capital", Type: CategoryEquity, Section: SectionEquity},
	{Name: OwnersDrawAccount, Type: CategoryEquity, Section: SectionEquity},
	{Name: RetainedEarningsAccount, Type: CategoryEquity, Section: SectionEquity},
}

// ScheduleLine returns the tax-schedule line label for a category name,
// or empty when the category is unknown or has no dedicated line.
func ScheduleLine(categoryName string) string {
	for _, c := range RevenueCategories {
		if c.Name == categoryName {
			return c.ScheduleLine
		}
	}
	for _, c := range ExpenseCategories {
		if c.Name == categoryName {
			return c.ScheduleLine
		}
	}
	return ""
}

// CategoryTypeOf classifies a chart name as revenue, expense, asset,
// liability or equity. Unknown names return the empty string.
func CategoryTypeOf(name string) CategoryType {
	for _, c := range RevenueCategories {
		if c.Name == name {
			return CategoryRevenue
		}
	}
	for _, c := range ExpenseCategories {
		if c.Name == name {
			return CategoryExpense
		}
	}
	for _, a := range BalanceAccounts {
		if a.Name == name {
			return a.Type
		}
	}
	return ""
}

// IsRevenueCategory reports whether name is a known revenue category.
func IsRevenueCategory(name string) bool {
	return CategoryTypeOf(name) == CategoryRevenue
}

// IsExpenseCategory reports whether name is a known expense category.
func IsExpenseCategory(name string) bool {
	return CategoryTypeOf(name) == CategoryExpense
}

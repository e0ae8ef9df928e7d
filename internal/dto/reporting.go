package dto

import "github.com/condobooks/condo_books_app/internal/core/domain"

// PLExportRows flattens a P&L report into tabular rows for spreadsheet
// export: one row per category line carrying the category name, the
// tax-schedule line label, and the amount.
func PLExportRows(report *domain.PLReport) [][]string {
	rows := [][]string{{"Section", "Category", "Schedule Line", "Amount"}}
	for _, line := range report.Revenue {
		rows = append(rows, []string{"Revenue", line.Category, scheduleLabel(line.ScheduleLine), line.Amount.StringFixed(2)})
	}
	for _, line := range report.Expenses {
		rows = append(rows, []string{"Expenses", line.Category, scheduleLabel(line.ScheduleLine), line.Amount.StringFixed(2)})
	}
	rows = append(rows,
		[]string{"Totals", "Total Revenue", "", report.TotalRevenue.StringFixed(2)},
		[]string{"Totals", "Total Expenses", "", report.TotalExpenses.StringFixed(2)},
		[]string{"Totals", "Net Income", "", report.NetIncome.StringFixed(2)},
	)
	return rows
}

func scheduleLabel(line string) string {
	if line == "" {
		return ""
	}
	return "Line " + line
}

package dto

// DashboardResponse summarizes the dataset for the landing view.
type DashboardResponse struct {
	TransactionCount   int                   `json:"transactionCount"`
	UnapprovedCount    int                   `json:"unapprovedCount"`
	UncategorizedCount int                   `json:"uncategorizedCount"`
	AccountCount       int                   `json:"accountCount"`
	RuleCount          int                   `json:"ruleCount"`
	PatternCount       int                   `json:"patternCount"`
	RecentBatches      []ImportBatchResponse `json:"recentBatches"`
}

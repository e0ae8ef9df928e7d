package domain

// MatchType selects how a rule's match text is compared against a
// transaction description. All comparisons are case-insensitive.
type MatchType string

const (
	MatchContains   MatchType = "contains"
	MatchStartsWith MatchType = "startsWith"
	MatchExact      MatchType = "exact"
)

// Rule is an explicit, user-owned categorization rule (layer 1 of the
// categorization engine). Rules are evaluated in stored order and the
// first match wins.
type Rule struct {
	RuleID    string          `json:"ruleID"`
	Match     string          `json:"match"`
	MatchType MatchType       `json:"matchType"`
	Type      TransactionType `json:"type"`
	Category  string          `json:"category"`
	Active    bool            `json:"active"`
	AuditFields
}

package dto

// CreateRuleRequest adds an explicit categorization rule to the end of
// the ordered rule list.
type CreateRuleRequest struct {
	Match     string `json:"match" binding:"required"`
	MatchType string `json:"matchType" binding:"required,oneof=contains startsWith exact"`
	Type      string `json:"type" binding:"required,oneof=revenue expense"`
	Category  string `json:"category" binding:"required"`
	Active    *bool  `json:"active,omitempty"`
}

// UpdateRuleRequest edits a rule in place. Nil fields are unchanged.
type UpdateRuleRequest struct {
	Match     *string `json:"match,omitempty"`
	MatchType *string `json:"matchType,omitempty" binding:"omitempty,oneof=contains startsWith exact"`
	Type      *string `json:"type,omitempty" binding:"omitempty,oneof=revenue expense"`
	Category  *string `json:"category,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// RuleFromTransactionRequest builds a rule out of an existing
// transaction's description, defaulting to a contains match on its
// vendor key.
type RuleFromTransactionRequest struct {
	Category  string  `json:"category" binding:"required"`
	MatchType *string `json:"matchType,omitempty" binding:"omitempty,oneof=contains startsWith exact"`
	Match     *string `json:"match,omitempty"`
}

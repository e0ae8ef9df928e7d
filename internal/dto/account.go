package dto

import "github.com/shopspring/decimal"

// CreateAccountRequest registers a bank or credit-card account.
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required"`
	Type           string          `json:"type" binding:"required,oneof=checking savings credit_card"`
	Institution    string          `json:"institution"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	OpeningDate    string          `json:"openingDate" binding:"omitempty,isodate"`
}

// UpdateAccountRequest edits an account. Nil fields are unchanged.
type UpdateAccountRequest struct {
	Name           *string          `json:"name,omitempty"`
	Institution    *string          `json:"institution,omitempty"`
	OpeningBalance *decimal.Decimal `json:"openingBalance,omitempty"`
	OpeningDate    *string          `json:"openingDate,omitempty" binding:"omitempty,isodate"`
	IsActive       *bool            `json:"isActive,omitempty"`
}

package domain

// MaxPatternSamples caps how many raw descriptions a pattern retains.
const MaxPatternSamples = 5

// HighConfidenceUses is the approval count at which a learned pattern is
// promoted from medium to high confidence.
const HighConfidenceUses = 3

// LearnedPattern is a vendor-keyed categorization learned from user
// approvals (layer 2 of the categorization engine). A pattern always
// reflects the user's most recent decision: approving a different
// category for the same vendor resets the pattern rather than averaging.
type LearnedPattern struct {
	VendorKey  string          `json:"vendorKey"`
	Type       TransactionType `json:"type"`
	Category   string          `json:"category"`
	TimesUsed  int             `json:"timesUsed"`
	LastUsed   string          `json:"lastUsed"` // ISO YYYY-MM-DD
	Confidence Confidence      `json:"confidence"`
	Samples    []string        `json:"samples"` // deduplicated raw descriptions, most recent kept
}

// PatternConfidence derives confidence from an approval count.
func PatternConfidence(timesUsed int) Confidence {
	if timesUsed >= HighConfidenceUses {
		return ConfidenceHigh
	}
	return ConfidenceMedium
}

package services

import (
	"sort"
	"strings"
	"time"

	"github.com/condobooks/condo_books_app/internal/core/domain"
)

// MatchResult is one layer's categorization verdict.
type MatchResult struct {
	Category   string
	Type       domain.TransactionType
	Source     domain.CategorizationSource
	Confidence domain.Confidence
}

// Matcher is one layer of the categorization pipeline. Layers are tried
// in order and the first non-nil result wins, so layer order encodes
// priority; a new layer slots in without touching control flow.
type Matcher interface {
	Match(txn *domain.Transaction) *MatchResult
}

// Categorizer runs the layered pipeline: explicit rules, then learned
// patterns, then keyword suggestions.
type Categorizer struct {
	matchers []Matcher
}

// NewCategorizer builds a pipeline over the current rule list and
// pattern set.
func NewCategorizer(rules []domain.Rule, patterns map[string]domain.LearnedPattern) *Categorizer {
	return &Categorizer{
		matchers: []Matcher{
			ruleMatcher{rules: rules},
			patternMatcher{patterns: patterns},
			smartMatcher{},
		},
	}
}

// Apply categorizes one transaction in place, setting only the
// engine-assigned fields. Transfers bypass every layer; absence of a
// match is a valid terminal state, never an error.
func (c *Categorizer) Apply(txn *domain.Transaction) {
	if txn.IsTransfer || txn.Type == domain.Transfer {
		txn.Type = domain.Transfer
		txn.IsTransfer = true
		txn.Category = ""
		txn.CategorizationSource = domain.SourceNone
		txn.Confidence = domain.ConfidenceNone
		return
	}

	for _, m := range c.matchers {
		if res := m.Match(txn); res != nil {
			txn.Category = res.Category
			txn.Type = res.Type
			txn.CategorizationSource = res.Source
			txn.Confidence = res.Confidence
			txn.IsTransfer = false
			return
		}
	}

	txn.Category = ""
	txn.CategorizationSource = domain.SourceNone
	txn.Confidence = domain.ConfidenceNone
	if txn.Type == "" {
		txn.Type = domain.Expense
	}
}

// --- Layer 1: explicit rules ---

type ruleMatcher struct {
	rules []domain.Rule
}

// Match tries every active rule against the raw description first, then
// against the cleaned description. Rules are authored against either
// form, so both passes are needed. First matching rule wins.
func (m ruleMatcher) Match(txn *domain.Transaction) *MatchResult {
	for _, text := range []string{txn.OriginalDescription, txn.Description} {
		if text == "" {
			continue
		}
		lower := strings.ToLower(text)
		for _, rule := range m.rules {
			if !rule.Active {
				continue
			}
			if ruleHits(rule, lower) {
				return &MatchResult{
					Category:   rule.Category,
					Type:       rule.Type,
					Source:     domain.SourceRule,
					Confidence: domain.ConfidenceHigh,
				}
			}
		}
	}
	return nil
}

func ruleHits(rule domain.Rule, lowerText string) bool {
	match := strings.ToLower(rule.Match)
	switch rule.MatchType {
	case domain.MatchExact:
		return lowerText == match
	case domain.MatchStartsWith:
		return strings.HasPrefix(lowerText, match)
	default:
		return strings.Contains(lowerText, match)
	}
}

// --- Layer 2: learned patterns ---

type patternMatcher struct {
	patterns map[string]domain.LearnedPattern
}

func (m patternMatcher) Match(txn *domain.Transaction) *MatchResult {
	if txn.VendorKey == "" {
		return nil
	}

	if p, ok := m.patterns[txn.VendorKey]; ok {
		return &MatchResult{
			Category:   p.Category,
			Type:       p.Type,
			Source:     domain.SourceLearned,
			Confidence: p.Confidence,
		}
	}

	// Containment fallback: either key a substring of the other, but only
	// for pattern keys of length >= 3 to avoid spurious short-key hits.
	// Map order is not deterministic, so scan keys sorted.
	keys := make([]string, 0, len(m.patterns))
	for k := range m.patterns {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if len(key) < 3 {
			continue
		}
		if strings.Contains(txn.VendorKey, key) || strings.Contains(key, txn.VendorKey) {
			p := m.patterns[key]
			return &MatchResult{
				Category: p.Category,
				Type:     p.Type,
				Source:   domain.SourceLearned,
				// Weaker evidence than an exact key hit, regardless of the
				// pattern's own confidence.
				Confidence: domain.ConfidenceLow,
			}
		}
	}
	return nil
}

// --- Layer 3: keyword suggestions ---

type smartSuggestion struct {
	keywords []string
	category string
	txnType  domain.TransactionType
}

// smartSuggestions is a static ordered table; the first entry with a
// keyword found in the description wins. Utilities come before the
// management-fee entry so "waste management" lands in Utilities.
var smartSuggestions = []smartSuggestion{
	{[]string{"home depot", "lowes", "ace hardware", "harbor freight", "home improvement"}, "Repairs & Maintenance", domain.Expense},
	{[]string{"plumbing", "plumber", "electrician", "hvac", "handyman", "roofing", "appliance"}, "Repairs & Maintenance", domain.Expense},
	{[]string{"pest", "terminix", "orkin", "exterminat"}, "Pest Control", domain.Expense},
	{[]string{"cleaning", "maid", "janitorial", "carpet"}, "Cleaning & Maintenance", domain.Expense},
	{[]string{"edison", "socal gas", "water district", "waste management", "electric", "utility"}, "Utilities", domain.Expense},
	{[]string{"spectrum", "internet", "cable", "xfinity", "frontier"}, "Internet & Cable", domain.Expense},
	{[]string{"insurance", "allstate", "geico", "farmers"}, "Insurance", domain.Expense},
	{[]string{"hoa", "homeowners association", "paylease"}, "HOA Fees", domain.Expense},
	{[]string{"property tax", "tax collector", "county of"}, "Property Tax", domain.Expense},
	{[]string{"mortgage", "mr.cooper", "loan servicing"}, "Mortgage Interest", domain.Expense},
	{[]string{"amazon", "costco", "walmart", "staples", "office depot"}, "Supplies", domain.Expense},
	{[]string{"monthly maint", "service fee", "overdraft", "wire fee"}, "Bank & Merchant Fees", domain.Expense},
	{[]string{"attorney", "legal", "cpa", "accounting"}, "Legal & Professional", domain.Expense},
	{[]string{"property management", "management fee"}, "Management Fees", domain.Expense},
	{[]string{"zelle", "tenant", "rent "}, "Rental Income", domain.Revenue},
	{[]string{"interest earned"}, "Interest Income", domain.Revenue},
}

type smartMatcher struct{}

func (smartMatcher) Match(txn *domain.Transaction) *MatchResult {
	for _, text := range []string{txn.OriginalDescription, txn.Description} {
		if text == "" {
			continue
		}
		lower := strings.ToLower(text)
		for _, s := range smartSuggestions {
			for _, kw := range s.keywords {
				if strings.Contains(lower, kw) {
					return &MatchResult{
						Category:   s.category,
						Type:       s.txnType,
						Source:     domain.SourceSmart,
						Confidence: domain.ConfidenceLow,
					}
				}
			}
		}
	}
	return nil
}

// RecordApproval folds one approved transaction into the pattern set.
// A no-op for transfers, uncategorized transactions and empty vendor
// keys. Approving the same category increments the pattern; approving a
// different category resets it, because the pattern tracks the user's
// latest decision, not a historical majority.
func RecordApproval(patterns map[string]domain.LearnedPattern, txn *domain.Transaction) {
	if txn.VendorKey == "" || txn.IsTransfer || txn.Type == domain.Transfer || txn.Category == "" {
		return
	}

	sample := txn.OriginalDescription
	if sample == "" {
		sample = txn.Description
	}
	today := time.Now().UTC().Format("2006-01-02")

	p, ok := patterns[txn.VendorKey]
	if ok && p.Category == txn.Category && p.Type == txn.Type {
		p.TimesUsed++
		p.LastUsed = today
		p.Confidence = domain.PatternConfidence(p.TimesUsed)
		p.Samples = appendSample(p.Samples, sample)
	} else {
		p = domain.LearnedPattern{
			VendorKey:  txn.VendorKey,
			Type:       txn.Type,
			Category:   txn.Category,
			TimesUsed:  1,
			LastUsed:   today,
			Confidence: domain.ConfidenceMedium,
			Samples:    []string{sample},
		}
	}
	patterns[txn.VendorKey] = p
}

// appendSample adds a raw description to the sample list, deduplicated
// and capped, dropping the oldest entries first.
func appendSample(samples []string, sample string) []string {
	for _, s := range samples {
		if s == sample {
			return samples
		}
	}
	samples = append(samples, sample)
	if len(samples) > domain.MaxPatternSamples {
		samples = samples[len(samples)-domain.MaxPatternSamples:]
	}
	return samples
}

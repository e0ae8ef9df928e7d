// Package bankdesc normalizes raw bank statement descriptions: cleaning
// boilerplate for display, extracting a stable vendor key for pattern
// matching, and classifying rows as revenue, expense or transfer.
package bankdesc

import (
	"regexp"
	"sort"
	"strings"

	"github.com/condobooks/condo_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// boilerplatePrefixes are the statement prefixes stripped for display.
// Matching is case-insensitive and the longest prefix wins, so
// "ONLINE BANKING TRANSFER TO" is stripped before "ACH DEBIT" could
// partially apply.
var boilerplatePrefixes = []string{
	"ONLINE BANKING PAYMENT TO",
	"ONLINE BANKING TRANSFER TO",
	"ONLINE BANKING TRANSFER FROM",
	"Online Banking payment to CRD",
	"Online Banking transfer from CHK",
	"Online Banking transfer to CHK",
	"Online Banking transfer from SAV",
	"DEBIT CARD PURCHASE",
	"ACH DEBIT",
	"ACH CREDIT",
	"WIRE TRANSFER FROM",
	"ZELLE PAYMENT FROM",
	"ZELLE PAYMENT TO",
	"Online transfer from CHK",
	"Online transfer to CHK",
}

func init() {
	// Longest first so the most specific prefix is stripped.
	sort.SliceStable(boilerplatePrefixes, func(i, j int) bool {
		return len(boilerplatePrefixes[i]) > len(boilerplatePrefixes[j])
	})
}

var (
	achVendorRe     = regexp.MustCompile(`(?i)^(.+?)\s+DES:`)
	confirmationRe  = regexp.MustCompile(`(?i)\s*Confirmation#.*$`)
	transferRes     []*regexp.Regexp
	revenueRes      []*regexp.Regexp
	stateSuffixRe   *regexp.Regexp
	cityStateRe     *regexp.Regexp
	longDigitsRe    = regexp.MustCompile(`\s*\d{5,}$`)
	storeNumberRe   = regexp.MustCompile(`\s*#\s*\d+$`)
	domainSuffixRe  = regexp.MustCompile(`\.(com|net|org)$`)
	paymentPayeeRe  = regexp.MustCompile(`(?i)payment|thank\s*you`)
	whitespaceRunRe = regexp.MustCompile(`\s+`)
)

func init() {
	transferPatterns := []string{
		`online\s*(banking\s*)?transfer\s*(from|to)\s*chk`,
		`online\s*(banking\s*)?transfer\s*(from|to)\s*sav`,
		`online\s*(banking\s*)?payment\s*to\s*crd`,
		`payment\s*-?\s*thank\s*you`,
		`citi\s*card\s*online.*payment`,
		`pncbk\s*sv\s*webxfr`,
		`^transfer\b`,
	}
	for _, p := range transferPatterns {
		transferRes = append(transferRes, regexp.MustCompile(`(?i)`+p))
	}

	revenuePatterns := []string{
		`zelle\s*payment\s*from`,
		`wire\s*type:\s*wire\s*in`,
		`^interest\s*earned$`,
	}
	for _, p := range revenuePatterns {
		revenueRes = append(revenueRes, regexp.MustCompile(`(?i)`+p))
	}

	states := `a[klrz]|c[aot]|d[ce]|fl|ga|hi|i[adln]|k[sy]|la|m[adeinost]|n[cdehjmvy]|o[hkr]|pa|ri|s[cd]|t[nx]|ut|v[at]|w[aivy]`
	stateSuffixRe = regexp.MustCompile(`\s+(` + states + `)$`)
	cityStateRe = regexp.MustCompile(`\s+[a-z]+(\s+[a-z]+)?\s+(` + states + `)$`)
}

// Clean strips bank boilerplate from a raw description, yielding the text
// shown to the user. It never returns empty unless the input was empty:
// if stripping empties the string, the raw trimmed text is returned.
func Clean(raw string) string {
	desc := strings.TrimSpace(raw)
	desc = stripPrefix(desc)

	// ACH-style "<vendor> DES:..." rows carry the vendor in front of the
	// DES: marker; prefer that segment when it is informative.
	if m := achVendorRe.FindStringSubmatch(strings.TrimSpace(raw)); m != nil && len(strings.TrimSpace(m[1])) > 2 {
		desc = stripPrefix(strings.TrimSpace(m[1]))
	}

	desc = confirmationRe.ReplaceAllString(desc, "")
	desc = strings.TrimRight(strings.TrimSpace(desc), "; ")
	desc = strings.TrimSpace(desc)

	if desc == "" {
		desc = strings.TrimSpace(raw)
	}
	return desc
}

func stripPrefix(desc string) string {
	lower := strings.ToLower(desc)
	for _, prefix := range boilerplatePrefixes {
		if strings.HasPrefix(lower, strings.ToLower(prefix)) {
			return strings.TrimSpace(desc[len(prefix):])
		}
	}
	return desc
}

// VendorKey derives the normalized join key used to match a transaction
// to a learned pattern. Near-duplicate descriptions of the same vendor
// ("LOWES #2156", "LOWES #4471 PALM SPRINGS CA") must yield the same key.
func VendorKey(raw string) string {
	key := strings.ToLower(Clean(raw))
	key = whitespaceRunRe.ReplaceAllString(key, " ")
	key = strings.TrimSpace(key)

	// Suffixes stack ("<vendor> #1234 palm springs ca"), so strip until
	// the key stops changing.
	for {
		prev := key
		key = cityStateRe.ReplaceAllString(key, "")
		key = stateSuffixRe.ReplaceAllString(key, "")
		key = longDigitsRe.ReplaceAllString(key, "")
		key = storeNumberRe.ReplaceAllString(key, "")
		key = domainSuffixRe.ReplaceAllString(key, "")
		key = strings.TrimSpace(key)
		if key == prev || key == "" {
			break
		}
	}

	if key == "" {
		key = strings.TrimSpace(strings.ToLower(Clean(raw)))
	}
	return key
}

// Classify decides whether a statement row is revenue, expense or a
// transfer, and returns the transfer flag alongside the type.
//
// Transfer patterns always win regardless of account type or sign. After
// that, checking accounts use sign-of-amount as the primary signal while
// credit cards use the payee text: card statements list charges as
// positive and payments as negative, and a card payment must never be
// counted as revenue.
func Classify(raw string, amount decimal.Decimal, accountType domain.BankAccountType) (domain.TransactionType, bool) {
	for _, re := range transferRes {
		if re.MatchString(raw) {
			return domain.Transfer, true
		}
	}

	if accountType == domain.CreditCard {
		if amount.IsNegative() && paymentPayeeRe.MatchString(raw) {
			return domain.Transfer, true
		}
		return domain.Expense, false
	}

	// Checking and savings.
	for _, re := range revenueRes {
		if re.MatchString(raw) {
			return domain.Revenue, false
		}
	}
	if amount.Sign() >= 0 {
		return domain.Revenue, false
	}
	return domain.Expense, false
}

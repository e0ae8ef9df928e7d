// Package parser turns exported bank statement CSV files into raw
// statement rows. Column auto-detection and date/currency parsing live
// here; normalization and classification are the engine's job.
package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Row is one parsed statement line, still in statement terms: the amount
// keeps its sign, the description is untouched.
type Row struct {
	Date            string // ISO YYYY-MM-DD
	Description     string
	Amount          decimal.Decimal // signed, as stated
	ReferenceNumber *string
	Address         *string
	RunningBalance  *decimal.Decimal
}

// Result carries the parsed rows plus the per-row errors collected along
// the way. A bad row never aborts the import; it is recorded and skipped.
type Result struct {
	Rows   []Row
	Errors []string
}

type columnLayout struct {
	date        int
	description int
	amount      int
	balance     int
	reference   int
	address     int
}

var headerAliases = map[string][]string{
	"date":        {"date", "posted date", "transaction date", "posting date"},
	"description": {"description", "payee", "memo", "details"},
	"amount":      {"amount", "transaction amount"},
	"balance":     {"balance", "running bal.", "running balance"},
	"reference":   {"reference", "reference number", "ref", "reference no."},
	"address":     {"address"},
}

// summaryPrefixes mark non-transaction rows that statement exports mix in.
var summaryPrefixes = []string{"beginning", "total", "ending"}

// ParseStatement reads a statement CSV, auto-detects its columns from the
// header row, and parses every data row. Rows with unparseable dates or
// amounts are collected as error strings and skipped.
func ParseStatement(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // statement exports pad rows inconsistently

	layout, headerLine, err := detectColumns(reader)
	if err != nil {
		return nil, err
	}

	result := &Result{Rows: []Row{}, Errors: []string{}}
	lineNo := headerLine
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNo++
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", lineNo, err))
			continue
		}

		rawDate := field(record, layout.date)
		rawDesc := field(record, layout.description)
		if rawDate == "" || rawDesc == "" {
			continue // blank padding row
		}
		if isSummaryRow(rawDesc) {
			continue
		}

		date, ok := ParseDate(rawDate)
		if !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: unparseable date %q", lineNo, rawDate))
			continue
		}

		rawAmount := field(record, layout.amount)
		amount, ok := ParseCurrency(rawAmount)
		if !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: unparseable amount %q", lineNo, rawAmount))
			continue
		}

		row := Row{
			Date:        date,
			Description: strings.TrimSpace(rawDesc),
			Amount:      amount,
		}
		if ref := field(record, layout.reference); ref != "" {
			row.ReferenceNumber = &ref
		}
		if addr := field(record, layout.address); addr != "" {
			row.Address = &addr
		}
		if rawBal := field(record, layout.balance); rawBal != "" {
			if bal, ok := ParseCurrency(rawBal); ok {
				row.RunningBalance = &bal
			}
		}
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}

// detectColumns scans forward to the header row, tolerating the preamble
// lines banks put above the table.
func detectColumns(reader *csv.Reader) (columnLayout, int, error) {
	lineNo := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return columnLayout{}, lineNo, fmt.Errorf("no header row found: need at least date, description and amount columns")
		}
		if err != nil {
			lineNo++
			continue
		}
		lineNo++

		layout := columnLayout{date: -1, description: -1, amount: -1, balance: -1, reference: -1, address: -1}
		for i, cell := range record {
			name := strings.ToLower(strings.TrimSpace(cell))
			switch {
			case layout.date < 0 && matchesAlias(name, "date"):
				layout.date = i
			case layout.description < 0 && matchesAlias(name, "description"):
				layout.description = i
			case layout.amount < 0 && matchesAlias(name, "amount"):
				layout.amount = i
			case layout.balance < 0 && matchesAlias(name, "balance"):
				layout.balance = i
			case layout.reference < 0 && matchesAlias(name, "reference"):
				layout.reference = i
			case layout.address < 0 && matchesAlias(name, "address"):
				layout.address = i
			}
		}
		if layout.date >= 0 && layout.description >= 0 && layout.amount >= 0 {
			return layout, lineNo, nil
		}
	}
}

func matchesAlias(name, column string) bool {
	for _, alias := range headerAliases[column] {
		if name == alias {
			return true
		}
	}
	return false
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func isSummaryRow(desc string) bool {
	lower := strings.ToLower(desc)
	for _, prefix := range summaryPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

var (
	isoDateRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})`)
	usDateRe  = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)
	currencyRe = regexp.MustCompile(`[$,\s"]`)
	parensRe   = regexp.MustCompile(`^\((.+)\)$`)
)

// ParseDate accepts ISO (2025-01-15) and US (01/15/2025, 1/5/2025)
// formats and returns the canonical YYYY-MM-DD string.
func ParseDate(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[1], pad2(m[2]), pad2(m[3])), validDate(m[2], m[3])
	}
	if m := usDateRe.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[3], pad2(m[1]), pad2(m[2])), validDate(m[1], m[2])
	}
	return "", false
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func validDate(month, day string) bool {
	m := atoi(month)
	d := atoi(day)
	return m >= 1 && m <= 12 && d >= 1 && d <= 31
}

func atoi(s string) int {
	n := 0
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return -1
		}
		n = n*10 + int(ch-'0')
	}
	return n
}

// ParseCurrency parses statement money formats: "$1,234.56", "-89.99",
// accounting negatives "($485.00)", and quoted variants.
func ParseCurrency(raw string) (decimal.Decimal, bool) {
	cleaned := currencyRe.ReplaceAllString(strings.TrimSpace(raw), "")
	if cleaned == "" {
		return decimal.Zero, false
	}
	if m := parensRe.FindStringSubmatch(cleaned); m != nil {
		cleaned = "-" + m[1]
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

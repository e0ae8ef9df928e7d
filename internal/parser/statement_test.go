package parser

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatementSkipsPreambleAndSummaries(t *testing.T) {
	input := strings.Join([]string{
		`Bank Statement Export`,
		`Account: 1234`,
		``,
		`Date,Description,Amount,Running Bal.`,
		`Beginning balance as of 01/01/2025,,,"5,000.00"`,
		`01/06/2025,ZELLE PAYMENT FROM JOHN SMITH,"1,850.00","6,850.00"`,
		`01/15/2025,SO CAL EDISON DES:BILL PAYMT,-142.19,"6,707.81"`,
		`Ending balance as of 01/31/2025,,,"6,707.81"`,
	}, "\n")

	result, err := ParseStatement(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)
	assert.Empty(t, result.Errors)

	assert.Equal(t, "2025-01-06", result.Rows[0].Date)
	assert.Equal(t, "ZELLE PAYMENT FROM JOHN SMITH", result.Rows[0].Description)
	assert.True(t, result.Rows[0].Amount.Equal(decimal.NewFromFloat(1850)))
	require.NotNil(t, result.Rows[0].RunningBalance)
	assert.True(t, result.Rows[0].RunningBalance.Equal(decimal.NewFromFloat(6850)))

	assert.True(t, result.Rows[1].Amount.Equal(decimal.NewFromFloat(-142.19)))
}

func TestParseStatementCollectsRowErrors(t *testing.T) {
	input := strings.Join([]string{
		`Posted Date,Payee,Amount,Reference`,
		`01/06/2025,HOME DEPOT #6979,-85.12,24692165012345`,
		`not-a-date,LOWES #02516,-12.00,`,
		`01/08/2025,SPECTRUM,abc,`,
		`01/09/2025,TERMINIX,-120.00,`,
	}, "\n")

	result, err := ParseStatement(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, result.Rows, 2)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "unparseable date")
	assert.Contains(t, result.Errors[1], "unparseable amount")

	require.NotNil(t, result.Rows[0].ReferenceNumber)
	assert.Equal(t, "24692165012345", *result.Rows[0].ReferenceNumber)
	assert.Nil(t, result.Rows[1].ReferenceNumber)
}

func TestParseStatementNoHeader(t *testing.T) {
	input := "just some text\nwith no table at all\n"
	_, err := ParseStatement(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"2025-01-15", "2025-01-15", true},
		{"01/15/2025", "2025-01-15", true},
		{"1/5/2025", "2025-01-05", true},
		{"13/40/2025", "", false},
		{"January 15", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseDate(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw=%q", tt.raw)
		if tt.ok {
			assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
		}
	}
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"$1,234.56", "1234.56", true},
		{"-89.99", "-89.99", true},
		{"($485.00)", "-485", true},
		{`"2,500.00"`, "2500", true},
		{"", "0", false},
		{"abc", "0", false},
	}
	for _, tt := range tests {
		got, ok := ParseCurrency(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw=%q", tt.raw)
		if tt.ok {
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "raw=%q got=%s", tt.raw, got)
		}
	}
}

package bankdesc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/condobooks/condo_books_app/internal/core/domain"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "strips zelle prefix",
			raw:  "ZELLE PAYMENT FROM JOHN SMITH",
			want: "JOHN SMITH",
		},
		{
			name: "prefers vendor before DES marker",
			raw:  "SO CAL EDISON DES:BILL PAYMT ID:700123456789",
			want: "SO CAL EDISON",
		},
		{
			name: "strips confirmation suffix",
			raw:  "Online Banking payment to CRD 9876 Confirmation# 0786543",
			want: "9876",
		},
		{
			name: "falls back to raw when stripping empties the text",
			raw:  "ACH DEBIT",
			want: "ACH DEBIT",
		},
		{
			name: "plain description unchanged",
			raw:  "  HOME DEPOT #6979  ",
			want: "HOME DEPOT #6979",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.raw))
		})
	}
}

func TestVendorKeyStability(t *testing.T) {
	// Different store numbers and cities of the same chain must collapse
	// to one key, or pattern learning never accumulates.
	a := VendorKey("LOWES #02516 PALM DESERT CA")
	b := VendorKey("LOWES #04471 CATHEDRAL CITY CA")
	c := VendorKey("LOWES #01099")
	assert.Equal(t, "lowes", a)
	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
}

func TestVendorKey(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"HOME DEPOT #6979 PALM SPRINGS CA", "home depot"},
		{"TERMINIX 80012345678", "terminix"},
		{"SPECTRUM 855-707-7328", "spectrum 855-707-7328"}, // dashes keep short digit runs
		{"AMAZON.COM", "amazon"},
		{"ZELLE PAYMENT FROM JOHN SMITH", "john smith"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VendorKey(tt.raw), "raw=%q", tt.raw)
	}
}

func TestClassifyTransfers(t *testing.T) {
	tests := []string{
		"Online transfer to CHK 7948",
		"Online Banking transfer from SAV 1234",
		"Online Banking payment to CRD 9876",
		"PAYMENT - THANK YOU",
		"CITI CARD ONLINE PAYMENT",
		"PNCBK SV WEBXFR",
		"TRANSFER TO SAVINGS",
	}
	for _, raw := range tests {
		txnType, isTransfer := Classify(raw, decimal.NewFromInt(-100), domain.Checking)
		assert.Equal(t, domain.Transfer, txnType, "raw=%q", raw)
		assert.True(t, isTransfer, "raw=%q", raw)
	}
}

func TestClassifyChecking(t *testing.T) {
	// Revenue patterns win over sign.
	txnType, isTransfer := Classify("ZELLE PAYMENT FROM JOHN SMITH", decimal.NewFromInt(1850), domain.Checking)
	assert.Equal(t, domain.Revenue, txnType)
	assert.False(t, isTransfer)

	txnType, _ = Classify("WIRE TYPE: WIRE IN DATE:250110", decimal.NewFromInt(5000), domain.Checking)
	assert.Equal(t, domain.Revenue, txnType)

	txnType, _ = Classify("Interest Earned", decimal.NewFromFloat(0.42), domain.Savings)
	assert.Equal(t, domain.Revenue, txnType)

	// Otherwise sign decides.
	txnType, _ = Classify("HOME DEPOT #6979", decimal.NewFromFloat(-85.12), domain.Checking)
	assert.Equal(t, domain.Expense, txnType)

	txnType, _ = Classify("DEPOSIT", decimal.NewFromInt(200), domain.Checking)
	assert.Equal(t, domain.Revenue, txnType)
}

func TestClassifyCreditCard(t *testing.T) {
	// Card charges are positive and always expenses regardless of text.
	txnType, isTransfer := Classify("ZELLE PAYMENT FROM SOMEONE", decimal.NewFromInt(50), domain.CreditCard)
	assert.Equal(t, domain.Expense, txnType)
	assert.False(t, isTransfer)

	// A negative with payment language is the card being paid off.
	txnType, isTransfer = Classify("AUTOPAY PAYMENT RECEIVED", decimal.NewFromInt(-500), domain.CreditCard)
	assert.Equal(t, domain.Transfer, txnType)
	assert.True(t, isTransfer)

	// A negative without payment language is a refund, kept as expense so
	// it nets against the category.
	txnType, isTransfer = Classify("HOME DEPOT RETURN", decimal.NewFromFloat(-23.10), domain.CreditCard)
	assert.Equal(t, domain.Expense, txnType)
	assert.False(t, isTransfer)
}

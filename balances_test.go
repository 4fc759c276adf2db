package finbook

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestBalancesFoldPostings(t *testing.T) {
	port := testPortfolio("broker")
	journal := mustBuild(t, []Resource{
		port,
		ScopedTransaction{Portfolio: "broker", Tx: Deposit{Date: day("2024-01-02"), Amount: A(1000)}},
		ScopedTransaction{Portfolio: "broker", Tx: Buy{Date: day("2024-01-10"), Commodity: "AAPL", Price: P(100), Volume: V(4)}},
		ScopedTransaction{Portfolio: "broker", Tx: Withdraw{Date: day("2024-02-01"), Amount: A(100)}},
	})

	b := Balances(journal.Entries)

	if got := b.Quantity(port.Accounts.Cash, "USD"); !got.Equal(decimal.NewFromInt(500)) {
		t.Errorf("cash balance = %s, want 500", got)
	}
	if got := b.Quantity(port.Accounts.Position, "AAPL"); !got.Equal(decimal.NewFromInt(4)) {
		t.Errorf("position balance = %s, want 4", got)
	}
	if got := b.Quantity(port.Accounts.NetInvestment, "USD"); !got.Equal(decimal.NewFromInt(-900)) {
		t.Errorf("net investment balance = %s, want -900", got)
	}
	// The conversion plug carries no amount and must not appear.
	if _, ok := b[port.Accounts.Conversion]; ok {
		t.Error("balancing plug account has a balance")
	}
}

func TestBalancesAccountsSorted(t *testing.T) {
	b := BalanceSet{
		"z:last":  {"USD": decimal.NewFromInt(1)},
		"a:first": {"USD": decimal.NewFromInt(1)},
	}
	accounts := b.Accounts()
	if len(accounts) != 2 || accounts[0] != "a:first" || accounts[1] != "z:last" {
		t.Errorf("accounts = %v", accounts)
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		value     string
		commodity Commodity
		want      string
	}{
		{"1000", "USD", "$1,000.00"},
		{"-20", "USD", "-$20.00"},
		{"1000", "EUR", "€1,000.00"},
		{"4", "AAPL", "4 AAPL"},
	}
	for _, tt := range tests {
		value, err := decimal.NewFromString(tt.value)
		if err != nil {
			t.Fatal(err)
		}
		if got := FormatQuantity(value, tt.commodity); got != tt.want {
			t.Errorf("FormatQuantity(%s, %s) = %q, want %q", tt.value, tt.commodity, got, tt.want)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	port := testPortfolio("broker")
	journal := mustBuild(t, []Resource{
		port,
		ScopedTransaction{Portfolio: "broker", Tx: Deposit{Date: day("2024-01-02"), Amount: A(1000)}},
	})
	md := SummaryMarkdown(Balances(journal.Entries))

	if !strings.Contains(md, "| assets:broker:cash | USD | $1,000.00 |") {
		t.Errorf("summary misses the cash row:\n%s", md)
	}
	if !strings.Contains(md, "| equity:broker:net-investment | USD | -$1,000.00 |") {
		t.Errorf("summary misses the net investment row:\n%s", md)
	}
}

func TestSummaryMarkdownEmpty(t *testing.T) {
	md := SummaryMarkdown(Balances(nil))
	if !strings.Contains(md, "No postings.") {
		t.Errorf("empty summary = %q", md)
	}
}

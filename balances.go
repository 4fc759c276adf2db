package finbook

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// BalanceSet holds the signed sum of posted quantities per account and
// commodity. Amount-less balancing plugs contribute nothing.
type BalanceSet map[Account]map[Commodity]decimal.Decimal

// Balances folds the journal entries into per-account, per-commodity
// totals.
func Balances(entries []JournalEntry) BalanceSet {
	set := make(BalanceSet)
	for _, e := range entries {
		for _, p := range e.Postings {
			if p.Amount == nil {
				continue
			}
			byCommodity, ok := set[p.Account]
			if !ok {
				byCommodity = make(map[Commodity]decimal.Decimal)
				set[p.Account] = byCommodity
			}
			byCommodity[p.Amount.Commodity] = byCommodity[p.Amount.Commodity].Add(p.Amount.Quantity)
		}
	}
	return set
}

// Accounts returns the account names in sorted order.
func (b BalanceSet) Accounts() []Account {
	accounts := make([]Account, 0, len(b))
	for a := range b {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i] < accounts[j] })
	return accounts
}

// Commodities returns the commodities posted to 'account', sorted.
func (b BalanceSet) Commodities(account Account) []Commodity {
	commodities := make([]Commodity, 0, len(b[account]))
	for c := range b[account] {
		commodities = append(commodities, c)
	}
	sort.Slice(commodities, func(i, j int) bool { return commodities[i] < commodities[j] })
	return commodities
}

// Quantity returns the signed total posted to 'account' in 'commodity'.
func (b BalanceSet) Quantity(account Account, commodity Commodity) decimal.Decimal {
	return b[account][commodity]
}

// FormatQuantity renders a balance for display: currency-formatted when the
// commodity is a known ISO currency, the raw quantity with its code
// otherwise.
func FormatQuantity(value decimal.Decimal, commodity Commodity) string {
	cur := money.GetCurrency(string(commodity))
	if cur == nil {
		return fmt.Sprintf("%s %s", value, commodity)
	}
	shifted := value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(shifted.IntPart())
}

// SummaryMarkdown renders the balance set as a markdown table.
func SummaryMarkdown(b BalanceSet) string {
	var sb strings.Builder
	sb.WriteString("# Balances\n\n")
	if len(b) == 0 {
		sb.WriteString("No postings.\n")
		return sb.String()
	}
	sb.WriteString("| Account | Commodity | Balance |\n")
	sb.WriteString("|---|---|---:|\n")
	for _, account := range b.Accounts() {
		for _, commodity := range b.Commodities(account) {
			value := b.Quantity(account, commodity)
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", account, commodity, FormatQuantity(value, commodity))
		}
	}
	return sb.String()
}

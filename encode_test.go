package finbook

import (
	"strings"
	"testing"
)

const sampleResources = `
kind: CashBalancePortfolio
spec:
  port_id: broker
  base_currency: USD
  accounts:
    cash_account: assets:broker:cash
    cash_ar_account: assets:broker:receivable
    position_account: assets:broker:positions
    net_investment_account: equity:broker:net-investment
    conversion_account: equity:broker:conversion
    commission_account: expenses:broker:commission
    vat_account: expenses:broker:vat
    profit_loss_account: income:broker:pnl
---
kind: CommodityList
spec: [AAPL, MSFT]
---
kind: Commodity
spec: GOOG
---
kind: Deposit
spec:
  port_id: broker
  detail:
    date: 2024-01-02
    amount: 10000
    comment: initial funding
---
kind: Buy
spec:
  port_id: broker
  detail:
    date: 2024-01-10
    commodity: AAPL
    price: 180.5
    volume: 10
    commission: 2
    vat: 0.4
---
kind: Sell
spec:
  port_id: broker
  detail:
    date: 2024-02-01
    settlement_date: 2024-02-03
    commodity: AAPL
    price: "190.25"
    volume: 4
---
kind: Withdraw
spec:
  port_id: broker
  detail:
    date: 2024-03-01
    amount: 500
`

func TestDecodeResources(t *testing.T) {
	resources, err := DecodeResources(strings.NewReader(sampleResources))
	if err != nil {
		t.Fatal(err)
	}
	if len(resources) != 7 {
		t.Fatalf("got %d resources, want 7", len(resources))
	}

	port, ok := resources[0].(*CashBalancePortfolio)
	if !ok {
		t.Fatalf("resource 0 is %T, want *CashBalancePortfolio", resources[0])
	}
	if port.ID != "broker" || port.BaseCurrency != "USD" {
		t.Errorf("portfolio = %s %s, want broker USD", port.ID, port.BaseCurrency)
	}
	if port.Accounts.ProfitLoss != "income:broker:pnl" {
		t.Errorf("profit loss account = %s", port.Accounts.ProfitLoss)
	}
	if err := port.Validate(); err != nil {
		t.Errorf("decoded portfolio does not validate: %v", err)
	}

	if got := resources[1].(CommodityListDecl); len(got) != 2 || got[0] != "AAPL" {
		t.Errorf("commodity list = %v", got)
	}
	if got := resources[2].(CommodityDecl); got != "GOOG" {
		t.Errorf("commodity = %v", got)
	}

	deposit := resources[3].(ScopedTransaction)
	if deposit.Portfolio != "broker" {
		t.Errorf("deposit portfolio = %s", deposit.Portfolio)
	}
	d := deposit.Tx.(Deposit)
	if d.Date != day("2024-01-02") || !d.Amount.Equal(A(10000)) || d.Comment != "initial funding" {
		t.Errorf("deposit = %+v", d)
	}

	buy := resources[4].(ScopedTransaction).Tx.(Buy)
	if !buy.Price.Equal(P(180.5)) || !buy.Volume.Equal(V(10)) {
		t.Errorf("buy = %+v", buy)
	}
	if !buy.Commission.Equal(A(2)) || !buy.VAT.Equal(A(0.4)) {
		t.Errorf("buy fees = %s %s", buy.Commission, buy.VAT)
	}

	sell := resources[5].(ScopedTransaction).Tx.(Sell)
	if sell.SettlementDate != day("2024-02-03") {
		t.Errorf("sell settlement date = %s", sell.SettlementDate)
	}
	// Quoted decimal strings keep their exact value.
	if got := sell.Price.String(); got != "190.25" {
		t.Errorf("sell price = %s, want 190.25", got)
	}

	withdraw := resources[6].(ScopedTransaction).Tx.(Withdraw)
	if !withdraw.Amount.Equal(A(500)) {
		t.Errorf("withdraw = %+v", withdraw)
	}
}

func TestDecodeResourcesSkipsEmptyDocuments(t *testing.T) {
	resources, err := DecodeResources(strings.NewReader("---\n---\nkind: Commodity\nspec: AAPL\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(resources) != 1 {
		t.Errorf("got %d resources, want 1", len(resources))
	}
}

func TestDecodeResourcesUnknownKind(t *testing.T) {
	_, err := DecodeResources(strings.NewReader("kind: Dividend\nspec: {}\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown resource kind") {
		t.Errorf("got %v, want an unknown kind error", err)
	}
}

func TestDecodeResourcesEmptyStream(t *testing.T) {
	resources, err := DecodeResources(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(resources) != 0 {
		t.Errorf("got %d resources, want none", len(resources))
	}
}

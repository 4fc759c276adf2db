package finbook

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// cmpOpts compares value types by their numeric value, not representation.
var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b Date) bool { return a == b }),
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Price) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Volume) bool { return a.Equal(b) }),
}

func usd(account Account, value float64) Posting {
	return Posting{Account: account, Amount: &PostingAmount{Commodity: "USD", Quantity: decimal.NewFromFloat(value)}}
}

func mustBuild(t *testing.T, resources []Resource) *Journal {
	t.Helper()
	journal, err := BuildJournal(resources, FIFO)
	if err != nil {
		t.Fatal(err)
	}
	return journal
}

func TestDepositEntry(t *testing.T) {
	port := testPortfolio("broker")
	journal := mustBuild(t, []Resource{
		port,
		ScopedTransaction{Portfolio: "broker", Tx: Deposit{Date: day("2024-01-02"), Amount: A(1000), Comment: "initial funding"}},
	})

	want := []JournalEntry{{
		Date:        day("2024-01-02"),
		Description: "Deposit (initial funding)",
		Postings: []Posting{
			usd(port.Accounts.Cash, 1000),
			usd(port.Accounts.NetInvestment, -1000),
		},
	}}
	if diff := cmp.Diff(want, journal.Entries, cmpOpts); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestWithdrawEntry(t *testing.T) {
	port := testPortfolio("broker")
	journal := mustBuild(t, []Resource{
		port,
		ScopedTransaction{Portfolio: "broker", Tx: Withdraw{Date: day("2024-03-01"), Amount: A(250)}},
	})

	want := []JournalEntry{{
		Date:        day("2024-03-01"),
		Description: "Withdraw",
		Postings: []Posting{
			usd(port.Accounts.Cash, -250),
			usd(port.Accounts.NetInvestment, 250),
		},
	}}
	if diff := cmp.Diff(want, journal.Entries, cmpOpts); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestBuyEntry(t *testing.T) {
	port := testPortfolio("broker")
	journal := mustBuild(t, []Resource{
		port,
		ScopedTransaction{Portfolio: "broker", Tx: Buy{
			Date: day("2024-01-10"), Commodity: "AAPL", Price: P(100), Volume: V(10),
			Commission: A(2), VAT: A(0.4),
		}},
	})

	want := []JournalEntry{{
		Date:        day("2024-01-10"),
		Description: "Buy 10 AAPL @100",
		Postings: []Posting{
			{Account: port.Accounts.Position, Amount: &PostingAmount{Commodity: "AAPL", Quantity: decimal.NewFromInt(10)}},
			usd(port.Accounts.Cash, -1002.4),
			usd(port.Accounts.Commission, 2),
			usd(port.Accounts.VAT, 0.4),
			{Account: port.Accounts.Conversion},
		},
		Inventory: []Lot{lot("2024-01-10", 100, 10)},
	}}
	if diff := cmp.Diff(want, journal.Entries, cmpOpts); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestSellProducesSaleAndSettlementEntries(t *testing.T) {
	port := testPortfolio("broker")
	journal := mustBuild(t, []Resource{
		port,
		ScopedTransaction{Portfolio: "broker", Tx: Buy{Date: day("2024-01-10"), Commodity: "AAPL", Price: P(100), Volume: V(10)}},
		ScopedTransaction{Portfolio: "broker", Tx: Sell{
			Date: day("2024-02-01"), SettlementDate: day("2024-02-03"),
			Commodity: "AAPL", Price: P(102), Volume: V(10),
		}},
	})

	if len(journal.Entries) != 3 {
		t.Fatalf("got %d entries, want 3 (buy, sell, settle)", len(journal.Entries))
	}

	sale := journal.Entries[1]
	wantSale := JournalEntry{
		Date:        day("2024-02-01"),
		Description: "Sell 10 AAPL @102",
		Postings: []Posting{
			{Account: port.Accounts.Position, Amount: &PostingAmount{Commodity: "AAPL", Quantity: decimal.NewFromInt(-10)}},
			usd(port.Accounts.CashAR, 1020),
			usd(port.Accounts.Commission, 0),
			usd(port.Accounts.VAT, 0),
			withComment(usd(port.Accounts.ProfitLoss, -20), "10 @100"),
			{Account: port.Accounts.Conversion},
		},
		Inventory: []Lot{},
	}
	if diff := cmp.Diff(wantSale, sale, cmpOpts); diff != "" {
		t.Errorf("sale entry mismatch (-want +got):\n%s", diff)
	}

	settle := journal.Entries[2]
	wantSettle := JournalEntry{
		Date:        day("2024-02-03"),
		Description: "Settle 10 AAPL @102",
		Postings: []Posting{
			usd(port.Accounts.Cash, 1020),
			{Account: port.Accounts.CashAR},
		},
	}
	if diff := cmp.Diff(wantSettle, settle, cmpOpts); diff != "" {
		t.Errorf("settlement entry mismatch (-want +got):\n%s", diff)
	}
}

func TestSellAcrossLotsRealizesPerLot(t *testing.T) {
	port := testPortfolio("broker")
	journal := mustBuild(t, []Resource{
		port,
		ScopedTransaction{Portfolio: "broker", Tx: Buy{Date: day("2024-01-10"), Commodity: "AAPL", Price: P(10), Volume: V(5)}},
		ScopedTransaction{Portfolio: "broker", Tx: Buy{Date: day("2024-02-10"), Commodity: "AAPL", Price: P(20), Volume: V(5)}},
		ScopedTransaction{Portfolio: "broker", Tx: Sell{Date: day("2024-03-01"), Commodity: "AAPL", Price: P(30), Volume: V(8)}},
	})

	sale := journal.Entries[2]
	var pnl *Posting
	for i := range sale.Postings {
		if sale.Postings[i].Account == port.Accounts.ProfitLoss {
			pnl = &sale.Postings[i]
		}
	}
	if pnl == nil {
		t.Fatal("no profit and loss posting in sale entry")
	}
	// (30-10)*5 + (30-20)*3 = 130 of profit, posted as a credit.
	if want := decimal.NewFromInt(-130); !pnl.Amount.Quantity.Equal(want) {
		t.Errorf("profit and loss = %s, want %s", pnl.Amount.Quantity, want)
	}
	if want := "5 @10 / 3 @20"; pnl.Comment != want {
		t.Errorf("profit and loss comment = %q, want %q", pnl.Comment, want)
	}

	wantInventory := []Lot{lot("2024-02-10", 20, 2)}
	if diff := cmp.Diff(wantInventory, sale.Inventory, cmpOpts); diff != "" {
		t.Errorf("inventory snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestSettlementDefaultsToTradeDate(t *testing.T) {
	journal := mustBuild(t, []Resource{
		testPortfolio("broker"),
		ScopedTransaction{Portfolio: "broker", Tx: Buy{Date: day("2024-01-10"), Commodity: "AAPL", Price: P(100), Volume: V(1)}},
		ScopedTransaction{Portfolio: "broker", Tx: Sell{Date: day("2024-02-01"), Commodity: "AAPL", Price: P(100), Volume: V(1)}},
	})
	settle := journal.Entries[2]
	if settle.Date != day("2024-02-01") {
		t.Errorf("settlement date = %s, want the trade date", settle.Date)
	}
}

func TestSameDateTransactionsKeepInputOrder(t *testing.T) {
	// A deposit and a buy on the same day must replay in input order, so
	// the buy can spend the deposited cash.
	journal := mustBuild(t, []Resource{
		testPortfolio("broker"),
		ScopedTransaction{Portfolio: "broker", Tx: Deposit{Date: day("2024-01-02"), Amount: A(1000)}},
		ScopedTransaction{Portfolio: "broker", Tx: Buy{Date: day("2024-01-02"), Commodity: "AAPL", Price: P(100), Volume: V(5)}},
		ScopedTransaction{Portfolio: "broker", Tx: Deposit{Date: day("2024-01-01"), Amount: A(1)}},
	})

	var got []string
	for _, e := range journal.Entries {
		got = append(got, e.Date.String()+" "+e.Description)
	}
	want := []string{
		"2024-01-01 Deposit",
		"2024-01-02 Deposit",
		"2024-01-02 Buy 5 AAPL @100",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entry order mismatch (-want +got):\n%s", diff)
	}
}

func TestPortfolioInventoriesAreIsolated(t *testing.T) {
	// A lot bought in one portfolio cannot cover a sale in another.
	_, err := BuildJournal([]Resource{
		testPortfolio("alpha"),
		testPortfolio("beta"),
		ScopedTransaction{Portfolio: "alpha", Tx: Buy{Date: day("2024-01-10"), Commodity: "AAPL", Price: P(100), Volume: V(10)}},
		ScopedTransaction{Portfolio: "beta", Tx: Sell{Date: day("2024-02-01"), Commodity: "AAPL", Price: P(100), Volume: V(10)}},
	}, FIFO)

	var shortfall *InsufficientInventoryError
	if !errors.As(err, &shortfall) {
		t.Fatalf("got error %v, want an inventory shortfall for beta", err)
	}
	if !strings.Contains(err.Error(), `portfolio "beta"`) {
		t.Errorf("error %q does not name the failing portfolio", err)
	}
}

func TestFailingPortfolioDoesNotBlockOthers(t *testing.T) {
	journal, err := BuildJournal([]Resource{
		testPortfolio("bad"),
		testPortfolio("good"),
		ScopedTransaction{Portfolio: "bad", Tx: Sell{Date: day("2024-02-01"), Commodity: "AAPL", Price: P(100), Volume: V(10)}},
		ScopedTransaction{Portfolio: "good", Tx: Deposit{Date: day("2024-01-02"), Amount: A(100)}},
	}, FIFO)
	if err == nil {
		t.Fatal("expected an error for the failing portfolio")
	}

	// The healthy portfolio's entries are still produced, the failing
	// portfolio's are withheld entirely.
	if len(journal.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(journal.Entries))
	}
	if journal.Entries[0].Description != "Deposit" {
		t.Errorf("surviving entry = %q, want the deposit", journal.Entries[0].Description)
	}
}

func TestOrphanedTransactionsAreReported(t *testing.T) {
	journal := mustBuild(t, []Resource{
		testPortfolio("broker"),
		ScopedTransaction{Portfolio: "ghost", Tx: Deposit{Date: day("2024-01-02"), Amount: A(100)}},
		ScopedTransaction{Portfolio: "ghost", Tx: Withdraw{Date: day("2024-01-03"), Amount: A(50)}},
	})

	if len(journal.Entries) != 0 {
		t.Errorf("got %d entries, want none for orphaned transactions", len(journal.Entries))
	}
	want := []OrphanedTransactions{{Portfolio: "ghost", Count: 2}}
	if diff := cmp.Diff(want, journal.Orphans); diff != "" {
		t.Errorf("orphans mismatch (-want +got):\n%s", diff)
	}
}

func TestPortfoliosKeepFirstEncounterOrder(t *testing.T) {
	journal := mustBuild(t, []Resource{
		testPortfolio("zulu"),
		testPortfolio("alpha"),
		ScopedTransaction{Portfolio: "alpha", Tx: Deposit{Date: day("2024-01-02"), Amount: A(1)}},
		ScopedTransaction{Portfolio: "zulu", Tx: Deposit{Date: day("2024-01-01"), Amount: A(1)}},
	})

	// zulu was defined first, so its entries come first even though alpha
	// sorts before it.
	if len(journal.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(journal.Entries))
	}
	if journal.Entries[0].Postings[0].Account != testPortfolio("zulu").Accounts.Cash {
		t.Errorf("first entry belongs to %s, want zulu", journal.Entries[0].Postings[0].Account)
	}
}

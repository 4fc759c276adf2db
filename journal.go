package finbook

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// PostingAmount is the quantity of one commodity moved by a posting. Cash
// legs carry the portfolio's base currency; position legs carry the traded
// commodity itself.
type PostingAmount struct {
	Commodity Commodity       `json:"commodity"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// Posting is one account-leg of a journal entry. A nil Amount marks a
// balancing plug whose value is inferred by the ledger tool.
type Posting struct {
	Account Account        `json:"account"`
	Amount  *PostingAmount `json:"amount,omitempty"`
	Comment string         `json:"comment,omitempty"`
}

// JournalEntry is a dated, described, balanced set of postings. Entries for
// buys and sells also carry a snapshot of the commodity's open lots taken
// right after the transaction was applied.
type JournalEntry struct {
	Date        Date      `json:"date"`
	Description string    `json:"description"`
	Postings    []Posting `json:"postings"`
	Inventory   []Lot     `json:"inventory,omitempty"`
}

// Journal is the ordered result of replaying every portfolio's
// transactions.
type Journal struct {
	Entries []JournalEntry
	// Orphans lists transactions whose portfolio id matches no portfolio
	// definition. They are excluded from Entries; callers decide whether
	// that is a warning or a failure.
	Orphans []OrphanedTransactions
}

// BuildJournal categorizes the resources and replays each portfolio's
// transactions in chronological order against fresh per-commodity
// inventories, concatenating the resulting entries in portfolio
// first-encounter order.
//
// A failing portfolio (e.g. a sale exceeding its tracked inventory) aborts
// that portfolio only: its entries are withheld and the error is reported,
// while the remaining portfolios are still processed. All portfolio errors
// are combined into the returned error; the entries of healthy portfolios
// are returned alongside it.
func BuildJournal(resources []Resource, method CostBasisMethod) (*Journal, error) {
	categorized := Categorize(resources)
	journal := &Journal{Orphans: categorized.Orphans()}

	var errs error
	for _, port := range categorized.Portfolios() {
		transactions := categorized.Transactions(port.ID)
		if len(transactions) == 0 {
			continue
		}
		writer := newJournalWriter(port, method)
		entries, err := writer.writeAll(transactions)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("portfolio %q: %w", port.ID, err))
			continue
		}
		journal.Entries = append(journal.Entries, entries...)
	}
	return journal, errs
}

// sequence establishes the deterministic processing order: by date first,
// and by original input position for transactions sharing a date. The
// stable sort makes the tie-break hold by construction.
func sequence(transactions []Transaction) []Transaction {
	out := make([]Transaction, len(transactions))
	copy(out, transactions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].When().Before(out[j].When())
	})
	return out
}

// journalWriter replays one portfolio's transactions, threading mutable
// per-commodity inventories across iterations. Inventories are created on
// first reference and live for a single build pass.
type journalWriter struct {
	port        *CashBalancePortfolio
	method      CostBasisMethod
	inventories map[Commodity]Inventory
}

func newJournalWriter(port *CashBalancePortfolio, method CostBasisMethod) *journalWriter {
	return &journalWriter{
		port:        port,
		method:      method,
		inventories: make(map[Commodity]Inventory),
	}
}

func (w *journalWriter) writeAll(transactions []Transaction) ([]JournalEntry, error) {
	var entries []JournalEntry
	for _, tx := range sequence(transactions) {
		switch t := tx.(type) {
		case Deposit:
			entries = append(entries, w.deposit(t))
		case Withdraw:
			entries = append(entries, w.withdraw(t))
		case Buy:
			entry, err := w.buy(t)
			if err != nil {
				return entries, err
			}
			entries = append(entries, entry)
		case Sell:
			sold, err := w.sell(t)
			if err != nil {
				return entries, err
			}
			entries = append(entries, sold...)
		default:
			return entries, fmt.Errorf("unhandled transaction type: %T", tx)
		}
	}
	return entries, nil
}

// inventory returns the lot inventory for 'commodity', creating it on
// first reference.
func (w *journalWriter) inventory(commodity Commodity) (Inventory, error) {
	if inv, ok := w.inventories[commodity]; ok {
		return inv, nil
	}
	inv, err := newInventory(w.method, commodity)
	if err != nil {
		return nil, err
	}
	w.inventories[commodity] = inv
	return inv, nil
}

func (w *journalWriter) deposit(t Deposit) JournalEntry {
	return JournalEntry{
		Date:        t.Date,
		Description: "Deposit" + commentSuffix(t.Comment),
		Postings: []Posting{
			w.cash(w.port.Accounts.Cash, t.Amount),
			w.cash(w.port.Accounts.NetInvestment, t.Amount.Neg()),
		},
	}
}

func (w *journalWriter) withdraw(t Withdraw) JournalEntry {
	return JournalEntry{
		Date:        t.Date,
		Description: "Withdraw" + commentSuffix(t.Comment),
		Postings: []Posting{
			w.cash(w.port.Accounts.Cash, t.Amount.Neg()),
			w.cash(w.port.Accounts.NetInvestment, t.Amount),
		},
	}
}

func (w *journalWriter) buy(t Buy) (JournalEntry, error) {
	inv, err := w.inventory(t.Commodity)
	if err != nil {
		return JournalEntry{}, err
	}
	inv.Push(Lot{Date: t.Date, Price: t.Price, Volume: t.Volume})

	// The gross cost plus fees leaves the cash account in one leg.
	cashSpent := t.Price.Mul(t.Volume).Neg().Sub(t.Commission).Sub(t.VAT)

	return JournalEntry{
		Date:        t.Date,
		Description: fmt.Sprintf("Buy %s %s @%s%s", t.Volume, t.Commodity, t.Price, commentSuffix(t.Comment)),
		Postings: []Posting{
			w.position(t.Commodity, t.Volume),
			w.cash(w.port.Accounts.Cash, cashSpent),
			w.cash(w.port.Accounts.Commission, t.Commission),
			w.cash(w.port.Accounts.VAT, t.VAT),
			{Account: w.port.Accounts.Conversion},
		},
		Inventory: inv.Lots(),
	}, nil
}

func (w *journalWriter) sell(t Sell) ([]JournalEntry, error) {
	inv, err := w.inventory(t.Commodity)
	if err != nil {
		return nil, err
	}
	used, err := inv.Pop(t.Volume)
	if err != nil {
		return nil, err
	}

	cashReceived := t.Price.Mul(t.Volume).Sub(t.Commission).Sub(t.VAT)

	// Realized result against the consumed lots. Income is a credit, so a
	// sale above acquisition price posts a negative amount here.
	profitLoss := A(decimal.Zero)
	lotParts := make([]string, 0, len(used))
	for _, lot := range used {
		profitLoss = profitLoss.Sub(t.Price.Sub(lot.Price).Mul(lot.Volume))
		lotParts = append(lotParts, fmt.Sprintf("%s @%s", lot.Volume, lot.Price))
	}

	sellEntry := JournalEntry{
		Date:        t.Date,
		Description: fmt.Sprintf("Sell %s %s @%s%s", t.Volume, t.Commodity, t.Price, commentSuffix(t.Comment)),
		Postings: []Posting{
			w.position(t.Commodity, t.Volume.Neg()),
			w.cash(w.port.Accounts.CashAR, cashReceived),
			w.cash(w.port.Accounts.Commission, t.Commission),
			w.cash(w.port.Accounts.VAT, t.VAT),
			withComment(w.cash(w.port.Accounts.ProfitLoss, profitLoss), strings.Join(lotParts, " / ")),
			{Account: w.port.Accounts.Conversion},
		},
		Inventory: inv.Lots(),
	}

	// Proceeds sit in the receivable account until the settlement date.
	settledOn := t.SettlementDate
	if settledOn.IsZero() {
		settledOn = t.Date
	}
	settlementEntry := JournalEntry{
		Date:        settledOn,
		Description: fmt.Sprintf("Settle %s %s @%s", t.Volume, t.Commodity, t.Price),
		Postings: []Posting{
			w.cash(w.port.Accounts.Cash, cashReceived),
			{Account: w.port.Accounts.CashAR},
		},
	}
	return []JournalEntry{sellEntry, settlementEntry}, nil
}

// cash builds a posting in the portfolio's base currency.
func (w *journalWriter) cash(account Account, amount Amount) Posting {
	return Posting{
		Account: account,
		Amount:  &PostingAmount{Commodity: w.port.BaseCurrency, Quantity: amount.Decimal()},
	}
}

// position builds a posting carrying commodity units.
func (w *journalWriter) position(commodity Commodity, volume Volume) Posting {
	return Posting{
		Account: w.port.Accounts.Position,
		Amount:  &PostingAmount{Commodity: commodity, Quantity: volume.Decimal()},
	}
}

func withComment(p Posting, comment string) Posting {
	p.Comment = comment
	return p
}

func commentSuffix(comment string) string {
	if comment == "" {
		return ""
	}
	return " (" + comment + ")"
}

package finbook

import (
	"fmt"
	"io"
	"strings"
)

// avgCostPlaces is the display rounding of the average-cost annotation.
// Stored lot prices are never rounded.
const avgCostPlaces = 6

// RenderEntry formats one journal entry in the hledger text format: the
// date and description on one line (with an optional average-cost and
// inventory comment), then one indented line per posting, aligned on the
// longest account name.
func RenderEntry(e JournalEntry) string {
	var b strings.Builder
	b.WriteString(e.Date.String())
	b.WriteString(" ")
	b.WriteString(e.Description)
	if e.Inventory != nil {
		total, avg := AverageCost(e.Inventory, avgCostPlaces)
		lotParts := make([]string, 0, len(e.Inventory))
		for _, lot := range e.Inventory {
			lotParts = append(lotParts, fmt.Sprintf("%s @%s", lot.Volume, lot.Price))
		}
		fmt.Fprintf(&b, "  ; avg %s @%s ; inventory [%s]", total, avg, strings.Join(lotParts, ", "))
	}

	maxAccountLen := 0
	for _, p := range e.Postings {
		if len(p.Account) > maxAccountLen {
			maxAccountLen = len(p.Account)
		}
	}
	for _, p := range e.Postings {
		b.WriteString("\n    ")
		b.WriteString(string(p.Account))
		b.WriteString(strings.Repeat(" ", maxAccountLen+4-len(p.Account)))
		if p.Amount != nil {
			fmt.Fprintf(&b, "%s %s", p.Amount.Commodity, p.Amount.Quantity)
		}
		if p.Comment != "" {
			b.WriteString("  ; ")
			b.WriteString(p.Comment)
		}
	}
	return b.String()
}

// EncodeHLedger writes the journal entries in hledger text format, one
// blank line between entries, in the order given.
func EncodeHLedger(w io.Writer, entries []JournalEntry) error {
	for i, e := range entries {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, RenderEntry(e)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

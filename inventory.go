package finbook

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CostBasisMethod defines the method for matching sold volume against
// previously acquired lots.
type CostBasisMethod int

const (
	// FIFO (First-In, First-Out) consumes the oldest acquired lots first.
	FIFO CostBasisMethod = iota
)

func (m CostBasisMethod) String() string {
	switch m {
	case FIFO:
		return "fifo"
	default:
		return "unknown"
	}
}

// ParseCostBasisMethod parses a string into a CostBasisMethod.
func ParseCostBasisMethod(s string) (CostBasisMethod, error) {
	switch s {
	case "fifo":
		return FIFO, nil
	default:
		return 0, fmt.Errorf("unknown cost basis method: %q", s)
	}
}

// Lot is a tranche of a commodity position acquired at one price on one
// date, tracked for cost basis purposes. Volume is always positive; a lot
// whose remaining volume reaches zero is removed from its inventory.
type Lot struct {
	Date   Date   `json:"date"`
	Price  Price  `json:"price"`
	Volume Volume `json:"volume"`
}

// Inventory tracks the open lots of one commodity within one portfolio.
//
// FIFO is the only implementation; alternative cost basis policies
// (average, LIFO, specific-lot) are drop-in replacements of this contract.
type Inventory interface {
	// Push records a newly acquired lot.
	Push(lot Lot)
	// Pop removes exactly 'volume' units and returns the consumed slices,
	// each carrying the taken volume at its source lot's original price and
	// date. On shortfall it returns an *InsufficientInventoryError and
	// leaves the inventory untouched.
	Pop(volume Volume) ([]Lot, error)
	// Lots returns a snapshot of the remaining open lots, oldest first.
	Lots() []Lot
}

// InsufficientInventoryError reports a sale of more volume than is held.
// It signals a data entry mistake in the input, not a programming error.
type InsufficientInventoryError struct {
	Commodity Commodity
	Requested Volume
	Available Volume
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory for %s: requested %s, available %s",
		e.Commodity, e.Requested, e.Available)
}

// newInventory returns an empty inventory implementing the given cost
// basis method for one commodity.
func newInventory(method CostBasisMethod, commodity Commodity) (Inventory, error) {
	switch method {
	case FIFO:
		return &fifoInventory{commodity: commodity}, nil
	default:
		return nil, fmt.Errorf("unsupported cost basis method: %s", method)
	}
}

// fifoInventory keeps lots in acquisition order and depletes from the front.
type fifoInventory struct {
	commodity Commodity
	lots      []Lot
}

func (inv *fifoInventory) Push(lot Lot) {
	inv.lots = append(inv.lots, lot)
}

func (inv *fifoInventory) Pop(volume Volume) ([]Lot, error) {
	// Check availability first so a shortfall never leaves the inventory
	// partially drained.
	available := inv.available()
	if available.LessThan(volume) {
		return nil, &InsufficientInventoryError{
			Commodity: inv.commodity,
			Requested: volume,
			Available: available,
		}
	}

	var used []Lot
	remaining := volume
	for len(inv.lots) > 0 && !remaining.IsZero() {
		head := &inv.lots[0]
		taken := head.Volume.Min(remaining)
		used = append(used, Lot{Date: head.Date, Price: head.Price, Volume: taken})
		head.Volume = head.Volume.Sub(taken)
		remaining = remaining.Sub(taken)
		if head.Volume.IsZero() {
			inv.lots = inv.lots[1:]
		}
	}
	return used, nil
}

func (inv *fifoInventory) Lots() []Lot {
	out := make([]Lot, len(inv.lots))
	copy(out, inv.lots)
	return out
}

func (inv *fifoInventory) available() Volume {
	total := V(decimal.Zero)
	for _, lot := range inv.lots {
		total = total.Add(lot.Volume)
	}
	return total
}

// AverageCost computes the volume-weighted average acquisition price of the
// given lots, rounded to 'places' decimal places for display. It returns
// zero when the lots are empty. The lots themselves are never rounded.
func AverageCost(lots []Lot, places int32) (total Volume, avg Price) {
	sum := decimal.Zero
	for _, lot := range lots {
		total = total.Add(lot.Volume)
		sum = sum.Add(lot.Price.Decimal().Mul(lot.Volume.Decimal()))
	}
	if total.IsZero() {
		return total, P(decimal.Zero)
	}
	return total, P(sum.Div(total.Decimal()).Round(places))
}

package finbook

import "sort"

// Categorized is the result of grouping an unordered resource batch into
// portfolio definitions, declared commodities, and per-portfolio
// transaction lists.
type Categorized struct {
	// order lists portfolio ids by first encounter, for deterministic output.
	order      []PortfolioID
	portfolios map[PortfolioID]*CashBalancePortfolio
	// commodities declared in the input, deduplicated. Declarations are not
	// validated against the commodities transactions actually reference.
	commodities map[Commodity]struct{}
	// transactions per portfolio id, in input encounter order.
	transactions map[PortfolioID][]Transaction
}

// Categorize groups resources by type. Duplicate portfolio definitions are
// resolved last-write-wins. Transactions are grouped under their portfolio
// id whether or not that portfolio is (yet) defined; referential integrity
// is resolved later, once the whole batch has been seen.
func Categorize(resources []Resource) *Categorized {
	c := &Categorized{
		portfolios:   make(map[PortfolioID]*CashBalancePortfolio),
		commodities:  make(map[Commodity]struct{}),
		transactions: make(map[PortfolioID][]Transaction),
	}
	for _, r := range resources {
		switch v := r.(type) {
		case *CashBalancePortfolio:
			if _, seen := c.portfolios[v.ID]; !seen {
				c.order = append(c.order, v.ID)
			}
			c.portfolios[v.ID] = v
		case CommodityDecl:
			c.commodities[Commodity(v)] = struct{}{}
		case CommodityListDecl:
			for _, commodity := range v {
				c.commodities[commodity] = struct{}{}
			}
		case ScopedTransaction:
			c.transactions[v.Portfolio] = append(c.transactions[v.Portfolio], v.Tx)
		}
	}
	return c
}

// Portfolios returns the portfolio definitions in first-encounter order.
func (c *Categorized) Portfolios() []*CashBalancePortfolio {
	out := make([]*CashBalancePortfolio, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.portfolios[id])
	}
	return out
}

// Portfolio returns the definition for 'id', or nil if unknown.
func (c *Categorized) Portfolio(id PortfolioID) *CashBalancePortfolio {
	return c.portfolios[id]
}

// HasCommodity reports whether 'commodity' was declared in the input.
func (c *Categorized) HasCommodity(commodity Commodity) bool {
	_, ok := c.commodities[commodity]
	return ok
}

// Transactions returns the transactions recorded for 'id', in input order.
func (c *Categorized) Transactions(id PortfolioID) []Transaction {
	return c.transactions[id]
}

// Orphans returns, per undeclared portfolio id, the transactions that
// reference it. Ids appear in input encounter order of their first
// transaction.
func (c *Categorized) Orphans() []OrphanedTransactions {
	var out []OrphanedTransactions
	seen := make(map[PortfolioID]int)
	for id, txs := range c.transactions {
		if _, ok := c.portfolios[id]; ok {
			continue
		}
		seen[id] = len(txs)
	}
	if len(seen) == 0 {
		return nil
	}
	for id, n := range seen {
		out = append(out, OrphanedTransactions{Portfolio: id, Count: n})
	}
	// map iteration order is random, sort by id for deterministic output.
	sort.Slice(out, func(i, j int) bool { return out[i].Portfolio < out[j].Portfolio })
	return out
}

// OrphanedTransactions counts the transactions referencing a portfolio id
// that no portfolio definition matches.
type OrphanedTransactions struct {
	Portfolio PortfolioID `json:"port_id"`
	Count     int         `json:"count"`
}

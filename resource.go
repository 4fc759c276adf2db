package finbook

// ResourceKind tags one typed record of the input document.
type ResourceKind string

// Resource kinds accepted in the input stream.
const (
	KindCashBalancePortfolio ResourceKind = "CashBalancePortfolio"
	KindCommodity            ResourceKind = "Commodity"
	KindCommodityList        ResourceKind = "CommodityList"
	KindDeposit              ResourceKind = "Deposit"
	KindWithdraw             ResourceKind = "Withdraw"
	KindBuy                  ResourceKind = "Buy"
	KindSell                 ResourceKind = "Sell"
)

// Resource is one already-typed record from the input document: a portfolio
// definition, a commodity declaration (single or list), or a
// portfolio-scoped transaction.
type Resource interface {
	resource()
}

func (*CashBalancePortfolio) resource() {}

// CommodityDecl declares a single commodity.
type CommodityDecl Commodity

func (CommodityDecl) resource() {}

// CommodityListDecl declares several commodities at once.
type CommodityListDecl []Commodity

func (CommodityListDecl) resource() {}

// ScopedTransaction carries a transaction together with the id of the
// portfolio it belongs to.
type ScopedTransaction struct {
	Portfolio PortfolioID
	Tx        Transaction
}

func (ScopedTransaction) resource() {}

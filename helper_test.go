package finbook

// Shared constructors for tests.

func day(s string) Date { return MustParseDate(s) }

func testPortfolio(id PortfolioID) *CashBalancePortfolio {
	p := string(id)
	return &CashBalancePortfolio{
		ID:           id,
		BaseCurrency: "USD",
		Accounts: PortfolioAccounts{
			Cash:          Account("assets:" + p + ":cash"),
			CashAR:        Account("assets:" + p + ":receivable"),
			Position:      Account("assets:" + p + ":positions"),
			NetInvestment: Account("equity:" + p + ":net-investment"),
			Conversion:    Account("equity:" + p + ":conversion"),
			Commission:    Account("expenses:" + p + ":commission"),
			VAT:           Account("expenses:" + p + ":vat"),
			ProfitLoss:    Account("income:" + p + ":pnl"),
		},
	}
}

func lot(date string, price, volume float64) Lot {
	return Lot{Date: day(date), Price: P(price), Volume: V(volume)}
}

package finbook

import (
	"errors"
	"fmt"
)

// PortfolioID identifies a portfolio declared in the resource stream.
type PortfolioID string

// Commodity identifies a currency or a traded instrument by its code.
type Commodity string

// Account is the name of a bookkeeping account, e.g. "assets:broker:cash".
type Account string

// PortfolioAccounts maps the eight logical account roles of a cash balance
// portfolio to concrete account names.
type PortfolioAccounts struct {
	Cash          Account `yaml:"cash_account" json:"cash_account"`
	CashAR        Account `yaml:"cash_ar_account" json:"cash_ar_account"` // receivable for unsettled sales
	Position      Account `yaml:"position_account" json:"position_account"`
	NetInvestment Account `yaml:"net_investment_account" json:"net_investment_account"`
	Conversion    Account `yaml:"conversion_account" json:"conversion_account"`
	Commission    Account `yaml:"commission_account" json:"commission_account"`
	VAT           Account `yaml:"vat_account" json:"vat_account"`
	ProfitLoss    Account `yaml:"profit_loss_account" json:"profit_loss_account"`
}

// CashBalancePortfolio holds securities bought and sold against a single
// cash balance in its base currency. It is immutable once categorized.
type CashBalancePortfolio struct {
	ID           PortfolioID       `yaml:"port_id" json:"port_id"`
	BaseCurrency Commodity         `yaml:"base_currency" json:"base_currency"`
	Accounts     PortfolioAccounts `yaml:"accounts" json:"accounts"`
}

// Validate checks that the portfolio definition is complete: a non-empty
// id, a known ISO base currency, and all eight account roles assigned.
func (p *CashBalancePortfolio) Validate() error {
	if p.ID == "" {
		return errors.New("portfolio id is missing")
	}
	if err := ValidateCurrency(string(p.BaseCurrency)); err != nil {
		return fmt.Errorf("portfolio %q: invalid base currency: %w", p.ID, err)
	}
	roles := []struct {
		role    string
		account Account
	}{
		{"cash_account", p.Accounts.Cash},
		{"cash_ar_account", p.Accounts.CashAR},
		{"position_account", p.Accounts.Position},
		{"net_investment_account", p.Accounts.NetInvestment},
		{"conversion_account", p.Accounts.Conversion},
		{"commission_account", p.Accounts.Commission},
		{"vat_account", p.Accounts.VAT},
		{"profit_loss_account", p.Accounts.ProfitLoss},
	}
	for _, r := range roles {
		if r.account == "" {
			return fmt.Errorf("portfolio %q: %s is missing", p.ID, r.role)
		}
	}
	return nil
}

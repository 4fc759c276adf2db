package finbook

import (
	"errors"
	"fmt"
)

// CommandType is a typed string for identifying transaction commands.
type CommandType string

// Command types used for identifying transactions.
const (
	CmdDeposit  CommandType = "deposit"
	CmdWithdraw CommandType = "withdraw"
	CmdBuy      CommandType = "buy"
	CmdSell     CommandType = "sell"
)

// Transaction is the closed union of the four cash balance transaction
// kinds. The journal writer matches on the concrete type exhaustively;
// adding a kind means adding a struct here and one case there.
type Transaction interface {
	What() CommandType // What returns the command type of the transaction (e.g., "buy", "sell").
	When() Date        // When returns the date on which the transaction occurred.
	Validate() error
}

// Deposit represents cash added to the portfolio from outside.
type Deposit struct {
	Date    Date   `yaml:"date" json:"date"`
	Amount  Amount `yaml:"amount" json:"amount"`
	Comment string `yaml:"comment,omitempty" json:"comment,omitempty"`
}

func (t Deposit) What() CommandType { return CmdDeposit }
func (t Deposit) When() Date        { return t.Date }

// Validate checks the Deposit transaction's fields.
func (t Deposit) Validate() error {
	if t.Date.IsZero() {
		return errors.New("deposit date is missing")
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("deposit amount must be positive, got %s", t.Amount)
	}
	return nil
}

// Withdraw represents cash removed from the portfolio to outside.
type Withdraw struct {
	Date    Date   `yaml:"date" json:"date"`
	Amount  Amount `yaml:"amount" json:"amount"`
	Comment string `yaml:"comment,omitempty" json:"comment,omitempty"`
}

func (t Withdraw) What() CommandType { return CmdWithdraw }
func (t Withdraw) When() Date        { return t.Date }

// Validate checks the Withdraw transaction's fields.
func (t Withdraw) Validate() error {
	if t.Date.IsZero() {
		return errors.New("withdraw date is missing")
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("withdraw amount must be positive, got %s", t.Amount)
	}
	return nil
}

// Buy represents the purchase of a volume of a commodity at a unit price,
// optionally paying a commission and VAT on top.
type Buy struct {
	Date       Date      `yaml:"date" json:"date"`
	Commodity  Commodity `yaml:"commodity" json:"commodity"`
	Price      Price     `yaml:"price" json:"price"`
	Volume     Volume    `yaml:"volume" json:"volume"`
	Commission Amount    `yaml:"commission,omitempty" json:"commission,omitempty"`
	VAT        Amount    `yaml:"vat,omitempty" json:"vat,omitempty"`
	Comment    string    `yaml:"comment,omitempty" json:"comment,omitempty"`
}

func (t Buy) What() CommandType { return CmdBuy }
func (t Buy) When() Date        { return t.Date }

// Validate checks the Buy transaction's fields.
func (t Buy) Validate() error {
	if t.Date.IsZero() {
		return errors.New("buy date is missing")
	}
	if t.Commodity == "" {
		return errors.New("buy commodity is missing")
	}
	if !t.Volume.IsPositive() {
		return fmt.Errorf("buy volume must be positive, got %s", t.Volume)
	}
	if !t.Price.IsPositive() {
		return fmt.Errorf("buy price must be positive, got %s", t.Price)
	}
	if t.Commission.IsNegative() {
		return fmt.Errorf("buy commission cannot be negative, got %s", t.Commission)
	}
	if t.VAT.IsNegative() {
		return fmt.Errorf("buy vat cannot be negative, got %s", t.VAT)
	}
	return nil
}

// Sell represents the sale of a volume of a commodity at a unit price. The
// proceeds settle on SettlementDate when set, on the trade date otherwise.
type Sell struct {
	Date           Date      `yaml:"date" json:"date"`
	SettlementDate Date      `yaml:"settlement_date,omitempty" json:"settlement_date,omitempty"`
	Commodity      Commodity `yaml:"commodity" json:"commodity"`
	Price          Price     `yaml:"price" json:"price"`
	Volume         Volume    `yaml:"volume" json:"volume"`
	Commission     Amount    `yaml:"commission,omitempty" json:"commission,omitempty"`
	VAT            Amount    `yaml:"vat,omitempty" json:"vat,omitempty"`
	Comment        string    `yaml:"comment,omitempty" json:"comment,omitempty"`
}

func (t Sell) What() CommandType { return CmdSell }
func (t Sell) When() Date        { return t.Date }

// Validate checks the Sell transaction's fields.
func (t Sell) Validate() error {
	if t.Date.IsZero() {
		return errors.New("sell date is missing")
	}
	if t.Commodity == "" {
		return errors.New("sell commodity is missing")
	}
	if !t.Volume.IsPositive() {
		return fmt.Errorf("sell volume must be positive, got %s", t.Volume)
	}
	if !t.Price.IsPositive() {
		return fmt.Errorf("sell price must be positive, got %s", t.Price)
	}
	if t.Commission.IsNegative() {
		return fmt.Errorf("sell commission cannot be negative, got %s", t.Commission)
	}
	if t.VAT.IsNegative() {
		return fmt.Errorf("sell vat cannot be negative, got %s", t.VAT)
	}
	if !t.SettlementDate.IsZero() && t.SettlementDate.Before(t.Date) {
		return fmt.Errorf("sell settlement date %s is before trade date %s", t.SettlementDate, t.Date)
	}
	return nil
}

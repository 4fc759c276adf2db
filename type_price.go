package finbook

import "github.com/shopspring/decimal"

// Price represents the exact unit price of one commodity unit, expressed in
// the owning portfolio's base currency.
type Price struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value)}
}

func (p Price) Equal(q Price) bool { return p.value.Equal(q.value) }
func (p Price) IsZero() bool       { return p.value.IsZero() }
func (p Price) IsPositive() bool   { return p.value.IsPositive() }

// binary operators.
func (p Price) Add(q Price) Price { return Price{value: p.value.Add(q.value)} }
func (p Price) Sub(q Price) Price { return Price{value: p.value.Sub(q.value)} }
func (p Price) Neg() Price        { return Price{value: p.value.Neg()} }

// Mul returns the monetary value of v units at price p.
func (p Price) Mul(v Volume) Amount { return Amount{value: p.value.Mul(v.value)} }

func (p Price) String() string { return p.value.String() }

// Decimal returns the exact decimal value.
func (p Price) Decimal() decimal.Decimal { return p.value }

// MarshalJSON implements the json.Marshaler interface for Price.
func (p Price) MarshalJSON() ([]byte, error) { return p.value.MarshalJSON() }

// UnmarshalJSON implements the json.Unmarshaler interface for Price.
func (p *Price) UnmarshalJSON(bytes []byte) error { return p.value.UnmarshalJSON(bytes) }

// UnmarshalYAML implements the yaml.Unmarshaler interface for Price.
func (p *Price) UnmarshalYAML(unmarshal func(interface{}) error) error {
	d, err := yamlDecimal(unmarshal)
	if err != nil {
		return err
	}
	p.value = d
	return nil
}

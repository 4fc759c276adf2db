package finbook

import "github.com/shopspring/decimal"

// Amount represents an exact monetary value in the owning portfolio's base
// currency. The currency itself is carried by the portfolio, not the value.
type Amount struct {
	value decimal.Decimal
}

func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func (a Amount) Equal(b Amount) bool    { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool { return a.value.LessThan(b.value) }
func (a Amount) IsZero() bool           { return a.value.IsZero() }
func (a Amount) IsPositive() bool       { return a.value.IsPositive() }
func (a Amount) IsNegative() bool       { return a.value.IsNegative() }

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount         { return Amount{value: a.value.Neg()} }

func (a Amount) String() string { return a.value.String() }

// Decimal returns the exact decimal value.
func (a Amount) Decimal() decimal.Decimal { return a.value }

// MarshalJSON implements the json.Marshaler interface for Amount.
func (a Amount) MarshalJSON() ([]byte, error) { return a.value.MarshalJSON() }

// UnmarshalJSON implements the json.Unmarshaler interface for Amount.
func (a *Amount) UnmarshalJSON(bytes []byte) error { return a.value.UnmarshalJSON(bytes) }

// UnmarshalYAML implements the yaml.Unmarshaler interface for Amount.
func (a *Amount) UnmarshalYAML(unmarshal func(interface{}) error) error {
	d, err := yamlDecimal(unmarshal)
	if err != nil {
		return err
	}
	a.value = d
	return nil
}

package finbook

import "github.com/shopspring/decimal"

// Volume represents an exact number of commodity units.
type Volume struct {
	value decimal.Decimal
}

func V[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Volume {
	return Volume{value: newDecimal(value)}
}

func (v Volume) Equal(w Volume) bool       { return v.value.Equal(w.value) }
func (v Volume) LessThan(w Volume) bool    { return v.value.LessThan(w.value) }
func (v Volume) GreaterThan(w Volume) bool { return v.value.GreaterThan(w.value) }
func (v Volume) IsZero() bool              { return v.value.IsZero() }
func (v Volume) IsPositive() bool          { return v.value.IsPositive() }
func (v Volume) IsNegative() bool          { return v.value.IsNegative() }

// binary operators.
func (v Volume) Add(w Volume) Volume { return Volume{value: v.value.Add(w.value)} }
func (v Volume) Sub(w Volume) Volume { return Volume{value: v.value.Sub(w.value)} }
func (v Volume) Neg() Volume         { return Volume{value: v.value.Neg()} }

// Min returns the smaller of v and w.
func (v Volume) Min(w Volume) Volume {
	if w.LessThan(v) {
		return w
	}
	return v
}

func (v Volume) String() string { return v.value.String() }

// Decimal returns the exact decimal value.
func (v Volume) Decimal() decimal.Decimal { return v.value }

// MarshalJSON implements the json.Marshaler interface for Volume.
func (v Volume) MarshalJSON() ([]byte, error) { return v.value.MarshalJSON() }

// UnmarshalJSON implements the json.Unmarshaler interface for Volume.
func (v *Volume) UnmarshalJSON(bytes []byte) error { return v.value.UnmarshalJSON(bytes) }

// UnmarshalYAML implements the yaml.Unmarshaler interface for Volume.
func (v *Volume) UnmarshalYAML(unmarshal func(interface{}) error) error {
	d, err := yamlDecimal(unmarshal)
	if err != nil {
		return err
	}
	v.value = d
	return nil
}

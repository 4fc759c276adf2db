package finbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// scopedSpec is a specialized struct for decoding the wrapper around
// portfolio-scoped transactions.
type scopedSpec[T Transaction] struct {
	PortID PortfolioID `yaml:"port_id"`
	Detail T           `yaml:"detail"`
}

// DecodeResources reads a multi-document YAML stream of kind/spec tagged
// records and returns the typed resources in document order.
func DecodeResources(r io.Reader) ([]Resource, error) {
	dec := yaml.NewDecoder(r)
	var resources []Resource
	for i := 0; ; i++ {
		var raw struct {
			Kind ResourceKind `yaml:"kind"`
			Spec interface{}  `yaml:"spec"`
		}
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			return resources, nil
		}
		if err != nil {
			return nil, fmt.Errorf("could not decode resource document %d: %w", i+1, err)
		}
		if raw.Kind == "" && raw.Spec == nil {
			continue // skip empty documents
		}

		res, err := decodeSpec(raw.Kind, raw.Spec)
		if err != nil {
			return nil, fmt.Errorf("invalid %s resource (document %d): %w", raw.Kind, i+1, err)
		}
		resources = append(resources, res)
	}
}

// decodeSpec re-marshals the loosely decoded spec node and unmarshals it
// into the concrete type selected by 'kind'.
func decodeSpec(kind ResourceKind, spec interface{}) (Resource, error) {
	raw, err := yaml.Marshal(spec)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindCashBalancePortfolio:
		var port CashBalancePortfolio
		if err := yaml.Unmarshal(raw, &port); err != nil {
			return nil, err
		}
		return &port, nil
	case KindCommodity:
		var c Commodity
		if err := yaml.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return CommodityDecl(c), nil
	case KindCommodityList:
		var cs []Commodity
		if err := yaml.Unmarshal(raw, &cs); err != nil {
			return nil, err
		}
		return CommodityListDecl(cs), nil
	case KindDeposit:
		var s scopedSpec[Deposit]
		if err := yaml.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return ScopedTransaction{Portfolio: s.PortID, Tx: s.Detail}, nil
	case KindWithdraw:
		var s scopedSpec[Withdraw]
		if err := yaml.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return ScopedTransaction{Portfolio: s.PortID, Tx: s.Detail}, nil
	case KindBuy:
		var s scopedSpec[Buy]
		if err := yaml.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return ScopedTransaction{Portfolio: s.PortID, Tx: s.Detail}, nil
	case KindSell:
		var s scopedSpec[Sell]
		if err := yaml.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return ScopedTransaction{Portfolio: s.PortID, Tx: s.Detail}, nil
	default:
		return nil, fmt.Errorf("unknown resource kind: %q", kind)
	}
}

// EncodeJournalJSON writes the journal entries as an indented JSON array,
// the projection used by the query subcommand.
func EncodeJournalJSON(w io.Writer, entries []JournalEntry) error {
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal journal entries: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("failed to write journal entries: %w", err)
	}
	return nil
}

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Holding is one configured watchlist symbol.
type Holding struct {
	Symbol         string
	Quantity       int
	ReferenceValue decimal.Decimal
}

// Holdings keeps the declaration order of the YAML mapping, which is the
// display order of the watchlist.
type Holdings []Holding

// DefaultHoldings is used when the configuration declares no symbol.
func DefaultHoldings() Holdings {
	return Holdings{
		{Symbol: "SAAB-B.ST", Quantity: 1, ReferenceValue: decimal.NewFromInt(500)},
		{Symbol: "SSAB-B.ST", Quantity: 1, ReferenceValue: decimal.NewFromInt(500)},
		{Symbol: "^OMX", Quantity: 0, ReferenceValue: decimal.Zero},
		{Symbol: "MSFT", Quantity: 1, ReferenceValue: decimal.NewFromInt(500)},
	}
}

// UnmarshalYAML accepts a mapping of symbol to either a [quantity, reference]
// pair or a {quantity, reference_value} mapping.
func (h *Holdings) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: holdings must be a mapping of symbol to holding", node.Line)
	}
	out := make(Holdings, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		hd := Holding{Symbol: strings.TrimSpace(key.Value)}
		if err := hd.decode(val); err != nil {
			return fmt.Errorf("line %d: holding %q: %w", val.Line, hd.Symbol, err)
		}
		out = append(out, hd)
	}
	*h = out
	return nil
}

func (hd *Holding) decode(n *yaml.Node) error {
	var qty, ref *yaml.Node
	switch n.Kind {
	case yaml.SequenceNode:
		if len(n.Content) != 2 {
			return fmt.Errorf("expected [quantity, reference_value], got %d values", len(n.Content))
		}
		qty, ref = n.Content[0], n.Content[1]
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			switch n.Content[i].Value {
			case "quantity":
				qty = n.Content[i+1]
			case "reference_value":
				ref = n.Content[i+1]
			default:
				return fmt.Errorf("unknown field %q", n.Content[i].Value)
			}
		}
	case yaml.ScalarNode:
		// "SYMBOL:" with no value tracks the symbol without a position.
		if n.ShortTag() != "!!null" {
			return fmt.Errorf("unexpected scalar %q", n.Value)
		}
	default:
		return fmt.Errorf("unsupported holding value")
	}

	if qty != nil {
		q, err := strconv.Atoi(qty.Value)
		if err != nil {
			return fmt.Errorf("quantity: %w", err)
		}
		hd.Quantity = q
	}
	if ref != nil {
		r, err := decimal.NewFromString(ref.Value)
		if err != nil {
			return fmt.Errorf("reference_value: %w", err)
		}
		hd.ReferenceValue = r
	}
	return nil
}

// Validate rejects empty or duplicated symbols and negative quantities.
func (h Holdings) Validate() error {
	seen := make(map[string]bool, len(h))
	for _, hd := range h {
		if hd.Symbol == "" {
			return fmt.Errorf("empty symbol")
		}
		if seen[hd.Symbol] {
			return fmt.Errorf("duplicate symbol %q", hd.Symbol)
		}
		seen[hd.Symbol] = true
		if hd.Quantity < 0 {
			return fmt.Errorf("%s: quantity must not be negative", hd.Symbol)
		}
	}
	return nil
}

// Symbols returns the symbols in declaration order.
func (h Holdings) Symbols() []string {
	out := make([]string, len(h))
	for i, hd := range h {
		out[i] = hd.Symbol
	}
	return out
}

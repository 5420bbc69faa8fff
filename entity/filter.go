package entity

import (
	"github.com/pkg/errors"
)

// FilterOp represents a filter comparison.
type FilterOp int

const (
	Eq       FilterOp = iota // =
	Ne                       // !=
	Gt                       // >
	Lt                       // <
	Gte                      // >=
	Lte                      // <=
	Contains                 // substring match
)

// Ops lists operators in the order they are offered to the user.
var Ops = []FilterOp{Eq, Ne, Gt, Lt, Gte, Lte, Contains}

var opSymbols = map[FilterOp]string{
	Eq:       "=",
	Ne:       "!=",
	Gt:       ">",
	Lt:       "<",
	Gte:      ">=",
	Lte:      "<=",
	Contains: "contains",
}

// String returns the operator as shown to the user.
func (op FilterOp) String() string {
	symbol, ok := opSymbols[op]
	if !ok {
		return "?"
	}
	return symbol
}

// ParseOp looks up an operator by its user-facing symbol.
func ParseOp(symbol string) (op FilterOp, err error) {
	for candidate, sym := range opSymbols {
		if sym == symbol {
			op = candidate
			return
		}
	}

	err = errors.Errorf("unknown filter operator %q", symbol)
	return
}

func (op FilterOp) MarshalText() ([]byte, error) {
	if _, ok := opSymbols[op]; !ok {
		return nil, errors.Errorf("unknown filter operator %d", int(op))
	}
	return []byte(op.String()), nil
}

func (op *FilterOp) UnmarshalText(text []byte) (err error) {
	*op, err = ParseOp(string(text))
	return
}

// Filter is one user-entered constraint on a listing field.
type Filter struct {
	Field string   `yaml:"field"`
	Op    FilterOp `yaml:"op"`
	Value string   `yaml:"value"`
}

package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeCurrency trims surrounding whitespace and upper-cases a currency code.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// RateSet maps a target currency code to its rate (or converted amount).
type RateSet map[string]decimal.Decimal

// MarshalJSON writes rates as bare JSON numbers, the way the upstream API sends them.
func (s RateSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	out := make(map[string]json.Number, len(s))
	for code, rate := range s {
		out[code] = jsonNumber(rate)
	}
	return json.Marshal(out)
}

func jsonNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// Clone returns a shallow copy of the rate set.
func (s RateSet) Clone() RateSet {
	out := make(RateSet, len(s))
	for code, rate := range s {
		out[code] = rate
	}
	return out
}

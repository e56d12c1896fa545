package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCurrency(t *testing.T) {
	tests := map[string]string{
		"usd":   "USD",
		" eur ": "EUR",
		"GBP":   "GBP",
		"":      "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeCurrency(in), "input %q", in)
	}
}

func TestRateSet_Clone(t *testing.T) {
	orig := RateSet{"USD": decimal.RequireFromString("1.08")}

	clone := orig.Clone()
	clone["GBP"] = decimal.RequireFromString("0.86")

	assert.Len(t, orig, 1)
	assert.Len(t, clone, 2)
	assert.True(t, clone["USD"].Equal(orig["USD"]))
}

func TestRateSet_MarshalsNumbers(t *testing.T) {
	b, err := json.Marshal(RateSet{"USD": decimal.RequireFromString("1.0815")})
	require.NoError(t, err)
	assert.Equal(t, `{"USD":1.0815}`, string(b))

	var back RateSet
	require.NoError(t, json.Unmarshal([]byte(`{"JPY":161.5}`), &back))
	assert.Equal(t, "161.5", back["JPY"].String())
}

func TestConversionResponse_MarshalsNumbers(t *testing.T) {
	b, err := json.Marshal(ConversionResponse{
		Amount: decimal.RequireFromString("10.0"),
		Base:   "USD",
		Rates:  RateSet{"EUR": decimal.RequireFromString("9.12")},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":10,"base":"USD","date":null,"rates":{"EUR":9.12}}`, string(b))

	// the library default stays untouched for other importers
	assert.False(t, decimal.MarshalJSONWithoutQuotes)
	q, err := json.Marshal(decimal.RequireFromString("1.5"))
	require.NoError(t, err)
	assert.Equal(t, `"1.5"`, string(q))
}

func TestConversionEvent_MarshalsNumbers(t *testing.T) {
	b, err := json.Marshal(ConversionEvent{
		Provider: "DummyExchangeRateApiService",
		Amount:   decimal.RequireFromString("10"),
		Result:   decimal.RequireFromString("12"),
	})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, float64(10), got["amount"])
	assert.Equal(t, float64(12), got["result"])
	assert.Equal(t, "DummyExchangeRateApiService", got["provider"])
}

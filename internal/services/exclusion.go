package services

import "github.com/sbilibin2017/gw-currency-converter/internal/models"

// Currencies that never appear as rate targets in gateway output.
var excludedCurrencies = map[string]struct{}{
	"TRY": {},
	"PLN": {},
	"THB": {},
	"MXN": {},
}

// IsExcludedCurrency reports whether code is in the exclusion set, ignoring case.
func IsExcludedCurrency(code string) bool {
	_, ok := excludedCurrencies[models.NormalizeCurrency(code)]
	return ok
}

// FilterExcluded returns a copy of rates without excluded currencies.
// Kept codes are normalized.
func FilterExcluded(rates models.RateSet) models.RateSet {
	out := make(models.RateSet, len(rates))
	for code, rate := range rates {
		code = models.NormalizeCurrency(code)
		if _, ok := excludedCurrencies[code]; ok {
			continue
		}
		out[code] = rate
	}
	return out
}

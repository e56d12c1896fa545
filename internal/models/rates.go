package models

import "github.com/shopspring/decimal"

// LatestRates is the latest rate set for a base currency.
type LatestRates struct {
	Base  string  `json:"base"`
	Date  Date    `json:"date"`
	Rates RateSet `json:"rates"`
}

// Conversion is the result of converting an amount into a single target currency.
// Rates holds exactly one entry: the target currency and the converted amount.
type Conversion struct {
	Amount decimal.Decimal `json:"amount"`
	Base   string          `json:"base"`
	Date   Date            `json:"date"`
	Rates  RateSet         `json:"rates"`
}

// HistoricalSeries is a date range of rate sets as returned by the upstream API.
// Rates is keyed by yyyy-MM-dd.
type HistoricalSeries struct {
	Amount    decimal.Decimal    `json:"amount"`
	Base      string             `json:"base"`
	StartDate Date               `json:"start_date"`
	EndDate   Date               `json:"end_date"`
	Rates     map[string]RateSet `json:"rates"`
}

// DatedRates is one day of a historical series.
type DatedRates struct {
	Date  string  `json:"date"`
	Rates RateSet `json:"rates"`
}

// PaginatedHistoricalRates is a window over a historical series, ordered ascending by date.
type PaginatedHistoricalRates struct {
	Base       string
	StartDate  Date
	EndDate    Date
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
	Rates      []DatedRates
}

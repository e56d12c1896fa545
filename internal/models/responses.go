package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// LatestRatesResponse represents the latest rates for a base currency
// swagger:model LatestRatesResponse
type LatestRatesResponse struct {
	// Base currency
	// example: USD
	Base string `json:"base"`

	// As-of date
	// example: 2024-01-01
	Date Date `json:"date" swaggertype:"string"`

	// Rates keyed by currency code
	Rates RateSet `json:"rates" swaggertype:"object,number"`
}

// ConversionResponse represents a converted amount
// swagger:model ConversionResponse
type ConversionResponse struct {
	// Source amount
	// example: 100
	Amount decimal.Decimal `json:"amount" swaggertype:"number"`

	// Source currency
	// example: USD
	Base string `json:"base"`

	// As-of date
	// example: 2024-01-01
	Date Date `json:"date" swaggertype:"string"`

	// Converted amount keyed by the target currency
	Rates RateSet `json:"rates" swaggertype:"object,number"`
}

// MarshalJSON writes the amount as a bare JSON number.
func (r ConversionResponse) MarshalJSON() ([]byte, error) {
	type alias ConversionResponse
	return json.Marshal(struct {
		alias
		Amount json.Number `json:"amount"`
	}{alias(r), jsonNumber(r.Amount)})
}

// PaginatedHistoricalRatesResponse represents one page of historical rates
// swagger:model PaginatedHistoricalRatesResponse
type PaginatedHistoricalRatesResponse struct {
	Base       string             `json:"base" example:"USD"`
	StartDate  Date               `json:"startDate" swaggertype:"string" example:"2023-01-01"`
	EndDate    Date               `json:"endDate" swaggertype:"string" example:"2023-01-31"`
	Page       int                `json:"page" example:"1"`
	PageSize   int                `json:"pageSize" example:"10"`
	TotalItems int                `json:"totalItems" example:"22"`
	TotalPages int                `json:"totalPages" example:"3"`
	Rates      map[string]RateSet `json:"rates" swaggertype:"object"`
}

// ProvidersResponse lists the registered rate providers
// swagger:model ProvidersResponse
type ProvidersResponse struct {
	Default   string   `json:"default" example:"FrankfurterApiCurrencyService"`
	Providers []string `json:"providers"`
}

// ErrorResponse represents an error returned by the gateway
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Rates for base currency 'USD' not found.
	Error string `json:"error"`
}

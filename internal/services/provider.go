package services

//go:generate mockgen -source=provider.go -destination=provider_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Registered provider identifiers. They match the values accepted in ProviderHeader.
const (
	FrankfurterProviderName = "FrankfurterApiCurrencyService"
	DummyProviderName       = "DummyExchangeRateApiService"
)

// ProviderHeader selects the rate provider for a request.
const ProviderHeader = "X-Currency-Provider"

var (
	// ErrNotFound means the provider could not produce a result: the upstream
	// call failed, answered with a non-success status, or sent an unreadable payload.
	ErrNotFound = errors.New("rates not found")

	// ErrUnsupportedOperation means the provider does not implement the operation at all.
	ErrUnsupportedOperation = errors.New("operation not supported by rate provider")

	// ErrInvalidPagination is returned for page or page size below 1.
	ErrInvalidPagination = errors.New("page and page size must be positive")
)

// RateProvider is a named implementation of rate retrieval.
type RateProvider interface {
	Name() string
	GetLatestRates(ctx context.Context, base string) (*models.LatestRates, error)
	Convert(ctx context.Context, from, to string, amount decimal.Decimal) (*models.Conversion, error)
	GetHistoricalRates(
		ctx context.Context,
		base string,
		startDate, endDate models.Date,
		page, pageSize int,
	) (*models.PaginatedHistoricalRates, error)
	IsExcluded(code string) bool
}

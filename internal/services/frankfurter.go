package services

//go:generate mockgen -source=frankfurter.go -destination=frankfurter_mock.go -package=services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Operation names used in cache keys, logs and metrics.
const (
	opLatest     = "latest"
	opConvert    = "convert"
	opHistorical = "historical"
)

// Fetcher performs a GET against the upstream rate API and returns the raw body.
// Retries and circuit breaking happen behind this interface.
type Fetcher interface {
	Get(ctx context.Context, path string) ([]byte, error)
}

// frankfurterLatestResponse is the payload of GET /latest.
type frankfurterLatestResponse struct {
	Amount decimal.Decimal `json:"amount"`
	Base   string          `json:"base"`
	Date   models.Date     `json:"date"`
	Rates  models.RateSet  `json:"rates"`
}

// FrankfurterService serves live rates from the Frankfurter API through the response cache.
type FrankfurterService struct {
	fetcher Fetcher
	cache   ResponseCache
}

// NewFrankfurterService creates the live rate provider.
func NewFrankfurterService(fetcher Fetcher, cache ResponseCache) *FrankfurterService {
	return &FrankfurterService{
		fetcher: fetcher,
		cache:   cache,
	}
}

func (s *FrankfurterService) Name() string { return FrankfurterProviderName }

func (s *FrankfurterService) IsExcluded(code string) bool { return IsExcludedCurrency(code) }

// GetLatestRates returns the latest rates for base without excluded currencies.
func (s *FrankfurterService) GetLatestRates(ctx context.Context, base string) (*models.LatestRates, error) {
	base = models.NormalizeCurrency(base)
	key := fmt.Sprintf("%s:%s", opLatest, base)

	return getOrFetch(ctx, s.cache, opLatest, key, LatestRatesTTL,
		func(ctx context.Context) (*models.LatestRates, error) {
			q := url.Values{}
			q.Set("from", base)

			var resp frankfurterLatestResponse
			if err := s.fetch(ctx, opLatest, "latest?"+q.Encode(), &resp); err != nil {
				logger.Log.Errorw("failed to get latest rates", "base", base, "error", err)
				return nil, ErrNotFound
			}

			return &models.LatestRates{
				Base:  resp.Base,
				Date:  resp.Date,
				Rates: FilterExcluded(resp.Rates),
			}, nil
		})
}

// Convert converts amount from one currency into another using the upstream conversion endpoint.
func (s *FrankfurterService) Convert(ctx context.Context, from, to string, amount decimal.Decimal) (*models.Conversion, error) {
	from = models.NormalizeCurrency(from)
	to = models.NormalizeCurrency(to)
	key := fmt.Sprintf("%s:%s:%s:%s", opConvert, from, to, amount.String())

	return getOrFetch(ctx, s.cache, opConvert, key, ConversionTTL,
		func(ctx context.Context) (*models.Conversion, error) {
			q := url.Values{}
			q.Set("amount", amount.String())
			q.Set("from", from)
			q.Set("to", to)

			var resp frankfurterLatestResponse
			if err := s.fetch(ctx, opConvert, "latest?"+q.Encode(), &resp); err != nil {
				logger.Log.Errorw("failed to convert currency", "from", from, "to", to, "error", err)
				return nil, ErrNotFound
			}

			converted, ok := resp.Rates[to]
			if !ok {
				logger.Log.Errorw("conversion response has no target rate", "from", from, "to", to)
				return nil, ErrNotFound
			}

			return &models.Conversion{
				Amount: resp.Amount,
				Base:   resp.Base,
				Date:   resp.Date,
				Rates:  models.RateSet{to: converted},
			}, nil
		})
}

// GetHistoricalRates returns one page of the daily rates between startDate and endDate.
// The full upstream series is cached unfiltered; filtering and paging run on every call.
func (s *FrankfurterService) GetHistoricalRates(
	ctx context.Context,
	base string,
	startDate, endDate models.Date,
	page, pageSize int,
) (*models.PaginatedHistoricalRates, error) {
	if page < 1 || pageSize < 1 {
		return nil, ErrInvalidPagination
	}

	base = models.NormalizeCurrency(base)
	key := fmt.Sprintf("%s:%s:%s:%s", opHistorical, base, startDate, endDate)

	series, err := getOrFetch(ctx, s.cache, opHistorical, key, HistoricalRatesTTL,
		func(ctx context.Context) (*models.HistoricalSeries, error) {
			q := url.Values{}
			q.Set("from", base)
			path := fmt.Sprintf("%s..%s?%s", startDate, endDate, q.Encode())

			var resp models.HistoricalSeries
			if err := s.fetch(ctx, opHistorical, path, &resp); err != nil {
				logger.Log.Errorw("failed to get historical rates", "base", base, "error", err)
				return nil, ErrNotFound
			}
			return &resp, nil
		})
	if err != nil {
		return nil, err
	}

	items, totalItems, totalPages, err := Paginate(FilterSeries(series.Rates), page, pageSize)
	if err != nil {
		return nil, err
	}

	return &models.PaginatedHistoricalRates{
		Base:       series.Base,
		StartDate:  series.StartDate,
		EndDate:    series.EndDate,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		Rates:      items,
	}, nil
}

// fetch calls the upstream API and decodes the JSON body into dst.
func (s *FrankfurterService) fetch(ctx context.Context, operation, path string, dst any) error {
	body, err := s.fetcher.Get(ctx, path)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(operation, "error").Inc()
		return err
	}
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		metrics.UpstreamRequestsTotal.WithLabelValues(operation, "invalid_payload").Inc()
		return fmt.Errorf("decode %s response: empty payload", operation)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(operation, "invalid_payload").Inc()
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(operation, "ok").Inc()
	return nil
}

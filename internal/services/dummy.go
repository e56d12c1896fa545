package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// dummyMultiplier is the fixed factor applied by DummyService conversions.
var dummyMultiplier = decimal.RequireFromString("1.2")

// DummyService is a stand-in provider for demos and tests.
// It converts with a fixed multiplier and does not support rate queries.
type DummyService struct {
	now func() time.Time
}

// DummyOption configures a DummyService.
type DummyOption func(*DummyService)

// WithClock sets the time source used for conversion dates.
func WithClock(now func() time.Time) DummyOption {
	return func(s *DummyService) {
		s.now = now
	}
}

func NewDummyService(opts ...DummyOption) *DummyService {
	s := &DummyService{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *DummyService) Name() string { return DummyProviderName }

// IsExcluded always returns false: this provider ignores the exclusion policy.
func (s *DummyService) IsExcluded(string) bool { return false }

func (s *DummyService) Convert(_ context.Context, from, to string, amount decimal.Decimal) (*models.Conversion, error) {
	return &models.Conversion{
		Amount: amount,
		Base:   models.NormalizeCurrency(from),
		Date:   models.NewDate(s.now()),
		Rates:  models.RateSet{models.NormalizeCurrency(to): amount.Mul(dummyMultiplier)},
	}, nil
}

func (s *DummyService) GetLatestRates(context.Context, string) (*models.LatestRates, error) {
	return nil, fmt.Errorf("%s latest rates: %w", DummyProviderName, ErrUnsupportedOperation)
}

func (s *DummyService) GetHistoricalRates(
	context.Context, string, models.Date, models.Date, int, int,
) (*models.PaginatedHistoricalRates, error) {
	return nil, fmt.Errorf("%s historical rates: %w", DummyProviderName, ErrUnsupportedOperation)
}

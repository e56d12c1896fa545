package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

func TestDummyService_Convert(t *testing.T) {
	now := time.Date(2024, 3, 10, 23, 30, 0, 0, time.FixedZone("UTC+2", 2*60*60))
	svc := services.NewDummyService(services.WithClock(func() time.Time { return now }))

	got, err := svc.Convert(context.Background(), "usd", "eur", decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.Equal(t, "100", got.Amount.String())
	assert.Equal(t, "USD", got.Base)
	assert.Equal(t, "2024-03-10", got.Date.String())
	require.Len(t, got.Rates, 1)
	assert.Equal(t, "120", got.Rates["EUR"].String())
}

func TestDummyService_UnsupportedOperations(t *testing.T) {
	svc := services.NewDummyService()

	_, err := svc.GetLatestRates(context.Background(), "USD")
	assert.ErrorIs(t, err, services.ErrUnsupportedOperation)

	start := models.NewDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	_, err = svc.GetHistoricalRates(context.Background(), "USD", start, start, 1, 10)
	assert.ErrorIs(t, err, services.ErrUnsupportedOperation)
}

func TestDummyService_Identity(t *testing.T) {
	svc := services.NewDummyService()

	assert.Equal(t, services.DummyProviderName, svc.Name())
	assert.False(t, svc.IsExcluded("TRY"))
}

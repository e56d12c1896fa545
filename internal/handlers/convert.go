package handlers

//go:generate mockgen -source=convert.go -destination=convert_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// ConversionPublisher records successful conversions.
type ConversionPublisher interface {
	PublishConversion(ctx context.Context, event models.ConversionEvent)
}

const (
	msgConvertParams   = "'from', 'to' and 'amount' parameters are required and amount must be positive."
	msgExcludedConvert = "Currency conversion involving TRY, PLN, THB, or MXN is not supported."
)

// NewConvertHandler returns an HTTP handler converting an amount between two currencies.
// @Summary Convert currency
// @Description Converts an amount from one currency into another. TRY, PLN, THB and MXN are rejected by providers that exclude them.
// @Tags rates
// @Produce json
// @Param from query string true "Source currency" default(USD)
// @Param to query string true "Target currency" default(EUR)
// @Param amount query number true "Amount, must be positive" default(100)
// @Param X-Currency-Provider header string false "Rate provider"
// @Success 200 {object} models.ConversionResponse "Converted amount"
// @Failure 400 {object} models.ErrorResponse "Invalid parameters or excluded currency"
// @Failure 401 "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Could not perform currency conversion"
// @Failure 429 {object} models.ErrorResponse "Too many requests"
// @Router /convert [get]
// @Security BearerAuth
func NewConvertHandler(resolver ProviderResolver, publisher ConversionPublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		from, to := q.Get("from"), q.Get("to")
		amount, err := decimal.NewFromString(strings.TrimSpace(q.Get("amount")))
		if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" || err != nil || !amount.IsPositive() {
			writeError(w, http.StatusBadRequest, msgConvertParams)
			return
		}
		from, to = models.NormalizeCurrency(from), models.NormalizeCurrency(to)

		provider := resolver.Resolve(r)
		if provider.IsExcluded(from) || provider.IsExcluded(to) {
			writeError(w, http.StatusBadRequest, msgExcludedConvert)
			return
		}

		conv, err := provider.Convert(r.Context(), from, to, amount)
		if err != nil {
			writeProviderError(w, provider, err, "Could not perform currency conversion.")
			return
		}

		if publisher != nil {
			publisher.PublishConversion(r.Context(), models.ConversionEvent{
				EventID:    uuid.New(),
				Provider:   provider.Name(),
				ClientID:   middlewares.ClientIDFromContext(r.Context()),
				From:       from,
				To:         to,
				Amount:     amount,
				Result:     conv.Rates[to],
				RateDate:   conv.Date,
				OccurredAt: time.Now().UTC(),
			})
		}

		writeJSON(w, http.StatusOK, models.ConversionResponse{
			Amount: conv.Amount,
			Base:   conv.Base,
			Date:   conv.Date,
			Rates:  conv.Rates,
		})
	}
}

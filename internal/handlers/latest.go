package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// NewLatestRatesHandler returns an HTTP handler for the latest rates of a base currency.
// @Summary Get latest rates
// @Description Returns the latest rates for the base currency. TRY, PLN, THB and MXN are never listed.
// @Tags rates
// @Produce json
// @Param baseCurrency query string true "Base currency" default(EUR)
// @Param X-Currency-Provider header string false "Rate provider"
// @Success 200 {object} models.LatestRatesResponse "Latest rates"
// @Failure 400 {object} models.ErrorResponse "Base currency cannot be empty"
// @Failure 401 "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Rates not found"
// @Failure 429 {object} models.ErrorResponse "Too many requests"
// @Failure 501 {object} models.ErrorResponse "Operation not supported by the provider"
// @Router /rates/latest [get]
// @Security BearerAuth
func NewLatestRatesHandler(resolver ProviderResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := r.URL.Query().Get("baseCurrency")
		if strings.TrimSpace(base) == "" {
			writeError(w, http.StatusBadRequest, "Base currency cannot be empty.")
			return
		}
		base = models.NormalizeCurrency(base)

		provider := resolver.Resolve(r)
		rates, err := provider.GetLatestRates(r.Context(), base)
		if err != nil {
			writeProviderError(w, provider, err, fmt.Sprintf("Rates for base currency '%s' not found.", base))
			return
		}

		writeJSON(w, http.StatusOK, models.LatestRatesResponse{
			Base:  rates.Base,
			Date:  rates.Date,
			Rates: rates.Rates,
		})
	}
}

// writeProviderError maps provider failures onto HTTP statuses.
func writeProviderError(w http.ResponseWriter, provider services.RateProvider, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, services.ErrUnsupportedOperation):
		writeError(w, http.StatusNotImplemented,
			fmt.Sprintf("Operation is not supported by provider '%s'.", provider.Name()))
	case errors.Is(err, services.ErrInvalidPagination):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	default:
		logger.Log.Errorw("internal server error", "provider", provider.Name(), "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

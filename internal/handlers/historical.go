package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

const (
	msgHistoricalParams = "All parameters (baseCurrency, startDate, endDate, page, pageSize) are required and must be valid."
	msgHistoricalRange  = "startDate cannot be after endDate."
)

// NewHistoricalRatesHandler returns an HTTP handler for a page of historical rates.
// @Summary Get historical rates
// @Description Returns one page of daily rates between startDate and endDate, oldest first. Admin only.
// @Tags rates
// @Produce json
// @Param baseCurrency query string true "Base currency" default(EUR)
// @Param startDate query string true "First day, yyyy-MM-dd" default(2024-01-01)
// @Param endDate query string true "Last day, yyyy-MM-dd" default(2024-01-31)
// @Param page query int true "1-based page number" default(1)
// @Param pageSize query int true "Days per page" default(10)
// @Param X-Currency-Provider header string false "Rate provider"
// @Success 200 {object} models.PaginatedHistoricalRatesResponse "Historical rates page"
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 401 "Unauthorized"
// @Failure 403 "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Could not retrieve historical rates"
// @Failure 429 {object} models.ErrorResponse "Too many requests"
// @Failure 501 {object} models.ErrorResponse "Operation not supported by the provider"
// @Router /rates/historical [get]
// @Security BearerAuth
func NewHistoricalRatesHandler(resolver ProviderResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		base := q.Get("baseCurrency")
		startDate, startErr := models.ParseDate(q.Get("startDate"))
		endDate, endErr := models.ParseDate(q.Get("endDate"))
		page, pageErr := strconv.Atoi(q.Get("page"))
		pageSize, sizeErr := strconv.Atoi(q.Get("pageSize"))

		if strings.TrimSpace(base) == "" || startErr != nil || endErr != nil ||
			pageErr != nil || sizeErr != nil || page <= 0 || pageSize <= 0 {
			writeError(w, http.StatusBadRequest, msgHistoricalParams)
			return
		}
		if startDate.After(endDate.Time) {
			writeError(w, http.StatusBadRequest, msgHistoricalRange)
			return
		}
		base = models.NormalizeCurrency(base)

		provider := resolver.Resolve(r)
		result, err := provider.GetHistoricalRates(r.Context(), base, startDate, endDate, page, pageSize)
		if err != nil {
			writeProviderError(w, provider, err, "Could not retrieve historical rates.")
			return
		}

		rates := make(map[string]models.RateSet, len(result.Rates))
		for _, day := range result.Rates {
			rates[day.Date] = day.Rates
		}

		writeJSON(w, http.StatusOK, models.PaginatedHistoricalRatesResponse{
			Base:       result.Base,
			StartDate:  result.StartDate,
			EndDate:    result.EndDate,
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalItems: result.TotalItems,
			TotalPages: result.TotalPages,
			Rates:      rates,
		})
	}
}

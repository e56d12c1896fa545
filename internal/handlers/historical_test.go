package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

func TestHistoricalRatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const badParams = "All parameters (baseCurrency, startDate, endDate, page, pageSize) are required and must be valid."
	const valid = "?baseCurrency=usd&startDate=2024-01-01&endDate=2024-01-05&page=2&pageSize=2"

	tests := []struct {
		name      string
		query     string
		mockSetup func(resolver *handlers.MockProviderResolver, provider *services.MockRateProvider)
		wantCode  int
		wantBody  map[string]interface{}
	}{
		{
			name:     "missing base",
			query:    "?startDate=2024-01-01&endDate=2024-01-05&page=1&pageSize=2",
			wantCode: http.StatusBadRequest,
			wantBody: map[string]interface{}{"error": badParams},
		},
		{
			name:     "bad date",
			query:    "?baseCurrency=USD&startDate=01/01/2024&endDate=2024-01-05&page=1&pageSize=2",
			wantCode: http.StatusBadRequest,
			wantBody: map[string]interface{}{"error": badParams},
		},
		{
			name:     "zero page",
			query:    "?baseCurrency=USD&startDate=2024-01-01&endDate=2024-01-05&page=0&pageSize=2",
			wantCode: http.StatusBadRequest,
			wantBody: map[string]interface{}{"error": badParams},
		},
		{
			name:     "missing page size",
			query:    "?baseCurrency=USD&startDate=2024-01-01&endDate=2024-01-05&page=1",
			wantCode: http.StatusBadRequest,
			wantBody: map[string]interface{}{"error": badParams},
		},
		{
			name:     "start after end",
			query:    "?baseCurrency=USD&startDate=2024-02-01&endDate=2024-01-05&page=1&pageSize=2",
			wantCode: http.StatusBadRequest,
			wantBody: map[string]interface{}{"error": "startDate cannot be after endDate."},
		},
		{
			name:  "success",
			query: valid,
			mockSetup: func(resolver *handlers.MockProviderResolver, provider *services.MockRateProvider) {
				resolver.EXPECT().Resolve(gomock.Any()).Return(provider)
				provider.EXPECT().
					GetHistoricalRates(gomock.Any(), "USD", day(2024, 1, 1), day(2024, 1, 5), 2, 2).
					Return(&models.PaginatedHistoricalRates{
						Base:       "USD",
						StartDate:  day(2024, 1, 1),
						EndDate:    day(2024, 1, 5),
						Page:       2,
						PageSize:   2,
						TotalItems: 5,
						TotalPages: 3,
						Rates: []models.DatedRates{
							{Date: "2024-01-03", Rates: models.RateSet{"EUR": decimal.RequireFromString("0.9")}},
							{Date: "2024-01-04", Rates: models.RateSet{"EUR": decimal.RequireFromString("0.92")}},
						},
					}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: map[string]interface{}{
				"base":       "USD",
				"startDate":  "2024-01-01",
				"endDate":    "2024-01-05",
				"page":       float64(2),
				"pageSize":   float64(2),
				"totalItems": float64(5),
				"totalPages": float64(3),
				"rates": map[string]interface{}{
					"2024-01-03": map[string]interface{}{"EUR": 0.9},
					"2024-01-04": map[string]interface{}{"EUR": 0.92},
				},
			},
		},
		{
			name:  "unsupported by provider",
			query: valid,
			mockSetup: func(resolver *handlers.MockProviderResolver, provider *services.MockRateProvider) {
				resolver.EXPECT().Resolve(gomock.Any()).Return(provider)
				provider.EXPECT().
					GetHistoricalRates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, services.ErrUnsupportedOperation)
				provider.EXPECT().Name().Return(services.DummyProviderName)
			},
			wantCode: http.StatusNotImplemented,
			wantBody: map[string]interface{}{
				"error": "Operation is not supported by provider 'DummyExchangeRateApiService'.",
			},
		},
		{
			name:  "not found",
			query: valid,
			mockSetup: func(resolver *handlers.MockProviderResolver, provider *services.MockRateProvider) {
				resolver.EXPECT().Resolve(gomock.Any()).Return(provider)
				provider.EXPECT().
					GetHistoricalRates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, services.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
			wantBody: map[string]interface{}{"error": "Could not retrieve historical rates."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := handlers.NewMockProviderResolver(ctrl)
			provider := services.NewMockRateProvider(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(resolver, provider)
			}

			req := httptest.NewRequest(http.MethodGet, "/rates/historical"+tt.query, nil)
			rr := httptest.NewRecorder()

			handlers.NewHistoricalRatesHandler(resolver).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantBody, decodeBody(t, rr))
		})
	}
}

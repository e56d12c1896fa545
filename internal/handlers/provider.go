package handlers

//go:generate mockgen -source=provider.go -destination=provider_mock.go -package=handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// ProviderResolver picks the rate provider for a request.
type ProviderResolver interface {
	Resolve(r *http.Request) services.RateProvider
}

// ProviderLister describes the registered providers.
type ProviderLister interface {
	Names() []string
	DefaultName() string
}

// NewProvidersHandler returns an HTTP handler listing the rate providers.
// @Summary List rate providers
// @Description Returns the identifiers accepted in the X-Currency-Provider header and the default one
// @Tags providers
// @Produce json
// @Success 200 {object} models.ProvidersResponse "Registered providers"
// @Router /providers [get]
func NewProvidersHandler(lister ProviderLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.ProvidersResponse{
			Default:   lister.DefaultName(),
			Providers: lister.Names(),
		})
	}
}

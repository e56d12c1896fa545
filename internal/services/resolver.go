package services

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
)

// ErrProviderNotFound is returned by ProviderRegistry.Lookup for unknown identifiers.
var ErrProviderNotFound = errors.New("rate provider not registered")

// ProviderRegistry maps provider identifiers to providers.
// It is filled once at construction and read-only afterwards.
type ProviderRegistry struct {
	providers   map[string]RateProvider
	defaultName string
}

// NewProviderRegistry copies providers into a new registry. The default must be one of them.
func NewProviderRegistry(defaultName string, providers map[string]RateProvider) (*ProviderRegistry, error) {
	registered := make(map[string]RateProvider, len(providers))
	for name, p := range providers {
		if p == nil {
			return nil, fmt.Errorf("provider %q is nil", name)
		}
		registered[name] = p
	}
	if _, ok := registered[defaultName]; !ok {
		return nil, fmt.Errorf("default provider %q: %w", defaultName, ErrProviderNotFound)
	}

	return &ProviderRegistry{
		providers:   registered,
		defaultName: defaultName,
	}, nil
}

// Lookup returns the provider registered under name. Matching is case-sensitive.
func (r *ProviderRegistry) Lookup(name string) (RateProvider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrProviderNotFound)
	}
	return p, nil
}

// Default returns the default provider.
func (r *ProviderRegistry) Default() RateProvider {
	return r.providers[r.defaultName]
}

// DefaultName returns the default provider identifier.
func (r *ProviderRegistry) DefaultName() string {
	return r.defaultName
}

// Names returns the registered identifiers in sorted order.
func (r *ProviderRegistry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProviderLookup is the registry view the resolver needs.
type ProviderLookup interface {
	Lookup(name string) (RateProvider, error)
	Default() RateProvider
	DefaultName() string
}

// HeaderProviderResolver picks a provider from the ProviderHeader of a request.
type HeaderProviderResolver struct {
	registry ProviderLookup
}

func NewHeaderProviderResolver(registry ProviderLookup) *HeaderProviderResolver {
	return &HeaderProviderResolver{registry: registry}
}

// Resolve returns the provider named by the request header, or the default one
// when there is no request, no header value, or the lookup fails. It never fails.
func (res *HeaderProviderResolver) Resolve(r *http.Request) RateProvider {
	defaultName := res.registry.DefaultName()

	if r == nil {
		logger.Log.Warnw("no request available, using default provider", "provider", defaultName)
		metrics.ProviderResolutionsTotal.WithLabelValues(defaultName, metrics.ResolutionDefault).Inc()
		return res.registry.Default()
	}

	name := r.Header.Get(ProviderHeader)
	if strings.TrimSpace(name) == "" {
		logger.Log.Infow("no provider specified in header, using default",
			"header", ProviderHeader, "provider", defaultName)
		metrics.ProviderResolutionsTotal.WithLabelValues(defaultName, metrics.ResolutionDefault).Inc()
		return res.registry.Default()
	}

	p, err := res.lookup(name)
	if err != nil {
		logger.Log.Warnw("provider not supported, falling back to default",
			"requested", name, "provider", defaultName, "error", err)
		metrics.ProviderResolutionsTotal.WithLabelValues(defaultName, metrics.ResolutionFallback).Inc()
		return res.registry.Default()
	}

	logger.Log.Infow("resolved rate provider", "provider", name)
	metrics.ProviderResolutionsTotal.WithLabelValues(name, metrics.ResolutionHeader).Inc()
	return p
}

// lookup turns a panicking registry into an ordinary lookup error.
func (res *HeaderProviderResolver) lookup(name string) (p RateProvider, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			p, err = nil, fmt.Errorf("provider registry panic: %v", rec)
		}
	}()

	p, err = res.registry.Lookup(name)
	if err == nil && p == nil {
		err = fmt.Errorf("%q: %w", name, ErrProviderNotFound)
	}
	return p, err
}

package facades

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
)

// Defaults of the upstream resilience policy.
const (
	DefaultTimeout         = 10 * time.Second
	DefaultMaxRetries      = 3
	DefaultRetryInterval   = 2 * time.Second
	DefaultBreakerFailures = 5
	DefaultBreakerTimeout  = 30 * time.Second

	maxBodyBytes = 10 << 20
)

// ErrUpstreamStatus is wrapped by StatusError.
var ErrUpstreamStatus = errors.New("upstream returned non-success status")

// StatusError carries the HTTP status of a failed upstream call.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUpstreamStatus, e.StatusCode)
}

func (e *StatusError) Unwrap() error { return ErrUpstreamStatus }

// Transient reports whether a retry may succeed.
func (e *StatusError) Transient() bool {
	return e.StatusCode >= 500 ||
		e.StatusCode == http.StatusRequestTimeout ||
		e.StatusCode == http.StatusTooManyRequests
}

// FrankfurterFacade is the HTTP client of the Frankfurter API.
// Calls are retried with exponential backoff and guarded by a circuit breaker.
type FrankfurterFacade struct {
	baseURL       string
	client        *http.Client
	maxRetries    uint64
	retryInterval time.Duration
	breaker       *gobreaker.CircuitBreaker

	breakerFailures uint32
	breakerTimeout  time.Duration
}

// Option configures a FrankfurterFacade.
type Option func(*FrankfurterFacade)

// WithHTTPClient replaces the default client.
func WithHTTPClient(client *http.Client) Option {
	return func(f *FrankfurterFacade) {
		if client != nil {
			f.client = client
		}
	}
}

// WithTimeout sets the per-attempt timeout. The configured client is copied, not mutated.
func WithTimeout(timeout time.Duration) Option {
	return func(f *FrankfurterFacade) {
		c := *f.client
		c.Timeout = timeout
		f.client = &c
	}
}

// WithRetry sets the number of retries after the first attempt and the initial backoff interval.
func WithRetry(maxRetries int, interval time.Duration) Option {
	return func(f *FrankfurterFacade) {
		if maxRetries < 0 {
			maxRetries = 0
		}
		f.maxRetries = uint64(maxRetries)
		f.retryInterval = interval
	}
}

// WithBreaker sets how many consecutive failures open the breaker and how long it stays open.
func WithBreaker(failures int, openTimeout time.Duration) Option {
	return func(f *FrankfurterFacade) {
		if failures < 1 {
			failures = 1
		}
		f.breakerFailures = uint32(failures)
		f.breakerTimeout = openTimeout
	}
}

// NewFrankfurterFacade creates a client rooted at baseURL, e.g. https://api.frankfurter.app.
func NewFrankfurterFacade(baseURL string, opts ...Option) *FrankfurterFacade {
	f := &FrankfurterFacade{
		baseURL:         strings.TrimRight(baseURL, "/"),
		client:          &http.Client{Timeout: DefaultTimeout},
		maxRetries:      DefaultMaxRetries,
		retryInterval:   DefaultRetryInterval,
		breakerFailures: DefaultBreakerFailures,
		breakerTimeout:  DefaultBreakerTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	failures := f.breakerFailures
	f.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "frankfurter",
		Timeout: f.breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			var statusErr *StatusError
			if errors.As(err, &statusErr) {
				return !statusErr.Transient()
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Log.Warnw("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			metrics.BreakerStateChangesTotal.WithLabelValues(name, to.String()).Inc()
		},
	})

	return f
}

// Get requests baseURL/path and returns the body of a 2xx response.
func (f *FrankfurterFacade) Get(ctx context.Context, path string) ([]byte, error) {
	url := f.baseURL + "/" + strings.TrimLeft(path, "/")

	var body []byte
	operation := func() error {
		res, err := f.breaker.Execute(func() (interface{}, error) {
			return f.do(ctx, url)
		})
		if err != nil {
			if ctx.Err() != nil || !retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		body = res.([]byte)
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = f.retryInterval
	policy.Reset()

	notify := func(err error, wait time.Duration) {
		logger.Log.Warnw("upstream call failed, retrying", "url", url, "wait", wait.String(), "error", err)
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(policy, f.maxRetries), ctx), notify)
	if err != nil {
		logger.Log.Errorw("upstream call failed", "url", url, "error", err)
		return nil, err
	}

	return body, nil
}

func (f *FrankfurterFacade) do(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// retryable rejects open-breaker errors and definitive statuses.
func retryable(err error) bool {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Transient()
	}
	return true
}

package facades

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCountingServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, call int32)) (*httptest.Server, *int32) {
	t.Helper()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		handler(w, r, n)
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func TestFrankfurterFacade_Get(t *testing.T) {
	srv, calls := newCountingServer(t, func(w http.ResponseWriter, r *http.Request, _ int32) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("from"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD"}`))
	})

	facade := NewFrankfurterFacade(srv.URL+"/", WithRetry(3, time.Millisecond))

	body, err := facade.Get(context.Background(), "/latest?from=USD")
	require.NoError(t, err)
	assert.JSONEq(t, `{"base":"USD"}`, string(body))
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestFrankfurterFacade_RetriesTransientStatus(t *testing.T) {
	srv, calls := newCountingServer(t, func(w http.ResponseWriter, _ *http.Request, call int32) {
		if call < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	})

	facade := NewFrankfurterFacade(srv.URL, WithRetry(3, time.Millisecond))

	body, err := facade.Get(context.Background(), "latest")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(body))
	assert.Equal(t, int32(3), atomic.LoadInt32(calls))
}

func TestFrankfurterFacade_GivesUpAfterMaxRetries(t *testing.T) {
	srv, calls := newCountingServer(t, func(w http.ResponseWriter, _ *http.Request, _ int32) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	facade := NewFrankfurterFacade(srv.URL,
		WithRetry(3, time.Millisecond),
		WithBreaker(100, time.Minute),
	)

	_, err := facade.Get(context.Background(), "latest")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamStatus)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, int32(4), atomic.LoadInt32(calls))
}

func TestFrankfurterFacade_DefinitiveStatusIsNotRetried(t *testing.T) {
	srv, calls := newCountingServer(t, func(w http.ResponseWriter, _ *http.Request, _ int32) {
		w.WriteHeader(http.StatusNotFound)
	})

	facade := NewFrankfurterFacade(srv.URL, WithRetry(3, time.Millisecond))

	_, err := facade.Get(context.Background(), "latest?from=XXX")
	assert.ErrorIs(t, err, ErrUpstreamStatus)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestFrankfurterFacade_BreakerOpens(t *testing.T) {
	srv, calls := newCountingServer(t, func(w http.ResponseWriter, _ *http.Request, _ int32) {
		w.WriteHeader(http.StatusBadGateway)
	})

	facade := NewFrankfurterFacade(srv.URL,
		WithRetry(0, time.Millisecond),
		WithBreaker(2, time.Minute),
	)

	for i := 0; i < 2; i++ {
		_, err := facade.Get(context.Background(), "latest")
		assert.ErrorIs(t, err, ErrUpstreamStatus)
	}

	_, err := facade.Get(context.Background(), "latest")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
}

func TestFrankfurterFacade_DefinitiveStatusDoesNotTripBreaker(t *testing.T) {
	srv, calls := newCountingServer(t, func(w http.ResponseWriter, _ *http.Request, _ int32) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	facade := NewFrankfurterFacade(srv.URL,
		WithRetry(0, time.Millisecond),
		WithBreaker(1, time.Minute),
	)

	for i := 0; i < 3; i++ {
		_, err := facade.Get(context.Background(), "latest")
		assert.ErrorIs(t, err, ErrUpstreamStatus)
	}
	assert.Equal(t, int32(3), atomic.LoadInt32(calls))
}

func TestFrankfurterFacade_ContextCanceled(t *testing.T) {
	srv, _ := newCountingServer(t, func(w http.ResponseWriter, _ *http.Request, _ int32) {
		w.WriteHeader(http.StatusOK)
	})

	facade := NewFrankfurterFacade(srv.URL, WithRetry(3, time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := facade.Get(ctx, "latest")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatusError_Transient(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{http.StatusInternalServerError, true},
		{http.StatusServiceUnavailable, true},
		{http.StatusRequestTimeout, true},
		{http.StatusTooManyRequests, true},
		{http.StatusBadRequest, false},
		{http.StatusNotFound, false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, (&StatusError{StatusCode: tt.code}).Transient())
		})
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestFrankfurterFacade_TimeoutKeepsCustomClient(t *testing.T) {
	srv, calls := newCountingServer(t, func(w http.ResponseWriter, _ *http.Request, _ int32) {
		_, _ = w.Write([]byte(`{}`))
	})

	var viaCustom int32
	custom := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		atomic.AddInt32(&viaCustom, 1)
		return http.DefaultTransport.RoundTrip(r)
	})}

	for _, opts := range [][]Option{
		{WithHTTPClient(custom), WithTimeout(time.Second)},
		{WithTimeout(time.Second), WithHTTPClient(custom)},
	} {
		facade := NewFrankfurterFacade(srv.URL, opts...)
		_, err := facade.Get(context.Background(), "latest")
		require.NoError(t, err)
	}

	assert.Equal(t, int32(2), atomic.LoadInt32(&viaCustom))
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
	assert.Zero(t, custom.Timeout)

	facade := NewFrankfurterFacade(srv.URL, WithHTTPClient(custom), WithTimeout(3*time.Second))
	assert.Equal(t, 3*time.Second, facade.client.Timeout)
	assert.NotNil(t, facade.client.Transport)
}

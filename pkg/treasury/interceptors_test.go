package treasury_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

func TestInterceptorChain(t *testing.T) {
	t.Parallel()

	chain := treasury.NewInterceptorChain()

	var order []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *treasury.Request) error {
		order = append(order, "first")

		return nil
	})
	chain.AddRequestInterceptor(treasury.HeaderInterceptor(map[string]string{"X-Tenant": "t1"}))
	chain.AddRequestInterceptor(func(ctx context.Context, req *treasury.Request) error {
		order = append(order, "last:"+req.Headers.Get("X-Tenant"))

		return nil
	})
	chain.AddResponseInterceptor(func(ctx context.Context, req *treasury.Request, resp *treasury.Response) error {
		return errors.New("bad response")
	})

	assert.Equal(t, 4, chain.Len())

	req := &treasury.Request{Method: http.MethodGet, Path: "/api/ledgers"}
	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), req))
	assert.Equal(t, []string{"first", "last:t1"}, order)

	err := chain.ExecuteResponseInterceptors(context.Background(), req, &treasury.Response{StatusCode: http.StatusOK})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "response interceptor failed: bad response")
}

func TestRateLimitInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := treasury.RateLimitInterceptor(1)
	req := &treasury.Request{}

	require.NoError(t, interceptor(context.Background(), req))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := interceptor(ctx, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "waiting for rate limiter")
}

func TestMetricsInterceptors(t *testing.T) {
	t.Parallel()

	collector := treasury.NewMetricsCollector()

	var changes int

	collector.SetOnChange(func(endpoint string, metrics treasury.Metrics) {
		changes++
	})

	before := treasury.MetricsRequestInterceptor(collector)
	after := treasury.MetricsResponseInterceptor(collector)
	ctx := context.Background()

	for _, status := range []int{http.StatusOK, http.StatusNotFound, http.StatusOK} {
		req := &treasury.Request{Method: http.MethodGet, Path: "/api/payment_orders"}
		require.NoError(t, before(ctx, req))
		require.NoError(t, after(ctx, req, &treasury.Response{StatusCode: status}))
	}

	metrics, ok := collector.GetMetrics("GET /api/payment_orders")
	require.True(t, ok)
	assert.Equal(t, int64(3), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.False(t, metrics.LastRequestTime.IsZero())
	assert.Equal(t, 3, changes)

	_, ok = collector.GetMetrics("POST /api/payment_orders")
	assert.False(t, ok)
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := treasury.NewZapLogger(zap.New(core))

	req := &treasury.Request{Method: http.MethodPost, Path: "/api/payment_orders"}
	ctx := context.Background()

	require.NoError(t, treasury.LoggingInterceptor(logger)(ctx, req))
	require.NoError(t, treasury.LoggingResponseInterceptor(logger)(ctx, req, &treasury.Response{StatusCode: http.StatusCreated}))
	require.NoError(t, treasury.LoggingResponseInterceptor(logger)(ctx, req, &treasury.Response{
		StatusCode: http.StatusBadGateway,
		Error:      errors.New("upstream"),
	}))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "API Request", entries[0].Message)
	assert.Equal(t, "/api/payment_orders", entries[0].ContextMap()["path"])
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "upstream", entries[2].ContextMap()["error"])
}

func TestCircuitBreaker(t *testing.T) {
	t.Parallel()

	breaker := treasury.NewCircuitBreaker(&treasury.CircuitBreakerConfig{
		Threshold:        2,
		Timeout:          20 * time.Millisecond,
		SuccessThreshold: 1,
	})

	before := treasury.CircuitBreakerRequestInterceptor(breaker)
	after := treasury.CircuitBreakerResponseInterceptor(breaker)
	ctx := context.Background()
	req := &treasury.Request{}

	assert.Equal(t, "closed", breaker.State())

	for range 2 {
		require.NoError(t, before(ctx, req))
		require.NoError(t, after(ctx, req, &treasury.Response{StatusCode: http.StatusServiceUnavailable}))
	}

	assert.Equal(t, "open", breaker.State())
	require.ErrorIs(t, before(ctx, req), treasury.ErrCircuitBreakerOpen)

	time.Sleep(30 * time.Millisecond)

	require.NoError(t, before(ctx, req))
	assert.Equal(t, "half-open", breaker.State())

	require.NoError(t, after(ctx, req, &treasury.Response{StatusCode: http.StatusOK}))
	assert.Equal(t, "closed", breaker.State())
}

func TestCircuitBreaker_ClientErrorsDoNotTrip(t *testing.T) {
	t.Parallel()

	breaker := treasury.NewCircuitBreaker(nil)
	after := treasury.CircuitBreakerResponseInterceptor(breaker)

	for range 10 {
		require.NoError(t, after(context.Background(), &treasury.Request{}, &treasury.Response{StatusCode: http.StatusNotFound}))
	}

	assert.Equal(t, "closed", breaker.State())
}

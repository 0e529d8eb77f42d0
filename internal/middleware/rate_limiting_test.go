package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/2beens/ihealth/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLimiter struct {
	allowed int
	calls   int
	err     error
	lastKey string
	limit   redis_rate.Limit
}

func (f *fakeLimiter) Allow(_ context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	f.calls++
	f.lastKey = key
	f.limit = limit
	if f.err != nil {
		return nil, f.err
	}
	if f.calls > f.allowed {
		return &redis_rate.Result{Limit: limit, Allowed: 0, RetryAfter: 1500 * time.Millisecond}, nil
	}
	return &redis_rate.Result{Limit: limit, Allowed: 1, Remaining: f.allowed - f.calls}, nil
}

func TestRateLimit(t *testing.T) {
	metricsManager := metrics.NewTestManager()
	limiter := &fakeLimiter{allowed: 2}
	mw := RateLimit(limiter, "api", 2, metricsManager)

	served := 0
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served++
	}))

	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/users/x/dashboard", nil))
		assert.Equal(t, "2", rr.Header().Get("X-RateLimit-Limit"))
		if i < 2 {
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, strconv.Itoa(1-i), rr.Header().Get("X-RateLimit-Remaining"))
		} else {
			assert.Equal(t, http.StatusTooManyRequests, rr.Code)
			assert.Equal(t, "2", rr.Header().Get("Retry-After"))
			assert.Contains(t, rr.Body.String(), "retry after 1.5 seconds")
		}
	}

	assert.Equal(t, 2, served)
	assert.Equal(t, "rate:api", limiter.lastKey)
	assert.Equal(t, redis_rate.PerMinute(2), limiter.limit)
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterRateLimitedRequests))
}

func TestRateLimit_LimiterError(t *testing.T) {
	limiter := &fakeLimiter{err: errors.New("redis down")}
	handler := RateLimit(limiter, "api", 10, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Fail(t, "must not be called")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

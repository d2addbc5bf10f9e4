package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitedHandler(rl *RateLimiter) echo.HandlerFunc {
	return rl.Middleware()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

func serveFrom(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter_AllowsBurstThenRejects(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(2)
	frozen := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }
	handler := newRateLimitedHandler(rl)

	for i := 0; i < 4; i++ {
		rec := serveFrom(e, handler, "192.168.1.2:12345", nil)
		require.Equal(t, http.StatusOK, rec.Code, "request %d should fit the burst", i+1)
	}

	rec := serveFrom(e, handler, "192.168.1.2:12345", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_RefillsOverTime(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1)
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	handler := newRateLimitedHandler(rl)

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusOK, serveFrom(e, handler, "10.0.0.1:1", nil).Code)
	}
	require.Equal(t, http.StatusTooManyRequests, serveFrom(e, handler, "10.0.0.1:1", nil).Code)

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, serveFrom(e, handler, "10.0.0.1:1", nil).Code)
}

func TestRateLimiter_SeparateBucketsPerIP(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1)
	frozen := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }
	handler := newRateLimitedHandler(rl)

	for i := 0; i < 3; i++ {
		serveFrom(e, handler, "10.0.0.1:1", nil)
	}
	assert.Equal(t, http.StatusTooManyRequests, serveFrom(e, handler, "10.0.0.1:1", nil).Code)
	assert.Equal(t, http.StatusOK, serveFrom(e, handler, "10.0.0.2:1", nil).Code)
}

func TestRateLimiter_UsesFirstForwardedAddress(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1)
	frozen := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }
	handler := newRateLimitedHandler(rl)

	forwarded := map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}
	serveFrom(e, handler, "10.0.0.1:1", forwarded)
	serveFrom(e, handler, "10.0.0.9:1", forwarded)

	rec := serveFrom(e, handler, "10.0.0.5:1", forwarded)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rl.mu.Lock()
	_, tracked := rl.visitors["203.0.113.7"]
	rl.mu.Unlock()
	assert.True(t, tracked)
}

func TestRateLimiter_CleanupEvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(5)
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.allow("10.0.0.1")
	now = now.Add(2 * time.Minute)
	rl.allow("10.0.0.2")
	now = now.Add(2 * time.Minute)

	rl.cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")
}

func TestRateLimiter_ConcurrentRequests(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(5)
	frozen := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }
	handler := newRateLimitedHandler(rl)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if serveFrom(e, handler, "172.16.0.1:80", nil).Code == http.StatusOK {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, allowed)
}

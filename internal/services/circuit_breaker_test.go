package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestBreaker(now *time.Time) *CircuitBreaker {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:       2,
		ResetTimeout:      time.Minute,
		HalfOpenSuccesses: 2,
	}).(*CircuitBreaker)
	cb.now = func() time.Time { return *now }
	return cb
}

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := newTestBreaker(&now)

	cb.RecordFailure()
	assert.False(t, cb.IsOpen())
	assert.Equal(t, StateClosed, cb.GetState())

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
	assert.Equal(t, StateOpen, cb.GetState())
	assert.Equal(t, "open", cb.GetState().String())
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	now := time.Now()
	cb := newTestBreaker(&now)

	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()

	assert.False(t, cb.IsOpen(), "failures must be consecutive")
	assert.Equal(t, StateClosed, cb.GetState())
}

func TestCircuitBreaker_StaysOpenUntilTimeout(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := newTestBreaker(&now)
	cb.RecordFailure()
	cb.RecordFailure()

	now = now.Add(30 * time.Second)

	assert.True(t, cb.IsOpen())
}

func TestCircuitBreaker_HalfOpenAfterTimeout(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := newTestBreaker(&now)
	cb.RecordFailure()
	cb.RecordFailure()

	now = now.Add(2 * time.Minute)

	assert.False(t, cb.IsOpen())
	assert.Equal(t, StateHalfOpen, cb.GetState())

	cb.RecordSuccess()
	assert.Equal(t, StateHalfOpen, cb.GetState())
	cb.RecordSuccess()
	assert.Equal(t, StateClosed, cb.GetState())

	cb.RecordFailure()
	assert.False(t, cb.IsOpen(), "closing clears the failure count")
}

func TestCircuitBreaker_FailureInHalfOpenReopens(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := newTestBreaker(&now)
	cb.RecordFailure()
	cb.RecordFailure()
	now = now.Add(2 * time.Minute)
	assert.False(t, cb.IsOpen())

	cb.RecordFailure()

	assert.True(t, cb.IsOpen())
	now = now.Add(30 * time.Second)
	assert.True(t, cb.IsOpen(), "the timeout restarts when reopening")
}

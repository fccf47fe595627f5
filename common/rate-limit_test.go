package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryRateLimiterAllowsUpToLimit(t *testing.T) {
	var limiter InMemoryRateLimiter
	limiter.Init(time.Minute)
	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Request("client-a", 5, 60)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}
	allowed, remaining := limiter.Request("client-a", 5, 60)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestInMemoryRateLimiterRemainingCountsDown(t *testing.T) {
	var limiter InMemoryRateLimiter
	limiter.Init(time.Minute)
	_, remaining := limiter.Request("client-b", 3, 60)
	assert.Equal(t, 2, remaining)
	_, remaining = limiter.Request("client-b", 3, 60)
	assert.Equal(t, 1, remaining)
}

func TestInMemoryRateLimiterKeysAreIndependent(t *testing.T) {
	var limiter InMemoryRateLimiter
	limiter.Init(time.Minute)
	allowed, _ := limiter.Request("client-c", 1, 60)
	assert.True(t, allowed)
	allowed, _ = limiter.Request("client-c", 1, 60)
	assert.False(t, allowed)
	allowed, _ = limiter.Request("client-d", 1, 60)
	assert.True(t, allowed)
}

func TestInMemoryRateLimiterWindowSlides(t *testing.T) {
	var limiter InMemoryRateLimiter
	limiter.Init(time.Minute)
	allowed, _ := limiter.Request("client-e", 1, 1)
	assert.True(t, allowed)
	allowed, _ = limiter.Request("client-e", 1, 1)
	assert.False(t, allowed)
	time.Sleep(1100 * time.Millisecond)
	allowed, _ = limiter.Request("client-e", 1, 1)
	assert.True(t, allowed)
}

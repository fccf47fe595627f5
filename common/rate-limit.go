package common

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// InMemoryRateLimiter is a sliding-window counter keyed by client identity.
// Entries expire via the backing cache so idle clients do not accumulate.
type InMemoryRateLimiter struct {
	store    *cache.Cache
	mutex    sync.Mutex
	initOnce sync.Once
}

// Init is safe to call multiple times.
func (l *InMemoryRateLimiter) Init(expiration time.Duration) {
	l.initOnce.Do(func() {
		l.store = cache.New(expiration, 2*expiration)
	})
}

// Request records one request under key and reports whether it is allowed
// within maxRequestNum per duration seconds, plus the remaining quota.
func (l *InMemoryRateLimiter) Request(key string, maxRequestNum int, duration int64) (bool, int) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	now := time.Now().Unix()
	cutoff := now - duration
	var timestamps []int64
	if v, ok := l.store.Get(key); ok {
		for _, ts := range v.([]int64) {
			if ts > cutoff {
				timestamps = append(timestamps, ts)
			}
		}
	}
	if len(timestamps) >= maxRequestNum {
		l.store.SetDefault(key, timestamps)
		return false, 0
	}
	timestamps = append(timestamps, now)
	l.store.SetDefault(key, timestamps)
	return true, maxRequestNum - len(timestamps)
}

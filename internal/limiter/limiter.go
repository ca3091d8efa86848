// Package limiter implements per-caller request admission for the gateway.
//
// The admission policy is configured as a human-readable spec string of the
// form "N/unit" (e.g. "100/minute") and enforced independently per caller
// key with a token bucket. Within any configured window no single key is
// admitted more than N times; different keys never affect each other.
package limiter

import (
	"sync"

	"golang.org/x/time/rate"
)

// Limiter tracks one token bucket per caller key.
//
// The buckets map is the only cross-request mutable state in the gateway
// besides nothing else; it is guarded by a mutex so that bucket creation and
// the admission check for a key form an atomic unit — two concurrent
// requests from the same key cannot both be admitted past the limit through
// a lost update.
//
// Buckets are never evicted: the key space is bounded by the set of caller
// addresses, and the gateway deliberately spawns no background work outside
// a request's lifetime.
type Limiter struct {
	mu      sync.Mutex
	spec    Spec
	buckets map[string]*rate.Limiter
}

// NewLimiter constructs a Limiter enforcing the given spec.
func NewLimiter(spec Spec) *Limiter {
	return &Limiter{
		spec:    spec,
		buckets: make(map[string]*rate.Limiter),
	}
}

// Allow reports whether a request from the given caller key is admitted
// right now. A rejected request consumes nothing.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.buckets[key]
	if !ok {
		// Burst equals the configured count so a fresh key can use its
		// whole window allowance immediately; refill spreads N over the
		// window duration.
		bucket = rate.NewLimiter(rate.Limit(float64(l.spec.Count)/l.spec.Per.Seconds()), l.spec.Count)
		l.buckets[key] = bucket
	}

	return bucket.Allow()
}

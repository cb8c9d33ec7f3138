package gemini

import (
	"sync"
	"time"
)

const (
	maxRequestsPerWindow = 15
	rateWindow           = time.Minute

	cooldownRateLimited  = 5 * time.Minute
	cooldownQuotaExpired = 30 * time.Minute
	cooldownDefault      = time.Minute
)

// credential is one API key slot with its own rate-limit and cooldown
// bookkeeping. Each slot locks independently so concurrent requests only
// contend when they land on the same key.
type credential struct {
	mu            sync.Mutex
	key           string
	cooldownUntil time.Time
	failures      int
	timestamps    []time.Time
}

func (c *credential) available(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if now.Before(c.cooldownUntil) {
		return false
	}
	return c.countRecentLocked(now) < maxRequestsPerWindow
}

// countRecentLocked prunes timestamps older than the sliding window and
// returns how many remain. Caller must hold c.mu.
func (c *credential) countRecentLocked(now time.Time) int {
	cutoff := now.Add(-rateWindow)
	kept := c.timestamps[:0]
	for _, ts := range c.timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	c.timestamps = kept
	return len(kept)
}

func (c *credential) recordSuccess(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = 0
	c.timestamps = append(c.timestamps, now)
}

func (c *credential) recordFailure(status int, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.failures++

	cooldown := cooldownDefault
	switch status {
	case 429:
		cooldown = cooldownRateLimited
	case 403:
		cooldown = cooldownQuotaExpired
	}
	c.cooldownUntil = now.Add(cooldown)
}

// KeyPool rotates a fixed set of API keys round-robin, skipping keys that are
// cooling down or rate limited. It is the only process-wide mutable state of
// the inference client and is safe for concurrent use. The cursor is advanced
// under its own lock but rotation is a load-spreading heuristic, not an
// ordering guarantee.
type KeyPool struct {
	mu     sync.Mutex
	cursor int
	creds  []*credential
}

func NewKeyPool(keys []string) *KeyPool {
	pool := &KeyPool{}
	for _, key := range keys {
		if key == "" {
			continue
		}
		pool.creds = append(pool.creds, &credential{key: key})
	}
	return pool
}

func (p *KeyPool) Size() int {
	return len(p.creds)
}

// next returns the next usable credential. If every key is cooling down or
// rate limited it returns the first key anyway: a degraded call beats a hard
// failure.
func (p *KeyPool) next(now time.Time) *credential {
	if len(p.creds) == 0 {
		return nil
	}

	p.mu.Lock()
	start := p.cursor
	p.mu.Unlock()

	for i := 0; i < len(p.creds); i++ {
		idx := (start + i) % len(p.creds)
		cred := p.creds[idx]

		if cred.available(now) {
			p.advance(idx)
			return cred
		}
	}

	p.advance(start)
	return p.creds[0]
}

func (p *KeyPool) advance(from int) {
	p.mu.Lock()
	p.cursor = (from + 1) % len(p.creds)
	p.mu.Unlock()
}

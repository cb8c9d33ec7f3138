package gemini

import (
	"testing"
	"time"
)

func TestKeyPoolSkipsEmptyKeys(t *testing.T) {
	pool := NewKeyPool([]string{"a", "", "b", ""})
	if pool.Size() != 2 {
		t.Errorf("Size() = %d, want 2", pool.Size())
	}
}

func TestKeyPoolRoundRobin(t *testing.T) {
	pool := NewKeyPool([]string{"a", "b", "c"})
	now := time.Now()

	var got []string
	for i := 0; i < 6; i++ {
		got = append(got, pool.next(now).key)
	}

	want := []string{"a", "b", "c", "a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rotation = %v, want %v", got, want)
		}
	}
}

func TestKeyPoolSkipsRateLimitedKey(t *testing.T) {
	pool := NewKeyPool([]string{"a", "b"})
	now := time.Now()

	for i := 0; i < maxRequestsPerWindow; i++ {
		pool.creds[0].recordSuccess(now)
	}

	for i := 0; i < 3; i++ {
		if got := pool.next(now).key; got != "b" {
			t.Fatalf("next() = %q, want %q after key a hit the window cap", got, "b")
		}
	}

	// Once the window slides past the burst, key a comes back.
	later := now.Add(rateWindow + time.Second)
	if !pool.creds[0].available(later) {
		t.Error("key a should be available after the rate window slides")
	}
}

func TestKeyPoolAllBusyReturnsFirst(t *testing.T) {
	pool := NewKeyPool([]string{"a", "b"})
	now := time.Now()
	pool.creds[0].recordFailure(429, now)
	pool.creds[1].recordFailure(429, now)

	cred := pool.next(now)
	if cred == nil || cred.key != "a" {
		t.Fatalf("next() with all keys busy should return the first key, got %v", cred)
	}
}

func TestKeyPoolEmpty(t *testing.T) {
	pool := NewKeyPool(nil)
	if cred := pool.next(time.Now()); cred != nil {
		t.Fatalf("next() on empty pool = %v, want nil", cred)
	}
}

func TestCredentialCooldowns(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   time.Duration
	}{
		{name: "rate limited", status: 429, want: cooldownRateLimited},
		{name: "quota or expired key", status: 403, want: cooldownQuotaExpired},
		{name: "server error", status: 500, want: cooldownDefault},
		{name: "bad request", status: 400, want: cooldownDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred := &credential{key: "k"}
			now := time.Now()
			cred.recordFailure(tt.status, now)

			if cred.available(now.Add(tt.want - time.Second)) {
				t.Error("credential available before cooldown elapsed")
			}
			if !cred.available(now.Add(tt.want + time.Second)) {
				t.Error("credential still unavailable after cooldown elapsed")
			}
		})
	}
}

func TestCredentialSuccessResetsFailures(t *testing.T) {
	cred := &credential{key: "k"}
	now := time.Now()
	cred.recordFailure(500, now)
	cred.recordFailure(500, now)
	cred.recordSuccess(now.Add(2 * time.Minute))

	if cred.failures != 0 {
		t.Errorf("failures = %d, want 0 after success", cred.failures)
	}
}

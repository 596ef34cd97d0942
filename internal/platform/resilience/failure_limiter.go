package resilience

import (
	"sync"

	crerr "github.com/cockroachdb/errors"
)

var ErrFailureLimit = crerr.New("consecutive failure limit reached")

// FailureLimiter refuses further calls once threshold failures happen in a
// row. A success resets the streak. There is no cooldown: a refusal is final
// for the lifetime of the limiter.
type FailureLimiter struct {
	mu        sync.Mutex
	threshold int
	streak    int
}

// NewFailureLimiter returns nil when threshold < 1; a nil limiter allows everything.
func NewFailureLimiter(threshold int) *FailureLimiter {
	if threshold < 1 {
		return nil
	}
	return &FailureLimiter{threshold: threshold}
}

func (l *FailureLimiter) Allow() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.streak >= l.threshold {
		return crerr.Wrapf(ErrFailureLimit, "%d consecutive failures", l.streak)
	}
	return nil
}

func (l *FailureLimiter) RecordSuccess() {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.streak = 0
	l.mu.Unlock()
}

func (l *FailureLimiter) RecordFailure() {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.streak++
	l.mu.Unlock()
}

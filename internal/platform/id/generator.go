package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Generator creates opaque IDs used to correlate the log lines of one run.
type Generator interface {
	NewID() (string, error)
}

// RunGenerator produces IDs like "20261018-9f86d081884c7d65": the UTC day the
// run started plus 8 random bytes.
type RunGenerator struct {
	now func() time.Time
}

func NewRunGenerator(now func() time.Time) *RunGenerator {
	if now == nil {
		now = time.Now
	}
	return &RunGenerator{now: now}
}

func (g *RunGenerator) NewID() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return g.now().UTC().Format("20060102") + "-" + hex.EncodeToString(buf), nil
}

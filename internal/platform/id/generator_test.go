package id

import (
	"regexp"
	"testing"
	"time"
)

func TestRunGenerator_NewID(t *testing.T) {
	fixed := time.Date(2026, 10, 18, 23, 30, 0, 0, time.FixedZone("WIB", 7*3600))
	gen := NewRunGenerator(func() time.Time { return fixed })

	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}

	pattern := regexp.MustCompile(`^20261018-[0-9a-f]{16}$`)
	if !pattern.MatchString(first) {
		t.Fatalf("unexpected id format %q", first)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
}

package throttle

import (
	"context"
	"testing"
	"time"
)

func TestFirstCallPassesImmediately(t *testing.T) {
	g := New(100 * time.Millisecond)

	start := time.Now()
	waited, err := g.Wait(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if waited != 0 {
		t.Fatalf("expected zero wait, got %v", waited)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Fatalf("first call blocked for %v", elapsed)
	}
}

func TestBackToBackCallsAreSpaced(t *testing.T) {
	interval := 80 * time.Millisecond
	g := New(interval)
	ctx := context.Background()

	// Measure the actual gap between eligibility times, not mock time.
	if _, err := g.Wait(ctx); err != nil {
		t.Fatalf("first wait: %v", err)
	}
	first := time.Now()

	if _, err := g.Wait(ctx); err != nil {
		t.Fatalf("second wait: %v", err)
	}
	second := time.Now()

	if gap := second.Sub(first); gap < interval {
		t.Fatalf("calls spaced %v apart, want at least %v", gap, interval)
	}
}

func TestConcurrentCallersSerialize(t *testing.T) {
	interval := 40 * time.Millisecond
	g := New(interval)
	ctx := context.Background()

	times := make(chan time.Time, 3)
	for i := 0; i < 3; i++ {
		go func() {
			if _, err := g.Wait(ctx); err != nil {
				t.Errorf("wait: %v", err)
			}
			times <- time.Now()
		}()
	}

	var got []time.Time
	for i := 0; i < 3; i++ {
		got = append(got, <-times)
	}
	// Order of goroutine wakeups is not deterministic; sort by time.
	for i := 0; i < len(got); i++ {
		for j := i + 1; j < len(got); j++ {
			if got[j].Before(got[i]) {
				got[i], got[j] = got[j], got[i]
			}
		}
	}
	for i := 1; i < len(got); i++ {
		if gap := got[i].Sub(got[i-1]); gap < interval-5*time.Millisecond {
			t.Fatalf("concurrent callers spaced %v apart, want about %v", gap, interval)
		}
	}
}

func TestCancelledContextAborts(t *testing.T) {
	g := New(time.Minute)
	ctx := context.Background()

	if _, err := g.Wait(ctx); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	cancelled, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()

	if _, err := g.Wait(cancelled); err == nil {
		t.Fatal("expected context error")
	}
}

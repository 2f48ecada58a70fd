package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestManualClock(t *testing.T) {
	c := NewManualClock(100)
	if c.Millis() != 100 {
		t.Fatalf("Millis() = %d, expected 100", c.Millis())
	}
	c.Advance(16)
	if c.Millis() != 116 {
		t.Errorf("after Advance: %d, expected 116", c.Millis())
	}
	c.Set(5000)
	if c.Millis() != 5000 {
		t.Errorf("after Set: %d, expected 5000", c.Millis())
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.Millis()
	time.Sleep(2 * time.Millisecond)
	if b := c.Millis(); b < a {
		t.Errorf("clock went backwards: %d then %d", a, b)
	}
}

func TestRunFixedStopsWhenStepReturnsFalse(t *testing.T) {
	calls := 0
	err := RunFixed(context.Background(), 1000, func() bool {
		calls++
		return calls < 5
	})
	if err != nil {
		t.Fatalf("RunFixed() error = %v", err)
	}
	if calls != 5 {
		t.Errorf("step called %d times, expected 5", calls)
	}
}

func TestRunFixedCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := RunFixed(ctx, 1000, func() bool {
		calls++
		if calls == 3 {
			cancel()
		}
		return true
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("RunFixed() error = %v, expected context.Canceled", err)
	}
	if calls < 3 {
		t.Errorf("step called %d times, expected at least 3", calls)
	}
}

func TestSimpleRNGDeterministic(t *testing.T) {
	a := NewSimpleRNG(42)
	b := NewSimpleRNG(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}

	r := NewSimpleRNG(7)
	for i := 0; i < 1000; i++ {
		if v := r.Intn(4); v < 0 || v >= 4 {
			t.Fatalf("Intn(4) = %d", v)
		}
		if v := r.RangeInt(0, 770); v < 0 || v > 770 {
			t.Fatalf("RangeInt(0, 770) = %d", v)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v", f)
		}
	}

	before := r.State()
	r.Next()
	if r.State() == before {
		t.Error("Next should advance the state")
	}
}

package distid

import (
	"bytes"
	"sync"
	"testing"
	"time"
)

func TestDistributedIDGeneratorFixedClockAndRandomSource(t *testing.T) {
	clock := func() time.Time {
		return time.Date(2020, 1, 1, 0, 0, 0, 1_000_000, time.UTC)
	}
	randSource := bytes.NewReader([]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00})
	gen := NewDistributedIDGenerator(WithClock(clock), WithRandomSource(randSource))

	id, err := gen.NextID()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := id.Timestamp(), uint64(1577836800001); got != want {
		t.Fatalf("timestamp = %d, want %d", got, want)
	}
	if got, want := id.Random(), uint64(1)<<40; got != want {
		t.Fatalf("random = %d, want %d", got, want)
	}
}

// Across 2000 consecutive mints, all outputs must be distinct and strictly
// increasing.
func TestDistributedIDGeneratorUniquenessAndMonotonicity(t *testing.T) {
	gen := NewDistributedIDGenerator()
	seen := make(map[string]bool, 2000)
	var previous DecimalPayload
	for i := 0; i < 2000; i++ {
		id, err := gen.NextID()
		if err != nil {
			t.Fatal(err)
		}
		s := id.DecimalString()
		if seen[s] {
			t.Fatalf("duplicate id %s at iteration %d", s, i)
		}
		seen[s] = true
		if i > 0 && !id.After(previous) {
			t.Fatalf("id %s did not increase past %s at iteration %d", s, previous.DecimalString(), i)
		}
		previous = id
	}
}

// 1+RATE_LIMIT mints cause exactly one 1ms sleep; 1+2*RATE_LIMIT mints
// cause exactly two.
func TestDistributedIDGeneratorRateLimitSleepCount(t *testing.T) {
	var mu sync.Mutex
	current := int64(1_000_000)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return time.UnixMilli(current)
	}
	sleeps := 0
	gen := NewDistributedIDGenerator(
		WithClock(clock),
		withSleepFunc(func(time.Duration) {
			mu.Lock()
			sleeps++
			current++
			mu.Unlock()
		}),
	)

	for i := 0; i < 1+DefaultRateLimitPerTimestamp; i++ {
		if _, err := gen.NextID(); err != nil {
			t.Fatal(err)
		}
	}
	if sleeps != 1 {
		t.Fatalf("after %d mints, sleeps = %d, want 1", 1+DefaultRateLimitPerTimestamp, sleeps)
	}

	for i := 0; i < DefaultRateLimitPerTimestamp; i++ {
		if _, err := gen.NextID(); err != nil {
			t.Fatal(err)
		}
	}
	if sleeps != 2 {
		t.Fatalf("after %d mints, sleeps = %d, want 2", 1+2*DefaultRateLimitPerTimestamp, sleeps)
	}
}

// A clock that rewinds once mid-run must never produce a collision;
// output may decrease across the rewind boundary.
func TestDistributedIDGeneratorStallTolerance(t *testing.T) {
	var mu sync.Mutex
	current := int64(2_000_000)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return time.UnixMilli(current)
	}
	gen := NewDistributedIDGenerator(WithClock(clock), withSleepFunc(func(time.Duration) {}))

	seen := make(map[string]bool)
	mustMint := func() DecimalPayload {
		id, err := gen.NextID()
		if err != nil {
			t.Fatal(err)
		}
		s := id.DecimalString()
		if seen[s] {
			t.Fatalf("duplicate id %s across rewind", s)
		}
		seen[s] = true
		return id
	}

	for i := 0; i < 10; i++ {
		mustMint()
		mu.Lock()
		current++
		mu.Unlock()
	}

	// Rewind the clock.
	mu.Lock()
	current -= 100
	mu.Unlock()

	for i := 0; i < 10; i++ {
		mustMint()
		mu.Lock()
		current++
		mu.Unlock()
	}
}

func TestDistributedIDGeneratorClockOverflow(t *testing.T) {
	clock := func() time.Time {
		return time.UnixMilli(int64(maxGeneratorTimestamp) + 1)
	}
	gen := NewDistributedIDGenerator(WithClock(clock))
	if _, err := gen.NextID(); err == nil {
		t.Fatal("expected ClockOverflowError")
	}
}

func TestDistributedIDGeneratorNextBatch(t *testing.T) {
	gen := NewDistributedIDGenerator()
	ids, err := gen.NextBatch(50)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 50 {
		t.Fatalf("got %d ids, want 50", len(ids))
	}
	for i := 1; i < len(ids); i++ {
		if !ids[i].After(ids[i-1]) {
			t.Fatalf("batch not strictly increasing at index %d", i)
		}
	}
}

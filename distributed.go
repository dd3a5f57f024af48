package distid

import (
	"io"
	"sync"
	"time"
)

// DefaultRateLimitPerTimestamp is the maximum count of IDs a
// [DistributedIDGenerator] mints sharing one millisecond timestamp before it
// starts sleeping to let the clock advance.
const DefaultRateLimitPerTimestamp = 128

// maxGeneratorTimestamp is 2^45 - 1, the largest millisecond timestamp the
// 48-bit timestamp field can carry while leaving enough headroom that the
// packed value stays below [MaxDistributedID]'s ceiling.
const maxGeneratorTimestamp = (uint64(1) << 45) - 1

// DistributedIDGenerator mints monotonic 96-bit decimal IDs composed of a
// 48-bit millisecond timestamp and 48 bits of randomness. A single instance
// is safe for concurrent use from multiple goroutines; it is intended to be
// constructed once per process and held as a long-lived singleton.
//
// The rate limit's 1ms sleep assumes a platform sleep granularity at or
// below a millisecond; on platforms with coarser timers the effective rate
// limit is lower than [DefaultRateLimitPerTimestamp]. This is a
// quality-of-implementation tradeoff, not a defect.
type DistributedIDGenerator struct {
	mu         sync.Mutex
	clock      Clock
	randSource io.Reader
	sleep      func(time.Duration)
	rateLimit  int
	onSleep    func(timestampMillis uint64, attempt int)

	previousTimestamp  uint64
	previousRandom     RandomSequence
	sameTimestampCount int
}

// DistributedIDOption configures a [DistributedIDGenerator] at construction.
type DistributedIDOption func(*DistributedIDGenerator)

// WithClock overrides the generator's time source. The default is
// time.Now.
func WithClock(c Clock) DistributedIDOption {
	return func(g *DistributedIDGenerator) { g.clock = c }
}

// WithRandomSource overrides the generator's entropy source. The default is
// crypto/rand.Reader.
func WithRandomSource(r io.Reader) DistributedIDOption {
	return func(g *DistributedIDGenerator) { g.randSource = r }
}

// WithRateLimitPerTimestamp overrides [DefaultRateLimitPerTimestamp].
func WithRateLimitPerTimestamp(n int) DistributedIDOption {
	return func(g *DistributedIDGenerator) { g.rateLimit = n }
}

// WithOnRateLimitSleep registers a callback invoked immediately before the
// generator sleeps because it has exhausted its per-timestamp rate limit.
// Hosts use this to log or instrument the sleep instead of the library
// owning a logging dependency.
func WithOnRateLimitSleep(fn func(timestampMillis uint64, attempt int)) DistributedIDOption {
	return func(g *DistributedIDGenerator) { g.onSleep = fn }
}

// withSleepFunc overrides the sleep primitive. Unexported: only this
// package's own tests construct a generator with an instrumented sleep
// function, so rate-limit tests can count sleeps without a real 1ms wait
// per invocation.
func withSleepFunc(fn func(time.Duration)) DistributedIDOption {
	return func(g *DistributedIDGenerator) { g.sleep = fn }
}

// NewDistributedIDGenerator constructs a ready-to-use generator.
func NewDistributedIDGenerator(opts ...DistributedIDOption) *DistributedIDGenerator {
	g := &DistributedIDGenerator{
		clock:      systemClock,
		randSource: defaultRandReader(),
		sleep:      time.Sleep,
		rateLimit:  DefaultRateLimitPerTimestamp,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NextID mints the next ID, blocking up to roughly 1ms if the per-timestamp
// rate limit is currently exhausted.
func (g *DistributedIDGenerator) NextID() (DecimalPayload, error) {
	for {
		nowMs := millisSinceEpoch(g.clock)
		if nowMs > maxGeneratorTimestamp {
			return DecimalPayload{}, &ClockOverflowError{TimestampMillis: nowMs, MaxMillis: maxGeneratorTimestamp}
		}

		g.mu.Lock()

		if nowMs > g.previousTimestamp {
			random, err := newRandomSequenceFrom(g.randSource)
			if err != nil {
				g.mu.Unlock()
				return DecimalPayload{}, err
			}
			g.previousTimestamp = nowMs
			g.previousRandom = random
			g.sameTimestampCount = 1
			ts, rnd := g.previousTimestamp, g.previousRandom
			g.mu.Unlock()
			return packTimestampRandom(ts, rnd.Uint64()), nil
		}

		// now_ms <= previous_timestamp: equal-millisecond burst or a clock
		// rewind. Both are handled identically: bump the random field
		// rather than the timestamp.
		if g.sameTimestampCount >= g.rateLimit {
			attempt := g.sameTimestampCount
			ts := g.previousTimestamp
			g.mu.Unlock()
			if g.onSleep != nil {
				g.onSleep(ts, attempt)
			}
			g.sleep(time.Millisecond)
			continue
		}

		delta, err := randomDelta32(g.randSource)
		if err != nil {
			g.mu.Unlock()
			return DecimalPayload{}, err
		}
		next := g.previousRandom.AddBounded(delta)
		if next.Uint64() <= g.previousRandom.Uint64() {
			// The bounded increment wrapped past the 48-bit ceiling (or the
			// delta was zero), so committing it would not keep this
			// timestamp's output strictly
			// increasing. Treat it the same as rate-limit exhaustion: wait
			// for the clock to move and retry rather than emit a
			// non-increasing value.
			attempt := g.sameTimestampCount
			ts := g.previousTimestamp
			g.mu.Unlock()
			if g.onSleep != nil {
				g.onSleep(ts, attempt)
			}
			g.sleep(time.Millisecond)
			continue
		}
		g.previousRandom = next
		g.sameTimestampCount++
		ts := g.previousTimestamp
		g.mu.Unlock()
		return packTimestampRandom(ts, next.Uint64()), nil
	}
}

// NextBatch mints n consecutive IDs. It is a thin loop over [NextID]: every
// element still observes the same monotonicity and rate-limit rules as a
// standalone call. Provided for callers that want a single call site for
// bulk backfills.
func (g *DistributedIDGenerator) NextBatch(n int) ([]DecimalPayload, error) {
	out := make([]DecimalPayload, 0, n)
	for i := 0; i < n; i++ {
		id, err := g.NextID()
		if err != nil {
			return out, err
		}
		out = append(out, id)
	}
	return out, nil
}

// AwaitUpdatedClockValue sleeps in 1ms increments until the generator's
// clock reports a value different from the generator's current
// previous-timestamp (advance or retreat). Exposed for tests exercising
// clock-stall behavior.
func (g *DistributedIDGenerator) AwaitUpdatedClockValue() {
	g.mu.Lock()
	previous := g.previousTimestamp
	g.mu.Unlock()
	for millisSinceEpoch(g.clock) == previous {
		g.sleep(time.Millisecond)
	}
}

func randomDelta32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, &InternalCryptoError{Op: "random delta fill", Err: err}
	}
	return uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]), nil
}

package distid

import (
	"sync"
	"time"
)

// FluidGenerator mints 64-bit Snowflake-style IDs, laid out
// [timestamp_bits | instance_bits | counter_bits] MSB to LSB as configured
// by a [BitDistribution].
//
// Clock regressions are folded into the same-millisecond path: a timestamp
// that is not strictly greater than the last observed one bumps the
// counter rather than resetting it, so two calls straddling a clock rewind
// never collide. This takes the broader reading of "regressions are handled
// identically to same-ms" rather than a narrower same-exact-millisecond one.
type FluidGenerator struct {
	mu                sync.Mutex
	clock             Clock
	epoch             time.Time
	instanceID        uint16
	bits              BitDistribution
	production        bool
	sleep             func(time.Duration)
	onCounterOverflow func(timestampMs uint64, attempt int)

	previousTimestamp uint64
	previousCounter   uint64
}

// maxCounterOverflowSleep bounds the total time a single [FluidGenerator.NextID]
// call will spend sleeping for counter overflow. Once exceeded, the
// sustained overflow is treated as a clock overflow: the counter field
// cannot keep up with call volume at the configured bit width.
const maxCounterOverflowSleep = time.Second

// FluidOption configures a [FluidGenerator] at construction, the same
// functional-options idiom [DistributedIDOption] uses.
type FluidOption func(*FluidGenerator)

// WithFluidClock overrides the generator's time source. The clock must
// report UTC; this is checked by [NewFluidGenerator].
func WithFluidClock(c Clock) FluidOption {
	return func(g *FluidGenerator) { g.clock = c }
}

// WithFluidEpoch sets the UTC midnight instant the timestamp field counts
// milliseconds from. It must be in the past and within the range of
// timestamps the generator packs for the configured [BitDistribution].
func WithFluidEpoch(epoch time.Time) FluidOption {
	return func(g *FluidGenerator) { g.epoch = epoch }
}

// WithBitDistribution overrides [DefaultBitDistribution].
func WithBitDistribution(b BitDistribution) FluidOption {
	return func(g *FluidGenerator) { g.bits = b }
}

// WithProductionMode requires a nonzero application-instance ID; the
// default, intended for local/dev single-instance runs, allows zero.
func WithProductionMode(production bool) FluidOption {
	return func(g *FluidGenerator) { g.production = production }
}

// WithFluidOnCounterOverflow registers a callback invoked immediately before
// the generator sleeps because its counter field overflowed within the
// current timestamp. Hosts use this to log or instrument the sleep instead
// of the library owning a logging dependency.
func WithFluidOnCounterOverflow(fn func(timestampMs uint64, attempt int)) FluidOption {
	return func(g *FluidGenerator) { g.onCounterOverflow = fn }
}

func withFluidSleepFunc(fn func(time.Duration)) FluidOption {
	return func(g *FluidGenerator) { g.sleep = fn }
}

// NewFluidGenerator constructs a generator for the given application
// instance ID, validating every precondition up front.
func NewFluidGenerator(instanceID uint16, opts ...FluidOption) (*FluidGenerator, error) {
	g := &FluidGenerator{
		clock:      systemClock,
		epoch:      time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		instanceID: instanceID,
		bits:       DefaultBitDistribution,
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.bits.Validate(); err != nil {
		return nil, err
	}
	if loc := g.clock().Location(); loc != time.UTC {
		return nil, &ConfigurationError{Field: "Clock", Reason: "must report UTC"}
	}
	if g.epoch.Location() != time.UTC {
		return nil, &ConfigurationError{Field: "Epoch", Reason: "must be UTC"}
	}
	if h, m, s := g.epoch.Clock(); h != 0 || m != 0 || s != 0 || g.epoch.Nanosecond() != 0 {
		return nil, &ConfigurationError{Field: "Epoch", Reason: "must be midnight"}
	}
	if !g.epoch.Before(g.clock()) {
		return nil, &ConfigurationError{Field: "Epoch", Reason: "must be in the past"}
	}
	if uint64(g.clock().Sub(g.epoch).Milliseconds()) > g.maxTimestamp() {
		return nil, &ConfigurationError{Field: "Epoch", Reason: "too far in the past for the configured timestamp field"}
	}
	if g.production && g.instanceID == 0 {
		return nil, &ConfigurationError{Field: "ApplicationInstanceID", Reason: "must be nonzero in production mode"}
	}
	if uint64(g.instanceID) > g.bits.MaxInstanceID() {
		return nil, &ConfigurationError{Field: "ApplicationInstanceID", Reason: "exceeds the configured bit distribution's instance field"}
	}
	return g, nil
}

// NextID mints the next Fluid ID.
func (g *FluidGenerator) NextID() (FluidID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	maxTimestamp := g.maxTimestamp()
	maxCounter := g.bits.MaxCounter()
	instanceShift := g.bits.CounterBits
	timestampShift := g.bits.InstanceBits + g.bits.CounterBits

	var slept time.Duration
	attempt := 0
	for {
		ts := millisSinceEpoch(relativeClock(g.clock, g.epoch))
		if ts > maxTimestamp {
			return 0, &ClockOverflowError{TimestampMillis: ts, MaxMillis: maxTimestamp}
		}

		var counter uint64
		if ts <= g.previousTimestamp {
			counter = g.previousCounter + 1
			if counter > maxCounter {
				attempt++
				if g.onCounterOverflow != nil {
					g.onCounterOverflow(ts, attempt)
				}
				if slept >= maxCounterOverflowSleep {
					return 0, &ClockOverflowError{TimestampMillis: ts, MaxMillis: maxTimestamp}
				}
				g.sleep(time.Millisecond)
				slept += time.Millisecond
				continue
			}
			// ts stays pinned to g.previousTimestamp; don't overwrite it
			// with a smaller or equal value.
		} else {
			counter = 0
			g.previousTimestamp = ts
		}

		g.previousCounter = counter
		id := (g.previousTimestamp << timestampShift) | (uint64(g.instanceID) << instanceShift) | counter
		return FluidID(id), nil
	}
}

// maxTimestamp is the largest timestamp NextID packs. The three fields fill
// all 64 bits, so the timestamp field's top bit is bit 63 of the ID; leaving
// that bit unused keeps every FluidID's bit 63 clear.
func (g *FluidGenerator) maxTimestamp() uint64 {
	return g.bits.MaxTimestamp() >> 1
}

// relativeClock composes c with a subtraction against epoch, returning a
// Clock whose "now" is the duration since epoch expressed as a UTC instant
// at the Unix epoch plus that duration, so [millisSinceEpoch] yields
// milliseconds since the *configured* epoch rather than since 1970.
func relativeClock(c Clock, epoch time.Time) Clock {
	return func() time.Time {
		elapsed := c().Sub(epoch)
		return time.UnixMilli(elapsed.Milliseconds()).UTC()
	}
}

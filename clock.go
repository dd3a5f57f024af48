package distid

import "time"

// Clock returns the current time. Generators call it once per mint
// attempt; injecting a fake clock is how the stall-tolerance and
// rate-limit tests drive specific timestamp sequences without real sleeps.
type Clock func() time.Time

// systemClock is the default Clock, backed by time.Now and reported in UTC.
func systemClock() time.Time { return time.Now().UTC() }

func millisSinceEpoch(c Clock) uint64 {
	ms := c().UnixMilli()
	if ms < 0 {
		return 0
	}
	return uint64(ms)
}

package dispatch

import (
	"sync/atomic"
	"time"
)

// Clock hands out the monotonically increasing timestamps §4.9/§5 require.
// It is seeded from wall-clock seconds at startup so restarts still produce
// plausible, roughly time-ordered values, then advances by a logical
// counter so two commands in the same wall-clock second still receive
// strictly increasing timestamps (see SPEC_FULL.md's timestamp-source
// design note).
type Clock struct {
	counter atomic.Uint64
}

func NewClock() *Clock {
	c := &Clock{}
	c.counter.Store(uint64(time.Now().Unix()))
	return c
}

// Next returns a new timestamp, strictly greater than every value
// previously returned by this Clock.
func (c *Clock) Next() uint64 {
	return c.counter.Add(1)
}

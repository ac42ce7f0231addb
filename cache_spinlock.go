//go:build pagesize_spinlock

package pagesize

import "sync/atomic"

// Spin-lock variant of the cache for builds that cannot assume a scheduler.
// sync.Once may park the calling goroutine; this version only ever
// busy-waits, and touches nothing beyond sync/atomic.

const (
	stateUninit uint32 = iota
	stateBusy
	stateDone
)

// cache is a write-once slot for a single OS-reported value. The zero value
// is ready to use.
type cache struct {
	state atomic.Uint32
	v     int
}

// get returns the cached value, running query to fill the slot on the first
// call. Exactly one caller wins the uninit -> busy transition and runs the
// query; the rest spin until the slot is published. The atomic store of
// stateDone orders the write to v before any load that observes it.
func (c *cache) get(query func() int) int {
	for {
		switch c.state.Load() {
		case stateDone:
			return c.v
		case stateUninit:
			if c.state.CompareAndSwap(stateUninit, stateBusy) {
				c.v = query()
				c.state.Store(stateDone)
				return c.v
			}
		}
		// Busy: another caller is mid-query. The window is one OS call
		// wide, so spinning is cheap.
	}
}

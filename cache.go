//go:build !pagesize_spinlock

package pagesize

import "sync"

// cache is a write-once slot for a single OS-reported value. The zero value
// is ready to use.
type cache struct {
	once sync.Once
	v    int
}

// get returns the cached value, running query to fill the slot on the first
// call. The query runs at most once; concurrent first callers block until
// the winner's query completes.
func (c *cache) get(query func() int) int {
	c.once.Do(func() {
		c.v = query()
	})
	return c.v
}

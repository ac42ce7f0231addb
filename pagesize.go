// Package pagesize reports the operating system's memory page size and
// allocation granularity.
//
// Both values are queried from the OS at most once per process and cached;
// after the first call Get and GetGranularity are plain memory reads. The
// accessors are safe for concurrent use and never fail: on the off chance
// an OS query returns something implausible, a conventional default is
// substituted instead.
//
// By default the cache uses sync.Once. Building with the pagesize_spinlock
// tag swaps in a spin-lock based cache that depends only on sync/atomic,
// for environments without a usable scheduler (TinyGo targets, allocator
// code running before the runtime is up).
package pagesize

// defaultPageSize is returned when the OS reports a nonsensical page size.
// 4 KiB is the page size on effectively every platform this library
// supports.
const defaultPageSize = 4096

// defaultAllocationGranularity is the conventional Windows allocation
// granularity, used when the OS reports a nonsensical value.
const defaultAllocationGranularity = 64 * 1024

var (
	size        cache
	granularity cache
)

// Get returns the page size of the system in bytes.
//
// The underlying OS query runs on the first call only; subsequent calls
// return the cached value.
func Get() int {
	return size.get(querySize)
}

// GetGranularity returns the allocation granularity of the system in bytes.
//
// On Windows this is the boundary (typically 64 KiB) that virtual memory
// reservations are aligned to, independent of the page size. On every other
// platform it equals Get.
func GetGranularity() int {
	return granularity.get(queryGranularity)
}

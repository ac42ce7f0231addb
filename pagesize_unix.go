//go:build unix

package pagesize

import "golang.org/x/sys/unix"

// querySize asks the OS for its page size, uncached. The sysconf-backed
// query cannot fail on any supported platform, but an implausible answer
// degrades to the conventional default rather than surfacing an error.
func querySize() int {
	if sz := unix.Getpagesize(); sz > 0 {
		return sz
	}
	return defaultPageSize
}

// queryGranularity returns the page size: POSIX mmap only requires
// page-aligned addresses, so there is no separate allocation granularity.
func queryGranularity() int {
	return querySize()
}

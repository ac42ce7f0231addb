//go:build js || wasip1

package pagesize

// WebAssembly fixes the linear memory page at 64 KiB; there is no system
// call to make.
const wasmPageSize = 64 * 1024

func querySize() int {
	return wasmPageSize
}

func queryGranularity() int {
	return wasmPageSize
}

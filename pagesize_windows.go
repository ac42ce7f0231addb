//go:build windows

package pagesize

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procGetNativeSystemInfo = modkernel32.NewProc("GetNativeSystemInfo")
)

// systemInfo is the SYSTEM_INFO structure filled in by GetNativeSystemInfo.
// https://learn.microsoft.com/en-us/windows/win32/api/sysinfoapi/ns-sysinfoapi-system_info
type systemInfo struct {
	wProcessorArchitecture      uint16
	wReserved                   uint16
	dwPageSize                  uint32
	lpMinimumApplicationAddress uintptr
	lpMaximumApplicationAddress uintptr
	dwActiveProcessorMask       uintptr
	dwNumberOfProcessors        uint32
	dwProcessorType             uint32
	dwAllocationGranularity     uint32
	wProcessorLevel             uint16
	wProcessorRevision          uint16
}

func nativeSystemInfo() (si systemInfo) {
	// GetNativeSystemInfo has no failure mode.
	procGetNativeSystemInfo.Call(uintptr(unsafe.Pointer(&si)))
	return si
}

// querySize asks the OS for its page size, uncached. An implausible answer
// degrades to the conventional default rather than surfacing an error.
func querySize() int {
	if sz := int(nativeSystemInfo().dwPageSize); sz > 0 {
		return sz
	}
	return defaultPageSize
}

// queryGranularity asks the OS for its allocation granularity, the boundary
// VirtualAlloc reservations are rounded to. Typically 64 KiB, a multiple of
// the page size.
func queryGranularity() int {
	if g := int(nativeSystemInfo().dwAllocationGranularity); g > 0 {
		return g
	}
	return defaultAllocationGranularity
}

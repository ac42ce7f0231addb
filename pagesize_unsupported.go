// Fallback queries for OSes without a supported page-size call.

//go:build !unix && !windows && !js && !wasip1

package pagesize

func querySize() int {
	return defaultPageSize
}

func queryGranularity() int {
	return defaultPageSize
}

// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads resolves the worker count: n when positive, otherwise
// one per CPU.
func EffectiveThreads(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// WriterBuffer chooses the writer channel capacity: buffer when positive,
// otherwise four slots per worker.
func WriterBuffer(buffer, threads int) int {
	if buffer > 0 {
		return buffer
	}
	if threads < 1 {
		threads = 1
	}
	return threads * 4
}

// ComputeHeader tells writers whether to print a header row. Only the
// text format has one and --no-header turns it off.
func ComputeHeader(format string, noHeader bool) bool {
	return format == "text" && !noHeader
}

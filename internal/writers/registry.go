// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"unitconv/pkg/api"
)

// StartFunc starts a writer goroutine for one format. header only applies
// to tabular formats.
type StartFunc func(out io.Writer, header bool, bufSize int) (chan<- api.ConversionV1, <-chan error)

// Result writers (format → handler). Registered in init() from result.go.
var resultWriters = map[string]StartFunc{}

// Register installs fn for format (idempotent, last wins).
func Register(format string, fn StartFunc) { resultWriters[format] = fn }

// Formats lists registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(resultWriters))
	for f := range resultWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// StartResultWriter dispatches to the writer registered for format. Unknown
// formats still return a live channel (drained) and report the error on done.
func StartResultWriter(out io.Writer, format string, header bool, bufSize int) (chan<- api.ConversionV1, <-chan error) {
	fn, ok := resultWriters[format]
	if !ok {
		in := make(chan api.ConversionV1, 1)
		done := make(chan error, 1)
		go func() {
			for range in {
			}
			done <- fmt.Errorf("unknown result format %q (no writer registered)", format)
		}()
		return in, done
	}
	return fn(out, header, bufSize)
}

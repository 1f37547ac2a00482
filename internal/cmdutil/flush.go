package cmdutil

import (
	"bufio"
	"fmt"
	"io"

	"unitconv/internal/writers"
)

// Flush flushes outw and maps the outcome to an exit code: code on success,
// 0 when the reader went away (broken pipe), 3 on any other write error.
func Flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}

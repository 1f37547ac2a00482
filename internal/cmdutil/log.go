// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Warnf prints "WARN: ..." to dst. With quiet set the line is not printed
// and the message only reaches log, at debug level, so a warning never
// shows up twice on stderr.
func Warnf(dst io.Writer, log *zap.Logger, quiet bool, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if quiet {
		if log != nil {
			log.Debug(msg)
		}
		return
	}
	_, _ = fmt.Fprintln(dst, "WARN: "+msg)
}

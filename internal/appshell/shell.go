package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

type RunFunc func(context.Context, []string, io.Writer, io.Writer) int

// Main runs a batch-style tool: no arguments means "-h".
func Main(run RunFunc) { main(run, []string{"-h"}) }

// MainInteractive runs a tool that is meant to start without arguments
// (the TUI, the MCP server).
func MainInteractive(run RunFunc) { main(run, nil) }

func main(run RunFunc, whenEmpty []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 && whenEmpty != nil {
		argv = whenEmpty
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}

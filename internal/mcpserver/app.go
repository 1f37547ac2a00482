package mcpserver

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"unitconv/internal/clibase"
	"unitconv/internal/cmdutil"
	"unitconv/internal/config"
	"unitconv/internal/logging"
	"unitconv/internal/version"
)

// RunContext serves the tools over stdio. stdout carries the protocol, so
// logs always go to stderr.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	var cfgPath string
	var showVersion bool
	fs := flag.NewFlagSet("unitconv-mcp", flag.ContinueOnError)
	fs.StringVar(&cfgPath, "config", "", "YAML config file (or $UNITCONV_CONFIG)")
	fs.BoolVar(&showVersion, "v", false, "print version and exit")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	clibase.UsageCommon(fs, "unitconv-mcp", func(out io.Writer) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintln(out, "  unitconv-mcp            Serve MCP over stdin/stdout")
		fmt.Fprintln(out, "\nTools:")
		fmt.Fprintln(out, "  convert, list_units, list_domains")
	})
	fs.SetOutput(io.Discard)

	if err := fs.Parse(argv); err != nil {
		fs.SetOutput(outw)
		fs.Usage()
		if errors.Is(err, flag.ErrHelp) {
			return cmdutil.Flush(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.Flush(outw, stderr, 2)
	}
	if showVersion {
		_, _ = fmt.Fprintf(outw, "unitconv-mcp version %s\n", version.Version)
		return cmdutil.Flush(outw, stderr, 0)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	log, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = log.Sync() }()

	log.Info("serving MCP on stdio", zap.String("version", version.Version))
	if err := Serve(parent, NewServer(nil, log), &mcp.StdioTransport{}); err != nil {
		log.Error("mcp", zap.Error(err))
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if parent.Err() != nil {
		return 130
	}
	return 0
}

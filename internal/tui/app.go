package tui

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"unitconv-core/units"

	"unitconv/internal/clibase"
	"unitconv/internal/cmdutil"
	"unitconv/internal/config"
	"unitconv/internal/logging"
	"unitconv/internal/version"
)

// Input is the terminal input; nil means the process stdin.
var Input io.Reader

func newFlagSet(name string, domain, cfgPath *string, showVersion *bool) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(domain, "domain", "", "initial domain tab (default from config)")
	fs.StringVar(domain, "d", "", "alias of --domain")
	fs.StringVar(cfgPath, "config", "", "YAML config file (or $UNITCONV_CONFIG)")
	fs.BoolVar(showVersion, "v", false, "print version and exit")
	fs.BoolVar(showVersion, "version", false, "print version and exit")
	clibase.UsageCommon(fs, name, func(out io.Writer) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [--domain DOMAIN]\n", name)
		fmt.Fprintln(out, "\nKeys:")
		fmt.Fprintln(out, "  "+helpLine)
	})
	return fs
}

// RunContext starts the interactive converter. On a normal exit the last
// conversion is printed to stdout.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	var domain, cfgPath string
	var showVersion bool
	fs := newFlagSet("unitconv-tui", &domain, &cfgPath, &showVersion)
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
		_, _ = fmt.Fprintf(outw, "unitconv-tui version %s\n", version.Version)
		return cmdutil.Flush(outw, stderr, 0)
	}
	if fs.NArg() > 0 {
		_, _ = fmt.Fprintf(stderr, "unexpected arguments %q\n", fs.Args())
		return 2
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if domain == "" {
		domain = cfg.Domain
	}
	d, err := units.ParseDomain(domain)
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

	opts := []tea.ProgramOption{tea.WithContext(parent), tea.WithOutput(stdout)}
	if Input != nil {
		opts = append(opts, tea.WithInput(Input))
	}
	final, err := tea.NewProgram(New(nil, d), opts...).Run()
	if err != nil {
		if parent.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
			return 130
		}
		log.Error("tui", zap.Error(err))
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if m, ok := final.(Model); ok {
		if s := m.Summary(); s != "" {
			_, _ = fmt.Fprintln(outw, s)
		}
	}
	return cmdutil.Flush(outw, stderr, 0)
}

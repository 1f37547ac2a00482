// internal/batchapp/app.go
package batchapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"unitconv-core/convert"

	"unitconv/internal/appcore"
	"unitconv/internal/batchcli"
	"unitconv/internal/cmdutil"
	"unitconv/internal/logging"
	"unitconv/internal/runutil"
	"unitconv/internal/version"
	"unitconv/pkg/api"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := batchcli.NewFlagSet("unitconv-batch")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = batchcli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return cmdutil.Flush(outw, stderr, 0)
	}

	opts, err := batchcli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return cmdutil.Flush(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return cmdutil.Flush(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "unitconv-batch version %s\n", version.Version)
		return cmdutil.Flush(outw, stderr, 0)
	}

	log, err := logging.New(stderr, opts.Config.LogLevel, opts.Config.LogFormat)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = log.Sync() }()

	coreOpts := appcore.Options{
		Files:        opts.Files,
		Threads:      opts.Threads,
		Buffer:       opts.Buffer,
		Strict:       opts.Strict,
		Quiet:        opts.Quiet,
		FailExitCode: opts.FailExitCode,
		Log:          log,
	}
	wf := appcore.NewResultWriterFactory(opts.Output, runutil.ComputeHeader(opts.Output, !opts.Header))

	return appcore.Run[api.ConversionV1](
		logging.WithLogger(parent, log), stdout, stderr, coreOpts,
		convert.New(nil), appcore.ResultVisitor, wf,
	)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

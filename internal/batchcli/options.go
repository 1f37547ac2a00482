// internal/batchcli/options.go
package batchcli

import (
	"errors"
	"flag"
	"fmt"

	"unitconv/internal/clibase"
	"unitconv/internal/cliutil"
	"unitconv/internal/writers"
)

type Options struct {
	clibase.Common

	Files []string

	Threads int
	Buffer  int

	Strict       bool
	FailExitCode int
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options

	noHeader := clibase.Register(fs, &o.Common)
	fs.IntVar(&o.Threads, "threads", -1, "worker goroutines (0 = all CPUs)")
	fs.IntVar(&o.Threads, "t", -1, "alias of --threads")
	fs.IntVar(&o.Buffer, "buffer", -1, "writer queue length")
	fs.BoolVar(&o.Strict, "strict", false, "stop at the first failed line")
	fs.IntVar(&o.FailExitCode, "fail-exit-code", 1, "exit code when some lines failed")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	posArgs = append(posArgs, fs.Args()...)

	if err := clibase.AfterParse(&o.Common, noHeader, writers.Formats()...); err != nil {
		return o, err
	}
	if o.Version {
		return o, nil
	}

	// Negative means "not given": fall back to the config.
	if o.Threads < 0 {
		o.Threads = o.Config.Threads
	}
	if o.Buffer < 0 {
		o.Buffer = o.Config.Buffer
	}

	files, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return o, err
	}
	if len(files) == 0 {
		return o, errors.New("no request files given (use '-' for stdin)")
	}
	o.Files = files

	if o.FailExitCode < 0 || o.FailExitCode > 125 {
		return o, fmt.Errorf("--fail-exit-code %d out of range 0..125", o.FailExitCode)
	}
	return o, nil
}

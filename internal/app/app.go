// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"unitconv-core/convert"
	"unitconv-core/temperature"
	"unitconv-core/units"

	"unitconv/internal/cli"
	"unitconv/internal/cmdutil"
	"unitconv/internal/logging"
	"unitconv/internal/output"
	"unitconv/internal/pretty"
	"unitconv/internal/version"
	"unitconv/pkg/api"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("unitconv")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return cmdutil.Flush(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "unitconv version %s\n", version.Version)
		return cmdutil.Flush(outw, stderr, 0)
	}

	log, err := logging.New(stderr, opts.Config.LogLevel, opts.Config.LogFormat)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = log.Sync() }()
	ctx := logging.WithLogger(parent, log)

	if opts.List {
		if err := list(outw, opts); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return cmdutil.Flush(outw, stderr, 0)
	}
	return convertOne(ctx, outw, stderr, opts)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func convertOne(ctx context.Context, outw *bufio.Writer, stderr io.Writer, opts cli.Options) int {
	log := logging.FromContext(ctx)

	v, sanitized := convert.ParseValue(opts.Value)
	if sanitized {
		cmdutil.Warnf(stderr, log, opts.Quiet, "value %q is not a finite number; using 0", opts.Value)
	}
	res, err := convert.Do(convert.Request{Domain: opts.Domain, Value: v, From: opts.From, To: opts.To})
	if err != nil {
		log.Debug("conversion failed", zap.String("domain", opts.Domain.String()), zap.Error(err))
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		if errors.Is(err, units.ErrOverflow) {
			return 3
		}
		if errors.Is(err, units.ErrUnknownUnit) {
			_, _ = fmt.Fprintf(stderr, "known %s units: %v\n", opts.Domain, convert.Symbols(opts.Domain))
		}
		return 2
	}
	res.Sanitized = sanitized
	if opts.Domain.Affine() {
		if u, perr := temperature.ParseUnit(opts.From); perr == nil && temperature.BelowAbsoluteZero(v, u) {
			log.Debug("input below absolute zero", zap.Float64("value", v), zap.String("unit", u.Symbol()))
		}
	}
	log.Debug("converted",
		zap.String("domain", opts.Domain.String()),
		zap.Float64("value", res.Value),
		zap.String("from", res.From),
		zap.String("to", res.To),
		zap.Float64("result", res.Output),
	)

	c := output.ToAPI(res, nil)
	c.Input = opts.Value

	var werr error
	switch {
	case opts.Output != output.FormatText:
		werr = output.Write(outw, opts.Output, c)
	case opts.Raw:
		_, werr = fmt.Fprintln(outw, output.Number(c.Result))
	case opts.Pretty:
		_, werr = io.WriteString(outw, pretty.Render(c))
	default:
		_, werr = fmt.Fprintln(outw, output.FormatLine(c))
	}
	if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	return cmdutil.Flush(outw, stderr, 0)
}

// list prints every domain, or the units of opts.Domain.
func list(w io.Writer, opts cli.Options) error {
	if opts.Domain != "" {
		us, err := convert.Units(opts.Domain)
		if err != nil {
			return err
		}
		out := output.ToAPIUnits(us)
		if opts.Output == output.FormatText {
			return output.WriteUnitsText(w, out)
		}
		return output.Write(w, opts.Output, out)
	}

	ds := make([]api.DomainV1, 0, len(units.Domains()))
	for _, d := range units.Domains() {
		us, err := convert.Units(d)
		if err != nil {
			return err
		}
		ds = append(ds, output.ToAPIDomain(d.String(), us))
	}
	if opts.Output == output.FormatText {
		return output.WriteDomainsText(w, ds)
	}
	return output.Write(w, opts.Output, ds)
}

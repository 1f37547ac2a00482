package batchcli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"unitconv/internal/clibase"
	"unitconv/internal/writers"
)

// NewFlagSet returns a ContinueOnError FlagSet with the unitconv-batch usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] requests.tsv [more.tsv.gz ...]\n", name)
		fmt.Fprintf(out, "  cat requests.tsv | %s -\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  One request per line: DOMAIN VALUE FROM TO ('#' comments, gzip ok)")

		fmt.Fprintln(out, "\nBatch:")
		fmt.Fprintln(out, "  -t, --threads int           Worker goroutines (0 = all CPUs) [config]")
		fmt.Fprintln(out, "      --buffer int            Writer queue length (0 = threads*4) [config]")
		fmt.Fprintln(out, "      --strict                Stop at the first failed line (exit 3) [false]")
		fmt.Fprintln(out, "      --fail-exit-code int    Exit code when some lines failed [1]")
		fmt.Fprintln(out, "      Output formats: "+strings.Join(writers.Formats(), " | "))
	})
	return fs
}

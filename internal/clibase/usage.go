// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"unitconv/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage lines, tool options).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer)) {
	fs.Usage = func() {
		out := fs.Output()

		// Header
		fmt.Fprintf(out, "%s – unit conversion toolkit\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out)
		}

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -o, --output string         Output format (see above) [config: text]")
		fmt.Fprintln(out, "      --no-header             Suppress header line (text) [false]")

		fmt.Fprintln(out, "\nMisc:")
		fmt.Fprintln(out, "      --config file           YAML config file ($UNITCONV_CONFIG)")
		fmt.Fprintln(out, "  -q, --quiet                 Suppress warnings [false]")
		fmt.Fprintln(out, "      --verbose               Debug logging to stderr [false]")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help")
	}
}

// WriteDomains prints the domain list used by usage blocks.
func WriteDomains(out io.Writer, domains []string) {
	fmt.Fprintln(out, "\nDomains:")
	for _, d := range domains {
		fmt.Fprintf(out, "  %s\n", d)
	}
}

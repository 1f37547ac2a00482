package cli

import (
	"flag"
	"fmt"
	"io"

	"unitconv-core/units"

	"unitconv/internal/clibase"
)

// NewFlagSet returns a ContinueOnError FlagSet with the unitconv usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] DOMAIN VALUE FROM TO\n", name)
		fmt.Fprintf(out, "  %s [options] --domain length --from mile --to km 1\n", name)
		fmt.Fprintf(out, "  %s --list [DOMAIN]\n", name)

		fmt.Fprintln(out, "\nConversion:")
		fmt.Fprintln(out, "  -d, --domain string         Measurement domain")
		fmt.Fprintln(out, "      --from string           Source unit symbol")
		fmt.Fprintln(out, "      --to string             Target unit symbol")
		fmt.Fprintln(out, "      --raw                   Print the unformatted number [false]")
		fmt.Fprintln(out, "      --pretty                Boxed text rendering [false]")
		fmt.Fprintln(out, "      --list                  List domains, or the units of DOMAIN")
		fmt.Fprintln(out, "      Output formats: text | json | yaml")

		names := make([]string, 0, 7)
		for _, d := range units.Domains() {
			names = append(names, d.String())
		}
		clibase.WriteDomains(out, names)
	})
	return fs
}

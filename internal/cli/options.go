// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"unitconv-core/units"

	"unitconv/internal/clibase"
	"unitconv/internal/cliutil"
)

// Formats are the --output values unitconv accepts.
var Formats = []string{"text", "json", "yaml"}

type Options struct {
	clibase.Common

	Domain units.Domain
	From   string
	To     string
	Value  string // raw text; sanitized by the conversion facade

	Raw    bool
	Pretty bool

	List bool
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var domain string

	noHeader := clibase.Register(fs, &o.Common)
	fs.StringVar(&domain, "domain", "", "measurement domain")
	fs.StringVar(&domain, "d", "", "alias of --domain")
	fs.StringVar(&o.From, "from", "", "source unit")
	fs.StringVar(&o.To, "to", "", "target unit")
	fs.BoolVar(&o.Raw, "raw", false, "print the unformatted number")
	fs.BoolVar(&o.Pretty, "pretty", false, "boxed text rendering")
	fs.BoolVar(&o.List, "list", false, "list domains or units")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	posArgs = append(posArgs, fs.Args()...)

	if err := clibase.AfterParse(&o.Common, noHeader, Formats...); err != nil {
		return o, err
	}
	if o.Version {
		return o, nil
	}

	if o.List {
		switch {
		case len(posArgs) > 1:
			return o, errors.New("--list takes at most one DOMAIN")
		case len(posArgs) == 1:
			domain = posArgs[0]
		}
		if domain != "" {
			d, err := units.ParseDomain(domain)
			if err != nil {
				return o, err
			}
			o.Domain = d
		}
		return o, nil
	}

	switch {
	case len(posArgs) == 4 && domain == "":
		domain, o.Value, o.From, o.To = posArgs[0], posArgs[1], posArgs[2], posArgs[3]
	case len(posArgs) == 3 && domain != "" && o.From == "" && o.To == "":
		o.Value, o.From, o.To = posArgs[0], posArgs[1], posArgs[2]
	case len(posArgs) == 1 && domain != "":
		o.Value = posArgs[0]
	case len(posArgs) == 0:
		return o, errors.New("missing VALUE (see -h)")
	default:
		return o, fmt.Errorf("unexpected arguments %q (see -h)", posArgs)
	}
	if domain == "" {
		return o, errors.New("--domain is required")
	}
	d, err := units.ParseDomain(domain)
	if err != nil {
		return o, err
	}
	o.Domain = d
	if o.From == "" || o.To == "" {
		return o, errors.New("--from and --to must be supplied together")
	}
	if o.Raw && o.Pretty {
		return o, errors.New("--raw conflicts with --pretty")
	}
	return o, nil
}

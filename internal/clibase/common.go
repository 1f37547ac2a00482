// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"unitconv/internal/config"
)

// Common holds CLI fields shared by unitconv and unitconv-batch.
type Common struct {
	// Output
	Output string // text|json|jsonl|yaml
	Header bool

	// Misc
	ConfigPath string
	Quiet      bool
	Verbose    bool
	Version    bool

	// resolved after parsing
	Config config.Config
}

// Register wires shared flags onto fs and returns a pointer to the “no-header” bool
// that the caller can use to set Common.Header = !noHeader after parsing.
// An empty --output means "use the configured default".
func Register(fs *flag.FlagSet, c *Common) *bool {
	fs.StringVar(&c.Output, "output", "", "output format (default from config: text)")
	fs.StringVar(&c.Output, "o", "", "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")

	fs.StringVar(&c.ConfigPath, "config", "", "YAML config file (or $UNITCONV_CONFIG)")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Verbose, "verbose", false, "debug logging to stderr [false]")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// AfterParse finalizes header, loads configuration and runs shared validation.
// formats lists the --output values the calling tool supports.
func AfterParse(c *Common, noHeader *bool, formats ...string) error {
	c.Header = !*noHeader
	if c.Version {
		return nil
	}
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return err
	}
	if c.Verbose {
		cfg.LogLevel = "debug"
	}
	c.Config = cfg
	if c.Output == "" {
		c.Output = cfg.Output
	}
	return Validate(c, formats...)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common, formats ...string) error {
	if c.Quiet && c.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	for _, f := range formats {
		if c.Output == f {
			return nil
		}
	}
	return fmt.Errorf("invalid --output %q (want %s)", c.Output, strings.Join(formats, " | "))
}

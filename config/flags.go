package config

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
)

// Flag names shared by the commands that generate.
const (
	FlagConfig          = "config"
	FlagOut             = "out"
	FlagWorkers         = "workers"
	FlagForce           = "force"
	FlagWerror          = "Werror"
	FlagGeneratorSource = "generator-source"
	FlagQuiet           = "quiet"
	FlagDebug           = "debug"
)

// AddFlags registers the configuration flags on fs. Defaults are left
// empty so that file values survive unless a flag is given.
func AddFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "path to the configuration file (default ./"+FileName+")")
	fs.StringP(FlagOut, "o", "", "output root directory")
	fs.IntP(FlagWorkers, "j", 0, "number of templates generated concurrently (default 4)")
	fs.BoolP(FlagForce, "f", false, "regenerate every output regardless of timestamps")
	fs.Bool(FlagWerror, false, "treat template discovery warnings as errors")
	fs.StringP(FlagGeneratorSource, "g", "", "file whose modification time invalidates all outputs (default: the jgen executable)")
	fs.BoolP(FlagQuiet, "q", false, "log warnings and errors only")
	fs.Bool(FlagDebug, false, "log every decision")
}

// ApplyFlags overrides c with the flags that were set on fs.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	quiet, _ := fs.GetBool(FlagQuiet)
	debug, _ := fs.GetBool(FlagDebug)
	if quiet && debug {
		return errors.WithHint(
			errors.New("--quiet and --debug are mutually exclusive"),
			"pass at most one of them")
	}

	var err error
	if fs.Changed(FlagOut) {
		c.OutputDir, err = fs.GetString(FlagOut)
	}
	if err == nil && fs.Changed(FlagWorkers) {
		c.Workers, err = fs.GetInt(FlagWorkers)
	}
	if err == nil && fs.Changed(FlagForce) {
		c.Force, err = fs.GetBool(FlagForce)
	}
	if err == nil && fs.Changed(FlagWerror) {
		c.Werror, err = fs.GetBool(FlagWerror)
	}
	if err == nil && fs.Changed(FlagGeneratorSource) {
		c.GeneratorSource, err = fs.GetString(FlagGeneratorSource)
	}
	if err != nil {
		return errors.Wrap(err, "read flags")
	}

	switch {
	case quiet:
		c.LogLevel = LevelQuiet
	case debug:
		c.LogLevel = LevelDebug
	}
	return nil
}

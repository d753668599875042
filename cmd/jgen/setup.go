package main

import (
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/jgen/config"
	"github.com/dhamidi/jgen/generate"
)

var log = commonlog.GetLogger("jgen.cmd")

func addConfigFlags(cmd *cobra.Command) {
	config.AddFlags(cmd.Flags())
	cmd.MarkFlagsMutuallyExclusive(config.FlagQuiet, config.FlagDebug)
}

// loadConfig merges jgen.yaml, the flags and the template arguments, then
// configures logging.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	path, _ := cmd.Flags().GetString(config.FlagConfig)
	cfg, used, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	if len(args) > 0 {
		cfg.Templates = args
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	commonlog.Configure(cfg.Verbosity(), nil)
	if used != "" {
		log.Debugf("configuration: %s", used)
	}
	return cfg, nil
}

// generatorSource is the file whose modification time invalidates every
// output: the configured one, or else the running executable.
func generatorSource(cfg *config.Config) string {
	if cfg.GeneratorSource != "" {
		return cfg.GeneratorSource
	}
	exe, err := os.Executable()
	if err != nil {
		log.Debugf("cannot locate the jgen executable: %s", err)
		return ""
	}
	return exe
}

func generatorTimestamp(cfg *config.Config, source string) (time.Time, error) {
	if source == "" {
		return time.Time{}, nil
	}
	info, err := os.Stat(source)
	if err != nil {
		if cfg.GeneratorSource == "" {
			log.Debugf("generator timestamp unavailable: %s", err)
			return time.Time{}, nil
		}
		return time.Time{}, errors.WithHint(
			errors.Wrapf(err, "generator source %s", source),
			"check --generator-source")
	}
	return info.ModTime(), nil
}

// prepare resolves the templates and builds a driver for cfg.
func prepare(cfg *config.Config) (*generate.Driver, []*generate.Template, string, error) {
	templates, err := generate.Resolve(cfg.Templates, cfg.Werror)
	if err != nil {
		return nil, nil, "", err
	}

	source := generatorSource(cfg)
	ts, err := generatorTimestamp(cfg, source)
	if err != nil {
		return nil, nil, "", err
	}

	driver := generate.NewDriver(generate.Options{
		OutputDir:          cfg.OutputDir,
		Workers:            cfg.Workers,
		Force:              cfg.Force,
		GeneratorTimestamp: ts,
		Logger:             commonlog.GetLogger("jgen.generate"),
	})
	return driver, templates, source, nil
}

func summarize(report *generate.Report) error {
	log.Noticef("%d file(s) written or touched, %d up to date", len(report.Touched), len(report.Skipped))
	if report.Status() != 0 {
		return errors.Newf("%d template(s) failed", report.Status())
	}
	return nil
}

// generateArgs reproduces cfg as arguments of the generate command, so that
// a rebuilt generator regenerates with the settings of this run.
func generateArgs(cfg *config.Config) []string {
	args := []string{
		"generate",
		"--" + config.FlagOut, cfg.OutputDir,
		"--" + config.FlagWorkers, strconv.Itoa(cfg.Workers),
	}
	if cfg.Force {
		args = append(args, "--"+config.FlagForce)
	}
	if cfg.Werror {
		args = append(args, "--"+config.FlagWerror)
	}
	if cfg.GeneratorSource != "" {
		args = append(args, "--"+config.FlagGeneratorSource, cfg.GeneratorSource)
	}
	switch cfg.LogLevel {
	case config.LevelQuiet:
		args = append(args, "--"+config.FlagQuiet)
	case config.LevelDebug:
		args = append(args, "--"+config.FlagDebug)
	}
	return append(args, cfg.Templates...)
}

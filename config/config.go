// Package config loads jgen.yaml and merges it with command-line flags.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "jgen.yaml"

const (
	LevelQuiet = "quiet"
	LevelInfo  = "info"
	LevelDebug = "debug"
)

// ErrConfigNotFound is returned when an explicitly named file is missing.
var ErrConfigNotFound = errors.New("configuration file not found")

type Config struct {
	OutputDir       string   `yaml:"outputDir" validate:"required"`
	Workers         int      `yaml:"workers" validate:"min=1,max=256"`
	Force           bool     `yaml:"force"`
	Werror          bool     `yaml:"werror"`
	GeneratorSource string   `yaml:"generatorSource"`
	LogLevel        string   `yaml:"logLevel" validate:"oneof=quiet info debug"`
	Templates       []string `yaml:"templates" validate:"dive,required"`
}

func Default() *Config {
	return &Config{
		Workers:  4,
		LogLevel: LevelInfo,
	}
}

// Load reads the file at path. An empty path means ./jgen.yaml when it
// exists and the defaults otherwise. The returned string is the file that
// was read, if any. The result is not validated, since flags may still
// complete it.
func Load(path string) (*Config, string, error) {
	if path == "" {
		if _, err := os.Stat(FileName); err != nil {
			return Default(), "", nil
		}
		path = FileName
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", errors.WithHint(
				errors.Wrapf(ErrConfigNotFound, "%s", path),
				"check the --config flag")
		}
		return nil, "", errors.Wrapf(err, "open config file %s", path)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, "", errors.Wrapf(err, "load config from %s", path)
	}
	return cfg, path, nil
}

// Parse decodes YAML on top of the defaults. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "parse YAML config")
	}
	return cfg, nil
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(yamlName)
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return describe(fieldErrs)
		}
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

func yamlName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func describe(fieldErrs validator.ValidationErrors) error {
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of %s, got %q", fe.Field(), fe.Param(), fe.Value()))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s must be %s %s, got %v", fe.Field(), bound(fe.Tag()), fe.Param(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %q validation", fe.Field(), fe.Tag()))
		}
	}
	return errors.WithHint(
		errors.Newf("invalid configuration: %s", strings.Join(msgs, "; ")),
		"fix "+FileName+" or the corresponding command-line flag")
}

func bound(tag string) string {
	if tag == "min" {
		return "at least"
	}
	return "at most"
}

// Verbosity maps the log level to a commonlog verbosity.
func (c *Config) Verbosity() int {
	switch c.LogLevel {
	case LevelQuiet:
		return -1
	case LevelDebug:
		return 2
	}
	return 1
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *Config
		wantErr  bool
	}{
		{
			name:     "empty file keeps defaults",
			input:    "",
			expected: &Config{Workers: 4, LogLevel: LevelInfo},
		},
		{
			name: "all fields",
			input: `outputDir: build/generated
workers: 8
force: true
werror: true
generatorSource: bin/jgen
logLevel: debug
templates:
  - hello
  - color
`,
			expected: &Config{
				OutputDir:       "build/generated",
				Workers:         8,
				Force:           true,
				Werror:          true,
				GeneratorSource: "bin/jgen",
				LogLevel:        LevelDebug,
				Templates:       []string{"hello", "color"},
			},
		},
		{
			name:     "partial file keeps other defaults",
			input:    "outputDir: out\n",
			expected: &Config{OutputDir: "out", Workers: 4, LogLevel: LevelInfo},
		},
		{
			name:    "unknown key",
			input:   "outputdir: out\n",
			wantErr: true,
		},
		{
			name:    "wrong type",
			input:   "workers: many\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.OutputDir = "out"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		errPart string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing output", mutate: func(c *Config) { c.OutputDir = "" }, errPart: "outputDir is required"},
		{name: "zero workers", mutate: func(c *Config) { c.Workers = 0 }, errPart: "workers must be at least 1"},
		{name: "too many workers", mutate: func(c *Config) { c.Workers = 1000 }, errPart: "workers must be at most 256"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, errPart: "logLevel must be one of quiet info debug"},
		{name: "empty template name", mutate: func(c *Config) { c.Templates = []string{""} }, errPart: "templates[0] is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errPart == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
			assert.NotEmpty(t, errors.FlattenHints(err))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("outputDir: gen\nworkers: 2\n"), 0o644))

	cfg, used, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "gen", cfg.OutputDir)
	assert.Equal(t, 2, cfg.Workers)

	_, _, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.Is(err, ErrConfigNotFound), "got %v", err)
}

func TestLoadDefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, used, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(FileName, []byte("outputDir: from-file\n"), 0o644))
	cfg, used, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, FileName, used)
	assert.Equal(t, "from-file", cfg.OutputDir)
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
		wantErr  bool
	}{
		{
			name:     "no flags keep file values",
			args:     nil,
			expected: &Config{OutputDir: "file-out", Workers: 6, LogLevel: LevelInfo, Templates: []string{"hello"}},
		},
		{
			name: "flags override",
			args: []string{"--out", "flag-out", "-j", "2", "--force", "--Werror", "-g", "bin/gen", "--debug"},
			expected: &Config{
				OutputDir:       "flag-out",
				Workers:         2,
				Force:           true,
				Werror:          true,
				GeneratorSource: "bin/gen",
				LogLevel:        LevelDebug,
				Templates:       []string{"hello"},
			},
		},
		{
			name:     "quiet",
			args:     []string{"-q"},
			expected: &Config{OutputDir: "file-out", Workers: 6, LogLevel: LevelQuiet, Templates: []string{"hello"}},
		},
		{
			name:    "quiet and debug",
			args:    []string{"--quiet", "--debug"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			AddFlags(fs)
			require.NoError(t, fs.Parse(tt.args))

			cfg := &Config{OutputDir: "file-out", Workers: 6, LogLevel: LevelInfo, Templates: []string{"hello"}}
			err := cfg.ApplyFlags(fs)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestVerbosity(t *testing.T) {
	assert.Equal(t, -1, (&Config{LogLevel: LevelQuiet}).Verbosity())
	assert.Equal(t, 1, (&Config{LogLevel: LevelInfo}).Verbosity())
	assert.Equal(t, 2, (&Config{LogLevel: LevelDebug}).Verbosity())
}

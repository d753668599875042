package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/jgen/config"
)

func TestGenerateArgs(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		expected []string
	}{
		{
			name:     "defaults",
			cfg:      &config.Config{OutputDir: "build", Workers: 4, LogLevel: config.LevelInfo},
			expected: []string{"generate", "--out", "build", "--workers", "4"},
		},
		{
			name: "everything set",
			cfg: &config.Config{
				OutputDir:       "out",
				Workers:         2,
				Force:           true,
				Werror:          true,
				GeneratorSource: "bin/jgen",
				LogLevel:        config.LevelDebug,
				Templates:       []string{"hello", "shape"},
			},
			expected: []string{
				"generate", "--out", "out", "--workers", "2",
				"--force", "--Werror", "--generator-source", "bin/jgen", "--debug",
				"hello", "shape",
			},
		},
		{
			name:     "quiet",
			cfg:      &config.Config{OutputDir: "out", Workers: 1, LogLevel: config.LevelQuiet},
			expected: []string{"generate", "--out", "out", "--workers", "1", "--quiet"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, generateArgs(tt.cfg))
		})
	}
}

// The arguments must parse back into the configuration they came from.
func TestGenerateArgsRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg := &config.Config{
		OutputDir:       "out",
		Workers:         3,
		Force:           true,
		GeneratorSource: "bin/jgen",
		LogLevel:        config.LevelQuiet,
		Templates:       []string{"color"},
	}

	cmd := newGenerateCmd()
	args := generateArgs(cfg)
	require.Equal(t, "generate", args[0])
	require.NoError(t, cmd.ParseFlags(args[1:]))

	parsed, err := loadConfig(cmd, cmd.Flags().Args())
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

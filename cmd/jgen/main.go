package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	_ "github.com/dhamidi/jgen/samples"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jgen",
		Short: "Generate Java sources from Go templates",
		Long: `jgen renders registered templates to Java source files.

Outputs are only rewritten when their content changes, and templates whose
outputs are newer than both the template source and the jgen executable are
skipped entirely.`,
		SilenceUsage: true,
	}

	commonlog.Configure(1, nil)

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newWatchCmd())

	if err := rootCmd.Execute(); err != nil {
		if hints := errors.FlattenHints(err); hints != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hints)
		}
		os.Exit(1)
	}
}

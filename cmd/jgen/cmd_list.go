package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jgen/generate"
)

func newListCmd() *cobra.Command {
	var showSource bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range generate.Registered() {
				line := fmt.Sprintf("%-16s %s", t.Name, t.Target.Path(""))
				if showSource && t.SourceFile != "" {
					line += "  (" + t.SourceFile + ")"
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showSource, "source", "s", false, "show the file each template is defined in")

	return cmd
}

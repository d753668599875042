package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/jgen/format"
	"github.com/dhamidi/jgen/generate"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <template>",
		Short: "Print the output of one template to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := generate.Resolve(args, true)
			if err != nil {
				return err
			}
			cu, err := templates[0].Produce()
			if err != nil {
				return err
			}
			return format.Fprint(cmd.OutOrStdout(), cu)
		},
	}
	return cmd
}

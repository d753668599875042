package main

import (
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [template...]",
		Short: "Generate Java sources",
		Long: `Generate the named templates, or every registered template when none
are named.

Settings are read from ./jgen.yaml (or --config) and overridden by flags.
Unknown template names are reported as warnings; with --Werror they fail
the run before anything is written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			driver, templates, _, err := prepare(cfg)
			if err != nil {
				return err
			}
			report, err := driver.Run(templates)
			if err != nil {
				return err
			}
			return summarize(report)
		},
	}
	addConfigFlags(cmd)
	return cmd
}

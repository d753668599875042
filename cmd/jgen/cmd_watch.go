package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/dhamidi/jgen/generate"
)

func newWatchCmd() *cobra.Command {
	var command string

	cmd := &cobra.Command{
		Use:   "watch [template...]",
		Short: "Generate, then regenerate whenever the generator changes",
		Long: `Run generate once, then regenerate after every change. Stop with Ctrl-C.

Templates are compiled into jgen, so editing their Go source changes nothing
until the generator is rebuilt. By default watch waits for the generator
source (--generator-source, else the jgen executable) to change and then
runs it as "generate" with the current settings. Point --generator-source at
the binary your build writes, for example bin/jgen.

With --exec, watch also follows the template sources and runs the given
command after each change instead, for example:

  jgen watch --exec "go run ./cmd/jgen generate -o build"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			driver, templates, source, err := prepare(cfg)
			if err != nil {
				return err
			}

			var argv []string
			var watched []*generate.Template
			if command != "" {
				argv, err = shellquote.Split(command)
				if err != nil {
					return errors.WithHint(errors.Wrap(err, "parse --exec"), "quote arguments like a shell would")
				}
				if len(argv) == 0 {
					return errors.New("--exec is empty")
				}
				watched = templates
			} else {
				if source == "" {
					return errors.WithHint(
						errors.New("no generator to rerun"),
						"pass --generator-source or --exec")
				}
				argv = append([]string{source}, generateArgs(cfg)...)
			}

			report, err := driver.Run(templates)
			if err != nil {
				return err
			}
			if err := summarize(report); err != nil {
				log.Errorf("%s", err)
			}

			w, err := generate.NewWatcher(driver, watched, source)
			if err != nil {
				return err
			}
			w.Exec(argv...)
			w.OnRun(func(report *generate.Report, err error) {
				if err == nil && report != nil {
					err = summarize(report)
				}
				if err != nil {
					log.Errorf("%s", err)
				}
			})
			w.Start()
			log.Noticef("watching for changes, then running: %s", shellquote.Join(argv...))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()
			return w.Stop()
		},
	}

	addConfigFlags(cmd)
	cmd.Flags().StringVarP(&command, "exec", "x", "", "command run after every change of a template source or the generator")

	return cmd
}

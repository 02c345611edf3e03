package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"binclock/internal/adapters/terminal"
)

func newRootCommand() *cobra.Command {
	var flags commonFlags
	var once bool

	rootCmd := &cobra.Command{
		Use:           "binclock",
		Short:         "Binary-coded-decimal clock for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(flags)
			if err != nil {
				return err
			}

			if once {
				renderer := app.newRenderer(os.Stdout, false)
				face, err := app.clock.Face(app.source.Now(), app.mode)
				if err != nil {
					return err
				}
				cmd.Print(renderer.Summary(face))
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			renderer := app.newRenderer(os.Stdout, true)
			return terminal.RunLoop(ctx, app.clock, renderer, app.mode, app.logger)
		},
	}

	flags.register(rootCmd)
	rootCmd.Flags().BoolVar(&once, "once", false, "Render a single frame and exit")

	rootCmd.AddCommand(newSnapshotCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"binclock/internal/adapters/raster"
	"binclock/internal/domain"
)

func newSnapshotCommand() *cobra.Command {
	var flags commonFlags
	var output string
	var size int
	var at string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the clock face to a PNG image",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(flags)
			if err != nil {
				return err
			}

			sample := app.source.Now()
			if at != "" {
				parsed, err := time.Parse("15:04:05", at)
				if err != nil {
					return fmt.Errorf("snapshot: parse --at %q: %w", at, err)
				}
				sample = domain.NewSample(parsed)
			}

			face, err := app.clock.Face(sample, app.mode)
			if err != nil {
				return err
			}
			if err := raster.WritePNG(output, face, size); err != nil {
				return err
			}

			cmd.Println(app.translator.T(app.locale, "snapshot.written", map[string]any{"Path": output}))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "binclock.png", "Output file path")
	cmd.Flags().IntVar(&size, "size", 512, "Longest edge of the image in pixels")
	cmd.Flags().StringVar(&at, "at", "", "Render a fixed time (HH:MM:SS) instead of now")

	return cmd
}

package main

import (
	"github.com/spf13/cobra"

	"binclock/internal/config"
)

func newConfigCommand() *cobra.Command {
	var flags commonFlags

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or initialize the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(flags)
			if err != nil {
				return err
			}
			out, err := app.cfg.Render()
			if err != nil {
				return err
			}
			cmd.Print(out)
			return nil
		},
	}
	flags.register(showCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write an annotated sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(commonFlags{})
			if err != nil {
				return err
			}
			path := flags.configPath
			if path == "" {
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			if err := config.WriteSample(path); err != nil {
				cmd.Println(app.translator.T(app.locale, "config.exists", map[string]any{"Path": path}))
				return err
			}
			cmd.Println(app.translator.T(app.locale, "config.written", map[string]any{"Path": path}))
			return nil
		},
	}
	initCmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Destination file path")

	cmd.AddCommand(showCmd, initCmd)
	return cmd
}

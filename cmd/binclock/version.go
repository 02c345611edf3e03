package main

import (
	"github.com/spf13/cobra"
)

// version is stamped at build time: -ldflags "-X main.version=...".
var version = "dev"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the binclock version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("binclock %s\n", version)
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"range-remapper/internal/version"
)

func versionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if a.useColor(cmd.OutOrStdout()) {
				fmt.Fprintln(cmd.OutOrStdout(), version.Colored())
				return
			}

			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

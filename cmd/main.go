package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alpacahq/logroller/cmd/list"
	"github.com/alpacahq/logroller/cmd/next"
	"github.com/alpacahq/logroller/cmd/prune"
	"github.com/alpacahq/logroller/cmd/rotate"
	"github.com/alpacahq/logroller/utils"
)

// flagPrintVersion set flag to show current logroller version.
var flagPrintVersion bool

// Execute builds the command tree and executes commands.
func Execute() error {
	// c is the root command.
	c := &cobra.Command{
		Use:          "logroller",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print version if specified.
			if flagPrintVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "version: %+v\n", utils.Tag)
				fmt.Fprintf(cmd.OutOrStdout(), "commit hash: %+v\n", utils.GitHash)
				fmt.Fprintf(cmd.OutOrStdout(), "utc build time: %+v\n", utils.BuildStamp)
				return nil
			}
			// Print information regarding usage.
			return cmd.Usage()
		},
	}

	// Adds subcommands and version flag.
	c.AddCommand(next.Cmd)
	c.AddCommand(rotate.Cmd)
	c.AddCommand(list.Cmd)
	c.AddCommand(prune.Cmd)
	c.Flags().BoolVarP(&flagPrintVersion, "version", "v", false, "show the version info and exit")

	return c.Execute()
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tether/internal/cli"
	"github.com/example/tether/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "tether",
		Short:   "tether - pull remote projects into local version control",
		Version: version.String(),
		Long: `tether reconciles remote projects against local spaces and workspaces,
then drives the embedded version-control engine to a clean checkout.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.PullCmd())
	rootCmd.AddCommand(cli.SpaceCmd())
	rootCmd.AddCommand(cli.WorkspaceCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/tether/internal/wire"
)

// SpaceCmd returns the space command
func SpaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "space",
		Short: "Inspect local spaces",
		Long:  "List and show the local spaces that remote teams map onto.",
	}

	cmd.AddCommand(spaceListCmd())
	cmd.AddCommand(spaceShowCmd())

	return cmd
}

func spaceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List spaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.SpaceAdapter().List(context.Background())
		},
	}
}

func spaceShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [space-id]",
		Short: "Show space details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.SpaceAdapter().Show(context.Background(), args[0])
		},
	}
}

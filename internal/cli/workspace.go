package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/tether/internal/wire"
)

// WorkspaceCmd returns the workspace command
func WorkspaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Inspect local workspaces",
		Long:  "List and show the local workspaces bound to remote projects.",
	}

	cmd.AddCommand(workspaceListCmd())
	cmd.AddCommand(workspaceShowCmd())

	return cmd
}

func workspaceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List workspaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.WorkspaceAdapter().List(context.Background())
		},
	}
}

func workspaceShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [workspace-id]",
		Short: "Show workspace details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.WorkspaceAdapter().Show(context.Background(), args[0])
		},
	}
}

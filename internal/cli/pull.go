package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tether/internal/ports/primary"
	"github.com/example/tether/internal/wire"
)

// PullCmd returns the pull command
func PullCmd() *cobra.Command {
	var projectFile string
	var rootDocumentID string
	var projectName string
	var teamID string
	var teamName string

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Pull a remote project into the local checkout",
		Long: `Pull reconciles a remote project against local spaces and workspaces,
then checks out the project's default branch.

The project descriptor comes either from a JSON file (--file) or from
individual flags:

  tether pull --file project.json
  tether pull --root wrk_1 --name "My API" --team-id team_1 --team-name "My Team"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := resolveProject(projectFile, rootDocumentID, projectName, teamID, teamName)
			if err != nil {
				return err
			}

			return wire.PullAdapter().Pull(context.Background(), project)
		},
	}

	cmd.Flags().StringVarP(&projectFile, "file", "f", "", "path to a project descriptor JSON file")
	cmd.Flags().StringVar(&rootDocumentID, "root", "", "root document id of the project")
	cmd.Flags().StringVar(&projectName, "name", "", "project name")
	cmd.Flags().StringVar(&teamID, "team-id", "", "remote team id")
	cmd.Flags().StringVar(&teamName, "team-name", "", "remote team name")

	return cmd
}

// resolveProject builds the project descriptor from a file or from flags.
// The file wins when both are given.
func resolveProject(file, root, name, teamID, teamName string) (primary.Project, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return primary.Project{}, fmt.Errorf("failed to read project file: %w", err)
		}
		var project primary.Project
		if err := json.Unmarshal(data, &project); err != nil {
			return primary.Project{}, fmt.Errorf("failed to parse project file: %w", err)
		}
		return project, nil
	}

	if root == "" {
		return primary.Project{}, fmt.Errorf("must specify --file or --root")
	}
	return primary.Project{
		RootDocumentID: root,
		Name:           name,
		Team:           primary.Team{ID: teamID, Name: teamName},
	}, nil
}

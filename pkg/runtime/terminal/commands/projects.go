package commands

import (
	"github.com/spf13/cobra"

	"github.com/modelyard/reportdeck/pkg/runtime/terminal/export"
)

type ProjectsCmd struct {
	cfgPath  string
	reporter *export.Reporter
}

func NewProjectsCmd(reporter *export.Reporter) *cobra.Command {
	pc := &ProjectsCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects with pre-rendered reports",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.cfgPath, "config", "", "Path to the reportdeck config file")

	return cmd
}

func (pc *ProjectsCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	explorer, _, err := buildServices(ctx, pc.cfgPath)
	if err != nil {
		return err
	}

	projects, err := explorer.ListProjects(ctx)
	if err != nil {
		return err
	}

	return pc.reporter.Projects(projects)
}

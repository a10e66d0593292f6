package commands

import (
	"github.com/spf13/cobra"

	"github.com/modelyard/reportdeck/pkg/runtime/terminal/export"
)

type PeriodsCmd struct {
	cfgPath  string
	project  string
	reporter *export.Reporter
}

func NewPeriodsCmd(reporter *export.Reporter) *cobra.Command {
	pc := &PeriodsCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "periods",
		Short: "List reporting periods for a project",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.cfgPath, "config", "", "Path to the reportdeck config file")
	cmd.Flags().StringVar(&pc.project, "project", "", "Project to list periods for")

	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func (pc *PeriodsCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	explorer, _, err := buildServices(ctx, pc.cfgPath)
	if err != nil {
		return err
	}

	periods, err := explorer.ListPeriods(ctx, pc.project)
	if err != nil {
		return err
	}

	return pc.reporter.Periods(periods)
}

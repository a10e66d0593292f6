package commands

import (
	"github.com/spf13/cobra"

	"github.com/modelyard/reportdeck/pkg/runtime/terminal/export"
)

type ReportsCmd struct {
	cfgPath  string
	project  string
	period   string
	reporter *export.Reporter
}

func NewReportsCmd(reporter *export.Reporter) *cobra.Command {
	rc := &ReportsCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List reports for a project and period",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.cfgPath, "config", "", "Path to the reportdeck config file")
	cmd.Flags().StringVar(&rc.project, "project", "", "Project to list reports for")
	cmd.Flags().StringVar(&rc.period, "period", "", "Period to list reports for")

	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("period")

	return cmd
}

func (rc *ReportsCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	explorer, _, err := buildServices(ctx, rc.cfgPath)
	if err != nil {
		return err
	}

	reports, err := explorer.ListReports(ctx, rc.project, rc.period)
	if err != nil {
		return err
	}

	return rc.reporter.Reports(reports)
}

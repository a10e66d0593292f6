package commands

import (
	"github.com/spf13/cobra"

	"github.com/modelyard/reportdeck/pkg/models/domain"
	"github.com/modelyard/reportdeck/pkg/runtime/terminal/export"
)

type ShowCmd struct {
	cfgPath  string
	project  string
	period   string
	report   string
	reporter *export.Reporter
}

func NewShowCmd(reporter *export.Reporter) *cobra.Command {
	sc := &ShowCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the parts of one report",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.cfgPath, "config", "", "Path to the reportdeck config file")
	cmd.Flags().StringVar(&sc.project, "project", "", "Project the report belongs to")
	cmd.Flags().StringVar(&sc.period, "period", "", "Period the report belongs to")
	cmd.Flags().StringVar(&sc.report, "report", "", "Report name")

	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("period")
	_ = cmd.MarkFlagRequired("report")

	return cmd
}

func (sc *ShowCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	_, loader, err := buildServices(ctx, sc.cfgPath)
	if err != nil {
		return err
	}

	loaded, err := loader.Load(ctx, domain.ReportRef{
		Project: sc.project,
		Period:  sc.period,
		Name:    sc.report,
	})
	if err != nil {
		return err
	}

	return sc.reporter.Report(loaded)
}

package catalog

import (
	"context"
	"path"

	"github.com/modelyard/reportdeck/pkg/models/domain"
	"github.com/modelyard/reportdeck/pkg/store/artifact"
)

// Explorer lists the artifact tree one level at a time. Every listing
// must yield at least one entry; an empty result means there is nothing
// for the dashboard to select and surfaces as a NotFoundError.
type Explorer interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListPeriods(ctx context.Context, project string) ([]domain.Period, error)
	ListReports(ctx context.Context, project, period string) ([]domain.ReportRef, error)
}

type explorer struct {
	store artifact.Store
}

func NewExplorer(store artifact.Store) Explorer {
	return &explorer{store: store}
}

func (e *explorer) ListProjects(ctx context.Context) ([]domain.Project, error) {
	entries, err := e.store.List(ctx, "")
	if err != nil {
		return nil, err
	}

	var projects []domain.Project
	for _, entry := range entries {
		if entry.Dir {
			projects = append(projects, domain.Project{Name: entry.Name})
		}
	}
	if len(projects) == 0 {
		return nil, domain.NewNotFoundError("projects", "")
	}
	return projects, nil
}

func (e *explorer) ListPeriods(ctx context.Context, project string) ([]domain.Period, error) {
	entries, err := e.store.List(ctx, project)
	if err != nil {
		return nil, err
	}

	var periods []domain.Period
	for _, entry := range entries {
		if entry.Dir {
			periods = append(periods, domain.Period{Project: project, Name: entry.Name})
		}
	}
	if len(periods) == 0 {
		return nil, domain.NewNotFoundError("periods", project)
	}
	return periods, nil
}

func (e *explorer) ListReports(ctx context.Context, project, period string) ([]domain.ReportRef, error) {
	entries, err := e.store.List(ctx, path.Join(project, period))
	if err != nil {
		return nil, err
	}

	var reports []domain.ReportRef
	for _, entry := range entries {
		reports = append(reports, domain.ReportRef{
			Project: project,
			Period:  period,
			Name:    entry.Name,
		})
	}
	if len(reports) == 0 {
		return nil, domain.NewNotFoundError("reports", path.Join(project, period))
	}
	return reports, nil
}

package adapters

import (
	"net/url"
	"path"

	"github.com/modelyard/reportdeck/pkg/models/api"
	"github.com/modelyard/reportdeck/pkg/models/domain"
	"github.com/modelyard/reportdeck/pkg/services/catalog"
)

func MapDomainProjectToApi(p domain.Project) api.Project {
	return api.Project{Name: p.Name}
}

func MapDomainPeriodToApi(p domain.Period) api.Period {
	return api.Period{
		Name:       p.Name,
		DatesRange: catalog.PeriodDatesRange(p.Name),
	}
}

func MapDomainReportRefToApi(r domain.ReportRef) api.Report {
	return api.Report{
		Name:        r.Name,
		DisplayName: catalog.ReportDisplayName(r.Name),
	}
}

func MapDomainReportToView(r *domain.Report) api.ReportView {
	view := api.ReportView{
		Project:    r.Ref.Project,
		Period:     r.Ref.Period,
		DatesRange: catalog.PeriodDatesRange(r.Ref.Period),
		Name:       r.Ref.Name,
		Title:      catalog.ReportDisplayName(r.Ref.Name),
		Composite:  r.Composite,
		Parts:      []api.ReportPart{},
	}
	for _, part := range r.Parts {
		view.Parts = append(view.Parts, api.ReportPart{
			Name:     part.Name,
			Label:    part.Label,
			FrameURL: FrameURL(r.Ref, part.Name, r.Composite),
		})
	}
	return view
}

// FrameURL builds the raw-HTML endpoint for one report part. Part names
// come from file listings and are escaped per segment.
func FrameURL(ref domain.ReportRef, part string, composite bool) string {
	frame := path.Join("/frames",
		url.PathEscape(ref.Project),
		url.PathEscape(ref.Period),
		url.PathEscape(ref.Name),
	)
	if composite {
		frame = path.Join(frame, url.PathEscape(part))
	}
	return frame
}

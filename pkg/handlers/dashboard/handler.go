package dashboard

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/modelyard/reportdeck/pkg/adapters"
	"github.com/modelyard/reportdeck/pkg/models/domain"
	"github.com/modelyard/reportdeck/pkg/services/catalog"
	"github.com/modelyard/reportdeck/pkg/services/config"
	"github.com/modelyard/reportdeck/pkg/services/report"
	"github.com/modelyard/reportdeck/pkg/web"
)

const pageTitle = "reportdeck"

// Handler renders the server-side dashboard page: three selectors, a
// header block and the selected report embedded in one or more frames.
type Handler struct {
	explorer catalog.Explorer
	loader   report.Loader
	renderer *web.Renderer
	links    config.LinksConfig
}

func NewHandler(
	explorer catalog.Explorer,
	loader report.Loader,
	renderer *web.Renderer,
	links config.LinksConfig,
) *Handler {
	return &Handler{
		explorer: explorer,
		loader:   loader,
		renderer: renderer,
		links:    links,
	}
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := web.DashboardData{
		Title:         pageTitle,
		SourceCodeURL: h.links.SourceCode,
		DocsURL:       h.links.Docs,
	}

	projects, err := h.explorer.ListProjects(ctx)
	if err != nil {
		h.renderError(w, r, data, err)
		return
	}
	project := pickSelected(r.URL.Query().Get("project"), projectNames(projects))
	data.Projects = projectOptions(projects, project)

	periods, err := h.explorer.ListPeriods(ctx, project)
	if err != nil {
		h.renderError(w, r, data, err)
		return
	}
	period := pickSelected(r.URL.Query().Get("period"), periodNames(periods))
	data.Periods = periodOptions(periods, period)

	reports, err := h.explorer.ListReports(ctx, project, period)
	if err != nil {
		h.renderError(w, r, data, err)
		return
	}
	ref := pickSelectedRef(r.URL.Query().Get("report"), reports)
	data.Reports = reportOptions(reports, ref.Name)

	loaded, err := h.loader.Load(ctx, ref)
	if err != nil {
		h.renderError(w, r, data, err)
		return
	}

	data.Header = &web.Header{
		Project:    project,
		Title:      catalog.ReportDisplayName(ref.Name),
		DatesRange: catalog.PeriodDatesRange(period),
	}
	data.Composite = loaded.Composite
	for _, part := range loaded.Parts {
		data.Frames = append(data.Frames, web.Frame{
			Label: part.Label,
			URL:   adapters.FrameURL(ref, part.Name, loaded.Composite),
		})
	}

	h.render(w, r, data)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, data web.DashboardData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Dashboard(w, data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to render dashboard page")
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, data web.DashboardData, err error) {
	if domain.IsNotFound(err) {
		data.Message = err.Error()
		w.WriteHeader(http.StatusNotFound)
	} else {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("dashboard request failed")
		data.Message = "internal server error"
		w.WriteHeader(http.StatusInternalServerError)
	}
	h.render(w, r, data)
}

// pickSelected keeps the requested value only when it is still present
// in the listing; stale query params (e.g. after switching project)
// fall back to the first option.
func pickSelected(requested string, names []string) string {
	for _, name := range names {
		if name == requested {
			return requested
		}
	}
	return names[0]
}

func pickSelectedRef(requested string, refs []domain.ReportRef) domain.ReportRef {
	for _, ref := range refs {
		if ref.Name == requested {
			return ref
		}
	}
	return refs[0]
}

func projectNames(projects []domain.Project) []string {
	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name)
	}
	return names
}

func periodNames(periods []domain.Period) []string {
	names := make([]string, 0, len(periods))
	for _, p := range periods {
		names = append(names, p.Name)
	}
	return names
}

func projectOptions(projects []domain.Project, selected string) []web.Option {
	opts := make([]web.Option, 0, len(projects))
	for _, p := range projects {
		opts = append(opts, web.Option{Value: p.Name, Label: p.Name, Selected: p.Name == selected})
	}
	return opts
}

func periodOptions(periods []domain.Period, selected string) []web.Option {
	opts := make([]web.Option, 0, len(periods))
	for _, p := range periods {
		opts = append(opts, web.Option{
			Value:    p.Name,
			Label:    catalog.PeriodDatesRange(p.Name),
			Selected: p.Name == selected,
		})
	}
	return opts
}

func reportOptions(refs []domain.ReportRef, selected string) []web.Option {
	opts := make([]web.Option, 0, len(refs))
	for _, ref := range refs {
		opts = append(opts, web.Option{
			Value:    ref.Name,
			Label:    catalog.ReportDisplayName(ref.Name),
			Selected: ref.Name == selected,
		})
	}
	return opts
}

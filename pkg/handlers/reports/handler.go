package reports

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/modelyard/reportdeck/pkg/adapters"
	"github.com/modelyard/reportdeck/pkg/models/api"
	"github.com/modelyard/reportdeck/pkg/models/domain"
	"github.com/modelyard/reportdeck/pkg/services/catalog"
	"github.com/modelyard/reportdeck/pkg/services/report"
)

type Handler struct {
	explorer catalog.Explorer
	loader   report.Loader
}

func NewHandler(explorer catalog.Explorer, loader report.Loader) *Handler {
	return &Handler{
		explorer: explorer,
		loader:   loader,
	}
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projects, err := h.explorer.ListProjects(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]api.Project, 0, len(projects))
	for _, p := range projects {
		response = append(response, adapters.MapDomainProjectToApi(p))
	}
	writeJSON(w, r, response)
}

func (h *Handler) ListPeriods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	project := chi.URLParam(r, "project")

	periods, err := h.explorer.ListPeriods(ctx, project)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]api.Period, 0, len(periods))
	for _, p := range periods {
		response = append(response, adapters.MapDomainPeriodToApi(p))
	}
	writeJSON(w, r, response)
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	project := chi.URLParam(r, "project")
	period := chi.URLParam(r, "period")

	reports, err := h.explorer.ListReports(ctx, project, period)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]api.Report, 0, len(reports))
	for _, ref := range reports {
		response = append(response, adapters.MapDomainReportRefToApi(ref))
	}
	writeJSON(w, r, response)
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ref := domain.ReportRef{
		Project: chi.URLParam(r, "project"),
		Period:  chi.URLParam(r, "period"),
		Name:    chi.URLParam(r, "report"),
	}

	loaded, err := h.loader.Load(ctx, ref)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, adapters.MapDomainReportToView(loaded))
}

// GetFrame serves the raw HTML of a single-file report, for iframe
// embedding by the dashboard page.
func (h *Handler) GetFrame(w http.ResponseWriter, r *http.Request) {
	h.serveFrame(w, r, "")
}

// GetFramePart serves the raw HTML of one part of a directory report.
func (h *Handler) GetFramePart(w http.ResponseWriter, r *http.Request) {
	h.serveFrame(w, r, chi.URLParam(r, "part"))
}

func (h *Handler) serveFrame(w http.ResponseWriter, r *http.Request, part string) {
	ctx := r.Context()
	ref := domain.ReportRef{
		Project: chi.URLParam(r, "project"),
		Period:  chi.URLParam(r, "period"),
		Name:    chi.URLParam(r, "report"),
	}

	loaded, err := h.loader.Load(ctx, ref)
	if err != nil {
		writeError(w, r, err)
		return
	}

	selected := loaded.Parts[0]
	if part != "" {
		found := false
		for _, p := range loaded.Parts {
			if p.Name == part {
				selected = p
				found = true
				break
			}
		}
		if !found {
			writeError(w, r, domain.NewNotFoundError("report part", ref.Path()+"/"+part))
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(selected.Content)); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("report", ref.Path()).Msg("failed to write report frame")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsNotFound(err) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

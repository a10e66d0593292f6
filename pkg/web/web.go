package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/* static/*
var assets embed.FS

type Option struct {
	Value    string
	Label    string
	Selected bool
}

type Header struct {
	Project    string
	Title      string
	DatesRange string
}

type Frame struct {
	Label string
	URL   string
}

// DashboardData is the view model for the dashboard page. Message is
// set instead of Header/Frames when there is nothing to display.
type DashboardData struct {
	Title         string
	SourceCodeURL string
	DocsURL       string
	Projects      []Option
	Periods       []Option
	Reports       []Option
	Header        *Header
	Composite     bool
	Frames        []Frame
	Message       string
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.ParseFS(assets, "templates/*.gohtml")),
	}
}

// Dashboard renders the page into a buffer first, so a template error
// never leaves a half-written response.
func (r *Renderer) Dashboard(w io.Writer, data DashboardData) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "dashboard.gohtml", data); err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// StaticHandler serves the embedded stylesheet and assets under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

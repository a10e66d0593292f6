package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/modelyard/reportdeck/pkg/models/domain"
	"github.com/modelyard/reportdeck/pkg/services/catalog"
)

type TableConfig struct {
	NameWidth  int
	LabelWidth int
	SizeWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:  40,
		LabelWidth: 40,
		SizeWidth:  12,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (r *Reporter) Projects(projects []domain.Project) error {
	for _, p := range projects {
		if _, err := fmt.Fprintln(r.writer, p.Name); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) Periods(periods []domain.Period) error {
	for _, p := range periods {
		if _, err := fmt.Fprintf(r.writer, "%s\t%s\n", p.Name, catalog.PeriodDatesRange(p.Name)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) Reports(refs []domain.ReportRef) error {
	for _, ref := range refs {
		if _, err := fmt.Fprintf(r.writer, "%s\t%s\n", ref.Name, catalog.ReportDisplayName(ref.Name)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) Report(report *domain.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(name, label string, size interface{}) string {
			return fmt.Sprintf("| %-*s | %-*s | %*v |",
				r.config.NameWidth, name,
				r.config.LabelWidth, label,
				r.config.SizeWidth, size)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", r.config.NameWidth+2),
				strings.Repeat("-", r.config.LabelWidth+2),
				strings.Repeat("-", r.config.SizeWidth+2))
		},
		"displayName": catalog.ReportDisplayName,
		"datesRange":  catalog.PeriodDatesRange,
		"length":      func(s string) int { return len(s) },
	}

	tmpl := `
{{displayName .Ref.Name}}

Project: {{.Ref.Project}}
Period: {{datesRange .Ref.Period}}
Parts: {{len .Parts}}

{{separator}}
{{formatRow "Part" "Label" "Size"}}
{{separator}}
{{range .Parts}}{{formatRow .Name .Label (length .Content)}}
{{end}}{{separator}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, report)
}

package domain

import "path"

type Project struct {
	Name string
}

type Period struct {
	Project string
	Name    string
}

// ReportRef addresses one report inside the artifact tree.
type ReportRef struct {
	Project string
	Period  string
	Name    string
}

func (r ReportRef) Path() string {
	return path.Join(r.Project, r.Period, r.Name)
}

// ReportPart is one renderable HTML panel. A single-file report has
// exactly one part; a directory report has one part per child file.
type ReportPart struct {
	Name    string
	Label   string
	Content string
}

// Report is the loaded form of a report artifact. Composite is true when
// the artifact is a directory of parts rather than a single file.
type Report struct {
	Ref       ReportRef
	Composite bool
	Parts     []ReportPart
}

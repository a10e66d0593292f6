package api

type Project struct {
	Name string `json:"name"`
}

type Period struct {
	Name       string `json:"name"`
	DatesRange string `json:"dates_range"`
}

type Report struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// ReportPart carries the metadata a client needs to embed one report
// panel; the HTML itself is served from FrameURL.
type ReportPart struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	FrameURL string `json:"frame_url"`
}

type ReportView struct {
	Project    string       `json:"project"`
	Period     string       `json:"period"`
	DatesRange string       `json:"dates_range"`
	Name       string       `json:"name"`
	Title      string       `json:"title"`
	Composite  bool         `json:"composite"`
	Parts      []ReportPart `json:"parts"`
}

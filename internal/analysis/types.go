// Package analysis implements the document-analysis endpoint: given
// uploaded document metadata it returns structured project information
// and the climate-infrastructure taxonomy, either from the external model
// or from canned fallback payloads. The endpoint always answers 200 with
// a well-formed payload; failures are folded into content.
package analysis

import "context"

// ProjectInfo is the flat record of extracted or asserted project
// attributes. Field names follow the wire contract of the dashboard.
type ProjectInfo struct {
	ProjectName           string `json:"projectName"`
	ProjectNumber         string `json:"projectNumber"`
	Country               string `json:"country"`
	ProjectStatus         string `json:"projectStatus"`
	ProjectType           string `json:"projectType"`
	FundingSource         string `json:"fundingSource"`
	Sector                string `json:"sector"`
	TargetDisaster        string `json:"targetDisaster"`
	ClimateInfrastructure string `json:"climateInfrastructure"`
	Region                string `json:"region"`
	ResponsibleAgency     string `json:"responsibleAgency"`
	Description           string `json:"description"`
}

// DisasterMeasures is one entry of the fixed five-disaster taxonomy.
type DisasterMeasures struct {
	Disaster string   `json:"disaster"`
	Measures []string `json:"measures"`
}

// Result is the full analysis payload.
type Result struct {
	ProjectInfo           ProjectInfo        `json:"projectInfo"`
	ClimateInfrastructure []DisasterMeasures `json:"climateInfrastructure"`
}

// DocumentRef identifies one uploaded document by name and category. No
// content travels with it; per-category sample text substitutes for real
// extraction.
type DocumentRef struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Request is the analyze-documents request body.
type Request struct {
	Documents   []DocumentRef `json:"documents"`
	ProjectData struct {
		Name   string `json:"name"`
		Number string `json:"number"`
	} `json:"projectData"`
}

// Analyzer produces an analysis result for a request. Live and fallback
// implementations are selected at construction time.
type Analyzer interface {
	Analyze(ctx context.Context, req Request) Result
}

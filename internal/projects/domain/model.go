package domain

import "time"

// Project is a tracked flood-management initiative with its attached
// documents and the plan generated from them. It is storage-agnostic and
// shared across repository and HTTP layers.
type Project struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Number        string         `json:"number"`
	Files         []AttachedFile `json:"files"`
	GeneratedPlan string         `json:"generated_plan,omitempty"`
	CreatedBy     string         `json:"created_by,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// AttachedFile carries the metadata and inline-encoded content of one
// uploaded document. Content is embedded as a data URL; there is no blob
// store behind it.
type AttachedFile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	DataURL    string    `json:"data_url"`
	Category   string    `json:"category"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// MaxFileSize is the per-file upload limit. Larger files are rejected at
// the boundary and never reach the store.
const MaxFileSize = 10 << 20 // 10 MiB

// CategoryGeneral is the catch-all category for files uploaded outside the
// required document slots.
const CategoryGeneral = "general"

// RequiredCategory is one of the document kinds a submission is checked
// against.
type RequiredCategory struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// RequiredCategories lists the seven document kinds every project
// submission must cover, in the order the UI renders them. Validation
// reports missing categories in this order so the client can scroll to
// the first one.
var RequiredCategories = []RequiredCategory{
	{Key: "project-concept", Label: "Project Concept Note"},
	{Key: "feasibility-study", Label: "Detailed Feasibility Study Report"},
	{Key: "technical-assistance", Label: "Technical Assistance Report"},
	{Key: "procurement-plan", Label: "Procurement Plan"},
	{Key: "design-monitoring", Label: "Design and Monitoring Framework"},
	{Key: "loan-agreement", Label: "Draft Loan/Grant Agreement"},
	{Key: "president-report", Label: "Report and Recommendation of the President"},
}

// IsRequiredCategory reports whether key names one of the seven required
// document kinds.
func IsRequiredCategory(key string) bool {
	for _, c := range RequiredCategories {
		if c.Key == key {
			return true
		}
	}
	return false
}

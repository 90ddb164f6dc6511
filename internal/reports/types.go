// Package reports implements the generate-report endpoint: it turns plan
// and monitoring data into a markdown narrative, either through the
// external model or through a deterministic template. The endpoint always
// answers 200 with a report; failures degrade to the template.
package reports

import (
	"context"

	"github.com/stai-tuned/gcf-flood-backend/internal/analysis"
)

// PlanData carries the analysis output the report is written against.
type PlanData struct {
	ProjectInfo           analysis.ProjectInfo        `json:"projectInfo"`
	ClimateInfrastructure []analysis.DisasterMeasures `json:"climateInfrastructure"`
}

// LogEntry is one monitoring activity record.
type LogEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// MonitoringData carries the dashboard's monitoring panel state.
type MonitoringData struct {
	ProjectProgress       int        `json:"projectProgress"`
	SelectedYear          string     `json:"selectedYear"`
	SuspiciousLogDetected bool       `json:"suspiciousLogDetected"`
	ProjectLogs           []LogEntry `json:"projectLogs"`
}

// Request is the generate-report request body.
type Request struct {
	PlanData       PlanData       `json:"planData"`
	MonitoringData MonitoringData `json:"monitoringData"`
}

// Generator produces the report text. Live and fallback implementations
// are selected at construction time.
type Generator interface {
	Generate(ctx context.Context, req Request) string
}

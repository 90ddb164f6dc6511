package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/stai-tuned/gcf-flood-backend/internal/llm"
)

const (
	systemPrompt = "You are a climate change adaptation project analysis expert. Please analyze the provided documents and extract accurate project information."

	analyzeTemperature = 0.1
	analyzeMaxTokens   = 2000
)

// FallbackAnalyzer returns the canonical sample payload. Deterministic:
// repeated calls with the same input yield byte-identical JSON.
type FallbackAnalyzer struct{}

func (FallbackAnalyzer) Analyze(_ context.Context, req Request) Result {
	return sampleResult(req.ProjectData.Name, req.ProjectData.Number)
}

// LiveAnalyzer prompts the external model and parses its JSON answer. Any
// failure on the live path degrades to the error-sample payload; the
// caller never sees an error.
type LiveAnalyzer struct {
	client *llm.Client
	log    *zap.Logger
}

func NewLiveAnalyzer(client *llm.Client, log *zap.Logger) *LiveAnalyzer {
	return &LiveAnalyzer{client: client, log: log}
}

func (a *LiveAnalyzer) Analyze(ctx context.Context, req Request) Result {
	prompt := buildPrompt(req)

	content, err := a.client.ChatCompletion(ctx, systemPrompt, prompt, analyzeTemperature, analyzeMaxTokens)
	if err != nil {
		a.log.Warn("document analysis call failed, serving error sample", zap.Error(err))
		return errorResult()
	}

	var out Result
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &out); err != nil {
		a.log.Warn("document analysis returned unparseable JSON, serving error sample", zap.Error(err))
		return errorResult()
	}
	return out
}

// stripCodeFences removes the ```json wrapping the model tends to add.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// buildPrompt embeds the per-category sample texts, the project
// identifiers, and the taxonomy the model must echo verbatim.
func buildPrompt(req Request) string {
	var docs strings.Builder
	for _, d := range req.Documents {
		fmt.Fprintf(&docs, "\n[%s] %s:\n%s\n", d.Category, d.Name, contentFor(d.Category))
	}

	taxonomyJSON, _ := json.MarshalIndent(Taxonomy(), "  ", "  ")

	return fmt.Sprintf(`The following are actual documents from a flood management project. Please comprehensively analyze these documents to generate project information and a climate resilience infrastructure construction project report.

Project Name: %s
Project Number: %s

=== Uploaded Document Content ===
%s

Please analyze the above documents comprehensively and respond in the following JSON format.

Important: For the "Climate Resilience Infrastructure Construction Project" section, please use the standard format below, but write the flooding section specifically and concretely reflecting the actual document content.

{
  "projectInfo": {
    "projectName": "Actual project name extracted from documents",
    "projectNumber": "%s",
    "country": "Country name confirmed from documents",
    "projectStatus": "Status confirmed from documents",
    "projectType": "Support method confirmed from documents",
    "fundingSource": "Funding source and scale confirmed from documents",
    "sector": "Sector/subsector confirmed from documents",
    "targetDisaster": "Flooding",
    "climateInfrastructure": "Main infrastructure confirmed from documents",
    "region": "Region confirmed from documents",
    "responsibleAgency": "Responsible agency confirmed from documents",
    "description": "Project description and objectives extracted from documents"
  },
  "climateInfrastructure": %s
}

Notes:
1. Please use the standard format provided above exactly for the measures array in climateInfrastructure.
2. For the flooding section, also use the standard items above exactly.
3. Return only pure JSON.`,
		req.ProjectData.Name, req.ProjectData.Number, docs.String(), req.ProjectData.Number, string(taxonomyJSON))
}

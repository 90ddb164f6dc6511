package reports

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/stai-tuned/gcf-flood-backend/internal/llm"
)

const reportSystemPrompt = "You are an expert project analyst and report writer specializing in climate resilience and infrastructure projects. Generate comprehensive, professional project reports based on provided data."

const (
	reportTemperature = 0.3
	reportMaxTokens   = 3000
)

// LiveGenerator asks the chat model for a report and falls back to the
// deterministic template when the call fails or returns nothing.
type LiveGenerator struct {
	client   *llm.Client
	fallback *FallbackGenerator
	log      *zap.Logger
}

func NewLiveGenerator(client *llm.Client, log *zap.Logger) *LiveGenerator {
	return &LiveGenerator{client: client, fallback: NewFallbackGenerator(), log: log}
}

func (g *LiveGenerator) Generate(ctx context.Context, req Request) string {
	prompt, err := buildReportPrompt(req)
	if err != nil {
		g.log.Warn("report prompt build failed, using template", zap.Error(err))
		return g.fallback.Generate(ctx, req)
	}

	out, err := g.client.ChatCompletion(ctx, reportSystemPrompt, prompt, reportTemperature, reportMaxTokens)
	if err != nil {
		g.log.Warn("report generation call failed, using template", zap.Error(err))
		return g.fallback.Generate(ctx, req)
	}
	if out == "" {
		g.log.Warn("report generation returned empty content, using template")
		return g.fallback.Generate(ctx, req)
	}
	return out
}

func buildReportPrompt(req Request) (string, error) {
	plan, err := json.MarshalIndent(req.PlanData, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal plan data: %w", err)
	}
	mon, err := json.MarshalIndent(req.MonitoringData, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal monitoring data: %w", err)
	}

	return fmt.Sprintf(`Generate a comprehensive project report in markdown format based on the following data.

Planning data:
%s

Monitoring data:
%s

The report must include these sections: Executive Summary, Project Overview, Progress Analysis, Infrastructure Assessment, Monitoring Insights, Risk Assessment, Financial Analysis, Recommendations, and Conclusion. If suspicious activity was detected in the monitoring data, highlight it prominently as a critical alert. Use the actual values from the data, not placeholders.`, plan, mon), nil
}

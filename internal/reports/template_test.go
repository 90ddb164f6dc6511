package reports

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stai-tuned/gcf-flood-backend/config"
	"github.com/stai-tuned/gcf-flood-backend/internal/analysis"
	"github.com/stai-tuned/gcf-flood-backend/internal/llm"
)

func reportRequest(suspicious bool) Request {
	var req Request
	req.PlanData.ProjectInfo = analysis.ProjectInfo{
		ProjectName:       "Jakarta Coastal Defense",
		ProjectNumber:     "53-11",
		Country:           "Indonesia",
		Region:            "Jakarta",
		ProjectStatus:     "Active",
		ProjectType:       "Loan",
		FundingSource:     "Green Climate Fund",
		ResponsibleAgency: "Ministry of Public Works",
		Description:       "Sea wall and drainage works for north Jakarta.",
	}
	req.PlanData.ClimateInfrastructure = analysis.Taxonomy()
	req.MonitoringData = MonitoringData{
		ProjectProgress:       64,
		SelectedYear:          "2020",
		SuspiciousLogDetected: suspicious,
		ProjectLogs: []LogEntry{
			{ID: "TX-9", Title: "Pump station delivery", Status: "completed", Timestamp: "2020-07-01", Description: "Units delivered to site.", Impact: "low"},
		},
	}
	return req
}

func pinnedFallback() *FallbackGenerator {
	g := NewFallbackGenerator()
	g.Now = func() time.Time { return time.Date(2020, time.August, 1, 12, 0, 0, 0, time.UTC) }
	return g
}

func TestFallbackGenerator_Sections(t *testing.T) {
	out := pinnedFallback().Generate(context.Background(), reportRequest(false))

	assert.True(t, strings.HasPrefix(out, "# Jakarta Coastal Defense - Comprehensive Report"))
	for _, section := range []string{
		"## Executive Summary",
		"## Project Overview",
		"## Progress Analysis",
		"## Infrastructure Assessment",
		"## Monitoring Insights",
		"## Risk Assessment",
		"## Financial Analysis",
		"## Recommendations",
		"## Conclusion",
	} {
		assert.Contains(t, out, section)
	}
	assert.Contains(t, out, "**64%** completion")
	assert.Contains(t, out, "✅ Normal operations")
	assert.Contains(t, out, "**Report Generated**: 8/1/2020")
}

func TestFallbackGenerator_AlertBlockFollowsFlag(t *testing.T) {
	gen := pinnedFallback()

	clean := gen.Generate(context.Background(), reportRequest(false))
	assert.NotContains(t, clean, CriticalAlertMarker)
	assert.NotContains(t, clean, "URGENT")
	assert.Contains(t, clean, "**LOW RISK**")

	flagged := gen.Generate(context.Background(), reportRequest(true))
	assert.Contains(t, flagged, CriticalAlertMarker)
	assert.Contains(t, flagged, "**HIGH PRIORITY**")
	assert.Contains(t, flagged, "1. **URGENT**: Investigate suspicious activity")
	assert.Contains(t, flagged, "⚠️ Warning - Suspicious activity detected")
}

func TestFallbackGenerator_Deterministic(t *testing.T) {
	gen := pinnedFallback()
	req := reportRequest(true)

	a := gen.Generate(context.Background(), req)
	b := gen.Generate(context.Background(), req)
	assert.Equal(t, a, b)
}

func chatServer(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		if status >= 400 {
			w.WriteHeader(status)
			return
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func liveClient(srvURL string) *llm.Client {
	return llm.NewClient(config.OpenAI{APIKey: "test-key", BaseURL: srvURL, Model: "gpt-4o-mini"})
}

func TestLiveGenerator_UsesModelText(t *testing.T) {
	srv := chatServer(t, "# Model Report\n\nAll good.", http.StatusOK)
	defer srv.Close()

	g := NewLiveGenerator(liveClient(srv.URL), zap.NewNop())
	out := g.Generate(context.Background(), reportRequest(false))
	assert.Equal(t, "# Model Report\n\nAll good.", out)
}

func TestLiveGenerator_FallsBackOnServerError(t *testing.T) {
	srv := chatServer(t, "", http.StatusBadGateway)
	defer srv.Close()

	g := NewLiveGenerator(liveClient(srv.URL), zap.NewNop())
	out := g.Generate(context.Background(), reportRequest(true))
	assert.Contains(t, out, "# Jakarta Coastal Defense - Comprehensive Report")
	assert.Contains(t, out, CriticalAlertMarker)
}

func TestLiveGenerator_FallsBackOnEmptyContent(t *testing.T) {
	srv := chatServer(t, "", http.StatusOK)
	defer srv.Close()

	g := NewLiveGenerator(liveClient(srv.URL), zap.NewNop())
	out := g.Generate(context.Background(), reportRequest(false))
	assert.Contains(t, out, "## Executive Summary")
}

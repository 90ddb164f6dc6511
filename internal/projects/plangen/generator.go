// Package plangen fabricates a markdown project plan from uploaded file
// metadata alone. It is a deliberate mock: no file content is parsed, and
// keyword "detection" is a probability draw biased by the file name. It
// stands in for a real document-analysis pipeline and can be swapped for
// an LLM-backed implementation behind the same interface.
package plangen

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/stai-tuned/gcf-flood-backend/internal/projects/domain"
)

// Keyword sets the detection draws from. Fixed; only the per-file draw is
// random.
var (
	floodKeywords = []string{
		"flood risk management",
		"drainage system improvement",
		"embankment construction",
		"early warning system",
		"retention basin",
		"river-bank protection",
	}
	technicalTerms = []string{
		"hydraulic modeling",
		"pump station rehabilitation",
		"sensor network deployment",
		"GIS-based mapping",
		"structural reinforcement",
	}
	planningTerms = []string{
		"implementation phasing",
		"stakeholder consultation",
		"budget allocation",
		"procurement scheduling",
		"monitoring framework",
	}
)

const (
	baseDetectProb    = 0.3
	alignedDetectProb = 0.75
)

// Generator composes a plan from attached-file metadata. The random
// source is injected so tests can pin the detection outcome. One
// Generator serves every request goroutine and *rand.Rand is not safe
// for concurrent use, so draws are serialized behind the mutex.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// fileTraits are derived from the file name only.
type fileTraits struct {
	isReport    bool
	isTechnical bool
	isPlanning  bool
}

func traitsFor(name string) fileTraits {
	n := strings.ToLower(name)
	has := func(subs ...string) bool {
		for _, s := range subs {
			if strings.Contains(n, s) {
				return true
			}
		}
		return false
	}
	return fileTraits{
		isReport:    has("report", "study", "assessment"),
		isTechnical: has("technical", "engineering", "data"),
		isPlanning:  has("plan", "strategy", "policy"),
	}
}

type detected struct {
	flood     []string
	technical []string
	planning  []string
}

// detect runs the per-file probability draws over every keyword set and
// returns the deduplicated accepted keywords in set order.
func (g *Generator) detect(files []domain.AttachedFile) detected {
	g.mu.Lock()
	defer g.mu.Unlock()

	seen := make(map[string]bool)
	var d detected

	draw := func(keyword string, aligned bool, bucket *[]string) {
		if seen[keyword] {
			return
		}
		p := baseDetectProb
		if aligned {
			p = alignedDetectProb
		}
		if g.rng.Float64() < p {
			seen[keyword] = true
			*bucket = append(*bucket, keyword)
		}
	}

	for _, f := range files {
		t := traitsFor(f.Name)
		for _, kw := range floodKeywords {
			draw(kw, t.isReport, &d.flood)
		}
		for _, kw := range technicalTerms {
			draw(kw, t.isTechnical, &d.technical)
		}
		for _, kw := range planningTerms {
			draw(kw, t.isPlanning, &d.planning)
		}
	}
	return d
}

// Generate produces the markdown plan for a project. Output shape depends
// only on which keyword buckets ended up non-empty, so a pinned random
// source yields a fully deterministic document.
func (g *Generator) Generate(p domain.Project) string {
	d := g.detect(p.Files)

	var b strings.Builder
	fmt.Fprintf(&b, "# Project Plan: %s\n\n", p.Name)
	fmt.Fprintf(&b, "## Overview\n\nProject %s covers %d submitted document(s). ", p.Number, len(p.Files))
	b.WriteString("This plan was assembled from the document set to outline objectives, approach, and phasing for the flood-resilience program.\n\n")

	b.WriteString("## Objectives\n\n")
	if len(d.flood) == 0 {
		b.WriteString("- Establish baseline flood-resilience measures for the project area\n")
	}
	for _, kw := range d.flood {
		fmt.Fprintf(&b, "- Deliver %s across the project area\n", kw)
	}
	b.WriteString("\n")

	if len(d.technical) > 0 {
		b.WriteString("## Technical Approach\n\n")
		for _, kw := range d.technical {
			fmt.Fprintf(&b, "- %s\n", strings.ToUpper(kw[:1])+kw[1:])
		}
		b.WriteString("\n")
	}

	b.WriteString("## Timeline\n\n")
	if len(d.planning) > 2 {
		b.WriteString("1. **Phase 1: Preparation** - Mobilization, surveys, and detailed design\n")
		b.WriteString("2. **Phase 2: Procurement** - Bidding, contracting, and supplier onboarding\n")
		b.WriteString("3. **Phase 3: Construction** - Civil works and equipment installation\n")
		b.WriteString("4. **Phase 4: Commissioning** - System testing and operational handover\n")
		b.WriteString("5. **Phase 5: Evaluation** - Performance review against the monitoring framework\n")
	} else {
		b.WriteString("1. **Phase 1: Preparation** - Mobilization and detailed design\n")
		b.WriteString("2. **Phase 2: Implementation** - Civil works and installations\n")
		b.WriteString("3. **Phase 3: Commissioning** - Testing and handover\n")
		b.WriteString("4. **Phase 4: Evaluation** - Outcome review\n")
	}
	b.WriteString("\n")

	b.WriteString("## Resources\n\n")
	b.WriteString("- Project management office and implementing agency staff\n")
	b.WriteString("- Engineering and supervision consultants\n")
	b.WriteString("- Construction contractors and equipment suppliers\n")
	if len(d.technical) > 0 {
		b.WriteString("- Technical specialists for modeling and monitoring systems\n")
	}
	b.WriteString("\n")

	if len(d.flood) > 0 && len(d.planning) > 0 {
		b.WriteString("## Risk Management\n\n")
		b.WriteString("- Seasonal flooding may interrupt civil works; schedule around the monsoon window\n")
		b.WriteString("- Procurement delays mitigated through early bidding and package splitting\n")
		b.WriteString("- Community impacts tracked through the stakeholder consultation record\n")
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "---\nGenerated from %d document(s) for project %s.\n", len(p.Files), p.Number)
	return b.String()
}

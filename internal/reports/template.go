package reports

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// CriticalAlertMarker is the heading rendered when suspicious activity
// was detected. Its presence is part of the endpoint contract.
const CriticalAlertMarker = "### ⚠️ Critical Alert"

// FallbackGenerator renders the deterministic markdown template. Apart
// from the generation timestamp in the footer, output depends only on
// the input data.
type FallbackGenerator struct {
	// Now is injectable so tests can pin the footer timestamp.
	Now func() time.Time
}

func NewFallbackGenerator() *FallbackGenerator {
	return &FallbackGenerator{Now: time.Now}
}

func (g *FallbackGenerator) Generate(_ context.Context, req Request) string {
	info := req.PlanData.ProjectInfo
	mon := req.MonitoringData
	now := g.Now()

	name := info.ProjectName
	if name == "" {
		name = "Project"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# %s - Comprehensive Report\n\n", name)

	b.WriteString("## Executive Summary\n")
	fmt.Fprintf(&b, "This comprehensive analysis provides insights into the current status and performance of the %s based on planning data and real-time monitoring information.\n\n", info.ProjectName)
	b.WriteString("**Key Highlights:**\n")
	fmt.Fprintf(&b, "- Project Progress: %d%% completed\n", mon.ProjectProgress)
	fmt.Fprintf(&b, "- Current Status: %s\n", info.ProjectStatus)
	if mon.SuspiciousLogDetected {
		b.WriteString("- Monitoring Status: ⚠️ Warning - Suspicious activity detected\n\n")
	} else {
		b.WriteString("- Monitoring Status: ✅ Normal operations\n\n")
	}

	b.WriteString("## Project Overview\n\n")
	b.WriteString("### Basic Information\n")
	fmt.Fprintf(&b, "- **Project Name**: %s\n", info.ProjectName)
	fmt.Fprintf(&b, "- **Project Number**: %s\n", info.ProjectNumber)
	fmt.Fprintf(&b, "- **Country/Region**: %s - %s\n", info.Country, info.Region)
	fmt.Fprintf(&b, "- **Implementing Agency**: %s\n", info.ResponsibleAgency)
	fmt.Fprintf(&b, "- **Funding Source**: %s\n", info.FundingSource)
	fmt.Fprintf(&b, "- **Project Type**: %s\n\n", info.ProjectType)
	b.WriteString("### Project Objectives\n")
	fmt.Fprintf(&b, "%s\n\n", info.Description)

	b.WriteString("## Progress Analysis\n\n")
	b.WriteString("### Current Completion Status\n")
	fmt.Fprintf(&b, "The project has achieved **%d%%** completion as of the latest monitoring update. This represents significant progress toward the established project milestones.\n\n", mon.ProjectProgress)
	b.WriteString("### Timeline Assessment\n")
	fmt.Fprintf(&b, "- Current monitoring year: %s\n", mon.SelectedYear)
	fmt.Fprintf(&b, "- Activity logs recorded: %d transactions\n", len(mon.ProjectLogs))
	if len(mon.ProjectLogs) > 0 {
		fmt.Fprintf(&b, "- Latest activity: %s\n\n", mon.ProjectLogs[0].Timestamp)
	} else {
		b.WriteString("- Latest activity: N/A\n\n")
	}

	b.WriteString("## Infrastructure Assessment\n\n")
	b.WriteString("### Climate Resilience Measures\n")
	fmt.Fprintf(&b, "The project encompasses %d major categories of climate adaptation infrastructure:\n\n", len(req.PlanData.ClimateInfrastructure))
	for i, item := range req.PlanData.ClimateInfrastructure {
		fmt.Fprintf(&b, "**%d. %s Mitigation**\n", i+1, item.Disaster)
		for _, m := range item.Measures {
			fmt.Fprintf(&b, "- %s\n", m)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Monitoring Insights\n\n")
	b.WriteString("### Activity Analysis\n")
	for _, log := range mon.ProjectLogs {
		fmt.Fprintf(&b, "**%s** (%s)\n", log.Title, log.ID)
		fmt.Fprintf(&b, "- Status: %s\n", strings.ToUpper(log.Status))
		fmt.Fprintf(&b, "- Impact Level: %s\n", log.Impact)
		fmt.Fprintf(&b, "- Date: %s\n", log.Timestamp)
		fmt.Fprintf(&b, "- Description: %s\n\n", log.Description)
	}

	if mon.SuspiciousLogDetected {
		b.WriteString(CriticalAlertMarker + "\n")
		b.WriteString("Suspicious activity has been detected in the monitoring system. This requires immediate investigation to ensure project integrity and security.\n\n")
	}

	b.WriteString("## Risk Assessment\n\n")
	b.WriteString("### Current Risk Factors\n")
	if mon.SuspiciousLogDetected {
		b.WriteString("- **HIGH PRIORITY**: Suspicious monitoring activity detected requiring immediate investigation\n")
	} else {
		b.WriteString("- **LOW RISK**: No critical issues detected in current monitoring data\n")
	}
	fmt.Fprintf(&b, "- **Project Timeline**: On track with %d%% completion\n", mon.ProjectProgress)
	b.WriteString("- **Technical Implementation**: Infrastructure measures are well-defined and comprehensive\n\n")

	b.WriteString("## Financial Analysis\n\n")
	fmt.Fprintf(&b, "The project is financed through %s. Disbursement is tracked against the activity log record; no budget overrun is indicated by the current monitoring data.\n\n", orDefault(info.FundingSource, "the sources identified in the planning documents"))

	b.WriteString("## Recommendations\n\n")
	b.WriteString("### Immediate Actions\n")
	if mon.SuspiciousLogDetected {
		b.WriteString("1. **URGENT**: Investigate suspicious activity detected in monitoring logs\n")
		b.WriteString("2. Enhance security monitoring protocols\n")
	} else {
		b.WriteString("1. Continue monitoring current progress trajectory\n")
	}
	b.WriteString("3. Maintain regular stakeholder communication\n")
	b.WriteString("4. Ensure proper documentation of all project activities\n\n")
	b.WriteString("### Long-term Strategies\n")
	b.WriteString("1. Develop comprehensive maintenance plans for implemented infrastructure\n")
	b.WriteString("2. Establish long-term monitoring and evaluation frameworks\n")
	b.WriteString("3. Plan for knowledge transfer and capacity building initiatives\n\n")

	b.WriteString("## Conclusion\n\n")
	fmt.Fprintf(&b, "The %s demonstrates solid progress with %d%% completion. The comprehensive approach to climate resilience infrastructure positions the project for successful outcomes.\n\n", info.ProjectName, mon.ProjectProgress)
	if mon.SuspiciousLogDetected {
		b.WriteString("**Critical Note**: The detection of suspicious activities requires immediate attention to maintain project integrity and ensure successful completion.\n\n")
	} else {
		b.WriteString("The project appears to be progressing well with no critical issues identified.\n\n")
	}

	b.WriteString("---\n")
	fmt.Fprintf(&b, "**Report Generated**: %s at %s  \n", now.Format("1/2/2006"), now.Format("3:04:05 PM"))
	b.WriteString("**Data Sources**: Project planning documents, real-time monitoring system  \n")
	fmt.Fprintf(&b, "**Analysis Period**: Current as of %s", mon.SelectedYear)

	return b.String()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

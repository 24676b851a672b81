package main

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/ternarybob/limes/internal/models"
)

// fencedDot wraps DOT text in a markdown code fence.
func fencedDot(dot string) string {
	return fmt.Sprintf("```dot\n%s\n```", dot)
}

// formatPNGImage embeds a PNG as a markdown data URI.
func formatPNGImage(image []byte) string {
	return fmt.Sprintf("![Diagram](data:image/png;base64,%s)", base64.StdEncoding.EncodeToString(image))
}

// formatVisualization embeds the rendered diagram with model counts.
func formatVisualization(image []byte, componentCount, boundaryCount int) string {
	var sb strings.Builder
	sb.WriteString("# Threat Model Diagram\n\n")
	fmt.Fprintf(&sb, "![Threat Model Diagram](data:image/png;base64,%s)\n\n", base64.StdEncoding.EncodeToString(image))
	fmt.Fprintf(&sb, "## Components: %d\n", componentCount)
	fmt.Fprintf(&sb, "## Boundaries: %d\n", boundaryCount)
	return sb.String()
}

// formatComputedThreats wraps the interpreter's threat listing.
func formatComputedThreats(output, severityFilter string) string {
	if severityFilter != "" && severityFilter != "all" {
		return fmt.Sprintf("# Filtered Threats (%s severity)\n\n%s", strings.ToUpper(severityFilter), output)
	}
	return fmt.Sprintf("# All Threats\n\n%s", output)
}

// formatFindings formats the static finding catalog as markdown grouped
// by severity.
func formatFindings(findings []models.Finding, severityFilter string) string {
	var sb strings.Builder
	sb.WriteString("# Security Threats Identified\n\n")

	if len(findings) == 0 {
		fmt.Fprintf(&sb, "No findings at severity %q.\n", severityFilter)
		return sb.String()
	}

	order := []models.Severity{models.SeverityHigh, models.SeverityMedium, models.SeverityLow}
	headers := map[models.Severity]string{
		models.SeverityHigh:   "## High Severity",
		models.SeverityMedium: "## Medium Severity",
		models.SeverityLow:    "## Low Severity",
	}

	for _, severity := range order {
		var group []models.Finding
		for _, finding := range findings {
			if finding.Severity == severity {
				group = append(group, finding)
			}
		}
		if len(group) == 0 {
			continue
		}
		sb.WriteString(headers[severity] + "\n")
		for _, finding := range group {
			fmt.Fprintf(&sb, "- **%s**: %s\n", finding.ID, finding.Title)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Recommendations\n")
	for _, finding := range findings {
		if finding.Description != "" {
			fmt.Fprintf(&sb, "- %s\n", finding.Description)
		}
	}

	return sb.String()
}

// enhanceExternalDot adds layout directives to PyTM's DOT output so it
// matches the built-in synthesizer's layout.
func enhanceExternalDot(dot string) string {
	dot = strings.Replace(dot, "digraph {", "digraph ThreatModel {", 1)
	if !strings.Contains(dot, "rankdir=") {
		dot = strings.Replace(dot, "digraph ThreatModel {",
			"digraph ThreatModel {\n  rankdir=TB;\n  nodesep=1.5;\n  ranksep=2;", 1)
	}
	return dot
}

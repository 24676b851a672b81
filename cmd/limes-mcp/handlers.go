package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/limes/internal/interfaces"
	"github.com/ternarybob/limes/internal/models"
	"github.com/ternarybob/limes/internal/services/cache"
)

const defaultSystemName = "Threat Model"

// pipeline bundles the generation services every diagram/code tool needs.
type pipeline struct {
	classifier interfaces.ClassifierService
	generator  interfaces.GeneratorService
	diagram    interfaces.DiagramService
	cache      interfaces.CacheService
	runner     interfaces.PyTMRunner
}

// codeFor returns the memoized PyTM source for a free-text description.
func (p *pipeline) codeFor(description string, model *models.ThreatModel) string {
	code, _ := p.cache.GetOrCompute("code:"+cache.Key(description), func() (string, error) {
		return p.generator.Generate(model), nil
	})
	return code
}

// dotFor returns the memoized DOT text for a free-text description,
// preferring PyTM's own DFD output and falling back to the built-in
// synthesizer when the interpreter is missing or fails.
func (p *pipeline) dotFor(ctx context.Context, description string, model *models.ThreatModel) string {
	code := p.codeFor(description, model)
	dot, _ := p.cache.GetOrCompute("dot:"+cache.Key(description), func() (string, error) {
		if p.runner.Available() {
			if out, err := p.runner.Run(ctx, code, "--dfd"); err == nil && strings.Contains(out, "digraph") {
				return enhanceExternalDot(out), nil
			}
		}
		return p.diagram.Render(model), nil
	})
	return dot
}

// requireDescription parses the required description argument, returning
// an error result before any generation is attempted when it is missing.
func requireDescription(request mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	description, err := request.RequireString("description")
	if err != nil || strings.TrimSpace(description) == "" {
		return "", errorResult("Error: System description is required")
	}
	return strings.TrimSpace(description), nil
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// handleAnalyzeSystem implements the analyze_system tool
func handleAnalyzeSystem(classifier interfaces.ClassifierService, analysis interfaces.AnalysisService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		description, errRes := requireDescription(request)
		if errRes != nil {
			return errRes, nil
		}
		name := request.GetString("system_name", defaultSystemName)

		model := classifier.ExtractModel(name, description)
		return textResult(analysis.AnalyzeSystem(model)), nil
	}
}

// handleGetThreats implements the get_threats tool
func handleGetThreats(p *pipeline, analysis interfaces.AnalysisService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		description, errRes := requireDescription(request)
		if errRes != nil {
			return errRes, nil
		}
		severityFilter := request.GetString("severity_filter", "all")

		model := p.classifier.ExtractModel(defaultSystemName, description)
		code := p.codeFor(description, model)

		if p.runner.Available() {
			output, err := p.runner.Run(ctx, code, "--list")
			if err == nil {
				return textResult(formatComputedThreats(output, severityFilter)), nil
			}
			logger.Warn().Err(err).Msg("PyTM threat listing failed, using generic findings")
		}

		// Degrade to the static finding catalog.
		return textResult(formatFindings(analysis.Findings(severityFilter), severityFilter)), nil
	}
}

// handleGenerateDiagram implements the generate_diagram tool
func handleGenerateDiagram(p *pipeline, graphviz interfaces.GraphvizService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		description, errRes := requireDescription(request)
		if errRes != nil {
			return errRes, nil
		}
		format := request.GetString("format", "dot")

		model := p.classifier.ExtractModel(defaultSystemName, description)
		dot := p.dotFor(ctx, description, model)

		if format == "dot" {
			return textResult(fencedDot(dot)), nil
		}

		if !graphviz.Available() {
			return textResult(fmt.Sprintf("Graphviz not available. Install it to generate %s.\n\nDOT format:\n%s",
				strings.ToUpper(format), fencedDot(dot))), nil
		}

		image, err := graphviz.Convert(ctx, dot, format)
		if err != nil {
			logger.Warn().Err(err).Str("format", format).Msg("Diagram conversion failed")
			return textResult("Failed to convert diagram. Returning DOT format:\n\n" + fencedDot(dot)), nil
		}

		if format == "png" {
			return textResult(formatPNGImage(image)), nil
		}
		return textResult(fmt.Sprintf("```svg\n%s\n```", string(image))), nil
	}
}

// handleSaveDiagram implements the save_diagram tool
func handleSaveDiagram(p *pipeline, graphviz interfaces.GraphvizService, artifacts interfaces.ArtifactService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		description, errRes := requireDescription(request)
		if errRes != nil {
			return errRes, nil
		}
		name := request.GetString("system_name", defaultSystemName)
		format := request.GetString("format", "png")

		model := p.classifier.ExtractModel(name, description)
		dot := p.dotFor(ctx, description, model)

		data := []byte(dot)
		ext := "dot"
		if format == "png" || format == "svg" {
			image, err := graphviz.Convert(ctx, dot, format)
			if err != nil {
				logger.Warn().Err(err).Str("format", format).Msg("Conversion failed, saving DOT instead")
			} else {
				data = image
				ext = format
			}
		}

		path, err := artifacts.Save(name, ext, data)
		if err != nil {
			// IO failure during persistence is a warning, not a hard
			// error: the generated diagram is still the primary result.
			logger.Warn().Err(err).Msg("Failed to save artifact")
			return textResult(fmt.Sprintf("Warning: failed to save diagram: %v\n\nDOT source:\n%s", err, fencedDot(dot))), nil
		}

		if ext != format {
			return textResult(fmt.Sprintf("%s conversion unavailable; DOT file saved to %s", strings.ToUpper(format), path)), nil
		}
		return textResult(fmt.Sprintf("%s file saved to %s", strings.ToUpper(ext), path)), nil
	}
}

// handleVisualizeDiagram implements the visualize_diagram tool
func handleVisualizeDiagram(p *pipeline, graphviz interfaces.GraphvizService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		description, errRes := requireDescription(request)
		if errRes != nil {
			return errRes, nil
		}

		model := p.classifier.ExtractModel(defaultSystemName, description)
		dot := p.dotFor(ctx, description, model)

		if !graphviz.Available() {
			return textResult("Graphviz not installed. Install it to visualize diagrams.\n\nDOT source:\n" +
				fencedDot(dot) + "\n\nInstall Graphviz: https://graphviz.org/download/"), nil
		}

		image, err := graphviz.Convert(ctx, dot, "png")
		if err != nil {
			logger.Warn().Err(err).Msg("Visualization failed")
			return textResult("Failed to generate image. Here's the DOT source:\n\n" + fencedDot(dot)), nil
		}

		return textResult(formatVisualization(image, len(model.Components), len(model.Boundaries))), nil
	}
}

// handleGetPytmCode implements the get_pytm_code tool
func handleGetPytmCode(p *pipeline, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		description, errRes := requireDescription(request)
		if errRes != nil {
			return errRes, nil
		}

		model := p.classifier.ExtractModel(defaultSystemName, description)
		code := p.codeFor(description, model)
		return textResult(fmt.Sprintf("```python\n%s\n```", code)), nil
	}
}

// handleQuickAnalysis implements the quick_analysis tool
func handleQuickAnalysis(classifier interfaces.ClassifierService, analysis interfaces.AnalysisService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		description, errRes := requireDescription(request)
		if errRes != nil {
			return errRes, nil
		}

		model := classifier.ExtractModel(defaultSystemName, description)
		return textResult(analysis.QuickAnalysis(model)), nil
	}
}

// handleBuildThreatModel implements the build_threat_model tool
func handleBuildThreatModel(builder interfaces.ModelBuilderService, p *pipeline, analysis interfaces.AnalysisService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logger.WithCorrelationId(uuid.New().String())

		var input models.ModelInput
		if err := request.BindArguments(&input); err != nil {
			return errorResult(fmt.Sprintf("Error: invalid arguments: %v", err)), nil
		}

		model, err := builder.Build(&input)
		if err != nil {
			// Validation aborts before any generation; the message names
			// the offending field and value.
			log.Warn().Err(err).Str("model", input.Name).Msg("Model validation failed")
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		outputFormat := request.GetString("output_format", "summary")
		key := cache.ModelKey(model)

		switch outputFormat {
		case "dot":
			dot, _ := p.cache.GetOrCompute("dot:"+key, func() (string, error) {
				return p.diagram.Render(model), nil
			})
			return textResult(fencedDot(dot)), nil
		case "pytm":
			code, _ := p.cache.GetOrCompute("code:"+key, func() (string, error) {
				return p.generator.Generate(model), nil
			})
			return textResult(fmt.Sprintf("```python\n%s\n```", code)), nil
		default:
			return textResult(analysis.AnalyzeSystem(model)), nil
		}
	}
}

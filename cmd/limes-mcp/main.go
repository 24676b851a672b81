package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ternarybob/limes/internal/common"
	"github.com/ternarybob/limes/internal/services/analysis"
	"github.com/ternarybob/limes/internal/services/artifacts"
	"github.com/ternarybob/limes/internal/services/cache"
	"github.com/ternarybob/limes/internal/services/classifier"
	"github.com/ternarybob/limes/internal/services/diagram"
	"github.com/ternarybob/limes/internal/services/model"
	"github.com/ternarybob/limes/internal/services/pytm"
	"github.com/ternarybob/limes/internal/services/render"
)

func main() {
	// Load configuration
	configPath := os.Getenv("LIMES_CONFIG")
	if configPath == "" {
		configPath = "limes.toml"
	}

	config, err := common.LoadFromFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Minimal logging to avoid cluttering MCP stdio
	logger := common.NewStdioLogger()

	// Core services
	classifierService := classifier.NewService(logger)
	builderService := model.NewBuilder(logger)
	diagramService := diagram.NewService(logger)
	generatorService := pytm.NewGenerator(logger)
	cacheService := cache.NewService(logger)
	analysisService := analysis.NewService(logger)

	// External collaborators; both degrade gracefully when missing
	graphvizService := render.NewService(config, logger)
	runnerService := pytm.NewExecutor(config, logger)
	artifactService := artifacts.NewService(config, logger)

	p := &pipeline{
		classifier: classifierService,
		generator:  generatorService,
		diagram:    diagramService,
		cache:      cacheService,
		runner:     runnerService,
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		"limes",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	// Register threat modeling tools
	mcpServer.AddTool(createAnalyzeSystemTool(), handleAnalyzeSystem(classifierService, analysisService, logger))
	mcpServer.AddTool(createGetThreatsTool(), handleGetThreats(p, analysisService, logger))
	mcpServer.AddTool(createGenerateDiagramTool(), handleGenerateDiagram(p, graphvizService, logger))
	mcpServer.AddTool(createSaveDiagramTool(), handleSaveDiagram(p, graphvizService, artifactService, logger))
	mcpServer.AddTool(createVisualizeDiagramTool(), handleVisualizeDiagram(p, graphvizService, logger))
	mcpServer.AddTool(createGetPytmCodeTool(), handleGetPytmCode(p, logger))
	mcpServer.AddTool(createQuickAnalysisTool(), handleQuickAnalysis(classifierService, analysisService, logger))
	mcpServer.AddTool(createBuildThreatModelTool(), handleBuildThreatModel(builderService, p, analysisService, logger))

	// Start server (blocks on stdio)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}

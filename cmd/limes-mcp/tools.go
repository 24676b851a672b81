package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createAnalyzeSystemTool returns the analyze_system tool definition
func createAnalyzeSystemTool() mcp.Tool {
	return mcp.NewTool("analyze_system",
		mcp.WithDescription("Analyze a system description and list identified components and trust boundaries"),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("Natural language description of your system"),
		),
		mcp.WithString("system_name",
			mcp.Description("Name of the system being modeled (default: Threat Model)"),
		),
	)
}

// createGetThreatsTool returns the get_threats tool definition
func createGetThreatsTool() mcp.Tool {
	return mcp.NewTool("get_threats",
		mcp.WithDescription("Get the list of security threats for a system"),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("Natural language description of your system"),
		),
		mcp.WithString("severity_filter",
			mcp.Description("Filter threats by severity: all, high, medium, low (default: all)"),
			mcp.Enum("all", "high", "medium", "low"),
		),
	)
}

// createGenerateDiagramTool returns the generate_diagram tool definition
func createGenerateDiagramTool() mcp.Tool {
	return mcp.NewTool("generate_diagram",
		mcp.WithDescription("Generate a data flow diagram (DOT, or rendered SVG/PNG when Graphviz is installed)"),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("Natural language description of your system"),
		),
		mcp.WithString("format",
			mcp.Description("Output format for the diagram (default: dot)"),
			mcp.Enum("dot", "svg", "png"),
		),
	)
}

// createSaveDiagramTool returns the save_diagram tool definition
func createSaveDiagramTool() mcp.Tool {
	return mcp.NewTool("save_diagram",
		mcp.WithDescription("Generate a diagram and save it to the configured artifact directory"),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("Natural language description of your system"),
		),
		mcp.WithString("system_name",
			mcp.Description("Name of the system, used in the artifact filename (default: Threat Model)"),
		),
		mcp.WithString("format",
			mcp.Description("Output format for the file (default: png)"),
			mcp.Enum("png", "svg", "dot"),
		),
	)
}

// createVisualizeDiagramTool returns the visualize_diagram tool definition
func createVisualizeDiagramTool() mcp.Tool {
	return mcp.NewTool("visualize_diagram",
		mcp.WithDescription("Generate and return a PNG image of the threat model diagram"),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("Natural language description of your system"),
		),
	)
}

// createGetPytmCodeTool returns the get_pytm_code tool definition
func createGetPytmCodeTool() mcp.Tool {
	return mcp.NewTool("get_pytm_code",
		mcp.WithDescription("Get the generated PyTM code for a system"),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("Natural language description of your system"),
		),
	)
}

// createQuickAnalysisTool returns the quick_analysis tool definition
func createQuickAnalysisTool() mcp.Tool {
	return mcp.NewTool("quick_analysis",
		mcp.WithDescription("Quick security analysis with key findings"),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("Natural language description of your system"),
		),
	)
}

// createBuildThreatModelTool returns the build_threat_model tool definition
func createBuildThreatModelTool() mcp.Tool {
	return mcp.NewTool("build_threat_model",
		mcp.WithDescription("Build a threat model from an explicit structured definition instead of free text"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the system being modeled"),
		),
		mcp.WithString("description",
			mcp.Description("Description of the system"),
		),
		mcp.WithArray("components",
			mcp.Required(),
			mcp.Description("Component records: name, type, boundary, optional description/controls/metadata"),
		),
		mcp.WithArray("boundaries",
			mcp.Description("Trust boundary records: name, type, security_level (0-10), optional description/controls"),
		),
		mcp.WithArray("dataflows",
			mcp.Description("Dataflow records: source, destination, protocol, data_type, classification, optional port/authentication/encryption/bidirectional"),
		),
		mcp.WithString("output_format",
			mcp.Description("Output to return: summary, dot, or pytm (default: summary)"),
			mcp.Enum("summary", "dot", "pytm"),
		),
	)
}

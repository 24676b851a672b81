package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/limes/internal/common"
	"github.com/ternarybob/limes/internal/services/analysis"
	"github.com/ternarybob/limes/internal/services/artifacts"
	"github.com/ternarybob/limes/internal/services/classifier"
	"github.com/ternarybob/limes/internal/services/diagram"
	"github.com/ternarybob/limes/internal/services/pytm"
)

var (
	// Command-line flags
	configFile   = flag.String("config", "limes.toml", "Configuration file path")
	systemName   = flag.String("name", "Threat Model", "Name of the system being modeled")
	description  = flag.String("describe", "", "Natural language description of the system")
	output       = flag.String("output", "analysis", "Output to produce: analysis, dot, pytm")
	save         = flag.Bool("save", false, "Save the output to the artifact directory")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")

	// Global state
	config *common.Config
	logger arbor.ILogger
)

func main() {
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Println(common.GetFullVersion())
		return
	}

	if *description == "" {
		fmt.Fprintln(os.Stderr, "Error: -describe is required")
		flag.Usage()
		os.Exit(1)
	}

	var err error
	config, err = common.LoadFromFile(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	common.PrintBanner(common.GetVersion())
	logger = common.InitLogger(config)

	classifierService := classifier.NewService(logger)
	model := classifierService.ExtractModel(*systemName, *description)

	logger.Info().
		Str("system", *systemName).
		Int("components", len(model.Components)).
		Int("boundaries", len(model.Boundaries)).
		Msg("Classified system description")

	var text, ext string
	switch *output {
	case "dot":
		text = diagram.NewService(logger).Render(model)
		ext = "dot"
	case "pytm":
		text = pytm.NewGenerator(logger).Generate(model)
		ext = "py"
	case "analysis":
		text = analysis.NewService(logger).AnalyzeSystem(model)
		ext = "md"
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output %q (want analysis, dot, or pytm)\n", *output)
		os.Exit(1)
	}

	fmt.Println(text)

	if *save {
		artifactService := artifacts.NewService(config, logger)
		path, err := artifactService.Save(*systemName, ext, []byte(text))
		if err != nil {
			// Persistence failure is a warning; the printed output above
			// is the primary result.
			logger.Warn().Err(err).Msg("Failed to save artifact")
			return
		}
		fmt.Fprintf(os.Stderr, "Saved to %s\n", path)
	}
}

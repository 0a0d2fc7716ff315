package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seqlab/prothub/internal/app"
	"github.com/seqlab/prothub/internal/telemetry"
	"github.com/seqlab/prothub/internal/version"
)

var (
	analyzeInput    string
	analyzeSequence bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a headless analysis (no TUI)",
	Long: `Run ProtHub in headless mode. Useful for CI/CD pipelines or cron jobs.

Example:
  prothub analyze --input TP53 --species 9606 --score 0.7`,
	Run: func(cmd *cobra.Command, args []string) {
		bindSecrets()
		logger := app.NewLogger(config.Verbose)

		cfg := config
		cfg.Input = strings.TrimSpace(analyzeInput)
		cfg.InputType = app.InputTypeID
		if analyzeSequence {
			cfg.InputType = app.InputTypeSequence
		}
		if cfg.Input == "" {
			fmt.Println("Error: --input is required")
			os.Exit(1)
		}

		ctx := context.Background()
		shutdown, err := telemetry.Init(ctx, version.Current, cfg.OTLPEndpoint)
		if err == nil {
			defer shutdown(ctx)
		}

		logger.Info("starting analysis",
			"input_type", cfg.InputType,
			"species", cfg.Species,
			"min_score", cfg.MinScore,
		)

		res, err := app.Run(ctx, cfg, app.DefaultDeps(cfg))
		if err != nil {
			logger.Error("analysis failed", "error", err)
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		logger.Info("analysis complete",
			"accession", res.Accession,
			"nodes", res.Graph.NodeCount(),
			"edges", res.Graph.EdgeCount(),
		)

		if analyzeSequence {
			fmt.Printf("Mapped to UniProt ID: %s\n", res.Accession)
		}
		fmt.Printf("\nTop Hub Genes:\n  %s\n", strings.Join(res.Hubs, ", "))
		fmt.Printf("\nFigure: %s\n", res.FigurePath)
		fmt.Printf("\nGeneChat:\n%s\n", res.Narrative)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "Accession, protein name, or raw/FASTA sequence")
	analyzeCmd.Flags().BoolVar(&analyzeSequence, "sequence", false, "Treat input as a raw sequence and resolve it first")
}

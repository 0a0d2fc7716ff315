package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seqlab/prothub/internal/app"
	"github.com/seqlab/prothub/internal/render"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run an analysis and export figure + hub report (SVG, CSV, JSON)",
	Long: `Run a headless analysis and write the network figure plus hub-degree
reports to the output directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		bindSecrets()

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

		fmt.Println("Initializing export...")
		res, err := app.Run(context.Background(), cfg, app.DefaultDeps(cfg))
		if err != nil {
			fmt.Printf("Error running analysis: %v\n", err)
			os.Exit(1)
		}

		outDir := cfg.OutputDir
		if outDir == "" {
			outDir = app.DefaultOutputDir
		}
		csvPath := filepath.Join(outDir, "hub_report.csv")
		jsonPath := filepath.Join(outDir, "hub_report.json")
		if err := render.WriteCSV(res.Graph, res.Hubs, csvPath); err != nil {
			fmt.Printf("Error writing CSV: %v\n", err)
			os.Exit(1)
		}
		if err := render.WriteJSON(res.Graph, res.Hubs, jsonPath); err != nil {
			fmt.Printf("Error writing JSON: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("\nExport complete.")
		fmt.Printf("   SVG:  %s\n", res.FigurePath)
		fmt.Printf("   CSV:  %s\n", csvPath)
		fmt.Printf("   JSON: %s\n", jsonPath)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&analyzeInput, "input", "", "Accession, protein name, or raw/FASTA sequence")
	exportCmd.Flags().BoolVar(&analyzeSequence, "sequence", false, "Treat input as a raw sequence and resolve it first")
}

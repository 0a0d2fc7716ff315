package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/seqlab/prothub/internal/app"
	"github.com/seqlab/prothub/internal/telemetry"
	"github.com/seqlab/prothub/internal/ui"
	"github.com/seqlab/prothub/internal/version"
)

var (
	cfgFile string
	config  app.Config
)

var rootCmd = &cobra.Command{
	Use:   "prothub",
	Short: "Protein Hub Explorer + GeneChat",
	Long: `ProtHub - Protein Interaction Network Analysis

Fetch. Rank. Explain.`,
	Version: version.Current,
	Run: func(cmd *cobra.Command, args []string) {
		bindSecrets()

		shutdown, err := telemetry.Init(context.Background(), version.Current, config.OTLPEndpoint)
		if err != nil {
			fmt.Printf("Telemetry init failed: %v\n", err)
		} else {
			defer shutdown(context.Background())
		}

		p := tea.NewProgram(ui.NewModel(config))
		if _, err := p.Run(); err != nil {
			fmt.Printf("Alas, there's been an error: %v", err)
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent Flags
	rootCmd.PersistentFlags().IntVar(&config.Species, "species", app.DefaultSpecies, "NCBI taxonomy ID")
	rootCmd.PersistentFlags().Float64Var(&config.MinScore, "score", app.DefaultMinScore, "Minimum interaction score (0.0-1.0)")
	rootCmd.PersistentFlags().IntVar(&config.TopN, "top", 5, "Number of hub genes to report")
	rootCmd.PersistentFlags().StringVar(&config.Filter, "filter", "", "CEL filter over interaction records (e.g. 'score > 0.7')")
	rootCmd.PersistentFlags().StringVar(&config.OutputDir, "out", app.DefaultOutputDir, "Output directory for figures and reports")
	rootCmd.PersistentFlags().StringVar(&config.OTLPEndpoint, "otlp-endpoint", "", "OTLP trace exporter endpoint")
	rootCmd.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.prothub.yaml)")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderFutureGlassHelp(cmd)
	})
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".prothub.yaml"))
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("prothub")
	viper.AutomaticEnv()
	viper.ReadInConfig()
}

// bindSecrets pulls the completion-service credential out of the config
// store into the explicit config object. Nothing else reads viper after
// this point.
func bindSecrets() {
	config.OpenAIKey = viper.GetString("openai_api_key")
	config.OpenAIModel = viper.GetString("openai_model")
}

func renderFutureGlassHelp(cmd *cobra.Command) {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF99")).
		MarginBottom(1)

	flagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("PROTHUB %s [Future-Glass]", version.Current)))
	fmt.Println("Protein hub analysis with a GeneChat narrator.")

	fmt.Println(titleStyle.Render("USAGE"))
	fmt.Printf("  %s\n\n", cmd.UseLine())

	fmt.Println(titleStyle.Render("COMMANDS"))
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			fmt.Printf("  %-12s %s\n", c.Name(), c.Short)
		}
	}
	fmt.Println("")

	fmt.Println(titleStyle.Render("FLAGS"))
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		output := fmt.Sprintf("  --%-15s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			output += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		fmt.Println(flagStyle.Render(output))
	})
	fmt.Println("")
}

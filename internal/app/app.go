// Package app wires the analysis pipeline: resolve -> fetch -> filter ->
// build -> rank -> render -> narrate.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/seqlab/prothub/internal/genechat"
	"github.com/seqlab/prothub/internal/graph"
	"github.com/seqlab/prothub/internal/layout"
	"github.com/seqlab/prothub/internal/policy"
	"github.com/seqlab/prothub/internal/render"
	"github.com/seqlab/prothub/internal/stringdb"
	"github.com/seqlab/prothub/internal/uniprot"
)

// Input types accepted by a run.
const (
	InputTypeID       = "id"       // accession or preferred name, passed through
	InputTypeSequence = "sequence" // raw / FASTA sequence, resolved first
)

// Config is the explicit configuration object for one run. The
// completion-service key lives here and is handed only to the narrator.
type Config struct {
	Input     string
	InputType string
	Species   int
	MinScore  float64
	TopN      int
	Filter    string // optional CEL expression over source/target/score
	OutputDir string
	Verbose   bool

	OpenAIKey   string
	OpenAIModel string

	OTLPEndpoint string
}

// SpeciesPreset pairs a display label with an NCBI taxonomy ID.
type SpeciesPreset struct {
	Label string
	TaxID int
}

// SpeciesPresets is the fixed species list offered by the UI; a custom
// taxonomy ID can always be entered instead.
var SpeciesPresets = []SpeciesPreset{
	{"Human (Homo sapiens)", 9606},
	{"Mouse (Mus musculus)", 10090},
	{"Rat (Rattus norvegicus)", 10116},
	{"Zebrafish (Danio rerio)", 7955},
	{"Fruit fly (Drosophila melanogaster)", 7227},
}

// Defaults.
const (
	DefaultSpecies   = 9606
	DefaultMinScore  = 0.4
	DefaultOutputDir = "prothub-out"
)

// Result is everything one run produces.
type Result struct {
	Accession  string
	Graph      *graph.Graph
	Hubs       []string
	Narrative  string
	FigurePath string
}

// Deps are the remote clients a run talks to. Tests swap these for
// httptest-backed fakes.
type Deps struct {
	Resolver *uniprot.Client
	Fetcher  *stringdb.Client
	Narrator *genechat.Client
}

// DefaultDeps builds production clients from the config.
func DefaultDeps(cfg Config) Deps {
	return Deps{
		Resolver: uniprot.NewClient(),
		Fetcher:  stringdb.NewClient(),
		Narrator: genechat.NewClient(genechat.Config{
			APIKey: cfg.OpenAIKey,
			Model:  cfg.OpenAIModel,
		}),
	}
}

// NewLogger builds the slog JSON logger used by headless runs.
func NewLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// Run executes one full analysis. Resolution and fetch failures halt the
// run; narration failures never do (they come back as inline text in
// Result.Narrative).
func Run(ctx context.Context, cfg Config, deps Deps) (*Result, error) {
	if cfg.TopN <= 0 {
		cfg.TopN = graph.DefaultTopN
	}
	if cfg.Species == 0 {
		cfg.Species = DefaultSpecies
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	var filter *policy.Filter
	if cfg.Filter != "" {
		f, err := policy.Compile(cfg.Filter)
		if err != nil {
			return nil, err
		}
		filter = f
	}

	accession := cfg.Input
	if cfg.InputType == InputTypeSequence {
		resolved, err := deps.Resolver.ResolveSequence(ctx, cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("could not map the sequence to a UniProt ID: %w", err)
		}
		accession = resolved
	}

	records, err := deps.Fetcher.Network(ctx, accession, cfg.Species, cfg.MinScore)
	if err != nil {
		return nil, fmt.Errorf("no interaction data found: %w", err)
	}

	interactions := make([]graph.Interaction, 0, len(records))
	for _, r := range records {
		interactions = append(interactions, graph.Interaction{
			Source: r.PreferredNameA,
			Target: r.PreferredNameB,
			Score:  r.Score,
		})
	}
	if filter != nil {
		interactions = filter.Apply(interactions)
	}

	g := graph.Build(interactions)
	hubs := graph.TopHubs(g, cfg.TopN)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	figurePath := filepath.Join(cfg.OutputDir, "network.svg")
	pos := layout.Spring(g, layout.DefaultSeed)
	if err := os.WriteFile(figurePath, render.SVG(g, pos, hubs), 0644); err != nil {
		return nil, fmt.Errorf("failed to write figure: %w", err)
	}

	narrative := deps.Narrator.ExplainHubs(ctx, hubs)

	return &Result{
		Accession:  accession,
		Graph:      g,
		Hubs:       hubs,
		Narrative:  narrative,
		FigurePath: figurePath,
	}, nil
}

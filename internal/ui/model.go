// Package ui is the interactive front end: an input form for the
// analysis parameters and result panes for hubs, figure and narrative.
package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seqlab/prothub/internal/app"
)

// focusZone enumerates the form controls in tab order.
type focusZone int

const (
	focusInput focusZone = iota
	focusInputType
	focusSpecies
	focusCustomTax
	focusScore
	focusRun

	focusZoneCount
)

// customSpeciesIdx is the virtual cursor slot after the fixed presets.
var customSpeciesIdx = len(app.SpeciesPresets)

type Model struct {
	// core components
	spinner   spinner.Model
	input     textarea.Model
	customTax textinput.Model

	// form state
	focus       focusZone
	rawSequence bool // false: accession/name passthrough
	speciesIdx  int  // index into SpeciesPresets, or customSpeciesIdx
	score       float64

	// run state
	running  bool
	quitting bool
	errText  string
	result   *app.Result

	// base config from flags/config file; the form fills the rest
	baseCfg app.Config

	width  int
	height int
}

type resultMsg struct{ result *app.Result }

type runErrMsg struct{ err error }

func NewModel(baseCfg app.Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = special

	input := textarea.New()
	input.Placeholder = "Paste an accession, protein name, or FASTA sequence..."
	input.SetHeight(6)
	input.SetWidth(70)
	input.Focus()

	customTax := textinput.New()
	customTax.Placeholder = "NCBI taxonomy ID"
	customTax.CharLimit = 8
	customTax.Width = 20

	score := baseCfg.MinScore
	if score == 0 {
		score = app.DefaultMinScore
	}

	return Model{
		spinner:   s,
		input:     input,
		customTax: customTax,
		focus:     focusInput,
		score:     score,
		baseCfg:   baseCfg,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textarea.Blink)
}

// species returns the taxonomy ID currently selected by the form.
func (m Model) species() int {
	if m.speciesIdx == customSpeciesIdx {
		return parseTaxID(m.customTax.Value())
	}
	return app.SpeciesPresets[m.speciesIdx].TaxID
}

func parseTaxID(s string) int {
	id := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		id = id*10 + int(r-'0')
	}
	return id
}

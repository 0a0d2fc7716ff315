package ui

import (
	"context"
	"math"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seqlab/prothub/internal/app"
)

const scoreStep = 0.05

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case resultMsg:
		m.running = false
		m.errText = ""
		m.result = msg.result
		return m, nil

	case runErrMsg:
		m.running = false
		m.result = nil
		m.errText = msg.err.Error()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		if m.focus == focusInput || m.focus == focusCustomTax {
			// Drop focus out of the text widgets so q can quit.
			m.input.Blur()
			m.customTax.Blur()
			m.focus = focusRun
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case "tab":
		return m.cycleFocus(1), nil
	case "shift+tab":
		return m.cycleFocus(-1), nil
	}

	// Text widgets swallow everything else while focused.
	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	if m.focus == focusCustomTax {
		var cmd tea.Cmd
		m.customTax, cmd = m.customTax.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "left", "h":
		switch m.focus {
		case focusInputType:
			m.rawSequence = !m.rawSequence
		case focusSpecies:
			if m.speciesIdx > 0 {
				m.speciesIdx--
			}
		case focusScore:
			m.score = clampScore(m.score - scoreStep)
		}

	case "right", "l":
		switch m.focus {
		case focusInputType:
			m.rawSequence = !m.rawSequence
		case focusSpecies:
			if m.speciesIdx < customSpeciesIdx {
				m.speciesIdx++
			}
		case focusScore:
			m.score = clampScore(m.score + scoreStep)
		}

	case "enter", " ":
		switch m.focus {
		case focusInputType:
			m.rawSequence = !m.rawSequence
		case focusRun:
			if !m.running {
				m.running = true
				m.errText = ""
				m.result = nil
				return m, tea.Batch(m.spinner.Tick, m.runAnalysis())
			}
		}
	}

	return m, nil
}

func (m Model) cycleFocus(dir int) Model {
	m.input.Blur()
	m.customTax.Blur()

	for {
		m.focus = focusZone((int(m.focus) + dir + int(focusZoneCount)) % int(focusZoneCount))
		// The custom tax field only exists when Custom is selected.
		if m.focus == focusCustomTax && m.speciesIdx != customSpeciesIdx {
			continue
		}
		break
	}

	switch m.focus {
	case focusInput:
		m.input.Focus()
	case focusCustomTax:
		m.customTax.Focus()
	}
	return m
}

// clampScore snaps to the 0.05 grid so repeated steps accumulate no
// float drift, then clamps to [0, 1].
func clampScore(s float64) float64 {
	s = math.Round(s/scoreStep) * scoreStep
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// runAnalysis executes the whole pipeline in one blocking tea.Cmd. The
// event loop stays live (spinner), but the run itself is a single
// synchronous pass with no cancellation.
func (m Model) runAnalysis() tea.Cmd {
	cfg := m.baseCfg
	cfg.Input = m.input.Value()
	cfg.InputType = app.InputTypeID
	if m.rawSequence {
		cfg.InputType = app.InputTypeSequence
	}
	cfg.Species = m.species()
	cfg.MinScore = m.score

	return func() tea.Msg {
		res, err := app.Run(context.Background(), cfg, app.DefaultDeps(cfg))
		if err != nil {
			return runErrMsg{err: err}
		}
		return resultMsg{result: res}
	}
}

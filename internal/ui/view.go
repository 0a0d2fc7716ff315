package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seqlab/prothub/internal/app"
	"github.com/seqlab/prothub/internal/version"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s - Protein Hub Explorer + GeneChat", version.AppName, version.Current)))
	b.WriteString("\n\n")
	b.WriteString(cardStyle.Render(m.viewForm()))
	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	if m.result != nil {
		b.WriteString(m.viewResults())
	}
	b.WriteString("\n")
	b.WriteString(subtle.Render("tab: next field · left/right: adjust · enter: toggle/run · q: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder

	b.WriteString(m.label(focusInput, "Input"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	idChoice, seqChoice := "(x) Protein Name / UniProt ID", "( ) Raw Sequence"
	if m.rawSequence {
		idChoice, seqChoice = "( ) Protein Name / UniProt ID", "(x) Raw Sequence"
	}
	b.WriteString(m.label(focusInputType, "Input Type"))
	b.WriteString("  " + idChoice + "   " + seqChoice + "\n\n")

	b.WriteString(m.label(focusSpecies, "Species"))
	b.WriteString("  " + m.speciesLabel() + "\n")
	if m.speciesIdx == customSpeciesIdx {
		b.WriteString("  " + m.label(focusCustomTax, "Taxonomy ID") + "  " + m.customTax.View() + "\n")
	}
	b.WriteString("\n")

	b.WriteString(m.label(focusScore, "Minimum Interaction Score"))
	b.WriteString("  " + m.viewSlider() + "\n\n")

	run := "[ Analyze Network ]"
	if m.focus == focusRun {
		run = special.Render("> [ Analyze Network ] <")
	} else {
		run = subtle.Render(run)
	}
	b.WriteString(run)

	return b.String()
}

func (m Model) label(zone focusZone, text string) string {
	if m.focus == zone {
		return focusedLabel.Render(text + ":")
	}
	return blurredLabel.Render(text + ":")
}

func (m Model) speciesLabel() string {
	if m.speciesIdx == customSpeciesIdx {
		return "Custom (enter manually)"
	}
	p := app.SpeciesPresets[m.speciesIdx]
	return fmt.Sprintf("%s  [taxid %d]", p.Label, p.TaxID)
}

// viewSlider draws the 0.0-1.0 threshold as a 21-notch bar (0.05 step).
func (m Model) viewSlider() string {
	notches := 21
	filled := int(m.score/scoreStep + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", notches-filled)
	return fmt.Sprintf("%s %.2f", special.Render(bar), m.score)
}

func (m Model) viewStatus() string {
	switch {
	case m.running:
		return fmt.Sprintf("\n %s Fetching and building network...\n", m.spinner.View())
	case m.errText != "":
		return fmt.Sprintf("\n %s %s\n", iconErr.String(), danger.Render(m.errText))
	case m.result != nil && m.rawSequence:
		return fmt.Sprintf("\n %s Mapped to UniProt ID: %s\n", iconOK.String(), special.Render(m.result.Accession))
	case m.result != nil:
		return fmt.Sprintf("\n %s Analysis complete.\n", iconOK.String())
	}
	return ""
}

func (m Model) viewResults() string {
	var b strings.Builder
	r := m.result

	b.WriteString("\n" + highlight.Render("Top Hub Genes") + "\n")
	b.WriteString(" " + hubStyle.Render(strings.Join(r.Hubs, ", ")) + "\n")

	b.WriteString("\n" + highlight.Render("Network Visualization") + "\n")
	b.WriteString(fmt.Sprintf(" %s %s nodes, figure written to %s\n",
		iconInfo.String(), lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d", r.Graph.NodeCount())), r.FigurePath))

	b.WriteString("\n" + narrativeBoxStyle.Render(
		narrativeHeaderStyle.Render("GeneChat: Explain These Hub Genes")+"\n"+wrap(r.Narrative, 76)) + "\n")

	return b.String()
}

// wrap is a dumb word wrapper for the narrative pane.
func wrap(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}
	var b strings.Builder
	line := 0
	for i, w := range words {
		if line+len(w)+1 > width && line > 0 {
			b.WriteString("\n")
			line = 0
		} else if i > 0 {
			b.WriteString(" ")
			line++
		}
		b.WriteString(w)
		line += len(w)
	}
	return b.String()
}

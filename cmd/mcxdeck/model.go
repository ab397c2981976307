package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mcx "github.com/Bill-Wisotsky/classiq-library"
)

const (
	fieldControls = iota
	fieldMaxWidth
	fieldObjective
	fieldBasis
	numFields
)

// Model holds the explorer state: the synthesis request on the left of the
// pipeline, the synthesized result on the right.
type Model struct {
	k          int
	maxWidth   int // 0 = unbounded
	objective  mcx.Objective
	czBasis    bool
	focusField int

	result   *mcx.Result
	synthErr error

	qasmView  viewport.Model
	viewStart int // first visible layer column
	width     int
	height    int
	statusMsg string
}

func initialModel() Model {
	m := Model{k: 4, qasmView: viewport.New(30, 10)}
	m.resynthesize()
	return m
}

func (m *Model) basis() mcx.Basis {
	if m.czBasis {
		return mcx.CZBasis()
	}
	return mcx.DefaultBasis()
}

func (m *Model) resynthesize() {
	m.result, m.synthErr = mcx.Synthesize(m.k, mcx.Constraints{
		MaxWidth:  m.maxWidth,
		Objective: m.objective,
		Basis:     m.basis(),
	})
	m.viewStart = 0
	if m.synthErr != nil {
		m.qasmView.SetContent(m.synthErr.Error())
	} else {
		m.qasmView.SetContent(m.result.Circuit.QASM())
	}
	m.qasmView.GotoTop()
}

// adjust changes the focused field by delta and re-runs synthesis.
func (m *Model) adjust(delta int) {
	switch m.focusField {
	case fieldControls:
		m.k = max(m.k+delta, 0)
	case fieldMaxWidth:
		// Step between unbounded (0) and the k+1 floor directly; widths in
		// between are always infeasible.
		switch {
		case m.maxWidth == 0 && delta > 0:
			m.maxWidth = m.k + 1
		case m.maxWidth+delta <= m.k && m.maxWidth > 0 && delta < 0:
			m.maxWidth = 0
		case m.maxWidth > 0:
			m.maxWidth += delta
		}
	case fieldObjective:
		if m.objective == mcx.MinimizeDepth {
			m.objective = mcx.MinimizeGateCount
		} else {
			m.objective = mcx.MinimizeDepth
		}
	case fieldBasis:
		m.czBasis = !m.czBasis
	}
	m.resynthesize()
}

func (m *Model) saveQASM() {
	if m.synthErr != nil {
		m.statusMsg = "Nothing to save"
		return
	}
	if err := os.WriteFile("mcx.qasm", []byte(m.result.Circuit.QASM()), 0644); err != nil {
		m.statusMsg = fmt.Sprintf("Save error: %v", err)
	} else {
		m.statusMsg = "Saved mcx.qasm"
	}
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.qasmView.Width = max(msg.Width/4-4, 20)
		m.qasmView.Height = max((msg.Height-8)/2-4, 4)

	case tea.KeyMsg:
		key := msg.String()
		m.statusMsg = ""

		switch key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.focusField = (m.focusField + 1) % numFields
		case "shift+tab":
			m.focusField = (m.focusField + numFields - 1) % numFields
		case "up", "k":
			m.adjust(1)
		case "down", "j":
			m.adjust(-1)
		case "left", "h":
			m.viewStart = max(m.viewStart-1, 0)
		case "right", "l":
			m.viewStart++
		case "ctrl+s":
			m.saveQASM()
		case "pgup", "pgdown", "ctrl+u", "ctrl+d":
			var cmd tea.Cmd
			m.qasmView, cmd = m.qasmView.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	planWidth := m.width / 4
	circuitWidth := m.width - planWidth - 4
	controlsHeight := 6
	circuitHeight := max(m.height-controlsHeight-2, 6)

	sideHeight := circuitHeight / 2

	circuitPanel := m.renderCircuitPanel(circuitWidth, circuitHeight)
	planPanel := m.renderPlanPanel(planWidth, sideHeight)
	qasmPanel := m.renderQASMPanel(planWidth, circuitHeight-sideHeight-2)
	controlsPanel := m.renderControlsPanel(m.width-4, controlsHeight-2)

	sideColumn := lipgloss.JoinVertical(lipgloss.Left, planPanel, qasmPanel)
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, circuitPanel, sideColumn)
	return lipgloss.JoinVertical(lipgloss.Left, topRow, controlsPanel)
}

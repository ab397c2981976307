package main

import (
	"fmt"
	"strings"

	mcx "github.com/Bill-Wisotsky/classiq-library"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// gateDisplayName returns a short display name for a gate.
func gateDisplayName(g mcx.Gate) string {
	return g.Kind.String()
}

// targetSymbol returns the wire symbol for the target of an entangling gate.
func targetSymbol(k mcx.Kind) string {
	if k == mcx.KindCZ {
		return "●"
	}
	return "⊕"
}

// cellInfo describes what occupies one (layer, qubit) cell.
type cellInfo struct {
	gate      *mcx.Gate
	isControl bool
	isTarget  bool
	isBarrier bool
	boxed     bool // single-qubit box, or boxed target of a rotation
	vertAbove bool
	vertBelow bool
	pass      bool // a connector passes through an otherwise empty wire
}

// columnInfo resolves the cell contents of one layer column.
func columnInfo(c *mcx.Circuit, layer []int) []cellInfo {
	cells := make([]cellInfo, c.NumQubits)

	for _, idx := range layer {
		g := c.Gates[idx]
		if g.Kind == mcx.KindBarrier {
			for q := range cells {
				cells[q].isBarrier = true
			}
			continue
		}

		qs := g.Qubits()
		lo, hi := qs[0], qs[0]
		for _, q := range qs {
			lo = min(lo, q)
			hi = max(hi, q)
		}

		gate := g
		for q := lo; q <= hi; q++ {
			cell := &cells[q]
			cell.gate = &gate
			cell.vertAbove = cell.vertAbove || q > lo
			cell.vertBelow = cell.vertBelow || q < hi
			switch {
			case q == g.Target:
				cell.isTarget = true
				// Rotations read better boxed than as a bare ⊕.
				cell.boxed = len(g.Controls) == 0 || g.Kind.Parameterized()
			case containsInt(g.Controls, q):
				cell.isControl = true
			default:
				cell.pass = true
			}
		}
	}
	return cells
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// renderCell returns 3 lines (top, mid, bot) for a single cell, each exactly
// cellW visual characters wide.
func renderCell(info cellInfo) (top, mid, bot string) {
	emptyRow := strings.Repeat(" ", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)
	dashL := (cellW - 1) / 2
	dashR := cellW - dashL - 1

	if info.isBarrier {
		top = vertRow
		mid = strings.Repeat("─", dashL) + "│" + strings.Repeat("─", dashR)
		bot = vertRow
		return
	}

	if info.gate == nil {
		top = emptyRow
		mid = strings.Repeat("─", cellW)
		bot = emptyRow
		return
	}

	top = emptyRow
	if info.vertAbove {
		top = vertRow
	}
	bot = emptyRow
	if info.vertBelow {
		bot = vertRow
	}

	switch {
	case info.isControl:
		mid = strings.Repeat("─", dashL) + gateStyle.Render("●") + strings.Repeat("─", dashR)

	case info.isTarget && !info.boxed:
		mid = strings.Repeat("─", dashL) + gateStyle.Render(targetSymbol(info.gate.Kind)) + strings.Repeat("─", dashR)

	case info.isTarget:
		margin := (cellW - gateBoxW) / 2
		rightMargin := cellW - margin - gateBoxW
		name := padCenter(gateDisplayName(*info.gate), gateNameW)
		boxTop := strings.Repeat(" ", margin) + gateStyle.Render("┌"+strings.Repeat("─", gateNameW)+"┐") + strings.Repeat(" ", rightMargin)
		boxBot := strings.Repeat(" ", margin) + gateStyle.Render("└"+strings.Repeat("─", gateNameW)+"┘") + strings.Repeat(" ", rightMargin)
		if !info.vertAbove {
			top = boxTop
		}
		if !info.vertBelow {
			bot = boxBot
		}
		mid = strings.Repeat("─", margin) + gateStyle.Render("┤"+name+"├") + strings.Repeat("─", rightMargin)

	default: // pass-through
		top = vertRow
		mid = strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR)
		bot = vertRow
	}
	return
}

// ──────────────────────────── Panel rendering ────────────────────────────

// renderCircuitPanel renders the synthesized circuit grid.
func (m Model) renderCircuitPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Synthesized Circuit"))
	sb.WriteString("\n\n")

	if m.synthErr != nil {
		sb.WriteString(errStyle.Render(m.synthErr.Error()))
		return circuitStyle.Width(width).Height(height).Render(sb.String())
	}

	c := &m.result.Circuit
	layers := mcx.BuildLayers(c)

	availWidth := width - labelVisualW - 4
	maxCols := max(availWidth/cellW, 1)
	start := min(m.viewStart, max(len(layers)-maxCols, 0))
	end := min(start+maxCols, len(layers))

	if start > 0 || end < len(layers) {
		fmt.Fprintf(&sb, "  ◀ layers %d–%d of %d ▶\n", start, end-1, len(layers))
	}

	header := strings.Repeat(" ", labelVisualW)
	for l := start; l < end; l++ {
		header += dimStyle.Render(padCenter(fmt.Sprintf("%d", l), cellW))
	}
	sb.WriteString(header + "\n")

	cols := make([][]cellInfo, 0, end-start)
	for l := start; l < end; l++ {
		cols = append(cols, columnInfo(c, layers[l]))
	}

	ancillaFrom := m.k + 1
	for qubit := 0; qubit < c.NumQubits; qubit++ {
		label := fmt.Sprintf("q[%d]", qubit)
		style := qubitLabelStyle
		if qubit >= ancillaFrom {
			label = fmt.Sprintf("a[%d]", qubit-ancillaFrom)
			style = ancillaLabelStyle
		}
		topLine := strings.Repeat(" ", labelVisualW)
		midLine := style.Render(fmt.Sprintf("%-5s", label)) + "──"
		botLine := strings.Repeat(" ", labelVisualW)

		for _, col := range cols {
			top, mid, bot := renderCell(col[qubit])
			topLine += top
			midLine += mid
			botLine += bot
		}

		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}

	if m.statusMsg != "" {
		fmt.Fprintf(&sb, "\n  %s", activeGateStyle.Render(m.statusMsg))
	}

	return circuitStyle.Width(width).Height(height).Render(sb.String())
}

// renderPlanPanel renders the plan and metrics sidebar.
func (m Model) renderPlanPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Plan"))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderField(0, "Controls", fmt.Sprintf("%d", m.k)))
	widthLabel := "unbounded"
	if m.maxWidth > 0 {
		widthLabel = fmt.Sprintf("%d", m.maxWidth)
	}
	sb.WriteString(m.renderField(1, "Max width", widthLabel))
	sb.WriteString(m.renderField(2, "Objective", m.objective.String()))
	basisLabel := "cx"
	if m.czBasis {
		basisLabel = "cz"
	}
	sb.WriteString(m.renderField(3, "Basis", basisLabel))
	sb.WriteString("\n")

	if m.synthErr != nil {
		sb.WriteString(errStyle.Render("no plan"))
		return planStyle.Width(width).Height(height).Render(sb.String())
	}

	for _, line := range strings.Split(strings.TrimRight(m.result.Plan.String(), "\n"), "\n") {
		sb.WriteString(gateStyle.Render(line))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "qubits  %d\n", m.result.Circuit.NumQubits)
	fmt.Fprintf(&sb, "depth   %d\n", m.result.Depth)
	fmt.Fprintf(&sb, "gates   %d\n", len(m.result.Circuit.Gates))
	sb.WriteString("\n")

	sb.WriteString(dimStyle.Render("counts"))
	sb.WriteString("\n")
	for kind := mcx.KindX; kind <= mcx.KindBarrier; kind++ {
		if n, ok := m.result.Counts[kind]; ok {
			fmt.Fprintf(&sb, "  %-4s %d\n", kind, n)
		}
	}

	return planStyle.Width(width).Height(height).Render(sb.String())
}

func (m Model) renderField(idx int, name, value string) string {
	style := fieldNormalStyle
	marker := "  "
	if idx == m.focusField {
		style = fieldActiveStyle
		marker = "▸ "
	}
	return style.Render(fmt.Sprintf("%s%-10s %s", marker, name, value)) + "\n"
}

// renderQASMPanel renders the QASM preview viewport.
func (m Model) renderQASMPanel(width, height int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("QASM"))
	sb.WriteString("\n\n")
	sb.WriteString(m.qasmView.View())
	return planStyle.Width(width).Height(height).Render(sb.String())
}

// renderControlsPanel renders the bottom help bar.
func (m Model) renderControlsPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(activeGateStyle.Render("Adjust:  "))
	sb.WriteString("↑↓/jk Change value  Tab Next field  h/l Scroll layers\n")

	sb.WriteString(activeGateStyle.Render("Actions: "))
	sb.WriteString("PgUp/PgDn Scroll QASM  ^S Save QASM  q/^C Quit")

	return controlsStyle.Width(width).Height(height).Render(sb.String())
}

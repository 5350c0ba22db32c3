package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-swipe/internal/gesture"
	"github.com/vovakirdan/tui-swipe/internal/store"
)

const cellWidth = 6

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	emptyCellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("240"))

	litStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))
)

// tileColors maps tile values to background colors.
var tileColors = map[int]lipgloss.Color{
	2:    lipgloss.Color("252"),
	4:    lipgloss.Color("230"),
	8:    lipgloss.Color("215"),
	16:   lipgloss.Color("209"),
	32:   lipgloss.Color("203"),
	64:   lipgloss.Color("196"),
	128:  lipgloss.Color("228"),
	256:  lipgloss.Color("227"),
	512:  lipgloss.Color("226"),
	1024: lipgloss.Color("220"),
	2048: lipgloss.Color("214"),
}

// tileStyle returns the style for a non-empty tile.
func tileStyle(v int) lipgloss.Style {
	bg, ok := tileColors[v]
	if !ok {
		bg = lipgloss.Color("93")
	}
	return lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(bg)
}

// RenderBoard draws the board as a grid of tiles.
func RenderBoard(b store.Board) string {
	rows := make([]string, 0, len(b))
	for _, row := range b {
		cells := make([]string, 0, len(row))
		for _, v := range row {
			if v == 0 {
				cells = append(cells, emptyCellStyle.Render("·"))
				continue
			}
			cells = append(cells, tileStyle(v).Render(strconv.Itoa(v)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return boardStyle.Render(strings.Join(rows, "\n\n"))
}

// renderSwipe describes the last swipe.
func (m Model) renderSwipe() string {
	if m.seq == 0 {
		return dimStyle.Render("drag with the mouse or use the arrow keys")
	}
	label := fmt.Sprintf(" %s %-5s ", m.last.Arrow(), m.last)
	if m.lit {
		label = litStyle.Render(label)
	}
	return fmt.Sprintf("swipe #%d %s", m.seq, label)
}

// renderHistory lists recent swipes, oldest first.
func (m Model) renderHistory() string {
	if len(m.history) == 0 {
		return ""
	}
	arrows := make([]string, len(m.history))
	for i, d := range m.history {
		arrows[i] = d.Arrow()
	}
	return dimStyle.Render("recent: " + strings.Join(arrows, " "))
}

// render builds the whole view.
func (m Model) render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("swipe"))
	b.WriteString("\n\n")
	b.WriteString(RenderBoard(m.app.Board.Grid()))
	b.WriteString("\n\n")
	b.WriteString(m.renderSwipe())
	b.WriteString("\n")
	if h := m.renderHistory(); h != "" {
		b.WriteString(h)
		b.WriteString("\n")
	}
	if !m.detector.Attached() {
		b.WriteString(warnStyle.Render("detector detached: swipes are ignored"))
		b.WriteString("\n")
	}
	if m.current != gesture.None {
		b.WriteString(dimStyle.Render("pulse: " + m.current.String()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

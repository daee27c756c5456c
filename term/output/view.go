package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"ghostterm.arpa/term/interpreter"
)

const alertMarker = "▌ "

var (
	baseLineStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1B5E20", Dark: "#39FF14"})
	markerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF3B3B")).Bold(true)

	categoryStyles = map[interpreter.Category]lipgloss.Style{
		interpreter.CategoryInfo:     baseLineStyle,
		interpreter.CategoryAnalysis: baseLineStyle.Foreground(lipgloss.AdaptiveColor{Light: "#006064", Dark: "#00E5FF"}),
		interpreter.CategoryReport:   baseLineStyle.Foreground(lipgloss.AdaptiveColor{Light: "#6A1B9A", Dark: "#E040FB"}),
		interpreter.CategoryError:    baseLineStyle.Foreground(lipgloss.Color("#FF3B3B")),
		interpreter.CategorySpecial:  baseLineStyle.Foreground(lipgloss.Color("#FFB300")),
		interpreter.CategoryInput:    baseLineStyle.Foreground(lipgloss.AdaptiveColor{Light: "#424242", Dark: "#B0BEC5"}).Italic(true),
		interpreter.CategorySuccess:  baseLineStyle.Foreground(lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#76FF03"}).Bold(true),
	}
)

// View renders the revealed part of every line, wrapped to width.
func (l *Log) View(width int) string {
	rows := make([]string, 0, len(l.lines))
	for _, line := range l.lines {
		rows = append(rows, renderLine(line, width))
	}
	return strings.Join(rows, "\n")
}

func renderLine(line *Line, width int) string {
	style, ok := categoryStyles[line.Category]
	if !ok {
		style = baseLineStyle
	}

	prefix := ""
	if line.Category.Marked() {
		prefix = markerStyle.Render(alertMarker)
		width -= lipgloss.Width(alertMarker)
	}
	if width > 0 {
		style = style.Width(width)
	}
	return prefix + style.Render(line.Visible())
}

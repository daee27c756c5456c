package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	title       = "GHOST//TERMINAL"
	clockLayout = "15:04:05"
	sendLabel   = "SEND"
	idleGlobe   = "🌐"
)

func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.proxyView(),
		logFrameStyle.Render(m.viewport.View()),
		m.inputView(),
		m.footerView(),
	)
}

func (m *Model) headerView() string {
	clock := clockStyle.Render(m.now.Format(clockLayout))
	left := titleStyle.Render(title)
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(clock), 1)
	return left + lipgloss.NewStyle().Width(gap).Render("") + clock
}

func (m *Model) proxyView() string {
	current := m.proxy.Current()

	globe := idleGlobe
	if m.proxy.Transform().RotateDeg != 0 {
		globe = globeSpinStyle.Render(m.globe.View())
	}

	button := m.button(m.proxy.Label(), m.focus == focusProxy, m.proxy.Enabled())

	// Everything but the label has a fixed width; the label gets what is left.
	fixed := lipgloss.Width(globe) + lipgloss.Width(button) + lipgloss.Width(current.Address) + 24
	label := current.Label
	if m.width > 0 {
		label = runewidth.Truncate(label, max(m.width-fixed, 8), "…")
	}

	fields := lipgloss.JoinHorizontal(lipgloss.Center,
		globe, " ",
		fieldNameStyle.Render("IP "), fieldValueStyle.Render(current.Address), "  ",
		fieldNameStyle.Render("LOCATION "), fieldValueStyle.Render(label), "  ",
		button,
	)
	return panelStyle.Render(fields)
}

func (m *Model) inputView() string {
	send := m.button(sendLabel, m.focus == focusSend, true)
	return lipgloss.JoinHorizontal(lipgloss.Center,
		panelStyle.Render(m.input.View()),
		" ",
		send,
	)
}

func (m *Model) footerView() string {
	help := m.help.View(m.keys)
	if m.status == "" {
		return help
	}
	return statusStyle.Render(m.status) + "  " + help
}

func (m *Model) button(label string, focused, enabled bool) string {
	switch {
	case !enabled:
		return buttonDisabledStyle.Render(label)
	case focused:
		return buttonFocusedStyle.Render(label)
	default:
		return buttonStyle.Render(label)
	}
}

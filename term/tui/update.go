package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"ghostterm.arpa/term/interpreter"
	"ghostterm.arpa/term/output"
	"ghostterm.arpa/term/proxy"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case output.RevealMsg:
		cmd := m.output.Reveal(msg)
		m.refreshLog()
		return m, cmd

	case responseMsg:
		return m, m.render(msg.response.Text, msg.response.Category)

	case connectedMsg:
		loc := m.proxy.Complete()
		m.log.Info("Proxy connected",
			zap.String("address", loc.Address),
			zap.String("label", loc.Label),
		)
		return m, m.render(proxy.ConnectedText(loc), interpreter.CategorySuccess)

	case clockMsg:
		m.now = time.Time(msg)
		return m, m.clockTick()

	case spinner.TickMsg:
		if !m.proxy.Connecting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.globe, cmd = m.globe.Update(msg)
		return m, cmd

	case ConfigMsg:
		m.applyConfig(msg.Config)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.NextFocus):
		m.setFocus(m.focus + 1)
		return nil

	case key.Matches(msg, m.keys.PrevFocus):
		m.setFocus(m.focus - 1)
		return nil

	case key.Matches(msg, m.keys.Send):
		return m.Submit(m.input.Value())

	case key.Matches(msg, m.keys.Proxy):
		return m.ActivateProxy()

	case key.Matches(msg, m.keys.Copy):
		m.copyLog()
		return nil

	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd

	case key.Matches(msg, m.keys.Submit):
		if m.focus == focusProxy {
			return m.ActivateProxy()
		}
		return m.Submit(m.input.Value())
	}

	if m.focus != focusInput {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.proxyView()) +
		lipgloss.Height(m.inputView()) + lipgloss.Height(m.footerView()) + logFrameHeight
	m.viewport.Width = max(width-logFrameWidth, 10)
	m.viewport.Height = max(height-chrome, 3)
	m.input.Width = max(width-sendButtonWidth-inputFrameWidth, 10)
	m.refreshLog()
}

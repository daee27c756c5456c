// Package tui is the full-screen terminal: input field, send control, output
// log, proxy panel and clock, all driven from one Bubble Tea update loop.
package tui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"ghostterm.arpa/term/interpreter"
	"ghostterm.arpa/term/output"
	"ghostterm.arpa/term/proxy"
)

const (
	echoPrefix = ">_ COMMAND RECEIVED: "
	bootText   = "// SYSTEM ONLINE. TYPE 'HELP' FOR AVAILABLE COMMANDS."
)

type focus int

const (
	focusInput focus = iota
	focusSend
	focusProxy
	focusCount
)

type Model struct {
	log    *zap.Logger
	config Config
	keys   KeyMap

	input    textinput.Model
	viewport viewport.Model
	globe    spinner.Model
	help     help.Model

	output *output.Log
	proxy  *proxy.Simulator

	focus  focus
	now    time.Time
	status string
	width  int
	height int

	writeClipboard func(string) error
}

func NewModel(log *zap.Logger, config Config) *Model {
	input := textinput.New()
	input.Prompt = ">_ "
	input.Placeholder = "ENTER COMMAND..."
	input.CharLimit = 0
	input.Focus()

	return &Model{
		log:            log,
		config:         config,
		keys:           DefaultKeyMap(),
		input:          input,
		viewport:       viewport.New(80, 20),
		globe:          spinner.New(spinner.WithSpinner(spinner.Globe)),
		help:           help.New(),
		output:         output.NewLog(config.RevealInterval),
		proxy:          proxy.NewSimulator(),
		now:            time.Now(),
		writeClipboard: clipboard.WriteAll,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.clockTick(),
		m.render(bootText, interpreter.CategoryInfo),
	)
}

// Submit dispatches one command: echo it, then either clear the log or
// schedule the interpreted response after the processing delay. Blank input
// is ignored.
func (m *Model) Submit(raw string) tea.Cmd {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	echo := m.render(echoPrefix+raw, interpreter.CategoryInput)
	m.input.Reset()

	resp := interpreter.Interpret(raw)
	m.log.Debug("Command dispatched",
		zap.String("command", raw),
		zap.String("category", resp.Category.String()),
	)

	if resp.IsClear() {
		m.output.Clear()
		m.refreshLog()
		return nil
	}

	return tea.Batch(echo, m.after(m.config.ResponseDelay, responseMsg{response: resp}))
}

// ActivateProxy starts a simulated proxy swap unless one is in progress.
func (m *Model) ActivateProxy() tea.Cmd {
	target, ok := m.proxy.Activate()
	if !ok {
		return nil
	}
	m.log.Info("Proxy swap started",
		zap.Int("cursor", m.proxy.Cursor()),
		zap.String("address", target.Address),
	)

	return tea.Batch(
		m.render(proxy.NegotiatingText(), interpreter.CategoryInfo),
		m.globe.Tick,
		m.after(m.config.ConnectDelay, connectedMsg{}),
	)
}

// Output exposes the log for inspection.
func (m *Model) Output() *output.Log {
	return m.output
}

func (m *Model) Proxy() *proxy.Simulator {
	return m.proxy
}

func (m *Model) Config() Config {
	return m.config
}

func (m *Model) render(text string, category interpreter.Category) tea.Cmd {
	cmd := m.output.Render(text, category)
	m.refreshLog()
	return cmd
}

// refreshLog redraws the log and keeps the newest line in view.
func (m *Model) refreshLog() {
	m.viewport.SetContent(m.output.View(m.viewport.Width))
	m.viewport.GotoBottom()
}

func (m *Model) after(delay time.Duration, msg tea.Msg) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return msg })
}

func (m *Model) clockTick() tea.Cmd {
	return tea.Every(m.config.ClockInterval, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

func (m *Model) applyConfig(config Config) {
	m.config = config
	m.output.SetInterval(config.RevealInterval)
	m.log.Info("Timing configuration applied",
		zap.Duration("revealInterval", config.RevealInterval),
		zap.Duration("responseDelay", config.ResponseDelay),
		zap.Duration("connectDelay", config.ConnectDelay),
		zap.Duration("clockInterval", config.ClockInterval),
	)
}

func (m *Model) setFocus(f focus) {
	m.focus = (f + focusCount) % focusCount
	if m.focus == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) copyLog() {
	if err := m.writeClipboard(m.output.PlainText()); err != nil {
		m.log.Warn("Failed to copy log to clipboard", zap.Error(err))
		m.status = "COPY FAILED"
		return
	}
	m.status = "LOG COPIED"
}

package tui

import (
	"time"

	"ghostterm.arpa/term/interpreter"
)

// responseMsg carries an interpreted response once the processing delay is over.
type responseMsg struct {
	response interpreter.Response
}

// connectedMsg ends a simulated proxy connection.
type connectedMsg struct{}

type clockMsg time.Time

// ConfigMsg replaces the timing configuration of a running model.
type ConfigMsg struct {
	Config Config
}

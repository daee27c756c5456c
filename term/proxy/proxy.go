// Package proxy simulates switching between a fixed set of proxy exit nodes.
// Nothing here touches the network.
package proxy

import (
	"fmt"
	"slices"
	"time"
)

const (
	DefaultConnectDelay = 2 * time.Second

	ButtonLabel     = "CHANGE PROXY LOCATION"
	ConnectingLabel = "CONNECTING..."
)

// Transform is the cosmetic state of the globe visual.
type Transform struct {
	RotateDeg int
	Scale     float64
}

var (
	spinning = Transform{RotateDeg: 720, Scale: 1.1}
	neutral  = Transform{RotateDeg: 0, Scale: 1.0}
)

// Simulator owns the proxy cursor and the state of the change-proxy control.
// It is not safe for concurrent use; the UI loop is its only caller.
type Simulator struct {
	locations  []Location
	cursor     int
	displayed  Location
	connecting bool
	transform  Transform
}

func NewSimulator() *Simulator {
	return &Simulator{
		locations: slices.Clone(Locations),
		displayed: Locations[InitialIndex],
		transform: neutral,
	}
}

// Activate starts a connection to the next location in the cycle. While a
// connection is in progress it does nothing and returns false.
func (s *Simulator) Activate() (Location, bool) {
	if s.connecting {
		return Location{}, false
	}
	s.connecting = true
	s.transform = spinning
	s.cursor = (s.cursor + 1) % len(s.locations)
	return s.locations[s.cursor], true
}

// Complete finishes the pending connection and displays its location.
func (s *Simulator) Complete() Location {
	s.displayed = s.locations[s.cursor]
	s.transform = neutral
	s.connecting = false
	return s.displayed
}

func (s *Simulator) Cursor() int {
	return s.cursor
}

// Current is the location shown in the address and label fields.
func (s *Simulator) Current() Location {
	return s.displayed
}

func (s *Simulator) Connecting() bool {
	return s.connecting
}

// Enabled reports whether the change-proxy control accepts activation.
func (s *Simulator) Enabled() bool {
	return !s.connecting
}

// Label is the text of the change-proxy control.
func (s *Simulator) Label() string {
	if s.connecting {
		return ConnectingLabel
	}
	return ButtonLabel
}

func (s *Simulator) Transform() Transform {
	return s.transform
}

// NegotiatingText announces a started proxy swap.
func NegotiatingText() string {
	return "// INITIATING PROXY SWAP: ENCRYPTING TUNNEL..."
}

// ConnectedText announces the location a swap ended on.
func ConnectedText(loc Location) string {
	return fmt.Sprintf("// PROXY CONNECTED: IP %s (%s)", loc.Address, loc.Label)
}

package tui

import (
	"encoding/json"
	"fmt"
	"time"

	"ghostterm.arpa/term/output"
	"ghostterm.arpa/term/proxy"
)

const (
	DefaultResponseDelay = 700 * time.Millisecond
	DefaultClockInterval = time.Second
)

// FileConfig is the hot-reloadable timing section of the config file.
type FileConfig struct {
	RevealInterval *time.Duration `json:"reveal_interval" yaml:"reveal_interval" toml:"reveal_interval"`
	ResponseDelay  *time.Duration `json:"response_delay" yaml:"response_delay" toml:"response_delay"`
	ConnectDelay   *time.Duration `json:"connect_delay" yaml:"connect_delay" toml:"connect_delay"`
	ClockInterval  *time.Duration `json:"clock_interval" yaml:"clock_interval" toml:"clock_interval"`
}

// UnmarshalJSON accepts durations as Go duration strings ("10ms") or integer
// nanoseconds, so JSON files read the same as YAML and TOML ones.
func (c *FileConfig) UnmarshalJSON(data []byte) error {
	var raw struct {
		RevealInterval json.RawMessage `json:"reveal_interval"`
		ResponseDelay  json.RawMessage `json:"response_delay"`
		ConnectDelay   json.RawMessage `json:"connect_delay"`
		ClockInterval  json.RawMessage `json:"clock_interval"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := []struct {
		name string
		raw  json.RawMessage
		dst  **time.Duration
	}{
		{"reveal_interval", raw.RevealInterval, &c.RevealInterval},
		{"response_delay", raw.ResponseDelay, &c.ResponseDelay},
		{"connect_delay", raw.ConnectDelay, &c.ConnectDelay},
		{"clock_interval", raw.ClockInterval, &c.ClockInterval},
	}
	for _, f := range fields {
		d, err := parseJSONDuration(f.raw)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = d
	}
	return nil
}

func parseJSONDuration(raw json.RawMessage) (*time.Duration, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, err
		}
		return &d, nil
	}

	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("want a duration string or integer nanoseconds, got %s", raw)
	}
	d := time.Duration(n)
	return &d, nil
}

type Config struct {
	RevealInterval time.Duration // Per character of a revealed line
	ResponseDelay  time.Duration // Between the command echo and its response
	ConnectDelay   time.Duration // Simulated proxy connection time
	ClockInterval  time.Duration
}

func DefaultConfig() Config {
	return Config{
		RevealInterval: output.DefaultRevealInterval,
		ResponseDelay:  DefaultResponseDelay,
		ConnectDelay:   proxy.DefaultConnectDelay,
		ClockInterval:  DefaultClockInterval,
	}
}

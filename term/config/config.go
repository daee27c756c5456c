package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"ghostterm.arpa/term/tui"
)

type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

func (e Environment) String() string {
	return string(e)
}

func environmentFromString(s string) Environment {
	switch s {
	case EnvironmentDevelopment.String():
		return EnvironmentDevelopment
	case EnvironmentProduction.String():
		return EnvironmentProduction
	default:
		return ""
	}
}

var logLevels = []string{"error", "warn", "info", "debug"}

// From LDFLAGS
type BuildOpts struct {
	BuildVersion     string
	BuildTime        string
	BuildEnvironment string
}

type configOpts struct {
	Version        string
	BuildTime      string
	LogLevel       string
	LogFile        string
	Environment    string
	ConfigFile     string
	NoColor        bool
	RevealInterval time.Duration
	ResponseDelay  time.Duration
	ConnectDelay   time.Duration
	ClockInterval  time.Duration
}

type Config struct {
	Version     string
	BuildTime   string
	LogLevel    string
	LogFile     string
	Environment Environment
	ConfigFile  string
	NoColor     bool
	Terminal    tui.Config
}

func newConfig(opts configOpts) (Config, error) {
	env := environmentFromString(strings.ToLower(opts.Environment))
	if env == "" {
		return Config{}, fmt.Errorf("unknown environment %q", opts.Environment)
	}
	logLevel := strings.ToLower(opts.LogLevel)
	if !slices.Contains(logLevels, logLevel) {
		return Config{}, fmt.Errorf("unknown log level %q", opts.LogLevel)
	}
	for name, d := range map[string]time.Duration{
		"reveal interval": opts.RevealInterval,
		"response delay":  opts.ResponseDelay,
		"connect delay":   opts.ConnectDelay,
	} {
		if d < 0 {
			return Config{}, fmt.Errorf("%s must not be negative: %v", name, d)
		}
	}
	if opts.ClockInterval <= 0 {
		return Config{}, fmt.Errorf("clock interval must be positive: %v", opts.ClockInterval)
	}

	return Config{
		Version:     opts.Version,
		BuildTime:   opts.BuildTime,
		LogLevel:    logLevel,
		LogFile:     opts.LogFile,
		Environment: env,
		ConfigFile:  opts.ConfigFile,
		NoColor:     opts.NoColor,
		Terminal: tui.Config{
			RevealInterval: opts.RevealInterval,
			ResponseDelay:  opts.ResponseDelay,
			ConnectDelay:   opts.ConnectDelay,
			ClockInterval:  opts.ClockInterval,
		},
	}, nil
}

func Default[T comparable](val T, defaultVal T) T {
	var zero T
	if val == zero {
		return defaultVal
	}
	return val
}

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	altsrc "github.com/urfave/cli-altsrc/v3"
	altsrcyaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

func Flags() []cli.Flag {
	// Filled in while flags are parsed so the environment can also be read
	// from the config file. config-file must stay ahead of env.
	var configFile string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config-file",
			Usage:       "Optional YAML, JSON or TOML config file, reloaded on change",
			Sources:     cli.EnvVars("CONFIG_FILE"),
			Destination: &configFile,
			Action: func(ctx context.Context, cmd *cli.Command, v string) error {
				if err := validateFileInput(v); err != nil {
					return cli.Exit(fmt.Errorf("invalid config file: %v", err), 2)
				}
				return nil
			},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log level (default: info, or log_level from the config file)",
			Sources: cli.EnvVars("LOG_LEVEL"),
			Action: func(ctx context.Context, cmd *cli.Command, v string) error {
				if slices.Contains(logLevels, strings.ToLower(v)) {
					return nil
				}
				return cli.Exit(fmt.Errorf("'log-level' must be %v. Received: %v", strings.Join(logLevels, ", "), v), 2)
			},
		},
		&cli.StringFlag{
			Name:  "env",
			Usage: "build environment description",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("ENVIRONMENT"),
				altsrcyaml.YAML("env", altsrc.NewStringPtrSourcer(&configFile)),
			),
			Action: func(ctx context.Context, cmd *cli.Command, v string) error {
				options := []string{EnvironmentDevelopment.String(), EnvironmentProduction.String()}
				if slices.Contains(options, strings.ToLower(v)) {
					return nil
				}
				return cli.Exit(fmt.Errorf("'env' must be %v. Received: %v", strings.Join(options, ", "), v), 2)
			},
		},
		&cli.StringFlag{
			Name:    "log-file",
			Usage:   "Write JSON logs to this file. The terminal UI never logs to the screen.",
			Sources: cli.EnvVars("LOG_FILE"),
			Action: func(ctx context.Context, cmd *cli.Command, v string) error {
				if err := validateParentDirectory(v); err != nil {
					return cli.Exit(fmt.Errorf("invalid log file: %v", err), 2)
				}
				return nil
			},
		},
		&cli.BoolFlag{
			Name:    "no-color",
			Usage:   "Disable colors",
			Sources: cli.EnvVars("NO_COLOR"),
		},
		durationFlag("reveal-interval", "Time to reveal one character of a line", "REVEAL_INTERVAL"),
		durationFlag("response-delay", "Simulated processing time before a response", "RESPONSE_DELAY"),
		durationFlag("connect-delay", "Simulated proxy connection time", "CONNECT_DELAY"),
		durationFlag("clock-interval", "Clock refresh interval", "CLOCK_INTERVAL"),
	}
}

func durationFlag(name, usage, env string) *cli.DurationFlag {
	return &cli.DurationFlag{
		Name:    name,
		Usage:   usage,
		Sources: cli.EnvVars(env),
		Action: func(ctx context.Context, cmd *cli.Command, v time.Duration) error {
			if v < 0 {
				return cli.Exit(fmt.Errorf("'%s' must not be negative. Received: %v", name, v), 2)
			}
			return nil
		},
	}
}

// Ensures the file input is valid.
func validateFileInput(file string) error {
	if file == "" {
		return errors.New("file is required")
	} else {
		_, err := os.Stat(file)
		if err != nil {
			return err
		}
	}
	return nil
}

// The file may not exist yet, but its directory must.
func validateParentDirectory(file string) error {
	if file == "" {
		return errors.New("file is required")
	}
	info, err := os.Stat(filepath.Dir(file))
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", filepath.Dir(file))
	}
	return nil
}

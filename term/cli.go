package term

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"ghostterm.arpa/term/config"
)

type cmdWithArgs func(ctx context.Context, cmd *cli.Command, t *Terminal) error

// Wrap subcommands to inject the terminal dependency
func cmdWithTerminal(action cmdWithArgs, t *Terminal) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		return action(ctx, cmd, t)
	}
}

type setupWithArgs func(ctx context.Context, cmd *cli.Command) (context.Context, error)

func setup(setup setupWithArgs) cli.BeforeFunc {
	return func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		return setup(ctx, cmd)
	}
}

func NewCommandRoot(t *Terminal) (*bool, *cli.Command) {
	opts := t.BuildOpts
	version := fmt.Sprintf("%s (%s)", opts.BuildVersion, opts.BuildTime)
	if opts.BuildTime == "" {
		version = opts.BuildVersion
	}
	start := new(bool)
	return start, &cli.Command{
		Name:    "ghostterm",
		Usage:   "Fake hacker terminal with canned command responses and a proxy switcher",
		Version: version,
		Before:  setup(t.Setup), // runs before any command to load config and logging
		Action: func(ctx context.Context, cmd *cli.Command) error {
			*start = true
			return nil
		},
		Commands: Commands(t),
		Flags:    config.Flags(),
	}
}

func Commands(t *Terminal) []*cli.Command {
	return []*cli.Command{
		newExecCommand(t),
		newProxiesCommand(t),
		newManualCommand(t),
	}
}

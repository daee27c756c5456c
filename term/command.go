package term

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	xterm "golang.org/x/term"

	"ghostterm.arpa/term/interpreter"
	"ghostterm.arpa/term/proxy"
)

type execCommandFlags struct {
	Command string
	Type    bool
}

func newExecCommandFlags(cmd *cli.Command) *execCommandFlags {
	return &execCommandFlags{
		Command: strings.Join(cmd.Args().Slice(), " "),
		Type:    cmd.Bool("type"),
	}
}

func newExecCommand(t *Terminal) *cli.Command {
	return &cli.Command{
		Name:      "exec",
		Usage:     "Run one terminal command and print the response",
		ArgsUsage: "<command...>",
		HideHelp:  true, // "help" is a terminal command here
		Action:    cmdWithTerminal(execTerminalCommand, t),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "type",
				Usage: "Type the response out one character at a time",
			},
		},
	}
}

func execTerminalCommand(ctx context.Context, cmd *cli.Command, t *Terminal) error {
	f := newExecCommandFlags(cmd)
	if strings.TrimSpace(f.Command) == "" {
		return cli.Exit("a command is required, try: ghostterm exec help", 2)
	}

	response := interpreter.Interpret(f.Command)
	t.log.Info("Executed command", zap.String("command", f.Command), zap.String("category", response.Category.String()))

	w := cmd.Root().Writer
	if _, err := fmt.Fprintf(w, "[%s]", response.Category); err != nil {
		return err
	}
	if response.Text == "" {
		_, err := fmt.Fprintln(w)
		return err
	}
	if _, err := fmt.Fprint(w, " "); err != nil {
		return err
	}

	if f.Type {
		if err := typeOut(ctx, w, response.Text, t.config.Terminal.RevealInterval); err != nil {
			return err
		}
	} else if _, err := fmt.Fprint(w, response.Text); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// typeOut writes text one rune per interval.
func typeOut(ctx context.Context, w io.Writer, text string, interval time.Duration) error {
	for _, r := range text {
		if _, err := fmt.Fprint(w, string(r)); err != nil {
			return err
		}
		if interval <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
	return nil
}

func newProxiesCommand(t *Terminal) *cli.Command {
	return &cli.Command{
		Name:   "proxies",
		Usage:  "List proxy locations in the order they are cycled",
		Action: cmdWithTerminal(listProxies, t),
	}
}

func listProxies(ctx context.Context, cmd *cli.Command, t *Terminal) error {
	rows := make([][]string, 0, len(proxy.Locations))
	for i, loc := range proxy.Locations {
		marker := ""
		if i == proxy.InitialIndex {
			marker = "*"
		}
		rows = append(rows, []string{marker, strconv.Itoa(i + 1), loc.Address, loc.Label})
	}

	tbl := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("", "#", "ADDRESS", "LOCATION").
		Rows(rows...)

	_, err := fmt.Fprintln(cmd.Root().Writer, tbl.Render())
	return err
}

const manualText = `# GHOST//TERMINAL

Type a command and press **Enter** or the **SEND** button. Commands are not
case sensitive.

| Command | Response |
| --- | --- |
| HELP | List available commands |
| CHECK NN | Neural net diagnostic |
| SCAN FIREWALL | Perimeter defense report |
| SCAN NETWORK | Local network map |
| REPORT CRYPTO | Crypto market report |
| INITIATE SELF-DESTRUCT | Access denied |
| CLEAR | Clear the output log |

Anything else is answered with an error that echoes your input.

## Keys

| Key | Action |
| --- | --- |
| enter | Send the command, or press the focused control |
| ctrl+s | Send the command |
| ctrl+p | Change proxy location |
| tab / shift+tab | Move focus |
| ctrl+y | Copy the output log |
| pgup / pgdown | Scroll the output log |
| ctrl+c / esc | Quit |
`

func newManualCommand(t *Terminal) *cli.Command {
	return &cli.Command{
		Name:   "manual",
		Usage:  "Show the command reference",
		Action: cmdWithTerminal(showManual, t),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "width",
				Usage: "Wrap the manual at this many columns",
				Value: 80,
			},
		},
	}
}

func showManual(ctx context.Context, cmd *cli.Command, t *Terminal) error {
	w := cmd.Root().Writer
	style := glamour.WithStandardStyle("notty")
	if !t.config.NoColor && isTerminal(w) {
		style = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(int(cmd.Int("width"))))
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(manualText)
	if err != nil {
		return fmt.Errorf("render manual: %w", err)
	}

	_, err = fmt.Fprint(w, out)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && xterm.IsTerminal(int(f.Fd()))
}

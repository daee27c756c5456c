package term

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"ghostterm.arpa/term/config"
)

// setupTerminal runs Setup against the real flag set.
func setupTerminal(t *testing.T, term *Terminal, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:   "test",
		Flags:  config.Flags(),
		Before: term.Setup,
		Action: func(ctx context.Context, cmd *cli.Command) error { return nil },
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
	t.Cleanup(term.Close)
}

func TestNewTerminal(t *testing.T) {
	term := NewTerminal(testBuildOpts)

	require.NotNil(t, term)
	assert.Equal(t, testBuildOpts, term.BuildOpts)
	assert.NotNil(t, term.Logger(), "logger is usable before setup")
}

func TestTerminal_Setup(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "ghostterm.log")
	term := NewTerminal(testBuildOpts)

	setupTerminal(t, term, "--log-file", logFile, "--response-delay", "1s")
	defer func() { require.NoError(t, term.Shutdown(context.Background())) }()

	assert.Equal(t, "test-version", term.config.Version)
	assert.Equal(t, time.Second, term.configManager.GetTerminalConfig().ResponseDelay)
	assert.Len(t, term.SessionID(), 36)
	assert.NotNil(t, term.Logger())

	term.Logger().Info("hello")
	require.NoError(t, term.Logger().Sync())
	contents, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(contents), term.SessionID())
}

func TestTerminal_Setup_BadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("terminal: ["), 0o600))
	term := NewTerminal(testBuildOpts)
	cmd := &cli.Command{
		Name:   "test",
		Flags:  config.Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error { return nil },
	}
	require.NoError(t, cmd.Run(context.Background(), []string{"test", "--config-file", path}))

	_, err := term.Setup(context.Background(), cmd)

	assert.Error(t, err)
}

func TestTerminal_RunRequiresSetup(t *testing.T) {
	term := NewTerminal(testBuildOpts)

	assert.Error(t, term.Run(context.Background()))
}

func TestTerminal_ConfigChangeUpdatesLogLevel(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "ghostterm.log")
	term := NewTerminal(testBuildOpts)
	setupTerminal(t, term, "--log-file", logFile, "--log-level", "info")
	defer func() { require.NoError(t, term.Shutdown(context.Background())) }()
	require.False(t, term.Logger().Core().Enabled(zap.DebugLevel))

	updated := *term.configManager.GetConfig()
	updated.LogLevel = "debug"
	term.onConfigChange(&updated)

	assert.True(t, term.Logger().Core().Enabled(zap.DebugLevel))
}

func TestTerminal_RunAndShutdown(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(testBuildOpts,
		tea.WithInput(nil),
		tea.WithOutput(&out),
		tea.WithoutSignalHandler(),
	)
	setupTerminal(t, term)

	runErr := make(chan error, 1)
	go func() { runErr <- term.Run(context.Background()) }()

	require.Eventually(t, func() bool { return term.currentProgram() != nil }, time.Second, 10*time.Millisecond)
	require.NoError(t, term.BeginShutdown(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, term.Shutdown(ctx))
	require.NoError(t, <-runErr)
	assert.NoError(t, term.ForceShutdown(ctx))
}

func TestTerminal_ShutdownWithoutRun(t *testing.T) {
	term := NewTerminal(testBuildOpts)

	assert.NoError(t, term.BeginShutdown(context.Background()))
	assert.NoError(t, term.Shutdown(context.Background()))
	assert.NoError(t, term.ForceShutdown(context.Background()))
}

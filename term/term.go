package term

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"ghostterm.arpa/logger"
	"ghostterm.arpa/term/config"
	"ghostterm.arpa/term/tui"
)

type Terminal struct {
	BuildOpts     config.BuildOpts
	logger        logger.Logger
	log           *zap.Logger
	config        config.Config
	configManager *config.ConfigManager
	sessionID     string

	programOpts []tea.ProgramOption
	mu          sync.Mutex
	program     *tea.Program
	unsubscribe func()
}

func NewTerminal(buildOpts config.BuildOpts, opts ...tea.ProgramOption) *Terminal {
	return &Terminal{
		BuildOpts:   buildOpts,
		logger:      logger.NewNoopLogger(),
		log:         zap.NewNop(),
		programOpts: opts,
	}
}

func (t *Terminal) Setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	overrides := config.ExtractCLIOverrides(cmd)
	var configPath string
	if overrides.ConfigFile != nil {
		configPath = *overrides.ConfigFile
	}

	var err error
	t.config, err = config.Load(t.BuildOpts, overrides, configPath)
	if err != nil {
		return ctx, fmt.Errorf("config setup: %w", err)
	}

	isProd := t.config.Environment == config.EnvironmentProduction
	t.logger, err = logger.NewLogger(logger.LoggerOpts{
		Level:        t.config.LogLevel,
		IsProduction: isProd,
		JSONConsole:  isProd,
		NoConsole:    true, // the screen belongs to the terminal UI
		File:         t.config.LogFile,
	})
	if err != nil {
		return ctx, fmt.Errorf("logger setup: %w", err)
	}

	t.sessionID = uuid.NewString()
	t.log = t.logger.Get().With(zap.String("session", t.sessionID))

	t.configManager, err = config.NewConfigManager(t.log, t.BuildOpts, overrides, configPath)
	if err != nil {
		return ctx, fmt.Errorf("config manager setup: %w", err)
	}

	if t.config.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	t.log.Debug("Terminal configured.",
		zap.String("version", t.config.Version),
		zap.String("environment", t.config.Environment.String()),
		zap.Any("timings", t.config.Terminal))

	return ctx, nil
}

// Run blocks until the terminal UI exits.
func (t *Terminal) Run(runCtx context.Context) error {
	if t.configManager == nil {
		return errors.New("terminal is not set up")
	}

	model := tui.NewModel(t.log, t.configManager.GetTerminalConfig())
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(runCtx)}, t.programOpts...)
	program := tea.NewProgram(model, opts...)

	t.mu.Lock()
	t.program = program
	t.unsubscribe = t.configManager.Subscribe(t.onConfigChange)
	t.mu.Unlock()

	t.log.Info("Terminal started.")
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	t.log.Info("Terminal exited.")
	return nil
}

func (t *Terminal) onConfigChange(c *config.Config) {
	if err := t.logger.SetLevelStr(c.LogLevel); err != nil {
		t.log.Warn("Ignoring invalid log level from config reload.", zap.String("level", c.LogLevel), zap.Error(err))
	}
	if program := t.currentProgram(); program != nil {
		program.Send(tui.ConfigMsg{Config: c.Terminal})
	}
}

func (t *Terminal) currentProgram() *tea.Program {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.program
}

// BeginShutdown asks the UI to quit; the program restores the screen on its way out.
func (t *Terminal) BeginShutdown(ctx context.Context) error {
	if program := t.currentProgram(); program != nil {
		program.Quit()
	}
	return nil
}

// Shutdown resources in reverse order of the Setup/Run
func (t *Terminal) Shutdown(ctx context.Context) error {
	var errs error

	t.mu.Lock()
	program, unsubscribe := t.program, t.unsubscribe
	t.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if program != nil {
		exited := make(chan struct{})
		go func() {
			program.Wait()
			close(exited)
		}()
		select {
		case <-exited:
		case <-ctx.Done():
			errs = errors.Join(errs, fmt.Errorf("wait for terminal ui: %w", ctx.Err()))
		}
	}
	if t.configManager != nil {
		if err := t.configManager.Close(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("close config manager: %w", err))
		}
	}
	// Sync throws an error when logging to console (sync is for buffered file logging)
	// `sync /dev/stderr: inappropriate ioctl for device`
	// https://github.com/uber-go/zap/issues/880
	// https://github.com/uber-go/zap/issues/991#issuecomment-962098428
	if err := t.log.Sync(); err != nil && !errors.Is(err, syscall.ENOTTY) {
		errs = errors.Join(errs, fmt.Errorf("sync logger: %w", err))
	}
	return errs
}

func (t *Terminal) ForceShutdown(ctx context.Context) error {
	if program := t.currentProgram(); program != nil {
		program.Kill()
	}
	return nil
}

// Close releases the log file. Nothing may log afterwards.
func (t *Terminal) Close() {
	t.logger.Close()
}

func (t *Terminal) Logger() *zap.Logger {
	return t.log
}

func (t *Terminal) SessionID() string {
	return t.sessionID
}

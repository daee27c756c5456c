package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"ghostterm.arpa/term/output"
	"ghostterm.arpa/term/proxy"
	"ghostterm.arpa/term/tui"
)

// Editors tend to emit several events per save; reloads are spaced at least
// this far apart.
const reloadInterval = 250 * time.Millisecond

// ConfigProvider provides access to live configuration with hot-reload support
type ConfigProvider interface {
	GetConfig() *Config
	GetTerminalConfig() tui.Config
	Subscribe(callback func(*Config)) func() // Returns unsubscribe function
	Close() error
}

// CLIOverrides holds values explicitly set via CLI flags or their env vars
type CLIOverrides struct {
	LogLevel    *string
	LogFile     *string
	Environment *string
	ConfigFile  *string
	NoColor     *bool

	RevealInterval *time.Duration
	ResponseDelay  *time.Duration
	ConnectDelay   *time.Duration
	ClockInterval  *time.Duration
}

// ConfigManager manages unified configuration with hot-reload support
type ConfigManager struct {
	log          *zap.Logger
	cliOverrides *CLIOverrides
	buildOpts    BuildOpts

	// Hot-reloadable file config
	fileConfig atomic.Pointer[FileConfig]

	// Merged config cache
	mergedConfig atomic.Pointer[Config]

	// File watching
	watcher       *fsnotify.Watcher
	configPath    string
	reloadLimiter *rate.Limiter

	// Subscribers for config changes
	subscribers []func(*Config)
	subsMutex   sync.RWMutex

	// Control
	ctx    context.Context
	cancel context.CancelFunc
}

// NewConfigManager creates a new configuration manager. Without a config path
// it only merges CLI overrides with defaults and never reloads.
func NewConfigManager(log *zap.Logger, buildOpts BuildOpts, cliOverrides *CLIOverrides, configPath string) (*ConfigManager, error) {
	ctx, cancel := context.WithCancel(context.Background())

	if cliOverrides == nil {
		cliOverrides = &CLIOverrides{}
	}

	cm := &ConfigManager{
		log:           log,
		cliOverrides:  cliOverrides,
		buildOpts:     buildOpts,
		reloadLimiter: rate.NewLimiter(rate.Every(reloadInterval), 1),
		ctx:           ctx,
		cancel:        cancel,
	}

	if configPath != "" {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("get absolute path: %w", err)
		}
		cm.configPath = absPath
	}

	if err := cm.loadFileConfig(); err != nil {
		if cm.configPath != "" {
			log.Warn("Failed to load initial config file, using defaults",
				zap.String("path", cm.configPath),
				zap.Error(err))
		}
		cm.fileConfig.Store(&FileConfig{}) // Empty config as fallback
	}

	if err := cm.rebuildMergedConfig(); err != nil {
		_ = cm.Close()
		return nil, fmt.Errorf("failed to build initial config: %w", err)
	}

	if cm.configPath != "" {
		if err := cm.startWatching(); err != nil {
			log.Warn("Failed to watch config file",
				zap.String("path", cm.configPath),
				zap.Error(err))
		}
	}

	return cm, nil
}

// Load reads and merges the configuration once, without watching the file.
// Unlike the manager it fails on an unreadable config file.
func Load(buildOpts BuildOpts, cliOverrides *CLIOverrides, configPath string) (Config, error) {
	if cliOverrides == nil {
		cliOverrides = &CLIOverrides{}
	}
	cm := &ConfigManager{cliOverrides: cliOverrides, buildOpts: buildOpts}

	fileConfig := &FileConfig{}
	if configPath != "" {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return Config{}, fmt.Errorf("get absolute path: %w", err)
		}
		if err := ReadConfig(absPath, fileConfig); err != nil {
			return Config{}, err
		}
		cm.configPath = absPath
	}

	return newConfig(cm.mergeConfigs(fileConfig))
}

// loadFileConfig loads configuration from file
func (cm *ConfigManager) loadFileConfig() error {
	if cm.configPath == "" {
		return fmt.Errorf("no config file path specified")
	}

	var fileConfig FileConfig
	err := ReadConfig(cm.configPath, &fileConfig)
	if err != nil {
		return err
	}

	cm.fileConfig.Store(&fileConfig)
	cm.log.Debug("Loaded configuration from file", zap.String("path", cm.configPath))
	return nil
}

// rebuildMergedConfig merges CLI overrides with file config
func (cm *ConfigManager) rebuildMergedConfig() error {
	fileConfig := cm.fileConfig.Load()
	if fileConfig == nil {
		fileConfig = &FileConfig{}
	}

	opts := cm.mergeConfigs(fileConfig)

	config, err := newConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to build merged config: %w", err)
	}

	cm.mergedConfig.Store(&config)
	cm.log.Debug("Rebuilt merged configuration")
	return nil
}

// mergeConfigs merges file config with CLI overrides, giving precedence to CLI
func (cm *ConfigManager) mergeConfigs(fileConfig *FileConfig) configOpts {
	opts := configOpts{
		Version:    cm.buildOpts.BuildVersion,
		BuildTime:  cm.buildOpts.BuildTime,
		ConfigFile: cm.configPath,
	}

	o := cm.cliOverrides
	opts.LogLevel = stringWithFileAndOverride(fileConfig.LogLevel, "info", o.LogLevel)
	opts.LogFile = stringWithOverride("", o.LogFile)
	opts.Environment = stringWithOverride(
		Default(cm.buildOpts.BuildEnvironment, EnvironmentDevelopment.String()), o.Environment)
	opts.NoColor = boolWithOverride(false, o.NoColor)

	terminal := fileConfig.Terminal
	opts.RevealInterval = durationWithFileAndOverride(
		terminal.RevealInterval, output.DefaultRevealInterval, o.RevealInterval)
	opts.ResponseDelay = durationWithFileAndOverride(
		terminal.ResponseDelay, tui.DefaultResponseDelay, o.ResponseDelay)
	opts.ConnectDelay = durationWithFileAndOverride(
		terminal.ConnectDelay, proxy.DefaultConnectDelay, o.ConnectDelay)
	opts.ClockInterval = durationWithFileAndOverride(
		terminal.ClockInterval, tui.DefaultClockInterval, o.ClockInterval)

	return opts
}

// startWatching starts watching the config file for changes
func (cm *ConfigManager) startWatching() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	cm.watcher = watcher

	// Watch the directory so editors that replace the file are noticed
	configDir := filepath.Dir(cm.configPath)
	if err := cm.watcher.Add(configDir); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	go cm.watchLoop()

	cm.log.Info("Started watching config file", zap.String("path", cm.configPath))
	return nil
}

// watchLoop processes file system events
func (cm *ConfigManager) watchLoop() {
	for {
		select {
		case <-cm.ctx.Done():
			return

		case event, ok := <-cm.watcher.Events:
			if !ok {
				return
			}

			// Only process events for our config file
			if event.Name != cm.configPath {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				cm.handleConfigChange()
			}

		case err, ok := <-cm.watcher.Errors:
			if !ok {
				return
			}
			cm.log.Error("Config file watcher error", zap.Error(err))
		}
	}
}

// handleConfigChange reloads config when file changes
func (cm *ConfigManager) handleConfigChange() {
	if err := cm.reloadLimiter.Wait(cm.ctx); err != nil {
		return
	}

	cm.log.Info("Config file changed, reloading", zap.String("path", cm.configPath))

	if err := cm.loadFileConfig(); err != nil {
		cm.log.Error("Failed to reload config file",
			zap.String("path", cm.configPath),
			zap.Error(err))
		return
	}

	if err := cm.rebuildMergedConfig(); err != nil {
		cm.log.Error("Failed to rebuild merged config", zap.Error(err))
		return
	}

	config := cm.mergedConfig.Load()
	if config != nil {
		cm.notifySubscribers(config)
	}

	cm.log.Info("Configuration reloaded successfully")
}

// notifySubscribers notifies all subscribers of config changes
func (cm *ConfigManager) notifySubscribers(config *Config) {
	cm.subsMutex.RLock()
	defer cm.subsMutex.RUnlock()

	for _, callback := range cm.subscribers {
		if callback == nil {
			continue
		}
		// Run callbacks in goroutines to avoid blocking
		go func(cb func(*Config)) {
			defer func() {
				if r := recover(); r != nil {
					cm.log.Error("Config subscriber callback panicked",
						zap.Any("panic", r))
				}
			}()
			cb(config)
		}(callback)
	}
}

func (cm *ConfigManager) GetConfig() *Config {
	return cm.mergedConfig.Load()
}

func (cm *ConfigManager) GetTerminalConfig() tui.Config {
	config := cm.GetConfig()
	if config == nil {
		return tui.DefaultConfig()
	}
	return config.Terminal
}

func (cm *ConfigManager) Subscribe(callback func(*Config)) func() {
	cm.subsMutex.Lock()
	defer cm.subsMutex.Unlock()

	cm.subscribers = append(cm.subscribers, callback)
	index := len(cm.subscribers) - 1

	// Return unsubscribe function
	return func() {
		cm.subsMutex.Lock()
		defer cm.subsMutex.Unlock()

		// Remove callback by setting to nil (avoid slice reshuffling)
		if index < len(cm.subscribers) {
			cm.subscribers[index] = nil
		}
	}
}

func (cm *ConfigManager) Close() error {
	cm.cancel()

	if cm.watcher != nil {
		return cm.watcher.Close()
	}
	return nil
}

// ExtractCLIOverrides extracts CLI overrides from urfave/cli command
func ExtractCLIOverrides(cmd *cli.Command) *CLIOverrides {
	overrides := &CLIOverrides{}

	// String flags carry no default, so any value came from a flag, env var
	// or the config file source.
	if val := cmd.String("log-level"); val != "" {
		overrides.LogLevel = &val
	}
	if val := cmd.String("log-file"); val != "" {
		overrides.LogFile = &val
	}
	if val := cmd.String("env"); val != "" {
		overrides.Environment = &val
	}
	if val := cmd.String("config-file"); val != "" {
		overrides.ConfigFile = &val
	}
	if cmd.IsSet("no-color") {
		val := cmd.Bool("no-color")
		overrides.NoColor = &val
	}
	if cmd.IsSet("reveal-interval") {
		val := cmd.Duration("reveal-interval")
		overrides.RevealInterval = &val
	}
	if cmd.IsSet("response-delay") {
		val := cmd.Duration("response-delay")
		overrides.ResponseDelay = &val
	}
	if cmd.IsSet("connect-delay") {
		val := cmd.Duration("connect-delay")
		overrides.ConnectDelay = &val
	}
	if cmd.IsSet("clock-interval") {
		val := cmd.Duration("clock-interval")
		overrides.ClockInterval = &val
	}

	return overrides
}

// Helper functions for configuration merging

func stringWithOverride(defaultValue string, override *string) string {
	if override != nil {
		return *override
	}
	return defaultValue
}

func stringWithFileAndOverride(fileValue *string, defaultValue string, override *string) string {
	if override != nil {
		return *override
	}
	if fileValue != nil {
		return *fileValue
	}
	return defaultValue
}

func boolWithOverride(defaultValue bool, override *bool) bool {
	if override != nil {
		return *override
	}
	return defaultValue
}

func durationWithFileAndOverride(fileValue *time.Duration, defaultValue time.Duration, override *time.Duration) time.Duration {
	// CLI override takes highest precedence
	if override != nil {
		return *override
	}
	// File value takes precedence over default
	if fileValue != nil {
		return *fileValue
	}
	return defaultValue
}

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"ghostterm.arpa/term"
	"ghostterm.arpa/term/config"
)

var (
	buildVersion     string
	buildTime        string
	buildEnvironment string

	// https://victoriametrics.com/blog/go-graceful-shutdown/
	terminationGracePeriod = 5 * time.Second
	terminationHardPeriod  = 1 * time.Second
)

func main() {
	if err := run(context.Background(), os.Args); err != nil {
		panic(err)
	}
}

func run(rootCtx context.Context, args []string) error {
	rootCtx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	opts := config.BuildOpts{
		BuildVersion:     config.Default(buildVersion, "dev"),
		BuildTime:        buildTime,
		BuildEnvironment: buildEnvironment,
	}

	t := term.NewTerminal(opts)
	defer t.Close()
	// Flags/commands are parsed after Run
	start, cmd := term.NewCommandRoot(t)
	if err := cmd.Run(rootCtx, args); err != nil {
		return errors.Join(err, t.Shutdown(rootCtx))
	}

	if start == nil || !*start {
		return t.Shutdown(rootCtx)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	uiErr := make(chan error, 1)
	go func() {
		err := t.Run(runCtx)
		uiErr <- err
	}()

	log := t.Logger()
	select {
	case <-rootCtx.Done():
		log.Info("Received shutdown signal, beginning graceful shutdown.")
	case err := <-uiErr:
		if err != nil {
			log.Error("Terminal UI failed.", zap.Error(err))
		}
	}
	stop()
	if err := t.BeginShutdown(runCtx); err != nil {
		log.Error("Error during begin shutdown.", zap.Error(err))
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), terminationGracePeriod)
	defer shutdownCancel()
	log.Info("Shutting down.")
	err := t.Shutdown(shutdownCtx)
	runCancel()
	if err != nil {
		log.Error("Error during shutdown.", zap.Error(err))
		if err := sleepContext(shutdownCtx, terminationHardPeriod); err != nil { // Give time for shutdown to complete
			log.Error("Error during shutdown wait.", zap.Error(err))
		}
	}
	log.Info("Force shutting down terminal if still running.")
	if err := t.ForceShutdown(shutdownCtx); err != nil {
		log.Error("Error during force shutdown.", zap.Error(err))
	}
	log.Info("Shutdown complete.")
	return nil
}

func sleepContext(ctx context.Context, duration time.Duration) error {
	select {
	case <-time.After(duration):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

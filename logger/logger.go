package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

type LoggerOpts struct {
	Level        string
	IsProduction bool
	JSONConsole  bool   // Whether to use JSON encoding for the console output
	NoConsole    bool   // Never write to stdout, e.g. while a full-screen UI owns it
	File         string // Optional file receiving JSON records
}

// Use zap WrapCore if interface is required.
// The returned close func releases the log file, if any, and is never nil.
func NewZapLogger(opts LoggerOpts) (*zap.Logger, zap.AtomicLevel, func(), error) {
	noop := func() {}
	if opts.Level == "none" {
		return zap.NewNop(), zap.NewAtomicLevel(), noop, nil
	}
	level, err := zap.ParseAtomicLevel(opts.Level)
	if err != nil {
		return nil, level, noop, err
	}
	var ecfg zapcore.EncoderConfig
	if opts.IsProduction {
		ecfg = zap.NewProductionEncoderConfig()
	} else {
		ecfg = zap.NewDevelopmentEncoderConfig()
	}
	ecfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core
	if !opts.NoConsole {
		if opts.JSONConsole {
			if consoleCore := maybeConsoleJSONEncoder(ecfg, level); consoleCore != nil {
				cores = append(cores, consoleCore)
			}
		} else {
			if consoleCore := maybeConsoleEncoder(ecfg, level); consoleCore != nil {
				cores = append(cores, consoleCore)
			}
		}
	}

	closeFile := noop
	if opts.File != "" {
		fileCore, closer, err := fileJSONEncoder(opts.File, ecfg, level)
		if err != nil {
			return nil, level, noop, err
		}
		cores = append(cores, fileCore)
		closeFile = closer
	}

	core := zapcore.NewTee(cores...)
	return zap.New(core), level, closeFile, nil
}

// Core to write pretty output to the console
func maybeConsoleEncoder(ecfg zapcore.EncoderConfig, level zap.AtomicLevel) zapcore.Core {
	if !isTTY() {
		return nil
	}
	ecfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(ecfg)
	return zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), level)
}

// Core to write only JSON to the console
func maybeConsoleJSONEncoder(ecfg zapcore.EncoderConfig, level zap.AtomicLevel) zapcore.Core {
	if !isTTY() {
		return nil
	}
	consoleEncoder := zapcore.NewJSONEncoder(ecfg)
	return zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), level)
}

// Core appending JSON records to a file
func fileJSONEncoder(path string, ecfg zapcore.EncoderConfig, level zap.AtomicLevel) (zapcore.Core, func(), error) {
	sink, closer, err := zap.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return zapcore.NewCore(zapcore.NewJSONEncoder(ecfg), sink, level), closer, nil
}

type Logger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
	close  func()
}

// New wrapped Zap logger.
func NewLogger(opts LoggerOpts) (Logger, error) {
	logger, level, closer, err := NewZapLogger(opts)
	return Logger{logger, level, closer}, err
}

func NewNoopLogger() Logger {
	return Logger{logger: zap.NewNop(), level: zap.NewAtomicLevel(), close: func() {}}
}

// Return usable Zap logger.
func (l Logger) Get() *zap.Logger {
	return l.logger
}

// Change the log level at runtime
func (l Logger) SetLevel(level zapcore.Level) {
	l.level.SetLevel(level)
}

// Change the log level at runtime
func (l Logger) SetLevelStr(input string) error {
	level, err := zap.ParseAtomicLevel(input)
	if err != nil {
		return err
	}
	l.level.SetLevel(level.Level())
	return nil
}

// Release the log file. Safe to call on a noop logger.
func (l Logger) Close() {
	if l.close != nil {
		l.close()
	}
}

func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

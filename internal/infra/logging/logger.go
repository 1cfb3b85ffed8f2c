package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

type (
	Logger  = *slog.Logger
	Handler = slog.Handler
	Level   = slog.Level
)

// LoggerConfig holds configuration parameters for logging.
type LoggerConfig struct {
	// Output is "stdout", "stderr", "discard" or a file path
	Output string `env:"OUTPUT" default:"stderr"`

	// Level is the minimum level ("debug", "info", "warn", "error")
	Level string `env:"LEVEL" default:"warn"`

	// Filter holds per-package overrides ("svc.atssvc:debug,infra.transport:error")
	Filter string `env:"FILTER" default:""`

	// JSON switches from console output to JSON lines
	JSON bool `env:"JSON" default:"false"`

	// Source adds the caller location to every record
	Source bool `env:"SOURCE" default:"false"`

	// OutputHandle overrides Output when set
	OutputHandle io.Writer
}

//nolint:gochecknoglobals
var (
	Group = slog.Group

	state struct {
		sync.Mutex

		cfg     LoggerConfig
		appName string
		out     io.Writer
	}
)

// Configure sets the process-wide logging configuration. Loggers obtained
// before the call keep their previous configuration.
func Configure(ctx context.Context, cfg LoggerConfig, appName string) {
	out := openOutput(cfg)

	state.Lock()
	state.cfg = cfg
	state.appName = appName
	state.out = out
	state.Unlock()

	slog.SetDefault(GetLogger("default"))

	GetLogger("infra.logging").DebugContext(ctx, "logging configured", Group("config",
		"app", appName,
		"output", cfg.Output,
		"level", cfg.Level,
		"filter", cfg.Filter,
		"json", cfg.JSON,
	))
}

func openOutput(cfg LoggerConfig) io.Writer {
	if cfg.OutputHandle != nil {
		return cfg.OutputHandle
	}

	switch cfg.Output {
	case "", "discard":
		return io.Discard
	case "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	}

	file, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		panic(fmt.Errorf("open log file: %w", err))
	}

	return file
}

// GetLogger returns a logger tagged with name. Names are dotted package paths
// relative to internal/ and drive the Filter overrides.
func GetLogger(name string) Logger {
	state.Lock()
	cfg, appName, out := state.cfg, state.appName, state.out
	state.Unlock()

	if out == nil || out == io.Discard {
		return Nop()
	}

	level := cfg.levelFor(name)

	var handler Handler

	if cfg.JSON {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{
			AddSource: cfg.Source,
			Level:     level,
		})
	} else {
		handler = NewConsoleHandler(out, level, cfg.Source)
	}

	logger := slog.New(NewContextHandler(handler))

	if appName != "" {
		logger = logger.With("app", appName)
	}

	return logger.With(loggerKey, name)
}

// Nop returns a logger that drops every record.
func Nop() Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// ParseLevel parses a level name, returning fallback for unknown input.
func ParseLevel(s string, fallback Level) Level {
	var level Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return fallback
	}

	return level
}

// levelFor resolves the minimum level of the named logger. The longest
// matching Filter entry wins: "svc.atssvc" applies to "svc.atssvc.jobs_api".
func (cfg LoggerConfig) levelFor(name string) Level {
	overrides := make(map[string]Level)

	for _, entry := range strings.Split(cfg.Filter, ",") {
		pkg, lvl, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok {
			continue
		}

		overrides[pkg] = ParseLevel(lvl, LevelDebug)
	}

	for key := name; key != ""; {
		if level, ok := overrides[key]; ok {
			return level
		}

		idx := strings.LastIndex(key, ".")
		if idx < 0 {
			break
		}

		key = key[:idx]
	}

	return ParseLevel(cfg.Level, LevelWarn)
}

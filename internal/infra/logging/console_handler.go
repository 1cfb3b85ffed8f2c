package logging

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

const loggerKey = "logger"

const (
	ansiReset     = "\033[0m"
	ansiRed       = "\033[31m"
	ansiGreen     = "\033[32m"
	ansiYellow    = "\033[33m"
	ansiCyan      = "\033[36m"
	ansiGray      = "\033[90m"
	ansiBold      = "\033[1m"
	ansiUnderline = "\033[4m"
)

//nolint:gochecknoglobals
var levelColors = map[slog.Level]string{
	slog.LevelDebug: ansiCyan,
	slog.LevelInfo:  ansiGreen,
	slog.LevelWarn:  ansiYellow,
	slog.LevelError: ansiRed,
}

// ConsoleHandler writes colored, human-readable records for interactive use.
type ConsoleHandler struct {
	// Output receives one line per record (plus a caller line when Source is set)
	Output io.Writer
	// Level is the minimum level of records to write
	Level slog.Leveler
	// Source appends the caller location
	Source bool

	mu     *sync.Mutex
	name   string
	attrs  []slog.Attr
	groups []string
}

var _ slog.Handler = (*ConsoleHandler)(nil)

// NewConsoleHandler creates a ConsoleHandler writing to out.
func NewConsoleHandler(out io.Writer, level slog.Leveler, source bool) *ConsoleHandler {
	return &ConsoleHandler{
		Output: out,
		Level:  level,
		Source: source,
		mu:     new(sync.Mutex),
	}
}

// Handle implements slog.Handler.
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	b.WriteString(ansiGray + r.Time.Format("15:04:05.000") + ansiReset)
	b.WriteString(" " + levelColors[r.Level] + r.Level.String() + ansiReset)

	if h.name != "" {
		b.WriteString(" " + ansiBold + h.name + ansiReset)
	}

	b.WriteString(" " + r.Message)

	prefix := ""
	if len(h.groups) > 0 {
		prefix = strings.Join(h.groups, ".") + "."
	}

	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)

		return true
	})

	writeAttrs(&b, prefix, attrs)

	if h.Source && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		b.WriteString("\n  -> " + ansiUnderline + frame.File + ":" + strconv.Itoa(frame.Line) + ansiReset)
	}

	b.WriteByte('\n')

	if h.mu != nil {
		h.mu.Lock()
		defer h.mu.Unlock()
	}

	_, err := io.WriteString(h.Output, b.String())

	return err //nolint:wrapcheck
}

func writeAttrs(b *strings.Builder, prefix string, attrs []slog.Attr) {
	for _, attr := range attrs {
		if attr.Equal(slog.Attr{}) {
			continue
		}

		if attr.Value.Kind() == slog.KindGroup {
			writeAttrs(b, prefix+attr.Key+".", attr.Value.Group())

			continue
		}

		b.WriteString(" " + prefix + attr.Key + "=" + ansiGray + attr.Value.String() + ansiReset)
	}
}

// WithAttrs implements slog.Handler. The logger name is lifted out of the
// attribute list and printed after the level.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) Handler {
	clone := h.clone()

	for _, attr := range attrs {
		if attr.Key == loggerKey && len(h.groups) == 0 {
			clone.name = attr.Value.String()

			continue
		}

		clone.attrs = append(clone.attrs, attr)
	}

	return clone
}

// WithGroup implements slog.Handler.
func (h *ConsoleHandler) WithGroup(name string) Handler {
	clone := h.clone()
	clone.groups = append(clone.groups, name)

	return clone
}

// Enabled implements slog.Handler.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.Level == nil || h.Level.Level() <= level
}

func (h *ConsoleHandler) clone() *ConsoleHandler {
	return &ConsoleHandler{
		Output: h.Output,
		Level:  h.Level,
		Source: h.Source,
		mu:     h.mu,
		name:   h.name,
		attrs:  append([]slog.Attr(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
	}
}

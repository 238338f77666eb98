package logger

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
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	BgRed   = "\033[41m"
)

type RichLoggerOptions struct {
	Output       io.Writer
	TimeFormat   string
	Level        slog.Level
	EnableColors bool
	ShowTime     bool
}

func DefaultOptions() *RichLoggerOptions {
	return &RichLoggerOptions{
		Level:        slog.LevelInfo,
		EnableColors: true,
		ShowTime:     true,
		TimeFormat:   "15:04:05",
		Output:       os.Stdout,
	}
}

// RichHandler is a slog.Handler that writes colorized single-line text
// records. Attributes and groups are accepted but not rendered; the console
// methods carry everything in the message.
type RichHandler struct {
	opts  *RichLoggerOptions
	mu    sync.Mutex
	attrs []slog.Attr
}

func NewRichHandler(opts *RichLoggerOptions) *RichHandler {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &RichHandler{opts: opts}
}

func (h *RichHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level
}

func (h *RichHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := &RichHandler{opts: h.opts}
	h2.attrs = append(h2.attrs, h.attrs...)
	h2.attrs = append(h2.attrs, attrs...)
	return h2
}

func (h *RichHandler) WithGroup(string) slog.Handler {
	return &RichHandler{opts: h.opts, attrs: h.attrs}
}

func (h *RichHandler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var builder strings.Builder

	levelColors := map[slog.Level]string{
		slog.LevelDebug: Cyan,
		slog.LevelInfo:  Green,
		slog.LevelWarn:  Yellow,
		slog.LevelError: Red,
	}

	if h.opts.ShowTime {
		timeStr := record.Time.Format(h.opts.TimeFormat)
		if h.opts.EnableColors {
			builder.WriteString(Blue + timeStr + Reset)
		} else {
			builder.WriteString(timeStr)
		}
		builder.WriteString(" ")
	}

	levelStr := fmt.Sprintf("%-5s", strings.ToUpper(record.Level.String()))
	if h.opts.EnableColors {
		builder.WriteString(levelColors[record.Level] + Bold + levelStr + Reset)
	} else {
		builder.WriteString(levelStr)
	}
	builder.WriteString(" ")

	builder.WriteString(record.Message)

	_, err := fmt.Fprintln(h.opts.Output, builder.String())
	return err
}

func NewRichLogger(opts *RichLoggerOptions) *slog.Logger {
	return slog.New(NewRichHandler(opts))
}

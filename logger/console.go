package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Console is the user-facing output surface: glyph-prefixed status lines
// through a slog logger, plus rules, boxes and tables printed directly.
type Console struct {
	Logger    *slog.Logger
	out       io.Writer
	Colorized bool
}

func NewConsole(opts *RichLoggerOptions) *Console {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Console{
		Logger:    NewRichLogger(opts),
		out:       opts.Output,
		Colorized: opts.EnableColors,
	}
}

func (c *Console) StartTimer(name string) *Timer {
	return &Timer{
		Name:      name,
		StartTime: time.Now(),
		Console:   c,
	}
}

func (c *Console) Success(format string, args ...interface{}) {
	msg := "✓ " + fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = Green + Bold + msg + Reset
	}
	c.Logger.Info(msg)
}

func (c *Console) Info(format string, args ...interface{}) {
	msg := "ℹ " + fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = Blue + Bold + msg + Reset
	}
	c.Logger.Info(msg)
}

func (c *Console) Log(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = White + msg + Reset
	}
	c.Logger.Info(msg)
}

func (c *Console) Warn(format string, args ...interface{}) {
	msg := "⚠ " + fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = Yellow + Bold + msg + Reset
	}
	c.Logger.Warn(msg)
}

func (c *Console) Error(format string, args ...interface{}) {
	msg := "✖ " + fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = Red + Bold + msg + Reset
	}
	c.Logger.Error(msg)
}

func (c *Console) Fatal(format string, args ...interface{}) {
	msg := "💀 " + fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = BgRed + White + Bold + msg + Reset
	}
	c.Logger.Error(msg)
	os.Exit(1)
}

// Rule prints a horizontal separator line.
func (c *Console) Rule() {
	line := strings.Repeat("─", 50)
	if c.Colorized {
		line = Blue + line + Reset
	}
	fmt.Fprintln(c.out, line)
}

func (c *Console) NewTable(headers []string) *Table {
	return NewTable(headers, c.out)
}

func (c *Console) Box(title string, content string) {
	lines := strings.Split(content, "\n")
	maxWidth := len(title)

	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}

	maxWidth += 4

	fmt.Fprintln(c.out, "┌"+"─"+title+"─"+strings.Repeat("─", maxWidth-len(title)-2)+"┐")

	for _, line := range lines {
		fmt.Fprintln(c.out, "│ "+line+strings.Repeat(" ", maxWidth-len(line))+" │")
	}

	fmt.Fprintln(c.out, "└"+strings.Repeat("─", maxWidth+2)+"┘")
}

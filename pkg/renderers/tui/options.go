package tui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

// OutputFormat controls how a rendered joke is serialized for one-shot runs.
type OutputFormat string

const (
	// OutputFormatJSON emits the response as indented JSON.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatPrettyText emits setup, punchline, and explanation as text.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Theme captures message prefixes and whether to color them.
type Theme struct {
	BusyPrefix  string
	ResultLabel string
	ErrorPrefix string
	InfoPrefix  string
	Color       bool
}

// DefaultTheme returns the stock prefixes, colored when out is a terminal.
func DefaultTheme(out io.Writer) Theme {
	return Theme{
		BusyPrefix:  "…",
		ResultLabel: "»",
		ErrorPrefix: "!",
		InfoPrefix:  "i",
		Color:       isTerminal(out),
	}
}

func (t Theme) busy(msg string) string {
	return t.paint(t.BusyPrefix, "yellow+b") + " " + msg
}

func (t Theme) result(msg string) string {
	return t.paint(t.ResultLabel, "green+b") + " " + msg
}

func (t Theme) notice(msg string, isError bool) string {
	if isError {
		return t.paint(t.ErrorPrefix, "red+b") + " " + msg
	}
	return t.paint(t.InfoPrefix, "cyan+b") + " " + msg
}

func (t Theme) paint(prefix, style string) string {
	if prefix == "" || !t.Color {
		return prefix
	}
	return ansi.Color(prefix, style)
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Option configures the terminal view.
type Option func(*View)

// WithPromptDriver overrides the prompt driver used by the view.
func WithPromptDriver(driver PromptDriver) Option {
	return func(v *View) {
		if driver != nil {
			v.driver = driver
		}
	}
}

// WithOutput sets the writer used by the default survey driver.
func WithOutput(out io.Writer) Option {
	return func(v *View) {
		if out != nil {
			v.out = out
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(v *View) {
		v.theme = theme
		v.themeSet = true
	}
}

// WithBlockingNotify makes Notify wait for acknowledgement. Interactive
// sessions enable it; one-shot commands print and continue.
func WithBlockingNotify(blocking bool) Option {
	return func(v *View) {
		v.blocking = blocking
	}
}

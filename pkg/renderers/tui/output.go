package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-jokeform/pkg/form"
	"github.com/goliatone/go-jokeform/pkg/joke"
)

// Format serializes a rendered joke for one-shot output.
func Format(resp joke.Response, format OutputFormat) ([]byte, error) {
	switch format {
	case OutputFormatJSON:
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("tui: encode json: %w", err)
		}
		return append(out, '\n'), nil
	case OutputFormatPrettyText, "":
		var b strings.Builder
		b.WriteString(form.ClipboardText(resp.Setup, resp.Punchline))
		b.WriteString("\n")
		if resp.HasExplanation() {
			b.WriteString("\n")
			b.WriteString(form.ExplanationPrefix)
			b.WriteString(resp.Explanation)
			b.WriteString("\n")
		}
		return []byte(b.String()), nil
	default:
		return nil, fmt.Errorf("tui: unsupported output format %q", format)
	}
}

// ParseOutputFormat maps a flag value onto an OutputFormat.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", OutputFormatPrettyText:
		return OutputFormatPrettyText, nil
	case OutputFormatJSON:
		return OutputFormatJSON, nil
	default:
		return "", fmt.Errorf("tui: unsupported output format %q", raw)
	}
}

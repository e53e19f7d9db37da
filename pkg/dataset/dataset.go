// Package dataset reads and writes lists of joke requests used for batch
// submissions, and builds synthetic ones from fixed topic and tone lists.
package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-jokeform/pkg/joke"
)

// Format selects the dataset encoding for Write.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// Topics seeds synthetic datasets.
	Topics = []string{"Python", "JavaScript", "Docker", "Machine Learning", "Coffee", "Startups", "Debugging"}
	// Tones lists the tones offered by the default contract.
	Tones = []string{"witty", "sarcastic", "dad-joke", "dark", "silly"}
)

// Load reads a JSON or YAML dataset from path.
func Load(path string) ([]joke.Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	items, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	return items, nil
}

// Decode reads a list of requests. Input starting with '[' is read as JSON,
// anything else as YAML. Missing languages default to joke.Language.
func Decode(r io.Reader) ([]joke.Request, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("dataset: empty input")
	}

	var items []joke.Request
	if trimmed[0] == '[' {
		// yaml.v3 rejects JSON escapes such as \/ and surrogate pairs.
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("dataset: decode json: %w", err)
		}
	} else if err := yaml.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}
	for i := range items {
		if strings.TrimSpace(items[i].Language) == "" {
			items[i].Language = joke.Language
		}
	}
	return items, nil
}

// Write encodes items in the given format.
func Write(w io.Writer, items []joke.Request, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(items); err != nil {
			return fmt.Errorf("dataset: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(items); err != nil {
			return fmt.Errorf("dataset: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("dataset: unsupported format %q", format)
	}
}

// Synthetic builds n requests mixing Topics and Tones. rnd may be nil.
func Synthetic(n int, rnd *rand.Rand) []joke.Request {
	if n <= 0 {
		return nil
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}
	items := make([]joke.Request, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, joke.NewRequest(
			Topics[rnd.Intn(len(Topics))],
			Tones[rnd.Intn(len(Tones))],
		))
	}
	return items
}

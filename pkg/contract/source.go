package contract

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// SourceKind enumerates where a contract document can come from.
type SourceKind string

const (
	SourceKindFile     SourceKind = "file"
	SourceKindFS       SourceKind = "fs"
	SourceKindURL      SourceKind = "url"
	SourceKindEmbedded SourceKind = "embedded"
)

// Source identifies a contract document.
type Source interface {
	Kind() SourceKind
	Location() string
}

type source struct {
	kind     SourceKind
	location string
}

func (s source) Kind() SourceKind { return s.kind }
func (s source) Location() string { return s.location }

// SourceFromFile points at a document on disk.
func SourceFromFile(path string) Source {
	return source{kind: SourceKindFile, location: filepath.Clean(path)}
}

// SourceFromFS points at a document inside the loader's fs.FS.
func SourceFromFS(name string) Source {
	return source{kind: SourceKindFS, location: name}
}

// SourceFromURL validates raw and points at a remote document.
func SourceFromURL(raw string) (Source, error) {
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, fmt.Errorf("contract: invalid URL %q: %w", raw, err)
	}
	return source{kind: SourceKindURL, location: raw}, nil
}

// Embedded identifies the document compiled into the binary.
func Embedded() Source {
	return source{kind: SourceKindEmbedded, location: embeddedName}
}

// ParseSource maps a config value onto a Source. Empty selects the embedded
// contract; http(s) prefixes select a URL; anything else is a file path.
func ParseSource(raw string) (Source, error) {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return Embedded(), nil
	case strings.HasPrefix(trimmed, "http://"), strings.HasPrefix(trimmed, "https://"):
		return SourceFromURL(trimmed)
	default:
		return SourceFromFile(trimmed), nil
	}
}

package contract

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

const embeddedName = "openapi.yaml"

//go:embed openapi.yaml
var embeddedDocument []byte

// EmbeddedDocument returns a copy of the compiled-in contract.
func EmbeddedDocument() []byte {
	return append([]byte(nil), embeddedDocument...)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFileSystem resolves SourceKindFS locations against files.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(l *Loader) {
		l.fs = files
	}
}

// WithHTTP enables URL sources. A zero timeout leaves requests unbounded.
func WithHTTP(client *resty.Client, timeout time.Duration) LoaderOption {
	return func(l *Loader) {
		l.http = client
		l.timeout = timeout
	}
}

// Loader reads raw contract documents from files, an fs.FS, HTTP, or the
// embedded copy.
type Loader struct {
	fs      fs.FS
	http    *resty.Client
	timeout time.Duration
}

// NewLoader constructs a Loader. URL sources stay disabled unless WithHTTP is
// supplied.
func NewLoader(options ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load returns the raw bytes behind src.
func (l *Loader) Load(ctx context.Context, src Source) ([]byte, error) {
	if src == nil {
		return nil, errors.New("contract: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch src.Kind() {
	case SourceKindEmbedded:
		return EmbeddedDocument(), nil
	case SourceKindFile:
		data, err := os.ReadFile(src.Location())
		if err != nil {
			return nil, fmt.Errorf("contract: read %s: %w", src.Location(), err)
		}
		return data, nil
	case SourceKindFS:
		if l.fs == nil {
			return nil, errors.New("contract: filesystem is not configured")
		}
		data, err := fs.ReadFile(l.fs, src.Location())
		if err != nil {
			return nil, fmt.Errorf("contract: read %s: %w", src.Location(), err)
		}
		return data, nil
	case SourceKindURL:
		return l.loadHTTP(ctx, src.Location())
	default:
		return nil, fmt.Errorf("contract: unsupported source kind %q", src.Kind())
	}
}

func (l *Loader) loadHTTP(ctx context.Context, url string) ([]byte, error) {
	if l.http == nil {
		return nil, ErrHTTPDisabled
	}

	reqCtx := ctx
	if l.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	resp, err := l.http.R().SetContext(reqCtx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("contract: fetch %s: %w", url, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("contract: fetch %s: unexpected status %s", url, resp.Status())
	}
	return resp.Body(), nil
}

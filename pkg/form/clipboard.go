package form

import (
	"context"

	"github.com/atotto/clipboard"
)

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteText implements Clipboard.
func (SystemClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

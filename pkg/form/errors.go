package form

import "errors"

var (
	// ErrClipboardUnsupported signals no clipboard utility is available on
	// this system.
	ErrClipboardUnsupported = errors.New("form: clipboard unsupported")
	// ErrViewRequired is returned when a controller is built without a view.
	ErrViewRequired = errors.New("form: view is required")
	// ErrGeneratorRequired is returned when a controller is built without a
	// generator.
	ErrGeneratorRequired = errors.New("form: generator is required")
)

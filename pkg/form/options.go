package form

import "github.com/sirupsen/logrus"

// Option configures a Controller.
type Option func(*Controller)

// WithClipboard overrides the clipboard used by Copy.
func WithClipboard(cb Clipboard) Option {
	return func(c *Controller) {
		if cb != nil {
			c.clipboard = cb
		}
	}
}

// WithLogger routes controller diagnostics to logger. User-facing messages
// always go through View.Notify, never the logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

package form

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-jokeform/internal/logging"
	"github.com/goliatone/go-jokeform/pkg/joke"
)

const (
	// ExplanationPrefix precedes the explanation text in its display region.
	ExplanationPrefix = "Why it's funny: "
	// ErrorPrefix precedes every generation failure notification.
	ErrorPrefix = "Error: "
	// CopiedMessage confirms a successful clipboard write.
	CopiedMessage = "Copied to clipboard!"
)

// Controller drives submissions and clipboard copies against a View.
type Controller struct {
	view      View
	generator joke.Generator
	clipboard Clipboard
	logger    logrus.FieldLogger
}

// NewController wires a controller. The system clipboard is used unless
// WithClipboard overrides it.
func NewController(view View, generator joke.Generator, options ...Option) (*Controller, error) {
	if view == nil {
		return nil, ErrViewRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	c := &Controller{
		view:      view,
		generator: generator,
		clipboard: SystemClipboard{},
		logger:    logging.Discard(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// Submit runs one submission: it reads the fields, marks the view busy, asks
// the generator for a joke and renders it. Failures are reported through
// View.Notify and returned. The busy indicator is cleared on every path.
func (c *Controller) Submit(ctx context.Context) (joke.Response, error) {
	req := joke.NewRequest(c.view.ReadTopic(), c.view.ReadTone())

	c.view.SetBusy(true)
	defer c.view.SetBusy(false)
	c.view.HideResult()

	resp, err := c.generator.Generate(ctx, req)
	if err != nil {
		c.logger.WithError(err).WithField("topic", req.Topic).Debug("submission failed")
		c.view.Notify(ErrorPrefix + err.Error())
		return joke.Response{}, err
	}

	c.render(resp)
	return resp, nil
}

func (c *Controller) render(resp joke.Response) {
	c.view.SetSetup(resp.Setup)
	c.view.SetPunchline(resp.Punchline)

	if resp.HasExplanation() {
		c.view.SetExplanation(ExplanationPrefix + resp.Explanation)
	} else {
		c.view.HideExplanation()
	}

	c.view.ShowResult()
}

// Copy writes the displayed setup and punchline, separated by a blank line,
// to the clipboard and confirms through View.Notify. A failed write is not
// shown to the user; the error is returned to the caller.
func (c *Controller) Copy(ctx context.Context) error {
	text := ClipboardText(c.view.SetupText(), c.view.PunchlineText())

	if err := c.clipboard.WriteText(ctx, text); err != nil {
		c.logger.WithError(err).Debug("clipboard write failed")
		return err
	}

	c.view.Notify(CopiedMessage)
	return nil
}

// ClipboardText joins setup and punchline the way Copy writes them.
func ClipboardText(setup, punchline string) string {
	return setup + "\n\n" + punchline
}

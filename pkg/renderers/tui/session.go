package tui

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-jokeform/internal/logging"
	"github.com/goliatone/go-jokeform/pkg/contract"
	"github.com/goliatone/go-jokeform/pkg/form"
)

const (
	actionGenerate = "Generate a joke"
	actionCopy     = "Copy to clipboard"
	actionQuit     = "Quit"

	quitUncopiedMessage = "Quit without copying the joke?"
)

// Session runs the interactive menu loop over a View and Controller.
type Session struct {
	view   *View
	ctrl   *form.Controller
	def    contract.Form
	logger logrus.FieldLogger

	// uncopied is set when a rendered joke has not been copied yet.
	uncopied bool
}

// NewSession wires a session. def supplies the prompts used by Fill.
func NewSession(view *View, ctrl *form.Controller, def contract.Form, logger logrus.FieldLogger) (*Session, error) {
	if view == nil {
		return nil, form.ErrViewRequired
	}
	if ctrl == nil {
		return nil, ErrControllerRequired
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Session{view: view, ctrl: ctrl, def: def, logger: logger}, nil
}

// Run loops until the user quits or aborts. Failed submissions and copies are
// already surfaced (or deliberately not) by the controller, so the loop keeps
// going after them.
func (s *Session) Run(ctx context.Context) error {
	s.view.Bind(ctx)

	for {
		action, err := s.nextAction(ctx)
		if err != nil {
			if errors.Is(err, ErrAborted) {
				return nil
			}
			return err
		}

		switch action {
		case actionGenerate:
			if err := s.view.Fill(ctx, s.def); err != nil {
				if errors.Is(err, ErrAborted) {
					return nil
				}
				return err
			}
			if _, err := s.ctrl.Submit(ctx); err != nil {
				s.logger.WithError(err).Debug("interactive submission failed")
				s.uncopied = false
				continue
			}
			s.uncopied = true
		case actionCopy:
			if err := s.ctrl.Copy(ctx); err != nil {
				s.logger.WithError(err).Debug("interactive copy failed")
				continue
			}
			s.uncopied = false
		default:
			quit, err := s.confirmQuit(ctx)
			if err != nil {
				if errors.Is(err, ErrAborted) {
					return nil
				}
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// confirmQuit asks before leaving while a rendered joke is still uncopied.
func (s *Session) confirmQuit(ctx context.Context) (bool, error) {
	if !s.uncopied || !s.view.HasResult() {
		return true, nil
	}
	return s.view.driver.Confirm(ctx, ConfirmConfig{
		Message: quitUncopiedMessage,
		Default: false,
	})
}

func (s *Session) nextAction(ctx context.Context) (string, error) {
	options := []string{actionGenerate}
	if s.view.HasResult() {
		options = append(options, actionCopy)
	}
	options = append(options, actionQuit)

	idx, err := s.view.driver.Select(ctx, SelectConfig{
		Message:      "What next?",
		Options:      options,
		DefaultIndex: 0,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(options) {
		return actionQuit, nil
	}
	return options[idx], nil
}

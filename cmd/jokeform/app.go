package main

import (
	"context"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-jokeform/internal/config"
	"github.com/goliatone/go-jokeform/internal/logging"
	"github.com/goliatone/go-jokeform/pkg/contract"
	"github.com/goliatone/go-jokeform/pkg/form"
	"github.com/goliatone/go-jokeform/pkg/joke"
	"github.com/goliatone/go-jokeform/pkg/renderers/tui"
)

// app bundles the dependencies shared by every subcommand.
type app struct {
	cfg    config.Config
	logger *logrus.Logger
	client *joke.Client
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(config.Options{
		File:     configPath,
		EnvFiles: []string{".env"},
	})
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Log.Level, logging.Format(cfg.Log.Format), os.Stderr)

	client, err := joke.NewClient(cfg.BaseURL,
		joke.WithTimeout(cfg.Timeout),
		joke.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"base_url": cfg.BaseURL,
		"timeout":  cfg.Timeout,
	}).Debug("jokeform configured")

	return &app{cfg: cfg, logger: logger, client: client}, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = baseURL
	}
	if flags.Changed("timeout") {
		cfg.Timeout = timeout
	}
	if flags.Changed("contract") {
		cfg.Contract = contractAt
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if noColor {
		off := false
		cfg.Color = &off
	}
}

func (a *app) form(ctx context.Context) (contract.Form, error) {
	src, err := contract.ParseSource(a.cfg.Contract)
	if err != nil {
		return contract.Form{}, err
	}
	loader := contract.NewLoader(contract.WithHTTP(resty.New(), a.cfg.Timeout))
	return contract.Load(ctx, loader, src, contract.GenerateOperationID)
}

func (a *app) controller(view form.View) (*form.Controller, error) {
	return form.NewController(view, a.client, form.WithLogger(a.logger))
}

func (a *app) theme() tui.Theme {
	theme := tui.DefaultTheme(os.Stdout)
	if a.cfg.Color != nil {
		theme.Color = *a.cfg.Color
	}
	return theme
}

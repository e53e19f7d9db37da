package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-jokeform/pkg/renderers/tui"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Fill the joke form interactively",
	Args:  cobra.NoArgs,
	RunE:  runInteractive,
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	def, err := a.form(ctx)
	if err != nil {
		return err
	}

	view := tui.NewView(
		tui.WithTheme(a.theme()),
		tui.WithBlockingNotify(true),
	)
	ctrl, err := a.controller(view)
	if err != nil {
		return err
	}

	session, err := tui.NewSession(view, ctrl, def, a.logger)
	if err != nil {
		return err
	}
	return session.Run(ctx)
}

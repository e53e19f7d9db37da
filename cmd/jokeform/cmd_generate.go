package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-jokeform/pkg/form"
	"github.com/goliatone/go-jokeform/pkg/renderers/tui"
)

var (
	genTopic  string
	genTone   string
	genCopy   bool
	genFormat string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Submit the form once and print the joke",
	Long: `Submit a single topic and tone and print the result.

The topic is sent verbatim, even when empty. When --tone is omitted the
contract's default tone is used. With --copy the setup and punchline are
also written to the system clipboard.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genTopic, "topic", "t", "", "Joke topic")
	generateCmd.Flags().StringVar(&genTone, "tone", "", "Joke tone (default from contract)")
	generateCmd.Flags().BoolVar(&genCopy, "copy", false, "Copy the joke to the clipboard")
	generateCmd.Flags().StringVarP(&genFormat, "format", "f", "pretty", "Output format: pretty, json")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	format, err := tui.ParseOutputFormat(genFormat)
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	tone := genTone
	if !cmd.Flags().Changed("tone") {
		def, err := a.form(ctx)
		if err != nil {
			return err
		}
		if field, ok := def.Field("tone"); ok {
			tone = field.Default
		}
	}

	view := form.NewMemoryView(genTopic, tone)
	ctrl, err := a.controller(view)
	if err != nil {
		return err
	}

	resp, submitErr := ctrl.Submit(ctx)
	printNotifications(cmd.ErrOrStderr(), view)
	if submitErr != nil {
		return reportedError{err: submitErr}
	}

	out, err := tui.Format(resp, format)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return err
	}

	if genCopy {
		view.Reset()
		if err := ctrl.Copy(ctx); err != nil {
			a.logger.WithError(err).Debug("clipboard write failed")
		}
		printNotifications(cmd.ErrOrStderr(), view)
	}
	return nil
}

func printNotifications(w io.Writer, view *form.MemoryView) {
	for _, note := range view.Snapshot().Notifications {
		fmt.Fprintln(w, note)
	}
}

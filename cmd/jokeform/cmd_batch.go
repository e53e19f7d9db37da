package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-jokeform/pkg/dataset"
	"github.com/goliatone/go-jokeform/pkg/form"
	"github.com/goliatone/go-jokeform/pkg/renderers/tui"
)

var batchFormat string

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Submit every entry of a JSON or YAML dataset in order",
	Long: `Submit each {topic, tone} entry of a dataset, one at a time.

Entries are sent sequentially through a single form; a failed entry is
reported and the run continues. The command exits non-zero when any entry
failed. Dataset languages are ignored: every request asks for english.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "pretty", "Output format: pretty, json")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	format, err := tui.ParseOutputFormat(batchFormat)
	if err != nil {
		return err
	}

	items, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	view := form.NewMemoryView("", "")
	ctrl, err := a.controller(view)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}

		view.Reset()
		view.SetFields(item.Topic, item.Tone)
		fmt.Fprintf(out, "[%d/%d] %s (%s)\n", i+1, len(items), item.Topic, item.Tone)

		resp, err := ctrl.Submit(ctx)
		if err != nil {
			failed++
			printNotifications(cmd.ErrOrStderr(), view)
			continue
		}

		rendered, err := tui.Format(resp, format)
		if err != nil {
			return err
		}
		if _, err := out.Write(rendered); err != nil {
			return err
		}
	}

	a.logger.WithFields(logrus.Fields{
		"total":  len(items),
		"failed": failed,
	}).Info("batch finished")

	if failed > 0 {
		return reportedError{err: fmt.Errorf("%d of %d submissions failed", failed, len(items))}
	}
	return nil
}

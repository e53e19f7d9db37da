package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-jokeform/pkg/dataset"
)

var (
	datasetCount  int
	datasetFormat string
	datasetOutput string
	datasetSeed   int64
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Write a synthetic dataset of topic/tone pairs",
	Args:  cobra.NoArgs,
	RunE:  runDataset,
}

func init() {
	datasetCmd.Flags().IntVarP(&datasetCount, "count", "n", 50, "Number of entries")
	datasetCmd.Flags().StringVarP(&datasetFormat, "format", "f", "json", "Output format: json, yaml")
	datasetCmd.Flags().StringVarP(&datasetOutput, "output", "o", "", "Output file (stdout when empty)")
	datasetCmd.Flags().Int64Var(&datasetSeed, "seed", 0, "Random seed (0 picks one)")
}

func runDataset(cmd *cobra.Command, _ []string) error {
	if datasetCount <= 0 {
		return fmt.Errorf("count must be positive, got %d", datasetCount)
	}

	var rnd *rand.Rand
	if datasetSeed != 0 {
		rnd = rand.New(rand.NewSource(datasetSeed))
	}
	items := dataset.Synthetic(datasetCount, rnd)
	format := dataset.Format(strings.ToLower(strings.TrimSpace(datasetFormat)))

	if datasetOutput == "" {
		return dataset.Write(cmd.OutOrStdout(), items, format)
	}

	f, err := os.Create(datasetOutput)
	if err != nil {
		return fmt.Errorf("create %s: %w", datasetOutput, err)
	}
	if err := dataset.Write(f, items, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Generated %d entries in %s\n", len(items), datasetOutput)
	return nil
}

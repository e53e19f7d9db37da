package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the joke service is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		health, err := a.client.Ping(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", a.client.BaseURL(), health.Status, health.Service)
		if !health.OK() {
			return fmt.Errorf("service reported status %q", health.Status)
		}
		return nil
	},
}

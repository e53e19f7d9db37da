package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
)

var (
	configPath string
	baseURL    string
	timeout    time.Duration
	contractAt string
	logLevel   string
	logFormat  string
	noColor    bool
)

// rootCmd starts an interactive session when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "jokeform",
	Short: "Generate jokes from a topic and tone",
	Long: `jokeform collects a topic and a tone, submits them to a joke
generation service, and shows the setup, punchline, and optional
explanation it returns.

Without a subcommand it starts an interactive session.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runInteractive,
}

// reportedError marks failures already shown to the user.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default: ./jokeform.yaml when present)")
	flags.StringVar(&baseURL, "base-url", "", "Joke service base URL")
	flags.DurationVar(&timeout, "timeout", 0, "Request timeout (0 keeps the transport default)")
	flags.StringVar(&contractAt, "contract", "", "OpenAPI contract path or URL (default: embedded)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "", "Log format: text, json")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(contractCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}

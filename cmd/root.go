// cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/gewnthar/flightpath/config"
	"github.com/gewnthar/flightpath/database"
)

const (
	exitOK    = 0
	exitError = 1

	configFlag = "config"
)

// New returns the root command with every subcommand attached.
func New() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "flightpath <command> [flags]",
		Short:         "Minimum-flight route finder",
		Long:          "Find the itinerary with the fewest flights between two cities using the OpenFlights airport and route tables.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Example: heredoc.Doc(`
			$ flightpath find accra-winnipeg
			$ flightpath fetch
			$ flightpath import -c ./config.yaml
			$ flightpath serve
		`),
	}

	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "Config file (yaml)")
	rootCmd.AddCommand(
		findCmd(),
		serveCmd(),
		fetchCmd(),
		importCmd(),
		versionCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitError)
	}
	os.Exit(exitOK)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func initLogger(logLevel string, w io.Writer) *log.Logrus {
	logger := log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(w),
	)
	return logger
}

func openStore(ctx context.Context, cfg config.DatabaseConfig, logger log.Logger) (*database.Store, error) {
	store, err := database.Open(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

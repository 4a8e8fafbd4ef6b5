// cmd/find.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/gewnthar/flightpath/config"
	"github.com/gewnthar/flightpath/dataset"
	"github.com/gewnthar/flightpath/pathfinder"
	"github.com/gewnthar/flightpath/report"
	"github.com/gewnthar/flightpath/services"
)

func findCmd() *cobra.Command {
	var (
		airportsPath string
		routesPath   string
		outputPath   string
		fromDB       bool
		printReport  bool
	)

	cmd := &cobra.Command{
		Use:   "find <query-name>",
		Short: "Answer a query file and write its report",
		Long: heredoc.Doc(`
			Read <query-name>.txt, whose first two lines are the source and
			destination cities in "City, Country" form, and write the
			minimum-flight itinerary to <query-name>_output.txt.
		`),
		Example: heredoc.Doc(`
			$ flightpath find accra-winnipeg
			$ flightpath find queries/accra-winnipeg --airports airports.csv --routes routes.csv
			$ flightpath find accra-winnipeg --from-db --print
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if airportsPath != "" {
				cfg.Data.AirportsPath = airportsPath
			}
			if routesPath != "" {
				cfg.Data.RoutesPath = routesPath
			}
			if fromDB {
				cfg.Search.Source = services.SourceDatabase
			}
			logger := initLogger(cfg.LogLevel, cmd.ErrOrStderr())

			name := strings.TrimSuffix(args[0], ".txt")
			q, err := dataset.ReadQueryFile(name + ".txt")
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var rows services.RowStore
			if cfg.Search.Source == services.SourceDatabase {
				store, err := openStore(ctx, cfg.Database, logger)
				if err != nil {
					return err
				}
				defer store.Close()
				rows = store
			}

			svc, err := newPathService(ctx, cfg, rows, logger)
			if err != nil {
				return err
			}

			it, err := svc.FindPath(q.Source, q.Destination)
			if err != nil && !errors.Is(err, pathfinder.ErrNoPath) {
				return fmt.Errorf("find %s to %s: %w", q.Source, q.Destination, err)
			}

			if outputPath == "" {
				outputPath = report.OutputPath(name)
			}
			if err := report.WriteFile(outputPath, it); err != nil {
				return err
			}
			logger.Info("report written", "path", outputPath, "found", it != nil)

			if printReport {
				if it == nil {
					return report.WriteNoSolution(cmd.OutOrStdout())
				}
				return report.WriteItinerary(cmd.OutOrStdout(), it)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&airportsPath, "airports", "", "Airport table (overrides data.airports_path)")
	cmd.Flags().StringVar(&routesPath, "routes", "", "Route table (overrides data.routes_path)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report path (default <query-name>_output.txt)")
	cmd.Flags().BoolVar(&fromDB, "from-db", false, "Build the graph from the database instead of files")
	cmd.Flags().BoolVar(&printReport, "print", false, "Also print the report to stdout")
	return cmd
}

// newPathService builds a PathService over the configured graph source and
// loads the first graph. rows may be nil unless the source is the database.
func newPathService(ctx context.Context, cfg *config.Config, rows services.RowStore, logger log.Logger) (*services.PathService, error) {
	loader := services.NewGraphLoader(cfg.Search.Source, cfg.Data, rows, logger)
	svc, err := services.NewPathService(loader, cfg.Search, logger)
	if err != nil {
		return nil, err
	}
	if _, err := svc.Reload(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

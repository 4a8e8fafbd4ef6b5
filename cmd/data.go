// cmd/data.go
package cmd

import (
	"fmt"
	"net/http"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/gewnthar/flightpath/dataset"
	"github.com/gewnthar/flightpath/services"
)

func fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download the airport and route tables",
		Long: heredoc.Doc(`
			Download data.airports_url and data.routes_url to data.airports_path
			and data.routes_path. Existing files are replaced only when a
			download completes.
		`),
		Example: heredoc.Doc(`
			$ flightpath fetch
			$ FLIGHTPATH_AIRPORTS_PATH=/data/airports.csv flightpath fetch
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := initLogger(cfg.LogLevel, cmd.ErrOrStderr())

			fetcher := dataset.NewDownloader(&http.Client{Timeout: cfg.Data.DownloadTimeout}, logger)
			downloads, err := services.NewDatasetService(cfg.Data, fetcher, nil, logger).Fetch(cmd.Context())
			if err != nil {
				return err
			}
			for _, d := range downloads {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d bytes\t%s\n", d.LocalPath, d.Bytes, d.SHA256)
			}
			return nil
		},
	}
}

func importCmd() *cobra.Command {
	var download bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load the local tables into the database",
		Example: heredoc.Doc(`
			$ flightpath import
			$ flightpath import --download -c ./config.yaml
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := initLogger(cfg.LogLevel, cmd.ErrOrStderr())
			ctx := cmd.Context()

			store, err := openStore(ctx, cfg.Database, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			fetcher := dataset.NewDownloader(&http.Client{Timeout: cfg.Data.DownloadTimeout}, logger)
			svc := services.NewDatasetService(cfg.Data, fetcher, store, logger)
			if download {
				if _, err := svc.Fetch(ctx); err != nil {
					return err
				}
			}
			summary, err := svc.Import(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d airports and %d routes (%d usable airports, %d cities)\n",
				summary.Airports, summary.Routes, summary.Stats.Airports, summary.Stats.Cities)
			return nil
		},
	}

	cmd.Flags().BoolVar(&download, "download", false, "Fetch the tables before importing")
	return cmd
}

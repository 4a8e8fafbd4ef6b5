// services/dataset_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/goto/salt/log"

	"github.com/gewnthar/flightpath/config"
	"github.com/gewnthar/flightpath/dataset"
	"github.com/gewnthar/flightpath/models"
	"github.com/gewnthar/flightpath/routegraph"
)

// Fetcher downloads a file to a local path.
type Fetcher interface {
	DownloadFile(ctx context.Context, url, localSavePath string) (*dataset.Download, error)
}

// ImportStore is the part of the database store the importer writes to.
type ImportStore interface {
	SaveAirports(ctx context.Context, rows []models.AirportRow) error
	SaveRoutes(ctx context.Context, rows []models.RouteRow) error
	LogDataSourceVersion(ctx context.Context, v models.DataSourceVersion) error
	GetDataSourceVersions(ctx context.Context) ([]models.DataSourceVersion, error)
}

// DatasetService downloads the airport and route tables and imports them
// into the database.
type DatasetService struct {
	data    config.DataConfig
	fetcher Fetcher
	store   ImportStore
	logger  log.Logger
	now     func() time.Time
}

// NewDatasetService returns a DatasetService. store may be nil when only
// Fetch is used.
func NewDatasetService(data config.DataConfig, fetcher Fetcher, store ImportStore, logger log.Logger) *DatasetService {
	return &DatasetService{data: data, fetcher: fetcher, store: store, logger: logger, now: time.Now}
}

// ImportSummary reports what Import stored.
type ImportSummary struct {
	Airports int
	Routes   int
	Stats    routegraph.Stats
}

// Fetch downloads both tables to their configured local paths.
func (s *DatasetService) Fetch(ctx context.Context) ([]*dataset.Download, error) {
	targets := []struct{ name, url, path string }{
		{models.SourceAirports, s.data.AirportsURL, s.data.AirportsPath},
		{models.SourceRoutes, s.data.RoutesURL, s.data.RoutesPath},
	}
	var downloads []*dataset.Download
	for _, t := range targets {
		d, err := s.fetcher.DownloadFile(ctx, t.url, t.path)
		if err != nil {
			return downloads, fmt.Errorf("failed to download %s table: %w", t.name, err)
		}
		s.logger.Info("downloaded table", "source", t.name, "bytes", d.Bytes, "sha256", d.SHA256)
		downloads = append(downloads, d)
	}
	return downloads, nil
}

// Import reads both local tables, checks that they build a valid graph and
// replaces the database content with them.
func (s *DatasetService) Import(ctx context.Context) (*ImportSummary, error) {
	if s.store == nil {
		return nil, fmt.Errorf("import requires a database store")
	}

	airportsFile, err := dataset.ReadRecordsFile(s.data.AirportsPath)
	if err != nil {
		return nil, err
	}
	routesFile, err := dataset.ReadRecordsFile(s.data.RoutesPath)
	if err != nil {
		return nil, err
	}

	airports, err := routegraph.DecodeAirports(airportsFile.Records)
	if err != nil {
		return nil, err
	}
	routes, err := routegraph.DecodeRoutes(routesFile.Records)
	if err != nil {
		return nil, err
	}
	// reject tables the search could not use before touching the store
	g, err := routegraph.FromRows(airports, routes)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveAirports(ctx, airports); err != nil {
		return nil, err
	}
	if err := s.store.SaveRoutes(ctx, routes); err != nil {
		return nil, err
	}

	importedAt := s.now().Unix()
	versions := []models.DataSourceVersion{
		{SourceName: models.SourceAirports, SourceURL: s.data.AirportsURL, LocalPath: airportsFile.Path,
			RowCount: len(airports), DataHash: airportsFile.SHA256, ImportedAt: importedAt},
		{SourceName: models.SourceRoutes, SourceURL: s.data.RoutesURL, LocalPath: routesFile.Path,
			RowCount: len(routes), DataHash: routesFile.SHA256, ImportedAt: importedAt},
	}
	for _, v := range versions {
		if err := s.store.LogDataSourceVersion(ctx, v); err != nil {
			return nil, err
		}
	}

	s.logger.Info("dataset imported", "airports", len(airports), "routes", len(routes))
	return &ImportSummary{Airports: len(airports), Routes: len(routes), Stats: g.Stats()}, nil
}

// Versions returns the recorded data source versions.
func (s *DatasetService) Versions(ctx context.Context) ([]models.DataSourceVersion, error) {
	if s.store == nil {
		return nil, fmt.Errorf("versions require a database store")
	}
	return s.store.GetDataSourceVersions(ctx)
}

// services/graph_loader.go
package services

import (
	"context"
	"fmt"

	"github.com/goto/salt/log"

	"github.com/gewnthar/flightpath/config"
	"github.com/gewnthar/flightpath/dataset"
	"github.com/gewnthar/flightpath/models"
	"github.com/gewnthar/flightpath/routegraph"
)

// Graph sources.
const (
	SourceFiles    = "files"
	SourceDatabase = "database"
)

// RowStore is the part of the database store the loader reads from.
type RowStore interface {
	LoadAirports(ctx context.Context) ([]models.AirportRow, error)
	LoadRoutes(ctx context.Context) ([]models.RouteRow, error)
}

// GraphLoader builds route graphs from the configured source.
type GraphLoader struct {
	source string
	data   config.DataConfig
	store  RowStore // nil unless source is SourceDatabase
	logger log.Logger
}

// NewGraphLoader returns a loader. store may be nil when source is SourceFiles.
func NewGraphLoader(source string, data config.DataConfig, store RowStore, logger log.Logger) *GraphLoader {
	if source == "" {
		source = SourceFiles
	}
	return &GraphLoader{source: source, data: data, store: store, logger: logger}
}

// Load builds a graph from the configured source.
func (l *GraphLoader) Load(ctx context.Context) (*routegraph.Graph, error) {
	switch l.source {
	case SourceFiles:
		return l.LoadFiles(l.data.AirportsPath, l.data.RoutesPath)
	case SourceDatabase:
		return l.LoadStore(ctx)
	default:
		return nil, fmt.Errorf("unknown graph source: %s", l.source)
	}
}

// LoadFiles reads both tables from disk and builds a graph.
func (l *GraphLoader) LoadFiles(airportsPath, routesPath string) (*routegraph.Graph, error) {
	airports, err := dataset.ReadRecordsFile(airportsPath)
	if err != nil {
		return nil, err
	}
	routes, err := dataset.ReadRecordsFile(routesPath)
	if err != nil {
		return nil, err
	}
	g, err := routegraph.Build(airports.Records, routes.Records)
	if err != nil {
		return nil, fmt.Errorf("failed to build graph from %s and %s: %w", airportsPath, routesPath, err)
	}
	l.logStats("files", g)
	return g, nil
}

// LoadStore reads both tables from the database and builds a graph.
func (l *GraphLoader) LoadStore(ctx context.Context) (*routegraph.Graph, error) {
	if l.store == nil {
		return nil, fmt.Errorf("database source selected but no store is configured")
	}
	airports, err := l.store.LoadAirports(ctx)
	if err != nil {
		return nil, err
	}
	routes, err := l.store.LoadRoutes(ctx)
	if err != nil {
		return nil, err
	}
	g, err := routegraph.FromRows(airports, routes)
	if err != nil {
		return nil, fmt.Errorf("failed to build graph from database: %w", err)
	}
	l.logStats("database", g)
	return g, nil
}

func (l *GraphLoader) logStats(from string, g *routegraph.Graph) {
	st := g.Stats()
	l.logger.Info("graph built", "from", from,
		"airports", st.Airports, "cities", st.Cities, "routes", st.Routes,
		"dangling_routes", st.DanglingRoutes, "unknown_source_routes", st.UnknownSourceRoutes,
		"skipped_airports", st.SkippedAirports)
}

// services/path_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goto/salt/log"

	"github.com/gewnthar/flightpath/config"
	"github.com/gewnthar/flightpath/models"
	"github.com/gewnthar/flightpath/pathfinder"
	"github.com/gewnthar/flightpath/routegraph"
	"github.com/gewnthar/flightpath/utils"
)

// ErrGraphNotLoaded is returned when a query arrives before any graph was loaded.
var ErrGraphNotLoaded = errors.New("route graph not loaded")

// GraphSource produces route graphs.
type GraphSource interface {
	Load(ctx context.Context) (*routegraph.Graph, error)
}

// PathService answers path queries against the current route graph. The
// graph is replaced atomically on Reload; in-flight searches keep the graph
// they started with.
type PathService struct {
	source GraphSource
	graph  atomic.Pointer[routegraph.Graph]
	opts   []pathfinder.Option
	logger log.Logger
}

// NewPathService returns a service using the search settings of cfg.
func NewPathService(source GraphSource, cfg config.SearchConfig, logger log.Logger) (*PathService, error) {
	opts, err := SearchOptions(cfg)
	if err != nil {
		return nil, err
	}
	return &PathService{source: source, opts: opts, logger: logger}, nil
}

// SearchOptions maps search configuration to pathfinder options.
func SearchOptions(cfg config.SearchConfig) ([]pathfinder.Option, error) {
	dist, ok := utils.DistanceFuncByName(cfg.Haversine)
	if !ok {
		return nil, fmt.Errorf("unknown haversine variant: %s", cfg.Haversine)
	}
	dedup, err := pathfinder.ParseDedupPolicy(cfg.Dedup)
	if err != nil {
		return nil, err
	}
	return []pathfinder.Option{
		pathfinder.WithDistance(dist),
		pathfinder.WithDedupPolicy(dedup),
	}, nil
}

// Reload builds a fresh graph from the source and swaps it in. The previous
// graph stays in place when loading fails.
func (s *PathService) Reload(ctx context.Context) (routegraph.Stats, error) {
	start := time.Now()
	g, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Error("graph reload failed", "err", err)
		return routegraph.Stats{}, fmt.Errorf("failed to reload graph: %w", err)
	}
	s.SetGraph(g)
	st := g.Stats()
	s.logger.Info("graph reloaded", "airports", st.Airports, "routes", st.Routes, "took", time.Since(start).String())
	return st, nil
}

// SetGraph installs g as the current graph.
func (s *PathService) SetGraph(g *routegraph.Graph) {
	s.graph.Store(g)
	st := g.Stats()
	graphSize.WithLabelValues("airports").Set(float64(st.Airports))
	graphSize.WithLabelValues("cities").Set(float64(st.Cities))
	graphSize.WithLabelValues("routes").Set(float64(st.Routes))
}

// Graph returns the current graph, nil before the first load.
func (s *PathService) Graph() *routegraph.Graph {
	return s.graph.Load()
}

// FindPath returns the minimum-flight itinerary between two city keys.
// Keys are normalised first. A query with no path returns pathfinder.ErrNoPath.
func (s *PathService) FindPath(source, destination string) (*models.Itinerary, error) {
	g := s.graph.Load()
	if g == nil {
		return nil, ErrGraphNotLoaded
	}
	source = utils.NormalizeCityKey(source)
	destination = utils.NormalizeCityKey(destination)

	start := time.Now()
	res, err := pathfinder.Search(g, source, destination, s.opts...)
	pathSearchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		pathSearchTotal.WithLabelValues(outcomeRejected).Inc()
		return nil, err
	}
	pathSearchExpanded.Observe(float64(res.Expanded))

	it, err := pathfinder.Reconstruct(res)
	switch {
	case errors.Is(err, pathfinder.ErrNoPath):
		pathSearchTotal.WithLabelValues(outcomeNoPath).Inc()
		s.logger.Debug("no path", "source", source, "destination", destination, "expanded", res.Expanded)
		return nil, err
	case err != nil:
		pathSearchTotal.WithLabelValues(outcomeError).Inc()
		return nil, err
	}
	pathSearchTotal.WithLabelValues(outcomeFound).Inc()
	s.logger.Debug("path found", "source", source, "destination", destination,
		"flights", it.TotalFlights, "expanded", res.Expanded)
	return it, nil
}

// CityAirports returns the indexed airports of a city in table order.
func (s *PathService) CityAirports(city string) ([]models.Airport, error) {
	g := s.graph.Load()
	if g == nil {
		return nil, ErrGraphNotLoaded
	}
	city = utils.NormalizeCityKey(city)
	if !g.HasCity(city) {
		return nil, fmt.Errorf("%w: %s", pathfinder.ErrUnknownCity, city)
	}
	codes := g.CityAirports(city)
	airports := make([]models.Airport, 0, len(codes))
	for _, code := range codes {
		if a, ok := g.Airport(code); ok {
			airports = append(airports, a)
		}
	}
	return airports, nil
}

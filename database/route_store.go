// database/route_store.go
package database

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/gewnthar/flightpath/models"
)

var routeColumns = []string{
	"seq", "airline", "airline_id", "source", "source_id", "destination", "destination_id", "codeshare", "stops",
}

// SaveRoutes replaces the route table with rows. Seq is kept so LoadRoutes
// returns routes in their table order.
func (s *Store) SaveRoutes(ctx context.Context, rows []models.RouteRow) error {
	err := s.replaceAll(ctx, routesTable, routeColumns, len(rows), func(i int) []interface{} {
		r := rows[i]
		return []interface{}{r.Seq, r.Airline, r.AirlineID, r.Source, r.SourceID, r.Destination, r.DestinationID, r.Codeshare, r.Stops}
	})
	if err != nil {
		return fmt.Errorf("failed to save routes: %w", err)
	}
	s.logger.Info("saved routes", "rows", len(rows))
	return nil
}

// LoadRoutes returns every route row in table order.
func (s *Store) LoadRoutes(ctx context.Context) ([]models.RouteRow, error) {
	query, args, err := sq.Select(routeColumns...).From(routesTable).OrderBy("seq").ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}
	var rows []models.RouteRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to load routes: %w", err)
	}
	return rows, nil
}

// RoutesForSource returns the routes leaving one airport, in table order.
func (s *Store) RoutesForSource(ctx context.Context, code string) ([]models.RouteRow, error) {
	query, args, err := sq.Select(routeColumns...).From(routesTable).
		Where(sq.Eq{"source": code}).OrderBy("seq").ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}
	var rows []models.RouteRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to load routes for %s: %w", code, err)
	}
	return rows, nil
}

// database/airport_store.go
package database

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/gewnthar/flightpath/models"
)

// insertBatchSize bounds rows per INSERT so placeholder counts stay under
// driver limits.
const insertBatchSize = 500

var airportColumns = []string{
	"seq", "airport_id", "name", "city", "country", "iata", "icao", "latitude", "longitude", "altitude",
}

// SaveAirports replaces the airport table with rows.
// Uses a "clear and load" strategy inside one transaction.
func (s *Store) SaveAirports(ctx context.Context, rows []models.AirportRow) error {
	err := s.replaceAll(ctx, airportsTable, airportColumns, len(rows), func(i int) []interface{} {
		r := rows[i]
		return []interface{}{r.Seq, r.ID, r.Name, r.City, r.Country, r.IATA, r.ICAO, r.Latitude, r.Longitude, r.Altitude}
	})
	if err != nil {
		return fmt.Errorf("failed to save airports: %w", err)
	}
	s.logger.Info("saved airports", "rows", len(rows))
	return nil
}

// LoadAirports returns every airport row in table order.
func (s *Store) LoadAirports(ctx context.Context) ([]models.AirportRow, error) {
	query, args, err := sq.Select(airportColumns...).From(airportsTable).OrderBy("seq").ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}
	var rows []models.AirportRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to load airports: %w", err)
	}
	return rows, nil
}

// replaceAll deletes every row of table and inserts n rows in batches.
func (s *Store) replaceAll(ctx context.Context, table string, columns []string, n int, values func(i int) []interface{}) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}
	s.logger.Debug("cleared table", "table", table)

	for start := 0; start < n; start += insertBatchSize {
		end := start + insertBatchSize
		if end > n {
			end = n
		}
		builder := sq.Insert(table).Columns(columns...)
		for i := start; i < end; i++ {
			builder = builder.Values(values(i)...)
		}
		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("error building insert for %s: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert rows %d-%d into %s: %w", start+1, end, table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction for %s: %w", table, err)
	}
	return nil
}

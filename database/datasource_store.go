// database/datasource_store.go
package database

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/gewnthar/flightpath/models"
)

var dataSourceColumns = []string{
	"source_name", "source_url", "local_path", "row_count", "data_hash", "imported_at",
}

// LogDataSourceVersion records what was last imported for v.SourceName,
// replacing any earlier record for the same source.
func (s *Store) LogDataSourceVersion(ctx context.Context, v models.DataSourceVersion) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	del, args, err := sq.Delete(dataSourcesTable).Where(sq.Eq{"source_name": v.SourceName}).ToSql()
	if err != nil {
		return fmt.Errorf("error building delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx, del, args...); err != nil {
		return fmt.Errorf("failed to clear data source version for %s: %w", v.SourceName, err)
	}

	ins, args, err := sq.Insert(dataSourcesTable).Columns(dataSourceColumns...).
		Values(v.SourceName, v.SourceURL, v.LocalPath, v.RowCount, v.DataHash, v.ImportedAt).ToSql()
	if err != nil {
		return fmt.Errorf("error building insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, ins, args...); err != nil {
		return fmt.Errorf("failed to log data source version for %s: %w", v.SourceName, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit data source version for %s: %w", v.SourceName, err)
	}
	s.logger.Info("logged data source version", "source", v.SourceName, "rows", v.RowCount, "hash", v.DataHash)
	return nil
}

// GetDataSourceVersions returns every data source record ordered by name.
func (s *Store) GetDataSourceVersions(ctx context.Context) ([]models.DataSourceVersion, error) {
	query, args, err := sq.Select(dataSourceColumns...).From(dataSourcesTable).OrderBy("source_name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}
	var versions []models.DataSourceVersion
	if err := s.db.SelectContext(ctx, &versions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query data_source_versions: %w", err)
	}
	return versions, nil
}

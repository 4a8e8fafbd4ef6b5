// models/meta.go
package models

import "time"

// Data source names.
const (
	SourceAirports = "airports"
	SourceRoutes   = "routes"
)

// DataSourceVersion tracks what was last imported for a tabular data source.
type DataSourceVersion struct {
	SourceName string `db:"source_name" json:"source_name"` // SourceAirports or SourceRoutes
	SourceURL  string `db:"source_url" json:"source_url,omitempty"`
	LocalPath  string `db:"local_path" json:"local_path,omitempty"`
	RowCount   int    `db:"row_count" json:"row_count"`
	DataHash   string `db:"data_hash" json:"data_hash,omitempty"` // sha256 of the file content
	ImportedAt int64  `db:"imported_at" json:"imported_at"`       // unix seconds
}

// ImportedTime returns ImportedAt as a time.Time in UTC.
func (v DataSourceVersion) ImportedTime() time.Time {
	return time.Unix(v.ImportedAt, 0).UTC()
}

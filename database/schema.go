// database/schema.go
package database

import (
	"context"
	"fmt"
)

const (
	airportsTable    = "airports"
	routesTable      = "routes"
	dataSourcesTable = "data_source_versions"
)

// DDL accepted by both MySQL and sqlite.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS airports (
		seq BIGINT NOT NULL PRIMARY KEY,
		airport_id VARCHAR(32) NOT NULL DEFAULT '',
		name VARCHAR(255) NOT NULL DEFAULT '',
		city VARCHAR(255) NOT NULL DEFAULT '',
		country VARCHAR(255) NOT NULL DEFAULT '',
		iata VARCHAR(16) NOT NULL DEFAULT '',
		icao VARCHAR(16) NOT NULL DEFAULT '',
		latitude DOUBLE NOT NULL DEFAULT 0,
		longitude DOUBLE NOT NULL DEFAULT 0,
		altitude DOUBLE NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS routes (
		seq BIGINT NOT NULL PRIMARY KEY,
		airline VARCHAR(16) NOT NULL DEFAULT '',
		airline_id VARCHAR(32) NOT NULL DEFAULT '',
		source VARCHAR(16) NOT NULL DEFAULT '',
		source_id VARCHAR(32) NOT NULL DEFAULT '',
		destination VARCHAR(16) NOT NULL DEFAULT '',
		destination_id VARCHAR(32) NOT NULL DEFAULT '',
		codeshare VARCHAR(8) NOT NULL DEFAULT '',
		stops INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS data_source_versions (
		source_name VARCHAR(64) NOT NULL PRIMARY KEY,
		source_url VARCHAR(1024) NOT NULL DEFAULT '',
		local_path VARCHAR(1024) NOT NULL DEFAULT '',
		row_count INT NOT NULL DEFAULT 0,
		data_hash VARCHAR(64) NOT NULL DEFAULT '',
		imported_at BIGINT NOT NULL DEFAULT 0
	)`,
}

// EnsureSchema creates the tables when they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

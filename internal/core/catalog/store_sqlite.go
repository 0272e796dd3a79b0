// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	// Pure Go SQLite driver, registers "sqlite".
	_ "modernc.org/sqlite"

	"github.com/taibuivan/itinera/internal/platform/database/schema"
	"github.com/taibuivan/itinera/internal/platform/dberr"
)

// SQLiteSource reads a catalog exported to a local SQLite file. The tables
// mirror the PostgreSQL ones without the schema qualifier.
type SQLiteSource struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) a SQLite catalog file.
func OpenSQLite(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	return NewSQLiteSource(db), nil
}

// NewSQLiteSource wraps an existing database handle.
func NewSQLiteSource(db *sql.DB) *SQLiteSource {
	return &SQLiteSource{db: db}
}

// Close releases the underlying database handle.
func (source *SQLiteSource) Close() error {
	return source.db.Close()
}

// # Schema & Import

// EnsureSchema creates the catalog tables if they do not exist yet.
func (source *SQLiteSource) EnsureSchema(ctx context.Context) error {
	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (%s TEXT PRIMARY KEY, %s TEXT NOT NULL, %s TEXT NOT NULL DEFAULT '', %s TEXT NOT NULL DEFAULT '')`,
			schema.CatalogRegion.Bare, schema.CatalogRegion.ID, schema.CatalogRegion.Name, schema.CatalogRegion.Slug, schema.CatalogRegion.Description),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (%s TEXT PRIMARY KEY, %s TEXT NOT NULL, %s TEXT NOT NULL DEFAULT '', %s INTEGER NOT NULL, %s REAL NOT NULL)`,
			schema.CatalogTour.Bare, schema.CatalogTour.ID, schema.CatalogTour.RegionID, schema.CatalogTour.Name, schema.CatalogTour.DurationDays, schema.CatalogTour.Cost),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (%s TEXT PRIMARY KEY, %s TEXT NOT NULL DEFAULT '', %s REAL NOT NULL)`,
			schema.CatalogAttraction.Bare, schema.CatalogAttraction.ID, schema.CatalogAttraction.Name, schema.CatalogAttraction.CulturalValue),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (%s TEXT NOT NULL, %s TEXT NOT NULL, PRIMARY KEY (%s, %s))`,
			schema.CatalogTourAttraction.Bare, schema.CatalogTourAttraction.TourID, schema.CatalogTourAttraction.AttractionID,
			schema.CatalogTourAttraction.TourID, schema.CatalogTourAttraction.AttractionID),
	}

	for _, statement := range statements {
		if _, err := source.db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("sqlite: ensure schema: %w", err)
		}
	}
	return nil
}

// Import replaces the contents of the SQLite tables with every record of from
// in one transaction. Rows that from no longer lists are removed.
func (source *SQLiteSource) Import(ctx context.Context, from Source) (err error) {
	regions, err := from.ListRegions(ctx)
	if err != nil {
		return err
	}
	tours, err := from.ListTours(ctx)
	if err != nil {
		return err
	}
	attractions, err := from.ListAttractions(ctx)
	if err != nil {
		return err
	}
	edges, err := from.ListTourAttractionEdges(ctx)
	if err != nil {
		return err
	}

	tx, err := source.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin import: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Edges first; they reference tours and attractions.
	for _, table := range []string{
		schema.CatalogTourAttraction.Bare,
		schema.CatalogTour.Bare,
		schema.CatalogAttraction.Bare,
		schema.CatalogRegion.Bare,
	} {
		if _, err = tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
			return fmt.Errorf("sqlite: clear %s: %w", table, err)
		}
	}

	for _, region := range regions {
		_, err = tx.ExecContext(ctx, fmt.Sprintf(`INSERT OR REPLACE INTO %s (%s, %s, %s, %s) VALUES (?, ?, ?, ?)`,
			schema.CatalogRegion.Bare, schema.CatalogRegion.ID, schema.CatalogRegion.Name, schema.CatalogRegion.Slug, schema.CatalogRegion.Description),
			region.ID, region.Name, region.Slug, region.Description)
		if err != nil {
			return fmt.Errorf("sqlite: import region %q: %w", region.ID, err)
		}
	}

	for _, id := range sortedKeys(tours) {
		tour := tours[id]
		_, err = tx.ExecContext(ctx, fmt.Sprintf(`INSERT OR REPLACE INTO %s (%s, %s, %s, %s, %s) VALUES (?, ?, ?, ?, ?)`,
			schema.CatalogTour.Bare, schema.CatalogTour.ID, schema.CatalogTour.RegionID, schema.CatalogTour.Name, schema.CatalogTour.DurationDays, schema.CatalogTour.Cost),
			id, tour.RegionID, tour.Name, tour.DurationDays, tour.Cost)
		if err != nil {
			return fmt.Errorf("sqlite: import tour %q: %w", id, err)
		}
	}

	for _, id := range sortedKeys(attractions) {
		attraction := attractions[id]
		_, err = tx.ExecContext(ctx, fmt.Sprintf(`INSERT OR REPLACE INTO %s (%s, %s, %s) VALUES (?, ?, ?)`,
			schema.CatalogAttraction.Bare, schema.CatalogAttraction.ID, schema.CatalogAttraction.Name, schema.CatalogAttraction.CulturalValue),
			id, attraction.Name, attraction.CulturalValue)
		if err != nil {
			return fmt.Errorf("sqlite: import attraction %q: %w", id, err)
		}
	}

	for _, edge := range edges {
		_, err = tx.ExecContext(ctx, fmt.Sprintf(`INSERT OR IGNORE INTO %s (%s, %s) VALUES (?, ?)`,
			schema.CatalogTourAttraction.Bare, schema.CatalogTourAttraction.TourID, schema.CatalogTourAttraction.AttractionID),
			edge.TourID, edge.AttractionID)
		if err != nil {
			return fmt.Errorf("sqlite: import edge (%s, %s): %w", edge.TourID, edge.AttractionID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit import: %w", err)
	}
	return nil
}

// # Source Implementation

// ListRegions implements [Source].
func (source *SQLiteSource) ListRegions(ctx context.Context) ([]RegionRecord, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s`,
		schema.CatalogRegion.ID, schema.CatalogRegion.Name, schema.CatalogRegion.Slug, schema.CatalogRegion.Description,
		schema.CatalogRegion.Bare, schema.CatalogRegion.ID)

	rows, err := source.db.QueryContext(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "sqlite_list_regions")
	}
	defer rows.Close()

	var regions []RegionRecord
	for rows.Next() {
		var record RegionRecord
		if err := rows.Scan(&record.ID, &record.Name, &record.Slug, &record.Description); err != nil {
			return nil, dberr.Wrap(err, "sqlite_scan_region")
		}
		regions = append(regions, record)
	}
	return regions, dberr.Wrap(rows.Err(), "sqlite_iterate_regions")
}

// ListTours implements [Source].
func (source *SQLiteSource) ListTours(ctx context.Context) (map[string]TourRecord, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s`,
		schema.CatalogTour.ID, schema.CatalogTour.RegionID, schema.CatalogTour.Name, schema.CatalogTour.DurationDays, schema.CatalogTour.Cost,
		schema.CatalogTour.Bare)

	rows, err := source.db.QueryContext(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "sqlite_list_tours")
	}
	defer rows.Close()

	tours := make(map[string]TourRecord)
	for rows.Next() {
		var record TourRecord
		if err := rows.Scan(&record.ID, &record.RegionID, &record.Name, &record.DurationDays, &record.Cost); err != nil {
			return nil, dberr.Wrap(err, "sqlite_scan_tour")
		}
		tours[record.ID] = record
	}
	return tours, dberr.Wrap(rows.Err(), "sqlite_iterate_tours")
}

// ListAttractions implements [Source].
func (source *SQLiteSource) ListAttractions(ctx context.Context) (map[string]AttractionRecord, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s`,
		schema.CatalogAttraction.ID, schema.CatalogAttraction.Name, schema.CatalogAttraction.CulturalValue,
		schema.CatalogAttraction.Bare)

	rows, err := source.db.QueryContext(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "sqlite_list_attractions")
	}
	defer rows.Close()

	attractions := make(map[string]AttractionRecord)
	for rows.Next() {
		var record AttractionRecord
		if err := rows.Scan(&record.ID, &record.Name, &record.CulturalValue); err != nil {
			return nil, dberr.Wrap(err, "sqlite_scan_attraction")
		}
		attractions[record.ID] = record
	}
	return attractions, dberr.Wrap(rows.Err(), "sqlite_iterate_attractions")
}

// ListTourAttractionEdges implements [Source].
func (source *SQLiteSource) ListTourAttractionEdges(ctx context.Context) ([]Edge, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s, %s`,
		schema.CatalogTourAttraction.TourID, schema.CatalogTourAttraction.AttractionID,
		schema.CatalogTourAttraction.Bare,
		schema.CatalogTourAttraction.TourID, schema.CatalogTourAttraction.AttractionID)

	rows, err := source.db.QueryContext(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "sqlite_list_edges")
	}
	defer rows.Close()

	var edges []Edge
	for rows.Next() {
		var edge Edge
		if err := rows.Scan(&edge.TourID, &edge.AttractionID); err != nil {
			return nil, dberr.Wrap(err, "sqlite_scan_edge")
		}
		edges = append(edges, edge)
	}
	return edges, dberr.Wrap(rows.Err(), "sqlite_iterate_edges")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

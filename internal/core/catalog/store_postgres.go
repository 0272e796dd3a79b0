// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/itinera/internal/platform/database/schema"
	"github.com/taibuivan/itinera/internal/platform/dberr"
)

// querier is the subset of *pgxpool.Pool the source needs.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresSource reads the catalog tables with pgx.
type PostgresSource struct {
	db querier
}

// NewPostgresSource wraps a pgx pool (or any compatible querier).
func NewPostgresSource(db querier) *PostgresSource {
	return &PostgresSource{db: db}
}

// ListRegions implements [Source].
func (source *PostgresSource) ListRegions(context context.Context) ([]RegionRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.CatalogRegion.ID, schema.CatalogRegion.Name, schema.CatalogRegion.Slug, schema.CatalogRegion.Description,
		schema.CatalogRegion.Table,
		schema.CatalogRegion.ID,
	)

	rows, err := source.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_regions")
	}

	regions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (RegionRecord, error) {
		var record RegionRecord
		err := row.Scan(&record.ID, &record.Name, &record.Slug, &record.Description)
		return record, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_region")
	}

	return regions, nil
}

// ListTours implements [Source].
func (source *PostgresSource) ListTours(context context.Context) (map[string]TourRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
	`,
		schema.CatalogTour.ID, schema.CatalogTour.RegionID, schema.CatalogTour.Name,
		schema.CatalogTour.DurationDays, schema.CatalogTour.Cost,
		schema.CatalogTour.Table,
	)

	rows, err := source.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tours")
	}
	defer rows.Close()

	tours := make(map[string]TourRecord)
	for rows.Next() {
		var record TourRecord
		if err := rows.Scan(&record.ID, &record.RegionID, &record.Name, &record.DurationDays, &record.Cost); err != nil {
			return nil, dberr.Wrap(err, "scan_tour")
		}
		tours[record.ID] = record
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_tours")
	}

	return tours, nil
}

// ListAttractions implements [Source].
func (source *PostgresSource) ListAttractions(context context.Context) (map[string]AttractionRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
	`,
		schema.CatalogAttraction.ID, schema.CatalogAttraction.Name, schema.CatalogAttraction.CulturalValue,
		schema.CatalogAttraction.Table,
	)

	rows, err := source.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_attractions")
	}
	defer rows.Close()

	attractions := make(map[string]AttractionRecord)
	for rows.Next() {
		var record AttractionRecord
		if err := rows.Scan(&record.ID, &record.Name, &record.CulturalValue); err != nil {
			return nil, dberr.Wrap(err, "scan_attraction")
		}
		attractions[record.ID] = record
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_attractions")
	}

	return attractions, nil
}

// ListTourAttractionEdges implements [Source].
func (source *PostgresSource) ListTourAttractionEdges(context context.Context) ([]Edge, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s, %s
	`,
		schema.CatalogTourAttraction.TourID, schema.CatalogTourAttraction.AttractionID,
		schema.CatalogTourAttraction.Table,
		schema.CatalogTourAttraction.TourID, schema.CatalogTourAttraction.AttractionID,
	)

	rows, err := source.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tour_attraction_edges")
	}

	edges, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Edge, error) {
		var edge Edge
		err := row.Scan(&edge.TourID, &edge.AttractionID)
		return edge, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_tour_attraction_edge")
	}

	return edges, nil
}

// Ping checks that the catalog tables are reachable.
func (source *PostgresSource) Ping(context context.Context) error {
	query := fmt.Sprintf(`SELECT 1 FROM %s LIMIT 1`, schema.CatalogRegion.Table)
	_, err := source.db.Exec(context, query)
	return dberr.Wrap(err, "ping_catalog")
}

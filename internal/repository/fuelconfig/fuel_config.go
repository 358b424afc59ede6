package fuelconfig

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"fuelops/internal/entities"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) ListTruckBatches(ctx context.Context) ([]entities.TruckBatch, error) {
	query := `
		SELECT id, suffix, batch, liters, created_at, updated_at
		FROM truck_batches
		ORDER BY suffix`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected fuel config repository list batches error: %w", err)
	}
	defer rows.Close()

	var batches []entities.TruckBatch
	for rows.Next() {
		var b TruckBatchDB
		if err := rows.Scan(&b.ID, &b.Suffix, &b.Batch, &b.Liters, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("unexpected fuel config repository scan error: %w", err)
		}
		batches = append(batches, *ToBatchDomain(&b))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected fuel config repository rows error: %w", err)
	}

	return batches, nil
}

func (r *Repository) ListRoutes(ctx context.Context) ([]entities.Route, error) {
	query := `
		SELECT id, destination, liters, created_at, updated_at
		FROM routes
		ORDER BY destination`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected fuel config repository list routes error: %w", err)
	}
	defer rows.Close()

	var routes []entities.Route
	for rows.Next() {
		var rt RouteDB
		if err := rows.Scan(&rt.ID, &rt.Destination, &rt.Liters, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("unexpected fuel config repository scan error: %w", err)
		}
		routes = append(routes, *ToRouteDomain(&rt))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected fuel config repository rows error: %w", err)
	}

	return routes, nil
}

func (r *Repository) ListSurcharges(ctx context.Context) ([]entities.Surcharge, error) {
	query := `
		SELECT id, location, liters, created_at, updated_at
		FROM surcharges
		ORDER BY location`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected fuel config repository list surcharges error: %w", err)
	}
	defer rows.Close()

	var surcharges []entities.Surcharge
	for rows.Next() {
		var s SurchargeDB
		if err := rows.Scan(&s.ID, &s.Location, &s.Liters, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("unexpected fuel config repository scan error: %w", err)
		}
		surcharges = append(surcharges, *ToSurchargeDomain(&s))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected fuel config repository rows error: %w", err)
	}

	return surcharges, nil
}

func (r *Repository) ListStationCheckpoints(ctx context.Context) ([]entities.StationCheckpoint, error) {
	query := `
		SELECT id, station, checkpoint, direction, created_at, updated_at
		FROM station_checkpoints
		ORDER BY station`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected fuel config repository list station maps error: %w", err)
	}
	defer rows.Close()

	var mappings []entities.StationCheckpoint
	for rows.Next() {
		var m StationCheckpointDB
		if err := rows.Scan(&m.ID, &m.Station, &m.Checkpoint, &m.Direction, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("unexpected fuel config repository scan error: %w", err)
		}
		mappings = append(mappings, *ToStationCheckpointDomain(&m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected fuel config repository rows error: %w", err)
	}

	return mappings, nil
}

func (r *Repository) UpsertTruckBatch(ctx context.Context, modify entities.TruckBatchModify) (*entities.TruckBatch, error) {
	query := `
		INSERT INTO truck_batches (suffix, batch, liters)
		VALUES (LOWER($1), $2, $3)
		ON CONFLICT (suffix) DO UPDATE
		SET batch = EXCLUDED.batch,
		    liters = EXCLUDED.liters,
		    updated_at = NOW()
		RETURNING id, suffix, batch, liters, created_at, updated_at`

	var b TruckBatchDB
	err := r.querier.QueryRow(ctx, query, modify.Suffix, modify.Batch, modify.Liters.InexactFloat64()).
		Scan(&b.ID, &b.Suffix, &b.Batch, &b.Liters, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected fuel config repository upsert batch error: %w", err)
	}

	return ToBatchDomain(&b), nil
}

func (r *Repository) UpsertRoute(ctx context.Context, modify entities.RouteModify) (*entities.Route, error) {
	query := `
		INSERT INTO routes (destination, liters)
		VALUES (UPPER($1), $2)
		ON CONFLICT (destination) DO UPDATE
		SET liters = EXCLUDED.liters,
		    updated_at = NOW()
		RETURNING id, destination, liters, created_at, updated_at`

	var rt RouteDB
	err := r.querier.QueryRow(ctx, query, modify.Destination, modify.Liters.InexactFloat64()).
		Scan(&rt.ID, &rt.Destination, &rt.Liters, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected fuel config repository upsert route error: %w", err)
	}

	return ToRouteDomain(&rt), nil
}

func (r *Repository) UpsertSurcharge(ctx context.Context, modify entities.SurchargeModify) (*entities.Surcharge, error) {
	query := `
		INSERT INTO surcharges (location, liters)
		VALUES (UPPER($1), $2)
		ON CONFLICT (location) DO UPDATE
		SET liters = EXCLUDED.liters,
		    updated_at = NOW()
		RETURNING id, location, liters, created_at, updated_at`

	var s SurchargeDB
	err := r.querier.QueryRow(ctx, query, modify.Location, modify.Liters.InexactFloat64()).
		Scan(&s.ID, &s.Location, &s.Liters, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected fuel config repository upsert surcharge error: %w", err)
	}

	return ToSurchargeDomain(&s), nil
}

func (r *Repository) UpsertStationCheckpoint(ctx context.Context, modify entities.StationCheckpointModify) (*entities.StationCheckpoint, error) {
	query := `
		INSERT INTO station_checkpoints (station, checkpoint, direction)
		VALUES (UPPER($1), $2, $3)
		ON CONFLICT (station) DO UPDATE
		SET checkpoint = EXCLUDED.checkpoint,
		    direction = EXCLUDED.direction,
		    updated_at = NOW()
		RETURNING id, station, checkpoint, direction, created_at, updated_at`

	var m StationCheckpointDB
	err := r.querier.QueryRow(ctx, query, modify.Station, modify.Checkpoint.String(), modify.Direction.String()).
		Scan(&m.ID, &m.Station, &m.Checkpoint, &m.Direction, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected fuel config repository upsert station map error: %w", err)
	}

	return ToStationCheckpointDomain(&m), nil
}

package lpo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"fuelops/internal/entities"
	"fuelops/internal/service/lpo"
)

const entryColumns = `id, station, truck_no, liters, rate, do_no, cancellation_point, drivers_account, cancelled, cancel_reason, created_at`

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

func (r *Repository) Create(ctx context.Context, entryModify entities.LPOEntryModify) (*entities.LPOEntry, error) {
	query := `
		INSERT INTO lpo_entries (station, truck_no, liters, rate, do_no, cancellation_point, drivers_account)
		VALUES ($1, $2, $3, $4, COALESCE($5, ''), COALESCE($6, ''), COALESCE($7, FALSE))
		RETURNING ` + entryColumns

	var liters, rate float64
	if entryModify.Liters != nil {
		liters = entryModify.Liters.InexactFloat64()
	}
	if entryModify.Rate != nil {
		rate = entryModify.Rate.InexactFloat64()
	}

	entryDB, err := scanEntry(r.querier.QueryRow(
		ctx,
		query,
		entryModify.Station,
		entryModify.TruckNo,
		liters,
		rate,
		entryModify.DONo,
		entryModify.CancellationPoint,
		entryModify.DriversAccount,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected lpo repository create error: %w", err)
	}

	return ToDomain(entryDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.LPOEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM lpo_entries
		WHERE id = $1`

	entryDB, err := scanEntry(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lpo.ErrEntryNotFound
		}
		return nil, fmt.Errorf("unexpected lpo repository get error: %w", err)
	}

	return ToDomain(entryDB), nil
}

func (r *Repository) ListActiveByTruckAndStation(ctx context.Context, truckNo, station string) ([]entities.LPOEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM lpo_entries
		WHERE truck_no = $1
		  AND UPPER(station) = UPPER($2)
		  AND cancelled = FALSE
		ORDER BY created_at DESC, id DESC`

	return r.list(ctx, query, truckNo, station)
}

func (r *Repository) ListActiveByTruck(ctx context.Context, truckNo string) ([]entities.LPOEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM lpo_entries
		WHERE truck_no = $1
		  AND cancelled = FALSE
		ORDER BY created_at DESC, id DESC`

	return r.list(ctx, query, truckNo)
}

func (r *Repository) ListActiveByStation(ctx context.Context, station string) ([]entities.LPOEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM lpo_entries
		WHERE UPPER(station) = UPPER($1)
		  AND cancelled = FALSE
		ORDER BY created_at DESC, id DESC`

	return r.list(ctx, query, station)
}

func (r *Repository) Cancel(ctx context.Context, id int64, reason string) (*entities.LPOEntry, error) {
	query := `
		UPDATE lpo_entries
		SET cancelled = TRUE,
		    cancel_reason = $2
		WHERE id = $1
		RETURNING ` + entryColumns

	entryDB, err := scanEntry(r.querier.QueryRow(ctx, query, id, reason))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lpo.ErrEntryNotFound
		}
		return nil, fmt.Errorf("unexpected lpo repository cancel error: %w", err)
	}

	return ToDomain(entryDB), nil
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]entities.LPOEntry, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected lpo repository list error: %w", err)
	}
	defer rows.Close()

	var entries []entities.LPOEntry
	for rows.Next() {
		entryDB, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected lpo repository scan error: %w", err)
		}
		entries = append(entries, *ToDomain(entryDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected lpo repository rows error: %w", err)
	}

	return entries, nil
}

func scanEntry(row pgx.Row) (*LPOEntryDB, error) {
	var entryDB LPOEntryDB
	err := row.Scan(
		&entryDB.ID,
		&entryDB.Station,
		&entryDB.TruckNo,
		&entryDB.Liters,
		&entryDB.Rate,
		&entryDB.DONo,
		&entryDB.CancellationPoint,
		&entryDB.DriversAccount,
		&entryDB.Cancelled,
		&entryDB.CancelReason,
		&entryDB.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entryDB, nil
}

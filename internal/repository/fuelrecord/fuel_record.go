package fuelrecord

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"fuelops/internal/entities"
	"fuelops/internal/repository"
	"fuelops/internal/service/ledger"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const recordColumns = `id, truck_no, going_do, return_do,
	cp_yard, cp_kitwe, cp_chingola, cp_kasumbalesa, cp_likasi, cp_fungurume, cp_ndola_return, cp_kapiri_return,
	total_liters, extra, return_additional, balance, state, locked, lock_reason, version, created_at, updated_at`

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

func (r *Repository) Create(ctx context.Context, recordModify entities.FuelRecordModify) (*entities.FuelRecord, error) {
	builder := qb.Insert("fuel_records")

	cols, vals := insertColumns(&recordModify)
	builder = builder.Columns(cols...).Values(vals...).
		Suffix("RETURNING " + recordColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected fuel record repository create error: %w", err)
	}

	recordDB, err := scanRecord(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("fuel record for going order already exists: %w", err)
		}
		return nil, fmt.Errorf("unexpected fuel record repository create error: %w", err)
	}

	return ToDomain(recordDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.FuelRecord, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *Repository) GetByGoingDO(ctx context.Context, goingDO string) (*entities.FuelRecord, error) {
	return r.getOne(ctx, sq.Eq{"going_do": goingDO})
}

func (r *Repository) GetByReturnDO(ctx context.Context, returnDO string) (*entities.FuelRecord, error) {
	return r.getOne(ctx, sq.Eq{"return_do": returnDO})
}

func (r *Repository) GetOpenByTruck(ctx context.Context, truckNo string, since time.Time) (*entities.FuelRecord, error) {
	return r.getOne(ctx, sq.And{
		sq.Eq{"truck_no": truckNo},
		sq.Eq{"state": entities.RecordOpen.String()},
		sq.GtOrEq{"created_at": since},
	})
}

func (r *Repository) getOne(ctx context.Context, where sq.Sqlizer) (*entities.FuelRecord, error) {
	builder := qb.
		Select(recordColumns).
		From("fuel_records").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(1)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected fuel record repository get error: %w", err)
	}

	recordDB, err := scanRecord(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledger.ErrFuelRecordNotFound
		}
		return nil, fmt.Errorf("unexpected fuel record repository get error: %w", err)
	}

	return ToDomain(recordDB), nil
}

func (r *Repository) ListActive(ctx context.Context, since time.Time) ([]entities.FuelRecord, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM fuel_records
		WHERE state != $1
		  AND created_at >= $2
		ORDER BY created_at DESC, id DESC`

	rows, err := r.querier.Query(ctx, query, entities.RecordCancelled.String(), since)
	if err != nil {
		return nil, fmt.Errorf("unexpected fuel record repository list error: %w", err)
	}
	defer rows.Close()

	var records []entities.FuelRecord
	for rows.Next() {
		recordDB, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected fuel record repository scan error: %w", err)
		}
		records = append(records, *ToDomain(recordDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected fuel record repository rows error: %w", err)
	}

	return records, nil
}

// UpdateVersioned applies the partial update only when the stored row
// still carries expectedVersion, bumping the version by one. A missing
// row under the version predicate is disambiguated into not-found vs
// stale with a follow-up existence check.
func (r *Repository) UpdateVersioned(ctx context.Context, recordModify entities.FuelRecordModify, expectedVersion int64) (*entities.FuelRecord, error) {
	if recordModify.ID == nil {
		return nil, ledger.ErrFuelRecordNotFound
	}

	builder := qb.Update("fuel_records")

	if recordModify.TruckNo != nil {
		builder = builder.Set("truck_no", *recordModify.TruckNo)
	}
	if recordModify.GoingDO != nil {
		builder = builder.Set("going_do", *recordModify.GoingDO)
	}
	if recordModify.ReturnDO != nil {
		builder = builder.Set("return_do", *recordModify.ReturnDO)
	}
	for cp, liters := range recordModify.Checkpoints {
		if liters != nil {
			builder = builder.Set(checkpointColumn(cp), liters.InexactFloat64())
		}
	}
	if recordModify.TotalLiters != nil {
		builder = builder.Set("total_liters", recordModify.TotalLiters.InexactFloat64())
	}
	if recordModify.Extra != nil {
		builder = builder.Set("extra", recordModify.Extra.InexactFloat64())
	}
	if recordModify.ReturnAdditional != nil {
		builder = builder.Set("return_additional", recordModify.ReturnAdditional.InexactFloat64())
	}
	if recordModify.Balance != nil {
		builder = builder.Set("balance", recordModify.Balance.InexactFloat64())
	}
	if recordModify.State != nil {
		builder = builder.Set("state", recordModify.State.String())
	}
	if recordModify.Locked != nil {
		builder = builder.Set("locked", *recordModify.Locked)
	}
	if recordModify.LockReason != nil {
		builder = builder.Set("lock_reason", recordModify.LockReason.String())
	}

	builder = builder.
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": *recordModify.ID, "version": expectedVersion}).
		Suffix("RETURNING " + recordColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected fuel record repository update error: %w", err)
	}

	recordDB, err := scanRecord(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissedUpdate(ctx, *recordModify.ID)
		}
		return nil, fmt.Errorf("unexpected fuel record repository update error: %w", err)
	}

	return ToDomain(recordDB), nil
}

func (r *Repository) classifyMissedUpdate(ctx context.Context, id int64) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM fuel_records WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected fuel record repository update error: %w", err)
	}
	if exists {
		return ledger.ErrStaleRecord
	}
	return ledger.ErrFuelRecordNotFound
}

func insertColumns(recordModify *entities.FuelRecordModify) ([]string, []interface{}) {
	cols := []string{}
	vals := []interface{}{}

	add := func(col string, val interface{}) {
		cols = append(cols, col)
		vals = append(vals, val)
	}

	if recordModify.TruckNo != nil {
		add("truck_no", *recordModify.TruckNo)
	}
	if recordModify.GoingDO != nil {
		add("going_do", *recordModify.GoingDO)
	}
	if recordModify.ReturnDO != nil {
		add("return_do", *recordModify.ReturnDO)
	}
	for cp, liters := range recordModify.Checkpoints {
		if liters != nil {
			add(checkpointColumn(cp), liters.InexactFloat64())
		}
	}
	if recordModify.TotalLiters != nil {
		add("total_liters", recordModify.TotalLiters.InexactFloat64())
	}
	if recordModify.Extra != nil {
		add("extra", recordModify.Extra.InexactFloat64())
	}
	if recordModify.ReturnAdditional != nil {
		add("return_additional", recordModify.ReturnAdditional.InexactFloat64())
	}
	if recordModify.Balance != nil {
		add("balance", recordModify.Balance.InexactFloat64())
	}
	if recordModify.State != nil {
		add("state", recordModify.State.String())
	}
	if recordModify.Locked != nil {
		add("locked", *recordModify.Locked)
	}
	if recordModify.LockReason != nil {
		add("lock_reason", recordModify.LockReason.String())
	}

	return cols, vals
}

func scanRecord(row pgx.Row) (*FuelRecordDB, error) {
	var recordDB FuelRecordDB
	err := row.Scan(
		&recordDB.ID,
		&recordDB.TruckNo,
		&recordDB.GoingDO,
		&recordDB.ReturnDO,
		&recordDB.Yard,
		&recordDB.Kitwe,
		&recordDB.Chingola,
		&recordDB.Kasumbalesa,
		&recordDB.Likasi,
		&recordDB.Fungurume,
		&recordDB.NdolaReturn,
		&recordDB.KapiriReturn,
		&recordDB.TotalLiters,
		&recordDB.Extra,
		&recordDB.ReturnAdditional,
		&recordDB.Balance,
		&recordDB.State,
		&recordDB.Locked,
		&recordDB.LockReason,
		&recordDB.Version,
		&recordDB.CreatedAt,
		&recordDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &recordDB, nil
}

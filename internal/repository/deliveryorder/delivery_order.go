package deliveryorder

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
	"fuelops/internal/service/deliveryorder"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, order_no, order_type, truck_no, direction, loading_point, destination, order_date, cancelled, cancel_reason, created_at, updated_at`

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

func (r *Repository) Create(ctx context.Context, orderModify entities.DeliveryOrderModify) (*entities.DeliveryOrder, error) {
	modifyDB := FromDomainModify(&orderModify)

	query := `
		INSERT INTO delivery_orders (order_no, order_type, truck_no, direction, loading_point, destination, order_date)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, NOW()))
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		modifyDB.OrderNo,
		modifyDB.OrderType,
		modifyDB.TruckNo,
		modifyDB.Direction,
		modifyDB.LoadingPoint,
		modifyDB.Destination,
		modifyDB.OrderDate,
	)

	orderDB, err := scanOrder(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, deliveryorder.ErrConflict
		}
		return nil, fmt.Errorf("unexpected delivery order repository create error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetByOrderNo(ctx context.Context, orderNo string) (*entities.DeliveryOrder, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM delivery_orders
		WHERE order_no = $1`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, orderNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryorder.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected delivery order repository get error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetActiveByTruck(ctx context.Context, truckNo string, since time.Time) ([]entities.DeliveryOrder, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM delivery_orders
		WHERE truck_no = $1
		  AND cancelled = FALSE
		  AND order_date >= $2
		ORDER BY order_date DESC, id DESC`

	rows, err := r.querier.Query(ctx, query, truckNo, since)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery order repository list error: %w", err)
	}
	defer rows.Close()

	var orders []entities.DeliveryOrder
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery order repository scan error: %w", err)
		}
		orders = append(orders, *ToDomain(orderDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery order repository rows error: %w", err)
	}

	return orders, nil
}

func (r *Repository) Update(ctx context.Context, orderModify entities.DeliveryOrderModify) (*entities.DeliveryOrder, error) {
	modifyDB := FromDomainModify(&orderModify)

	builder := qb.Update("delivery_orders")

	if modifyDB.OrderType != nil {
		builder = builder.Set("order_type", modifyDB.OrderType)
	}
	if modifyDB.TruckNo != nil {
		builder = builder.Set("truck_no", modifyDB.TruckNo)
	}
	if modifyDB.Direction != nil {
		builder = builder.Set("direction", modifyDB.Direction)
	}
	if modifyDB.LoadingPoint != nil {
		builder = builder.Set("loading_point", modifyDB.LoadingPoint)
	}
	if modifyDB.Destination != nil {
		builder = builder.Set("destination", modifyDB.Destination)
	}
	if modifyDB.OrderDate != nil {
		builder = builder.Set("order_date", modifyDB.OrderDate)
	}
	if modifyDB.Cancelled != nil {
		builder = builder.Set("cancelled", modifyDB.Cancelled)
	}
	if modifyDB.CancelReason != nil {
		builder = builder.Set("cancel_reason", modifyDB.CancelReason)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"order_no": modifyDB.OrderNo}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery order repository update error: %w", err)
	}

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryorder.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected delivery order repository update error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func scanOrder(row pgx.Row) (*DeliveryOrderDB, error) {
	var orderDB DeliveryOrderDB
	err := row.Scan(
		&orderDB.ID,
		&orderDB.OrderNo,
		&orderDB.OrderType,
		&orderDB.TruckNo,
		&orderDB.Direction,
		&orderDB.LoadingPoint,
		&orderDB.Destination,
		&orderDB.OrderDate,
		&orderDB.Cancelled,
		&orderDB.CancelReason,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderDB, nil
}

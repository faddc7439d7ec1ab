package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/SergeyBogomolovv/pizza-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type orderRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *orderRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	items, delivery, err := encodeOrderDocuments(o)
	if err != nil {
		return err
	}

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.CustomerID, string(o.Status), string(o.Type),
			items, delivery, o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if _, err := trm.QuerierFrom(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *orderRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var row Order
	err := trm.QuerierFrom(ctx, r.db).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return OrderToEntity(row)
}

// CompareAndSwapStatus moves the order to next only if its stored status is
// still expected. A lost race yields ErrStatusConflict, a missing order
// ErrOrderNotFound; neither mutates the row.
func (r *orderRepo) CompareAndSwapStatus(ctx context.Context, orderID string, expected, next entities.OrderStatus, at time.Time) error {
	q := trm.QuerierFrom(ctx, r.db)

	query, args := r.qb.Update("orders").
		Set("status", string(next)).
		Set("updated_at", sq.Expr("GREATEST(updated_at, ?)", at)).
		Where(sq.Eq{"order_id": orderID, "status": string(expected)}).
		MustSql()

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 1 {
		return nil
	}

	query, args = r.qb.Select("1").
		Prefix("SELECT EXISTS (").
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		Suffix(")").
		MustSql()

	var exists bool
	if err := q.GetContext(ctx, &exists, query, args...); err != nil {
		return fmt.Errorf("failed to check order existence: %w", err)
	}
	if !exists {
		return entities.ErrOrderNotFound
	}
	return entities.ErrStatusConflict
}

type customerKey struct {
	Status  string `json:"status"`
	OrderID string `json:"orderId"`
}

func (r *orderRepo) OrdersByCustomer(ctx context.Context, customerID string, cursor entities.Cursor, limit int) (entities.OrdersPage, error) {
	sb := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("status", "order_id").
		Limit(uint64(limit + 1))

	if cursor != "" {
		var key customerKey
		if err := decodeCursor(cursor, &key); err != nil {
			return entities.OrdersPage{}, err
		}
		sb = sb.Where(sq.Expr("(status, order_id) > (?, ?)", key.Status, key.OrderID))
	}

	return r.page(ctx, sb, limit, func(last Order) any {
		return customerKey{Status: last.Status, OrderID: last.OrderID}
	})
}

type statusKey struct {
	CustomerID string `json:"customerId"`
	OrderID    string `json:"orderId"`
}

func (r *orderRepo) OrdersByStatus(ctx context.Context, status entities.OrderStatus, cursor entities.Cursor, limit int) (entities.OrdersPage, error) {
	sb := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": string(status)}).
		OrderBy("customer_id", "order_id").
		Limit(uint64(limit + 1))

	if cursor != "" {
		var key statusKey
		if err := decodeCursor(cursor, &key); err != nil {
			return entities.OrdersPage{}, err
		}
		sb = sb.Where(sq.Expr("(customer_id, order_id) > (?, ?)", key.CustomerID, key.OrderID))
	}

	return r.page(ctx, sb, limit, func(last Order) any {
		return statusKey{CustomerID: last.CustomerID, OrderID: last.OrderID}
	})
}

type createdKey struct {
	CreatedAt time.Time `json:"createdAt"`
	OrderID   string    `json:"orderId"`
}

// OrdersCreatedBetween pages over orders with start <= created_at <= end,
// optionally restricted to one status.
func (r *orderRepo) OrdersCreatedBetween(ctx context.Context, start, end time.Time, status *entities.OrderStatus, cursor entities.Cursor, limit int) (entities.OrdersPage, error) {
	sb := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Expr("created_at BETWEEN ? AND ?", start, end)).
		OrderBy("created_at", "order_id").
		Limit(uint64(limit + 1))

	if status != nil {
		sb = sb.Where(sq.Eq{"status": string(*status)})
	}

	if cursor != "" {
		var key createdKey
		if err := decodeCursor(cursor, &key); err != nil {
			return entities.OrdersPage{}, err
		}
		sb = sb.Where(sq.Expr("(created_at, order_id) > (?, ?)", key.CreatedAt, key.OrderID))
	}

	return r.page(ctx, sb, limit, func(last Order) any {
		return createdKey{CreatedAt: last.CreatedAt, OrderID: last.OrderID}
	})
}

// page runs a query built with LIMIT limit+1; the extra row only signals
// that another page exists.
func (r *orderRepo) page(ctx context.Context, sb sq.SelectBuilder, limit int, keyOf func(Order) any) (entities.OrdersPage, error) {
	query, args := sb.MustSql()

	var rows []Order
	if err := trm.QuerierFrom(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return entities.OrdersPage{}, fmt.Errorf("failed to select orders: %w", err)
	}

	var next entities.Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		c, err := encodeCursor(keyOf(rows[len(rows)-1]))
		if err != nil {
			return entities.OrdersPage{}, err
		}
		next = c
	}

	orders, err := OrdersToEntities(rows)
	if err != nil {
		return entities.OrdersPage{}, err
	}
	return entities.OrdersPage{Orders: orders, Next: next}, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/SergeyBogomolovv/pizza-service/internal/lifecycle"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// CustomerPageSize is the page size of the paginated customer order listing.
const CustomerPageSize = 15

// catalogLookupLimit bounds concurrent catalog lookups of a single order.
const catalogLookupLimit = 8

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)

	// CompareAndSwapStatus fails with ErrStatusConflict when the stored
	// status differs from expected, without touching the order.
	CompareAndSwapStatus(ctx context.Context, orderID string, expected, next entities.OrderStatus, at time.Time) error

	OrdersByCustomer(ctx context.Context, customerID string, cursor entities.Cursor, limit int) (entities.OrdersPage, error)
	OrdersByStatus(ctx context.Context, status entities.OrderStatus, cursor entities.Cursor, limit int) (entities.OrdersPage, error)
	OrdersCreatedBetween(ctx context.Context, start, end time.Time, status *entities.OrderStatus, cursor entities.Cursor, limit int) (entities.OrdersPage, error)
}

type Catalog interface {
	GetVariant(ctx context.Context, baseSku, variantSku string) (entities.ProductVariant, error)
}

type QueryOptions struct {
	DrainTimeout  time.Duration
	DrainPageSize int
}

type orderService struct {
	logger  *slog.Logger
	repo    OrderRepo
	catalog Catalog
	machine *lifecycle.Machine
	query   QueryOptions
	now     func() time.Time
}

func NewOrderService(logger *slog.Logger, repo OrderRepo, catalog Catalog, machine *lifecycle.Machine, query QueryOptions) *orderService {
	if query.DrainTimeout <= 0 {
		query.DrainTimeout = 10 * time.Second
	}
	if query.DrainPageSize <= 0 {
		query.DrainPageSize = 100
	}
	return &orderService{
		logger:  logger.With(slog.String("service", "order")),
		repo:    repo,
		catalog: catalog,
		machine: machine,
		query:   query,
		now:     time.Now,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, in entities.CreateOrder) (string, error) {
	if in.Type == entities.OrderTypeDelivery && (in.DeliveryInformation == nil || !in.DeliveryInformation.Complete()) {
		return "", entities.ErrMissingDeliveryInformation
	}
	if in.Type == entities.OrderTypePickUp {
		in.DeliveryInformation = nil
	}

	priced := make([]*entities.OrderItem, len(in.Items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(catalogLookupLimit)
	for i, item := range in.Items {
		i, item := i, item
		g.Go(func() error {
			variant, err := s.catalog.GetVariant(gctx, item.BaseSku, item.VariantSku)
			if errors.Is(err, entities.ErrProductNotFound) {
				s.logger.WarnContext(ctx, "dropping item missing from catalog",
					slog.String("customer_id", in.CustomerID),
					slog.String("base_sku", item.BaseSku),
					slog.String("variant_sku", item.VariantSku),
				)
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to price item %s: %w", item.VariantSku, err)
			}
			priced[i] = &entities.OrderItem{
				BaseSku:    variant.BaseSku,
				VariantSku: variant.VariantSku,
				Quantity:   item.Quantity,
				Price:      variant.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	now := s.now().UTC()
	order := entities.Order{
		ID:                  uuid.NewString(),
		CustomerID:          in.CustomerID,
		Items:               make([]entities.OrderItem, 0, len(priced)),
		Type:                in.Type,
		Status:              entities.StatusPending,
		DeliveryInformation: in.DeliveryInformation,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	for _, it := range priced {
		if it != nil {
			order.Items = append(order.Items, *it)
		}
	}

	if err := s.repo.SaveOrder(ctx, order); err != nil {
		return "", err
	}

	s.logger.DebugContext(ctx, "order created",
		slog.String("order_id", order.ID),
		slog.Int("items", len(order.Items)),
	)
	return order.ID, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	return s.repo.GetOrderByID(ctx, orderID)
}

// UpdateStatus moves the order along the edge the role owns from its
// current status. The write is conditioned on the status that was read, so
// a concurrent transition surfaces as ErrStatusConflict and is not retried.
func (s *orderService) UpdateStatus(ctx context.Context, role entities.Role, orderID string, target entities.OrderStatus) (lifecycle.Transition, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return lifecycle.Transition{}, err
	}

	tr, err := s.machine.Resolve(role, order, target)
	if err != nil {
		return lifecycle.Transition{}, err
	}

	if err := s.repo.CompareAndSwapStatus(ctx, orderID, tr.From, tr.To, s.now().UTC()); err != nil {
		return lifecycle.Transition{}, err
	}

	s.logger.InfoContext(ctx, "order status updated",
		slog.String("order_id", orderID),
		slog.String("role", role.String()),
		slog.String("from", tr.From.String()),
		slog.String("to", tr.To.String()),
	)
	return tr, nil
}

func (s *orderService) GetOrdersPerCustomer(ctx context.Context, caller entities.Principal, customerID string, cursor entities.Cursor) (entities.OrdersPage, error) {
	if err := checkOwner(caller, customerID); err != nil {
		return entities.OrdersPage{}, err
	}
	return s.repo.OrdersByCustomer(ctx, customerID, cursor, CustomerPageSize)
}

// GetCurrentOrders returns every order of the customer that has not reached
// a terminal status.
func (s *orderService) GetCurrentOrders(ctx context.Context, caller entities.Principal, customerID string) ([]entities.Order, error) {
	if err := checkOwner(caller, customerID); err != nil {
		return nil, err
	}

	all, err := s.drain(ctx, func(ctx context.Context, cursor entities.Cursor, limit int) (entities.OrdersPage, error) {
		return s.repo.OrdersByCustomer(ctx, customerID, cursor, limit)
	})
	if err != nil {
		return nil, err
	}

	current := make([]entities.Order, 0, len(all))
	for _, o := range all {
		if !o.Status.Terminal() {
			current = append(current, o)
		}
	}
	return current, nil
}

func (s *orderService) GetOrdersByStatus(ctx context.Context, role entities.Role, status entities.OrderStatus) ([]entities.Order, error) {
	if !status.Valid() {
		return nil, entities.ErrUnknownStatus
	}
	if !s.machine.CanView(role, status) {
		return nil, entities.ErrStatusNotVisible
	}

	return s.drain(ctx, func(ctx context.Context, cursor entities.Cursor, limit int) (entities.OrdersPage, error) {
		return s.repo.OrdersByStatus(ctx, status, cursor, limit)
	})
}

// GetOrdersInDateRange returns orders created from the start of start's day
// to the end of end's day, both in UTC. The optional status filter accepts
// only pending or cancel.
func (s *orderService) GetOrdersInDateRange(ctx context.Context, start, end time.Time, status *entities.OrderStatus) ([]entities.Order, error) {
	if status != nil && *status != entities.StatusPending && *status != entities.StatusCancel {
		return nil, entities.ErrInvalidStatusFilter
	}

	from, to := DayBounds(start, end)
	if to.Before(from) {
		return nil, entities.ErrInvalidDateRange
	}

	return s.drain(ctx, func(ctx context.Context, cursor entities.Cursor, limit int) (entities.OrdersPage, error) {
		return s.repo.OrdersCreatedBetween(ctx, from, to, status, cursor, limit)
	})
}

// DayBounds widens [start, end] to whole UTC days.
func DayBounds(start, end time.Time) (time.Time, time.Time) {
	start = start.UTC()
	end = end.UTC()
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	return from, to
}

type pageFunc func(ctx context.Context, cursor entities.Cursor, limit int) (entities.OrdersPage, error)

// drain follows continuation cursors until the result set is exhausted,
// bounded by the drain timeout.
func (s *orderService) drain(ctx context.Context, fetch pageFunc) ([]entities.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, s.query.DrainTimeout)
	defer cancel()

	orders := []entities.Order{}
	var cursor entities.Cursor
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("drain interrupted after %d orders: %w", len(orders), err)
		}

		page, err := fetch(ctx, cursor, s.query.DrainPageSize)
		if err != nil {
			return nil, err
		}
		orders = append(orders, page.Orders...)

		if page.Next == "" {
			return orders, nil
		}
		cursor = page.Next
	}
}

// checkOwner lets customers read only their own orders; staff read any.
func checkOwner(caller entities.Principal, customerID string) error {
	if caller.Role == entities.RoleCustomer && caller.ID != customerID {
		return entities.ErrForeignOrders
	}
	return nil
}

package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/pizza-service/internal/auth"
	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/SergeyBogomolovv/pizza-service/internal/lifecycle"
	"github.com/SergeyBogomolovv/pizza-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in entities.CreateOrder) (string, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	UpdateStatus(ctx context.Context, role entities.Role, orderID string, target entities.OrderStatus) (lifecycle.Transition, error)
	GetOrdersPerCustomer(ctx context.Context, caller entities.Principal, customerID string, cursor entities.Cursor) (entities.OrdersPage, error)
	GetCurrentOrders(ctx context.Context, caller entities.Principal, customerID string) ([]entities.Order, error)
	GetOrdersByStatus(ctx context.Context, role entities.Role, status entities.OrderStatus) ([]entities.Order, error)
	GetOrdersInDateRange(ctx context.Context, start, end time.Time, status *entities.OrderStatus) ([]entities.Order, error)
}

type OrderHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	svc       OrderService
	authorize Middleware
}

func NewOrderHandler(logger *slog.Logger, svc OrderService, authorize Middleware) *OrderHandler {
	return &OrderHandler{
		logger:    logger.With(slog.String("handler", "order")),
		validate:  validator.New(),
		svc:       svc,
		authorize: authorize,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.With(h.authorize).Post(auth.RouteOrders, h.CreateOrder)
	r.With(h.authorize).Get(auth.RouteOrder, h.GetOrderByID)
	r.With(h.authorize).Patch(auth.RouteOrder, h.UpdateStatus)
	r.With(h.authorize).Post(auth.RouteCustomerOrders, h.GetOrdersPerCustomer)
	r.With(h.authorize).Get(auth.RouteCustomerCurrentOrders, h.GetCurrentOrders)
	r.With(h.authorize).Post(auth.RouteOrdersByStatus, h.GetOrdersByStatus)
	r.With(h.authorize).Post(auth.RouteOrdersBetween, h.GetOrdersInDateRange)
}

// CreateOrder places an order for the authenticated customer.
// @Summary      Place an order
// @Description  Prices every item from the catalog; items missing from the catalog are dropped
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateOrderRequest  true  "Order"
// @Success      200  {object}  CreateOrderResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	// checked ahead of struct validation so an empty delivery order reports the missing address
	if req.Type == string(entities.OrderTypeDelivery) && req.DeliveryInformation == nil {
		writeServiceError(w, r, h.logger, "failed to create order", entities.ErrMissingDeliveryInformation)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	caller := principal(r)
	orderID, err := h.svc.CreateOrder(ctx, CreateOrderJSONToEntity(caller.ID, req))
	if err != nil {
		writeServiceError(w, r, h.logger, "failed to create order", err, slog.String("customer_id", caller.ID))
		return
	}

	ordersCreated.WithLabelValues(req.Type).Inc()
	utils.WriteJSON(w, CreateOrderResponse{Message: "ORDER_CREATED", OrderID: orderID}, http.StatusOK)
}

// GetOrderByID returns one order.
// @Summary      Get order
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        orderId  path      string  true  "Order id"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders/{orderId} [get]
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "orderId")

	order, err := h.svc.GetOrderByID(ctx, orderID)
	if err != nil {
		writeServiceError(w, r, h.logger, "failed to get order", err, slog.String("order_id", orderID))
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateStatus moves an order to the next status allowed for the caller's role.
// @Summary      Update order status
// @Description  The body names the desired target status. The current status is read from storage and the write only succeeds if it is unchanged.
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        orderId  path      string                    true  "Order id"
// @Param        request  body      UpdateOrderStatusRequest  false "Target status"
// @Success      200  {object}  UpdateOrderStatusResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Status changed concurrently"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders/{orderId} [patch]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "orderId")

	var req UpdateOrderStatusRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	role := principal(r).Role
	tr, err := h.svc.UpdateStatus(ctx, role, orderID, entities.OrderStatus(req.Status))
	if err != nil {
		statusUpdateFailures.WithLabelValues(role.String(), strconv.Itoa(statusOf(err))).Inc()
		writeServiceError(w, r, h.logger, "failed to update order status", err,
			slog.String("order_id", orderID),
			slog.String("role", role.String()),
		)
		return
	}

	statusTransitions.WithLabelValues(tr.From.String(), tr.To.String(), role.String()).Inc()
	utils.WriteJSON(w, UpdateOrderStatusResponse{
		Message: "Order status updated to " + tr.To.String(),
		From:    tr.From.String(),
		To:      tr.To.String(),
	}, http.StatusOK)
}

// GetOrdersPerCustomer returns one page of a customer's orders.
// @Summary      Customer orders
// @Description  Customers may only read their own orders. Pages hold 15 orders.
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        customerId  path      string       true   "Customer id"
// @Param        request     body      PageRequest  false  "Continuation"
// @Success      200  {object}  OrdersPageResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders/customer/{customerId} [post]
func (h *OrderHandler) GetOrdersPerCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID := chi.URLParam(r, "customerId")

	var req PageRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	page, err := h.svc.GetOrdersPerCustomer(ctx, principal(r), customerID, entities.Cursor(req.NextKey))
	if err != nil {
		writeServiceError(w, r, h.logger, "failed to fetch orders per customer", err, slog.String("customer_id", customerID))
		return
	}

	utils.WriteJSON(w, OrdersPageResponse{
		Orders:  OrdersEntityToJSON(page.Orders),
		NextKey: string(page.Next),
	}, http.StatusOK)
}

// GetCurrentOrders returns every order of the customer still in progress.
// @Summary      Current customer orders
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        customerId  path      string  true  "Customer id"
// @Success      200  {object}  CurrentOrdersResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders/customer/{customerId}/current [get]
func (h *OrderHandler) GetCurrentOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID := chi.URLParam(r, "customerId")

	orders, err := h.svc.GetCurrentOrders(ctx, principal(r), customerID)
	if err != nil {
		writeServiceError(w, r, h.logger, "failed to fetch current orders", err, slog.String("customer_id", customerID))
		return
	}

	utils.WriteJSON(w, CurrentOrdersResponse{CurrentOrders: OrdersEntityToJSON(orders)}, http.StatusOK)
}

// GetOrdersByStatus returns every order in a status.
// @Summary      Orders by status
// @Description  Staff may only list statuses they can act on; administrators may list any status.
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        status  path      string  true  "Order status"
// @Success      200  {object}  OrdersResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders/status/{status} [post]
func (h *OrderHandler) GetOrdersByStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := entities.OrderStatus(chi.URLParam(r, "status"))

	orders, err := h.svc.GetOrdersByStatus(ctx, principal(r).Role, status)
	if err != nil {
		writeServiceError(w, r, h.logger, "failed to fetch orders by status", err, slog.String("status", status.String()))
		return
	}

	utils.WriteJSON(w, OrdersResponse{Orders: OrdersEntityToJSON(orders)}, http.StatusOK)
}

// GetOrdersInDateRange returns orders created between two days.
// @Summary      Orders in a date range
// @Description  Dates are millisecond epochs; both days are included in full (UTC).
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        startDate  path      string               true   "Start, ms since epoch"
// @Param        endDate    path      string               true   "End, ms since epoch"
// @Param        request    body      StatusFilterRequest  false  "Status filter"
// @Success      200  {object}  OrdersResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders/between/{startDate}/{endDate} [post]
func (h *OrderHandler) GetOrdersInDateRange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	start, err := parseEpochMillis(chi.URLParam(r, "startDate"))
	if err != nil {
		utils.WriteError(w, "startDate must be a millisecond epoch", http.StatusBadRequest)
		return
	}
	end, err := parseEpochMillis(chi.URLParam(r, "endDate"))
	if err != nil {
		utils.WriteError(w, "endDate must be a millisecond epoch", http.StatusBadRequest)
		return
	}

	var req StatusFilterRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var status *entities.OrderStatus
	if req.Status != "" {
		s := entities.OrderStatus(req.Status)
		status = &s
	}

	orders, err := h.svc.GetOrdersInDateRange(ctx, start, end, status)
	if err != nil {
		writeServiceError(w, r, h.logger, "failed to fetch orders in date range", err)
		return
	}

	utils.WriteJSON(w, OrdersResponse{Orders: OrdersEntityToJSON(orders)}, http.StatusOK)
}

func parseEpochMillis(s string) (time.Time, error) {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}

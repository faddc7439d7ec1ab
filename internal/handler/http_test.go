package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/SergeyBogomolovv/pizza-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/pizza-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/pizza-service/internal/lifecycle"
	"github.com/SergeyBogomolovv/pizza-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// as stands in for authentication: it attaches p to every request.
func as(p entities.Principal) handler.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithPrincipal(r.Context(), p)))
		})
	}
}

var (
	customer = entities.Principal{ID: "c1", Role: entities.RoleCustomer}
	kitchen  = entities.Principal{ID: "k1", Role: entities.RoleKitchenStaff}
	store    = entities.Principal{ID: "s1", Role: entities.RoleStoreStaff}
	admin    = entities.Principal{ID: "a1", Role: entities.RoleAdministrator}
)

func serve(t *testing.T, h interface{ Init(chi.Router) }, method, path, body string) (int, string) {
	t.Helper()

	r := chi.NewRouter()
	h.Init(r)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(data)
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name         string
		caller       entities.Principal
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			caller: kitchen,
			body:   `{"status":"preparing"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateStatus(mock.Anything, entities.RoleKitchenStaff, "o1", entities.StatusPreparing).
					Return(lifecycle.Transition{From: entities.StatusPending, To: entities.StatusPreparing}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"to":"preparing"`,
		},
		{
			name:   "empty body asks for next step",
			caller: store,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateStatus(mock.Anything, entities.RoleStoreStaff, "o1", entities.OrderStatus("")).
					Return(lifecycle.Transition{From: entities.StatusPending, To: entities.StatusCancel}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"Order status updated to cancel"`,
		},
		{
			name:         "unknown status",
			caller:       kitchen,
			body:         `{"status":"baking"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Status":"oneof"`,
		},
		{
			name:   "transition not allowed",
			caller: kitchen,
			body:   `{"status":"delivered"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateStatus(mock.Anything, entities.RoleKitchenStaff, "o1", entities.StatusDelivered).
					Return(lifecycle.Transition{}, entities.ErrTransitionNotAllowed).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"not authorized to update order status"`,
		},
		{
			name:   "conflict",
			caller: store,
			body:   `{"status":"cancel"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateStatus(mock.Anything, entities.RoleStoreStaff, "o1", entities.StatusCancel).
					Return(lifecycle.Transition{}, entities.ErrStatusConflict).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"order status changed concurrently"`,
		},
		{
			name:   "not found",
			caller: admin,
			body:   `{"status":"completed"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateStatus(mock.Anything, entities.RoleAdministrator, "o1", entities.StatusCompleted).
					Return(lifecycle.Transition{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:   "internal error",
			caller: admin,
			body:   `{"status":"completed"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateStatus(mock.Anything, entities.RoleAdministrator, "o1", entities.StatusCompleted).
					Return(lifecycle.Transition{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			h := handler.NewOrderHandler(newTestLogger(), svc, as(tc.caller))
			status, body := serve(t, h, http.MethodPatch, "/orders/o1", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"type":"pickup","items":[{"baseSku":"MARG","variantSku":"MARG_SMALL","quantity":2}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, entities.CreateOrder{
						CustomerID: "c1",
						Type:       entities.OrderTypePickUp,
						Items:      []entities.OrderItemRequest{{BaseSku: "MARG", VariantSku: "MARG_SMALL", Quantity: 2}},
					}).
					Return("o1", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"orderId":"o1"`,
		},
		{
			name: "delivery without address",
			body:         `{"type":"delivery","items":[{"baseSku":"MARG","variantSku":"MARG_SMALL","quantity":1}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"delivery information must be provided"`,
		},
		{
			name:         "delivery without address and empty items",
			body:         `{"type":"delivery","items":[]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"delivery information must be provided"`,
		},
		{
			name:         "delivery without address and no items",
			body:         `{"type":"delivery"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"delivery information must be provided"`,
		},
		{
			name: "service rejects delivery information",
			body: `{"type":"delivery","items":[{"baseSku":"MARG","variantSku":"MARG_SMALL","quantity":1}],"deliveryInformation":{"addressLine1":"1 Main St","postalCode":"62701","city":"Springfield","country":"US"}}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return("", entities.ErrMissingDeliveryInformation).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"delivery information must be provided"`,
		},
		{
			name:         "invalid type",
			body:         `{"type":"drone","items":[{"baseSku":"MARG","variantSku":"MARG_SMALL","quantity":1}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Type":"oneof"`,
		},
		{
			name:         "malformed json",
			body:         `{"type":`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			h := handler.NewOrderHandler(newTestLogger(), svc, as(customer))
			status, body := serve(t, h, http.MethodPost, "/orders", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrderHandler_GetOrderByID(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	order := entities.Order{
		ID:         "o1",
		CustomerID: "c1",
		Type:       entities.OrderTypePickUp,
		Status:     entities.StatusPending,
		Items: []entities.OrderItem{
			{BaseSku: "MARG", VariantSku: "MARG_SMALL", Quantity: 2, Price: decimal.RequireFromString("19.98")},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}

	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().GetOrderByID(mock.Anything, "o1").Return(order, nil).Once()

	h := handler.NewOrderHandler(newTestLogger(), svc, as(kitchen))
	status, body := serve(t, h, http.MethodGet, "/orders/o1", "")

	require.Equal(t, http.StatusOK, status)

	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "o1", resp["id"])
	assert.Equal(t, "pending", resp["status"])
	assert.Equal(t, "19.98", resp["total"])
	assert.NotContains(t, resp, "deliveryInformation")
}

func TestOrderHandler_GetOrdersPerCustomer(t *testing.T) {
	t.Run("passes cursor through", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().
			GetOrdersPerCustomer(mock.Anything, customer, "c1", entities.Cursor("abc")).
			Return(entities.OrdersPage{Orders: []entities.Order{{ID: "o1"}}, Next: "def"}, nil).Once()

		h := handler.NewOrderHandler(newTestLogger(), svc, as(customer))
		status, body := serve(t, h, http.MethodPost, "/orders/customer/c1", `{"nextKey":"abc"}`)

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"nextKey":"def"`)
	})

	t.Run("foreign customer", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().
			GetOrdersPerCustomer(mock.Anything, customer, "c2", entities.Cursor("")).
			Return(entities.OrdersPage{}, entities.ErrForeignOrders).Once()

		h := handler.NewOrderHandler(newTestLogger(), svc, as(customer))
		status, _ := serve(t, h, http.MethodPost, "/orders/customer/c2", "")

		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("invalid cursor", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().
			GetOrdersPerCustomer(mock.Anything, customer, "c1", entities.Cursor("???")).
			Return(entities.OrdersPage{}, entities.ErrInvalidCursor).Once()

		h := handler.NewOrderHandler(newTestLogger(), svc, as(customer))
		status, _ := serve(t, h, http.MethodPost, "/orders/customer/c1", `{"nextKey":"???"}`)

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestOrderHandler_GetCurrentOrders(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().
		GetCurrentOrders(mock.Anything, customer, "c1").
		Return([]entities.Order{{ID: "o1", Status: entities.StatusPreparing}}, nil).Once()

	h := handler.NewOrderHandler(newTestLogger(), svc, as(customer))
	status, body := serve(t, h, http.MethodGet, "/orders/customer/c1/current", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"currentOrders":[{"id":"o1"`)
}

func TestOrderHandler_GetOrdersByStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().
			GetOrdersByStatus(mock.Anything, entities.RoleKitchenStaff, entities.StatusPreparing).
			Return([]entities.Order{}, nil).Once()

		h := handler.NewOrderHandler(newTestLogger(), svc, as(kitchen))
		status, body := serve(t, h, http.MethodPost, "/orders/status/preparing", "")

		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"orders":[]}`, body)
	})

	t.Run("status not visible", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().
			GetOrdersByStatus(mock.Anything, entities.RoleStoreStaff, entities.StatusPreparing).
			Return(nil, entities.ErrStatusNotVisible).Once()

		h := handler.NewOrderHandler(newTestLogger(), svc, as(store))
		status, _ := serve(t, h, http.MethodPost, "/orders/status/preparing", "")

		assert.Equal(t, http.StatusForbidden, status)
	})
}

func TestOrderHandler_GetOrdersInDateRange(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	path := "/orders/between/" + strconv.FormatInt(start.UnixMilli(), 10) + "/" + strconv.FormatInt(end.UnixMilli(), 10)

	testCases := []struct {
		name         string
		path         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
	}{
		{
			name: "without filter",
			path: path,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrdersInDateRange(mock.Anything, start, end, (*entities.OrderStatus)(nil)).
					Return([]entities.Order{}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "with filter",
			path: path,
			body: `{"status":"cancel"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrdersInDateRange(mock.Anything, start, end, mock.MatchedBy(func(s *entities.OrderStatus) bool {
						return s != nil && *s == entities.StatusCancel
					})).
					Return([]entities.Order{}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "filter outside pending and cancel",
			path: path,
			body: `{"status":"preparing"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrdersInDateRange(mock.Anything, start, end, mock.Anything).
					Return(nil, entities.ErrInvalidStatusFilter).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:         "malformed date",
			path:         "/orders/between/yesterday/" + strconv.FormatInt(end.UnixMilli(), 10),
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			h := handler.NewOrderHandler(newTestLogger(), svc, as(admin))
			status, _ := serve(t, h, http.MethodPost, tc.path, tc.body)

			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestServiceHandler(t *testing.T) {
	h := handler.NewServiceHandler()

	status, body := serve(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Healthy"}`, body)

	status, body = serve(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "/docs")
}

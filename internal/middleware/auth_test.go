package middleware_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/pizza-service/internal/auth"
	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/SergeyBogomolovv/pizza-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubAuthenticator map[string]entities.Principal

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (entities.Principal, error) {
	if token == "broken" {
		return entities.Principal{}, errors.New("db error")
	}
	p, ok := s[token]
	if !ok {
		return entities.Principal{}, entities.ErrUnauthenticated
	}
	return p, nil
}

func newRouter() chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authn := stubAuthenticator{
		"customer": {ID: "c1", Role: entities.RoleCustomer},
		"kitchen":  {ID: "k1", Role: entities.RoleKitchenStaff},
		"admin":    {ID: "a1", Role: entities.RoleAdministrator},
	}
	authz := middleware.Authorize(auth.NewAuthorizer(auth.DefaultPermissions()))

	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	r := chi.NewRouter()
	r.Use(middleware.Authenticate(logger, authn))
	r.With(authz).Post(auth.RouteUsers, ok)
	r.With(authz).Patch(auth.RouteOrder, ok)
	r.With(authz).Post(auth.RouteOrdersBetween, ok)
	r.Route("/orders/customer", func(r chi.Router) {
		r.With(authz).Post("/{customerId}", ok)
	})
	// registered without a permission entry
	r.With(authz).Get("/orders/{orderId}/audit", ok)
	return r
}

func TestAuthorize(t *testing.T) {
	testCases := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{"anonymous may register", http.MethodPost, "/users", "", http.StatusOK},
		{"customer may not register", http.MethodPost, "/users", "customer", http.StatusForbidden},
		{"kitchen updates status", http.MethodPatch, "/orders/o1", "kitchen", http.StatusOK},
		{"customer cannot update status", http.MethodPatch, "/orders/o1", "customer", http.StatusForbidden},
		{"anonymous cannot update status", http.MethodPatch, "/orders/o1", "", http.StatusUnauthorized},
		{"admin reads date range", http.MethodPost, "/orders/between/1/2", "admin", http.StatusOK},
		{"kitchen cannot read date range", http.MethodPost, "/orders/between/1/2", "kitchen", http.StatusForbidden},
		{"pattern of sub-router", http.MethodPost, "/orders/customer/c1", "customer", http.StatusOK},
		{"route missing from table", http.MethodGet, "/orders/o1/audit", "admin", http.StatusForbidden},
		{"unknown token", http.MethodPatch, "/orders/o1", "forged", http.StatusUnauthorized},
		{"authenticator fails", http.MethodPatch, "/orders/o1", "broken", http.StatusInternalServerError},
	}

	r := newRouter()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/users", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rr := httptest.NewRecorder()

	newRouter().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), `"unauthorized"`)
}

func TestPrincipalFrom(t *testing.T) {
	_, ok := middleware.PrincipalFrom(context.Background())
	assert.False(t, ok)

	ctx := middleware.WithPrincipal(context.Background(), entities.Principal{ID: "u1", Role: entities.RoleCustomer})
	p, ok := middleware.PrincipalFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", p.ID)
}

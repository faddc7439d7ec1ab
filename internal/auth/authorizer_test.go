package auth_test

import (
	"testing"

	"github.com/SergeyBogomolovv/pizza-service/internal/auth"
	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizer_IsAuthorized(t *testing.T) {
	a := auth.NewAuthorizer(auth.DefaultPermissions())

	testCases := []struct {
		name  string
		role  entities.Role
		route string
		want  bool
	}{
		{"admin finds users by role", entities.RoleAdministrator, auth.RouteUsersByRole, true},
		{"store staff creates customers", entities.RoleStoreStaff, auth.RouteUsers, true},
		{"anonymous signs up", entities.RoleAnonymous, auth.RouteUsers, true},
		{"customer cannot create staff", entities.RoleCustomer, auth.RouteInternalUsers, false},
		{"anonymous cannot create orders", entities.RoleAnonymous, auth.RouteOrders, false},
		{"admin has no current orders", entities.RoleAdministrator, auth.RouteCustomerCurrentOrders, false},
		{"kitchen updates order", entities.RoleKitchenStaff, auth.RouteOrder, true},
		{"customer cannot update order", entities.RoleCustomer, auth.RouteOrder, false},
		{"resolved url is not a pattern", entities.RoleKitchenStaff, "/orders/123", false},
		{"unknown route", entities.RoleDeliveryStaff, "/nonexistent-route", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, a.IsAuthorized(tc.role, tc.route))
		})
	}
}

func TestAuthorizer_UnknownRouteDeniesEveryone(t *testing.T) {
	a := auth.NewAuthorizer(auth.DefaultPermissions())

	roles := append(entities.Roles(), entities.RoleAnonymous)
	for _, route := range []string{"/", "/admin", "/orders/{id}", "/users/find/:role"} {
		for _, role := range roles {
			assert.False(t, a.IsAuthorized(role, route), "role=%s route=%s", role, route)
		}
	}
}

func TestAuthorizer_MatchesTable(t *testing.T) {
	perms := auth.DefaultPermissions()
	a := auth.NewAuthorizer(perms)

	roles := append(entities.Roles(), entities.RoleAnonymous)
	for route, allowed := range perms {
		for _, role := range roles {
			want := false
			for _, r := range allowed {
				if r == role {
					want = true
				}
			}
			assert.Equal(t, want, a.IsAuthorized(role, route), "role=%s route=%s", role, route)
		}
	}
}

func TestAuthorizer_TableIsCopied(t *testing.T) {
	perms := auth.Permissions{"/x": {entities.RoleCustomer}}
	a := auth.NewAuthorizer(perms)

	perms["/x"] = append(perms["/x"], entities.RoleAnonymous)
	perms["/y"] = []entities.Role{entities.RoleCustomer}

	assert.False(t, a.IsAuthorized(entities.RoleAnonymous, "/x"))
	assert.False(t, a.IsAuthorized(entities.RoleCustomer, "/y"))
}

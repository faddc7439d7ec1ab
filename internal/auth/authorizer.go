package auth

import (
	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
)

// Permissions maps a route pattern to the roles allowed to call it.
// entities.RoleAnonymous in the list opens the route to unauthenticated callers.
type Permissions map[string][]entities.Role

func DefaultPermissions() Permissions {
	staff := []entities.Role{
		entities.RoleAdministrator,
		entities.RoleDeliveryStaff,
		entities.RoleKitchenStaff,
		entities.RoleStoreStaff,
	}

	return Permissions{
		RouteUsersByRole:   {entities.RoleAdministrator},
		RouteInternalUsers: {entities.RoleAdministrator},
		RouteUsers:         {entities.RoleAnonymous, entities.RoleAdministrator, entities.RoleStoreStaff},

		RouteProducts:       {entities.RoleAdministrator},
		RouteProductsFind:   {entities.RoleAdministrator, entities.RoleCustomer},
		RouteProductsUpdate: {entities.RoleAdministrator},
		RouteProductsDelete: {entities.RoleAdministrator},

		RouteOrders:                {entities.RoleCustomer},
		RouteCustomerOrders:        {entities.RoleCustomer, entities.RoleAdministrator},
		RouteCustomerCurrentOrders: {entities.RoleCustomer},
		RouteOrdersByStatus:        staff,
		RouteOrdersBetween:         {entities.RoleAdministrator},
		RouteOrder:                 staff,
	}
}

// Authorizer answers role/route questions against a table fixed at construction.
type Authorizer struct {
	routes map[string]map[entities.Role]struct{}
}

func NewAuthorizer(perms Permissions) *Authorizer {
	routes := make(map[string]map[entities.Role]struct{}, len(perms))
	for route, roles := range perms {
		set := make(map[entities.Role]struct{}, len(roles))
		for _, r := range roles {
			set[r] = struct{}{}
		}
		routes[route] = set
	}
	return &Authorizer{routes: routes}
}

// IsAuthorized fails closed: a route missing from the table denies everyone.
func (a *Authorizer) IsAuthorized(role entities.Role, route string) bool {
	allowed, ok := a.routes[route]
	if !ok {
		return false
	}
	_, ok = allowed[role]
	return ok
}

// Routes returns every pattern known to the authorizer.
func (a *Authorizer) Routes() []string {
	out := make([]string, 0, len(a.routes))
	for r := range a.routes {
		out = append(out, r)
	}
	return out
}

// Package lifecycle holds the role-gated order status transition rules.
//
// Every role owns a fixed set of edges. For a given role, current status and
// order type at most one edge applies, so the rules double as a routing table
// that picks the next status for the caller.
package lifecycle

import (
	"slices"

	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
)

// Transition is a single legal edge. An empty OrderType matches any order.
type Transition struct {
	From      entities.OrderStatus
	To        entities.OrderStatus
	OrderType entities.OrderType
}

func (t Transition) matches(status entities.OrderStatus, typ entities.OrderType) bool {
	return t.From == status && (t.OrderType == "" || t.OrderType == typ)
}

type Rules map[entities.Role][]Transition

// DefaultRules is the authority matrix of the pizza store.
func DefaultRules() Rules {
	return Rules{
		entities.RoleKitchenStaff: {
			{From: entities.StatusPending, To: entities.StatusPreparing},
			{From: entities.StatusPreparing, To: entities.StatusReadyToDeliver, OrderType: entities.OrderTypeDelivery},
			{From: entities.StatusPreparing, To: entities.StatusReadyToPickUp, OrderType: entities.OrderTypePickUp},
		},
		entities.RoleStoreStaff: {
			{From: entities.StatusPending, To: entities.StatusCancel},
			{From: entities.StatusReadyToPickUp, To: entities.StatusPickedUp},
		},
		entities.RoleDeliveryStaff: {
			{From: entities.StatusReadyToDeliver, To: entities.StatusDelivered},
		},
		entities.RoleAdministrator: {
			{From: entities.StatusPickedUp, To: entities.StatusCompleted},
			{From: entities.StatusDelivered, To: entities.StatusCompleted},
		},
		entities.RoleCustomer: nil,
	}
}

type Machine struct {
	rules Rules
}

// New copies the rules so the machine stays immutable after construction.
func New(rules Rules) *Machine {
	cp := make(Rules, len(rules))
	for role, ts := range rules {
		cp[role] = slices.Clone(ts)
	}
	return &Machine{rules: cp}
}

// Next returns the status a role moves an order to from its current status.
func (m *Machine) Next(role entities.Role, current entities.OrderStatus, typ entities.OrderType) (entities.OrderStatus, bool) {
	for _, t := range m.rules[role] {
		if t.matches(current, typ) {
			return t.To, true
		}
	}
	return "", false
}

// Resolve validates that role may move the order to target. An empty target
// means "whatever the role's next step is".
func (m *Machine) Resolve(role entities.Role, order entities.Order, target entities.OrderStatus) (Transition, error) {
	next, ok := m.Next(role, order.Status, order.Type)
	if !ok {
		return Transition{}, entities.ErrTransitionNotAllowed
	}
	if target != "" && target != next {
		return Transition{}, entities.ErrTransitionNotAllowed
	}
	return Transition{From: order.Status, To: next, OrderType: order.Type}, nil
}

// Actionable lists the statuses a role can move orders out of.
func (m *Machine) Actionable(role entities.Role) []entities.OrderStatus {
	var out []entities.OrderStatus
	for _, t := range m.rules[role] {
		if !slices.Contains(out, t.From) {
			out = append(out, t.From)
		}
	}
	return out
}

// CanView reports whether a role may list orders in the given status.
// Administrators see everything, other roles only what they can act on.
func (m *Machine) CanView(role entities.Role, status entities.OrderStatus) bool {
	if role == entities.RoleAdministrator {
		return status.Valid()
	}
	return slices.Contains(m.Actionable(role), status)
}

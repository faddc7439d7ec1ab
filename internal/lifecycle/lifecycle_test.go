package lifecycle

import (
	"testing"

	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_Resolve(t *testing.T) {
	m := New(DefaultRules())

	delivery := func(s entities.OrderStatus) entities.Order {
		return entities.Order{ID: "1", Type: entities.OrderTypeDelivery, Status: s}
	}
	pickup := func(s entities.OrderStatus) entities.Order {
		return entities.Order{ID: "1", Type: entities.OrderTypePickUp, Status: s}
	}

	testCases := []struct {
		name    string
		role    entities.Role
		order   entities.Order
		target  entities.OrderStatus
		want    entities.OrderStatus
		wantErr error
	}{
		{"kitchen starts pending order", entities.RoleKitchenStaff, delivery(entities.StatusPending), entities.StatusPreparing, entities.StatusPreparing, nil},
		{"kitchen finishes delivery order", entities.RoleKitchenStaff, delivery(entities.StatusPreparing), entities.StatusReadyToDeliver, entities.StatusReadyToDeliver, nil},
		{"kitchen finishes pickup order", entities.RoleKitchenStaff, pickup(entities.StatusPreparing), entities.StatusReadyToPickUp, entities.StatusReadyToPickUp, nil},
		{"kitchen cannot mark pickup order ready to deliver", entities.RoleKitchenStaff, pickup(entities.StatusPreparing), entities.StatusReadyToDeliver, "", entities.ErrTransitionNotAllowed},
		{"kitchen cannot touch ready to deliver", entities.RoleKitchenStaff, delivery(entities.StatusReadyToDeliver), entities.StatusDelivered, "", entities.ErrTransitionNotAllowed},
		{"kitchen implicit target", entities.RoleKitchenStaff, pickup(entities.StatusPending), "", entities.StatusPreparing, nil},
		{"store cancels pending", entities.RoleStoreStaff, pickup(entities.StatusPending), entities.StatusCancel, entities.StatusCancel, nil},
		{"store hands over pickup", entities.RoleStoreStaff, pickup(entities.StatusReadyToPickUp), entities.StatusPickedUp, entities.StatusPickedUp, nil},
		{"store cannot cancel twice", entities.RoleStoreStaff, pickup(entities.StatusCancel), entities.StatusCancel, "", entities.ErrTransitionNotAllowed},
		{"store cannot prepare", entities.RoleStoreStaff, pickup(entities.StatusPending), entities.StatusPreparing, "", entities.ErrTransitionNotAllowed},
		{"delivery delivers", entities.RoleDeliveryStaff, delivery(entities.StatusReadyToDeliver), entities.StatusDelivered, entities.StatusDelivered, nil},
		{"delivery cannot cancel", entities.RoleDeliveryStaff, delivery(entities.StatusPending), entities.StatusCancel, "", entities.ErrTransitionNotAllowed},
		{"admin completes picked up", entities.RoleAdministrator, pickup(entities.StatusPickedUp), entities.StatusCompleted, entities.StatusCompleted, nil},
		{"admin completes delivered", entities.RoleAdministrator, delivery(entities.StatusDelivered), entities.StatusCompleted, entities.StatusCompleted, nil},
		{"admin cannot cancel", entities.RoleAdministrator, delivery(entities.StatusPending), entities.StatusCancel, "", entities.ErrTransitionNotAllowed},
		{"customer has no rights", entities.RoleCustomer, delivery(entities.StatusPending), entities.StatusCancel, "", entities.ErrTransitionNotAllowed},
		{"anonymous has no rights", entities.RoleAnonymous, delivery(entities.StatusPending), entities.StatusPreparing, "", entities.ErrTransitionNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := m.Resolve(tc.role, tc.order, tc.target)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.order.Status, tr.From)
			assert.Equal(t, tc.want, tr.To)
		})
	}
}

func TestMachine_TerminalStatusesHaveNoEdges(t *testing.T) {
	m := New(DefaultRules())
	for _, role := range entities.Roles() {
		for _, typ := range []entities.OrderType{entities.OrderTypePickUp, entities.OrderTypeDelivery} {
			for _, s := range []entities.OrderStatus{entities.StatusCancel, entities.StatusCompleted} {
				_, ok := m.Next(role, s, typ)
				assert.False(t, ok, "role=%s status=%s", role, s)
			}
		}
	}
}

func TestMachine_NextIsUnique(t *testing.T) {
	rules := DefaultRules()
	for role, ts := range rules {
		for _, typ := range []entities.OrderType{entities.OrderTypePickUp, entities.OrderTypeDelivery} {
			for _, s := range entities.OrderStatuses() {
				matches := 0
				for _, tr := range ts {
					if tr.matches(s, typ) {
						matches++
					}
				}
				assert.LessOrEqual(t, matches, 1, "role=%s status=%s type=%s", role, s, typ)
			}
		}
	}
}

func TestMachine_CanView(t *testing.T) {
	m := New(DefaultRules())

	assert.True(t, m.CanView(entities.RoleKitchenStaff, entities.StatusPending))
	assert.True(t, m.CanView(entities.RoleKitchenStaff, entities.StatusPreparing))
	assert.False(t, m.CanView(entities.RoleKitchenStaff, entities.StatusDelivered))
	assert.True(t, m.CanView(entities.RoleStoreStaff, entities.StatusReadyToPickUp))
	assert.True(t, m.CanView(entities.RoleDeliveryStaff, entities.StatusReadyToDeliver))
	assert.False(t, m.CanView(entities.RoleDeliveryStaff, entities.StatusPending))
	assert.False(t, m.CanView(entities.RoleCustomer, entities.StatusPending))

	for _, s := range entities.OrderStatuses() {
		assert.True(t, m.CanView(entities.RoleAdministrator, s))
	}
	assert.False(t, m.CanView(entities.RoleAdministrator, "bogus"))
}

func TestNew_CopiesRules(t *testing.T) {
	rules := DefaultRules()
	m := New(rules)
	rules[entities.RoleCustomer] = []Transition{{From: entities.StatusPending, To: entities.StatusCancel}}

	_, ok := m.Next(entities.RoleCustomer, entities.StatusPending, entities.OrderTypePickUp)
	assert.False(t, ok)
}

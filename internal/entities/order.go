package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusCancel         OrderStatus = "cancel"
	StatusPreparing      OrderStatus = "preparing"
	StatusReadyToPickUp  OrderStatus = "ready_to_pick_up"
	StatusReadyToDeliver OrderStatus = "ready_to_deliver"
	StatusDelivered      OrderStatus = "delivered"
	StatusPickedUp       OrderStatus = "picked_up"
	StatusCompleted      OrderStatus = "completed"
)

var orderStatuses = []OrderStatus{
	StatusPending,
	StatusCancel,
	StatusPreparing,
	StatusReadyToPickUp,
	StatusReadyToDeliver,
	StatusDelivered,
	StatusPickedUp,
	StatusCompleted,
}

func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatuses))
	copy(out, orderStatuses)
	return out
}

func (s OrderStatus) Valid() bool {
	for _, st := range orderStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Terminal statuses have no outgoing transitions.
func (s OrderStatus) Terminal() bool {
	return s == StatusCancel || s == StatusCompleted
}

func (s OrderStatus) String() string {
	return string(s)
}

type OrderType string

const (
	OrderTypePickUp   OrderType = "pickup"
	OrderTypeDelivery OrderType = "delivery"
)

func (t OrderType) Valid() bool {
	return t == OrderTypePickUp || t == OrderTypeDelivery
}

type DeliveryInformation struct {
	AddressLine1 string
	AddressLine2 string
	PostalCode   string
	City         string
	Country      string
}

// Complete reports whether every mandatory address field is present.
func (d DeliveryInformation) Complete() bool {
	return d.AddressLine1 != "" && d.PostalCode != "" && d.City != "" && d.Country != ""
}

type OrderItem struct {
	BaseSku    string
	VariantSku string
	Quantity   int
	// Price is the line price: unit price multiplied by quantity.
	Price decimal.Decimal
}

type Order struct {
	ID         string
	CustomerID string
	Items      []OrderItem
	Type       OrderType
	Status     OrderStatus

	// nil for pickup orders
	DeliveryInformation *DeliveryInformation

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Total sums line prices.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Price)
	}
	return total
}

// OrderItemRequest is a customer's requested line before pricing.
type OrderItemRequest struct {
	BaseSku    string
	VariantSku string
	Quantity   int
}

type CreateOrder struct {
	CustomerID          string
	Items               []OrderItemRequest
	Type                OrderType
	DeliveryInformation *DeliveryInformation
}

// Cursor is an opaque pagination continuation token. Empty means "no more pages".
type Cursor string

type OrdersPage struct {
	Orders []Order
	Next   Cursor
}

package repo

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Order struct {
	OrderID             string    `db:"order_id"`
	CustomerID          string    `db:"customer_id"`
	Status              string    `db:"status"`
	Type                string    `db:"type"`
	Items               []byte    `db:"items"`
	DeliveryInformation []byte    `db:"delivery_information"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

var orderColumns = []string{
	"order_id", "customer_id", "status", "type",
	"items", "delivery_information", "created_at", "updated_at",
}

type orderItem struct {
	BaseSku    string          `json:"baseSku"`
	VariantSku string          `json:"variantSku"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

type deliveryInformation struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	PostalCode   string `json:"postalCode"`
	City         string `json:"city"`
	Country      string `json:"country"`
}

func OrderToEntity(o Order) (entities.Order, error) {
	var items []orderItem
	if len(o.Items) > 0 {
		if err := json.Unmarshal(o.Items, &items); err != nil {
			return entities.Order{}, fmt.Errorf("failed to decode items of order %s: %w", o.OrderID, err)
		}
	}

	order := entities.Order{
		ID:         o.OrderID,
		CustomerID: o.CustomerID,
		Status:     entities.OrderStatus(o.Status),
		Type:       entities.OrderType(o.Type),
		Items:      make([]entities.OrderItem, 0, len(items)),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	for _, it := range items {
		order.Items = append(order.Items, entities.OrderItem{
			BaseSku:    it.BaseSku,
			VariantSku: it.VariantSku,
			Quantity:   it.Quantity,
			Price:      it.Price,
		})
	}

	if len(o.DeliveryInformation) > 0 {
		var d deliveryInformation
		if err := json.Unmarshal(o.DeliveryInformation, &d); err != nil {
			return entities.Order{}, fmt.Errorf("failed to decode delivery information of order %s: %w", o.OrderID, err)
		}
		order.DeliveryInformation = &entities.DeliveryInformation{
			AddressLine1: d.AddressLine1,
			AddressLine2: d.AddressLine2,
			PostalCode:   d.PostalCode,
			City:         d.City,
			Country:      d.Country,
		}
	}

	return order, nil
}

func OrdersToEntities(rows []Order) ([]entities.Order, error) {
	out := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		o, err := OrderToEntity(row)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// encodeOrderDocuments renders the JSONB columns. lib/pq sends []byte as bytea,
// so the values are passed as text.
func encodeOrderDocuments(o entities.Order) (string, sql.NullString, error) {
	items := make([]orderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItem{
			BaseSku:    it.BaseSku,
			VariantSku: it.VariantSku,
			Quantity:   it.Quantity,
			Price:      it.Price,
		})
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return "", sql.NullString{}, fmt.Errorf("failed to encode items: %w", err)
	}

	if o.DeliveryInformation == nil {
		return string(itemsJSON), sql.NullString{}, nil
	}

	d := o.DeliveryInformation
	deliveryJSON, err := json.Marshal(deliveryInformation{
		AddressLine1: d.AddressLine1,
		AddressLine2: d.AddressLine2,
		PostalCode:   d.PostalCode,
		City:         d.City,
		Country:      d.Country,
	})
	if err != nil {
		return "", sql.NullString{}, fmt.Errorf("failed to encode delivery information: %w", err)
	}
	return string(itemsJSON), sql.NullString{String: string(deliveryJSON), Valid: true}, nil
}

type Product struct {
	BaseSku    string              `db:"base_sku"`
	VariantSku string              `db:"variant_sku"`
	Name       sql.NullString      `db:"name"`
	Price      decimal.NullDecimal `db:"price"`
	Size       sql.NullString      `db:"size"`
	Type       sql.NullString      `db:"type"`
}

var productColumns = []string{"base_sku", "variant_sku", "name", "price", "size", "type"}

func VariantToEntity(p Product) entities.ProductVariant {
	return entities.ProductVariant{
		BaseSku:    p.BaseSku,
		VariantSku: p.VariantSku,
		Price:      p.Price.Decimal,
		Size:       entities.ProductSize(nullStringToString(p.Size)),
		Type:       nullStringToString(p.Type),
	}
}

type User struct {
	ID        string    `db:"id"`
	FullName  string    `db:"full_name"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var userColumns = []string{"id", "full_name", "email", "role", "password", "created_at", "updated_at"}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		Role:         entities.Role(u.Role),
		PasswordHash: u.Password,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

package handler

import (
	"time"

	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/shopspring/decimal"
)

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

// DeliveryInformation is the address of a delivery order
type DeliveryInformation struct {
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	PostalCode   string `json:"postalCode" validate:"required"`
	City         string `json:"city" validate:"required"`
	Country      string `json:"country" validate:"required"`
}

// OrderItem is a priced order line
type OrderItem struct {
	BaseSku    string          `json:"baseSku"`
	VariantSku string          `json:"variantSku"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price" swaggertype:"string" example:"19.98"`
}

// Order is a customer order
type Order struct {
	ID                  string               `json:"id"`
	CustomerID          string               `json:"customerId"`
	Items               []OrderItem          `json:"items"`
	Type                string               `json:"type" enums:"pickup,delivery"`
	Status              string               `json:"status"`
	DeliveryInformation *DeliveryInformation `json:"deliveryInformation,omitempty"`
	Total               decimal.Decimal      `json:"total" swaggertype:"string" example:"19.98"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

// CreateOrderItem is a requested order line
type CreateOrderItem struct {
	BaseSku    string `json:"baseSku" validate:"required"`
	VariantSku string `json:"variantSku" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gte=1,lte=100"`
}

// CreateOrderRequest places a new order
type CreateOrderRequest struct {
	Items               []CreateOrderItem    `json:"items" validate:"required,min=1,dive"`
	Type                string               `json:"type" validate:"required,oneof=pickup delivery" enums:"pickup,delivery"`
	DeliveryInformation *DeliveryInformation `json:"deliveryInformation,omitempty" validate:"omitempty"`
}

// CreateOrderResponse carries the id of the placed order
type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

// UpdateOrderStatusRequest names the status the caller wants to move the
// order to. Omitted status means the caller's next step.
type UpdateOrderStatusRequest struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=pending cancel preparing ready_to_pick_up ready_to_deliver delivered picked_up completed"`
}

// UpdateOrderStatusResponse reports the applied transition
type UpdateOrderStatusResponse struct {
	Message string `json:"message"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// PageRequest carries the continuation token of a paginated listing
type PageRequest struct {
	NextKey string `json:"nextKey,omitempty"`
}

// OrdersPageResponse is one page of orders
type OrdersPageResponse struct {
	Orders  []Order `json:"orders"`
	NextKey string  `json:"nextKey,omitempty"`
}

// OrdersResponse is a complete list of orders
type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

// CurrentOrdersResponse lists orders still in progress
type CurrentOrdersResponse struct {
	CurrentOrders []Order `json:"currentOrders"`
}

// StatusFilterRequest optionally narrows a date range listing
type StatusFilterRequest struct {
	Status string `json:"status,omitempty" enums:"pending,cancel"`
}

// ProductVariant is a sellable size of a product
type ProductVariant struct {
	VariantSku string          `json:"variantSku"`
	Price      decimal.Decimal `json:"price" swaggertype:"string" example:"9.99"`
	Size       string          `json:"size"`
	Type       string          `json:"type,omitempty"`
}

// Product is a catalog entry with its variants
type Product struct {
	BaseSku  string           `json:"baseSku"`
	Name     string           `json:"name"`
	Variants []ProductVariant `json:"variants"`
}

// CreateVariantRequest describes one variant of a new product
type CreateVariantRequest struct {
	Price decimal.Decimal `json:"price" swaggertype:"string" example:"9.99"`
	Size  string          `json:"size" validate:"required,oneof=small medium large"`
	Type  string          `json:"type,omitempty"`
}

// CreateProductRequest adds a product to the catalog
type CreateProductRequest struct {
	Name     string                 `json:"name" validate:"required"`
	Sku      string                 `json:"sku" validate:"required,max=64"`
	Variants []CreateVariantRequest `json:"variants" validate:"dive"`
}

// CreateProductResponse returns the stored product
type CreateProductResponse struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}

// ProductsPageResponse is one page of the catalog
type ProductsPageResponse struct {
	Products []Product `json:"products"`
	NextKey  string    `json:"nextKey,omitempty"`
}

// UpdatedAttributes lists the fields to change; absent fields stay as is
type UpdatedAttributes struct {
	Name  *string          `json:"name,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty" swaggertype:"string"`
	Type  *string          `json:"type,omitempty"`
	Size  *string          `json:"size,omitempty"`
}

// UpdateProductRequest patches a base product or one of its variants
type UpdateProductRequest struct {
	BaseSku           string            `json:"baseSku" validate:"required"`
	IsVariantUpdate   bool              `json:"isVariantUpdate"`
	VariantSku        string            `json:"variantSku" validate:"required_if=IsVariantUpdate true"`
	UpdatedAttributes UpdatedAttributes `json:"updatedAttributes"`
}

// DeleteProductRequest removes a product with all variants
type DeleteProductRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// User is an account without credentials
type User struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SignUpRequest creates an account
type SignUpRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role,omitempty"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UsersResponse lists accounts
type UsersResponse struct {
	Users []User `json:"users"`
}

// SignInRequest exchanges credentials for a token
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries a bearer token
type TokenResponse struct {
	Token string `json:"token"`
}

func DeliveryEntityToJSON(d *entities.DeliveryInformation) *DeliveryInformation {
	if d == nil {
		return nil
	}
	return &DeliveryInformation{
		AddressLine1: d.AddressLine1,
		AddressLine2: d.AddressLine2,
		PostalCode:   d.PostalCode,
		City:         d.City,
		Country:      d.Country,
	}
}

func DeliveryJSONToEntity(d *DeliveryInformation) *entities.DeliveryInformation {
	if d == nil {
		return nil
	}
	return &entities.DeliveryInformation{
		AddressLine1: d.AddressLine1,
		AddressLine2: d.AddressLine2,
		PostalCode:   d.PostalCode,
		City:         d.City,
		Country:      d.Country,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			BaseSku:    it.BaseSku,
			VariantSku: it.VariantSku,
			Quantity:   it.Quantity,
			Price:      it.Price,
		})
	}

	return Order{
		ID:                  o.ID,
		CustomerID:          o.CustomerID,
		Items:               items,
		Type:                string(o.Type),
		Status:              string(o.Status),
		DeliveryInformation: DeliveryEntityToJSON(o.DeliveryInformation),
		Total:               o.Total(),
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderEntityToJSON(o))
	}
	return out
}

func CreateOrderJSONToEntity(customerID string, req CreateOrderRequest) entities.CreateOrder {
	items := make([]entities.OrderItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entities.OrderItemRequest{
			BaseSku:    it.BaseSku,
			VariantSku: it.VariantSku,
			Quantity:   it.Quantity,
		})
	}

	return entities.CreateOrder{
		CustomerID:          customerID,
		Items:               items,
		Type:                entities.OrderType(req.Type),
		DeliveryInformation: DeliveryJSONToEntity(req.DeliveryInformation),
	}
}

func ProductEntityToJSON(p entities.Product) Product {
	variants := make([]ProductVariant, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, ProductVariant{
			VariantSku: v.VariantSku,
			Price:      v.Price,
			Size:       string(v.Size),
			Type:       v.Type,
		})
	}
	return Product{BaseSku: p.BaseSku, Name: p.Name, Variants: variants}
}

func CreateProductJSONToEntity(req CreateProductRequest) entities.CreateProduct {
	variants := make([]entities.CreateVariant, 0, len(req.Variants))
	for _, v := range req.Variants {
		variants = append(variants, entities.CreateVariant{
			Price: v.Price,
			Size:  entities.ProductSize(v.Size),
			Type:  v.Type,
		})
	}
	return entities.CreateProduct{Name: req.Name, Sku: req.Sku, Variants: variants}
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func SignUpJSONToEntity(req SignUpRequest) entities.CreateUser {
	return entities.CreateUser{
		FullName: req.FullName,
		Email:    req.Email,
		Role:     entities.Role(req.Role),
		Password: req.Password,
	}
}

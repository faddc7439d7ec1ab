package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/SergeyBogomolovv/pizza-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/pizza-service/internal/handler/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductHandler_CreateProduct(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockProductService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"name":"Margherita","sku":"marg","variants":[{"price":"9.99","size":"small"}]}`,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().
					CreateProduct(mock.Anything, mock.MatchedBy(func(in entities.CreateProduct) bool {
						return in.Sku == "marg" && len(in.Variants) == 1 &&
							in.Variants[0].Size == entities.SizeSmall &&
							in.Variants[0].Price.Equal(decimal.RequireFromString("9.99"))
					})).
					Return(entities.Product{
						BaseSku: "MARG",
						Name:    "Margherita",
						Variants: []entities.ProductVariant{
							{BaseSku: "MARG", VariantSku: "MARG_SMALL", Price: decimal.RequireFromString("9.99"), Size: entities.SizeSmall},
						},
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"variantSku":"MARG_SMALL"`,
		},
		{
			name:         "non positive price",
			body:         `{"name":"Margherita","sku":"marg","variants":[{"price":"0","size":"small"}]}`,
			mockBehavior: func(svc *mocks.MockProductService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"variant price must be positive"`,
		},
		{
			name:         "unknown size",
			body:         `{"name":"Margherita","sku":"marg","variants":[{"price":"9.99","size":"family"}]}`,
			mockBehavior: func(svc *mocks.MockProductService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Size":"oneof"`,
		},
		{
			name: "duplicate",
			body: `{"name":"Margherita","sku":"marg","variants":[{"price":"9.99","size":"small"}]}`,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().
					CreateProduct(mock.Anything, mock.Anything).
					Return(entities.Product{}, entities.ErrProductExists).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"the product already exists"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockProductService(t)
			tc.mockBehavior(svc)

			h := handler.NewProductHandler(newTestLogger(), svc, as(admin))
			status, body := serve(t, h, http.MethodPost, "/products", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestProductHandler_Products(t *testing.T) {
	svc := mocks.NewMockProductService(t)
	svc.EXPECT().
		Products(mock.Anything, entities.Cursor("")).
		Return(entities.ProductsPage{
			Products: []entities.Product{{BaseSku: "MARG", Name: "Margherita"}},
			Next:     "next",
		}, nil).Once()

	h := handler.NewProductHandler(newTestLogger(), svc, as(entities.Principal{}))
	status, body := serve(t, h, http.MethodPost, "/products/find", "")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"products":[{"baseSku":"MARG","name":"Margherita","variants":[]}],"nextKey":"next"}`, body)
}

func TestProductHandler_UpdateProduct(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockProductService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "base product",
			body: `{"baseSku":"MARG","updatedAttributes":{"name":"Margherita Classic"}}`,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().
					UpdateProduct(mock.Anything, "MARG", mock.MatchedBy(func(u entities.ProductUpdate) bool {
						return u.Name != nil && *u.Name == "Margherita Classic"
					})).
					Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"Product updated successfully."`,
		},
		{
			name: "variant price",
			body: `{"baseSku":"MARG","isVariantUpdate":true,"variantSku":"MARG_SMALL","updatedAttributes":{"price":"10.50"}}`,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().
					UpdateVariant(mock.Anything, "MARG", "MARG_SMALL", mock.MatchedBy(func(u entities.VariantUpdate) bool {
						return u.Price != nil && u.Price.Equal(decimal.RequireFromString("10.5")) && u.Size == nil
					})).
					Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"Variant updated successfully."`,
		},
		{
			name: "variant size",
			body: `{"baseSku":"MARG","isVariantUpdate":true,"variantSku":"MARG_SMALL","updatedAttributes":{"size":"large"}}`,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().
					UpdateVariant(mock.Anything, "MARG", "MARG_SMALL", mock.Anything).
					Return(entities.ErrSizeImmutable).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"cannot update size"`,
		},
		{
			name:         "variant sku missing",
			body:         `{"baseSku":"MARG","isVariantUpdate":true,"updatedAttributes":{"price":"10.50"}}`,
			mockBehavior: func(svc *mocks.MockProductService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"VariantSku":"required_if"`,
		},
		{
			name: "missing product",
			body: `{"baseSku":"NOPE","updatedAttributes":{"name":"x"}}`,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().
					UpdateProduct(mock.Anything, "NOPE", mock.Anything).
					Return(entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"product does not exist"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockProductService(t)
			tc.mockBehavior(svc)

			h := handler.NewProductHandler(newTestLogger(), svc, as(admin))
			status, body := serve(t, h, http.MethodPatch, "/products/update", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := mocks.NewMockProductService(t)
		svc.EXPECT().DeleteProduct(mock.Anything, "MARG").Return(nil).Once()

		h := handler.NewProductHandler(newTestLogger(), svc, as(admin))
		status, body := serve(t, h, http.MethodPost, "/products/delete", `{"productId":"MARG"}`)

		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"message":"PRODUCT_DELETED"}`, body)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := mocks.NewMockProductService(t)
		svc.EXPECT().DeleteProduct(mock.Anything, "MARG").Return(errors.New("connection reset")).Once()

		h := handler.NewProductHandler(newTestLogger(), svc, as(admin))
		status, body := serve(t, h, http.MethodPost, "/products/delete", `{"productId":"MARG"}`)

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.NotContains(t, body, "connection reset")
	})
}

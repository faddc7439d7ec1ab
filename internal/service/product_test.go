package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/SergeyBogomolovv/pizza-service/internal/service"
	mocks "github.com/SergeyBogomolovv/pizza-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/pizza-service/pkg/trm/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_CreateProduct(t *testing.T) {
	type MockBehavior func(repo *mocks.MockProductRepo)

	dbError := errors.New("db error")
	variant := func(size entities.ProductSize) entities.CreateVariant {
		return entities.CreateVariant{Price: decimal.RequireFromString("10.00"), Size: size}
	}

	testCases := []struct {
		name         string
		input        entities.CreateProduct
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			input: entities.CreateProduct{
				Name:     "Margherita",
				Sku:      " marg ",
				Variants: []entities.CreateVariant{variant(entities.SizeSmall), variant(entities.SizeLarge)},
			},
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().SaveProduct(mock.Anything, "MARG", "Margherita").Return(nil)
				repo.EXPECT().SaveVariants(mock.Anything, mock.MatchedBy(func(vs []entities.ProductVariant) bool {
					return len(vs) == 2 && vs[0].VariantSku == "MARG_SMALL" && vs[1].VariantSku == "MARG_LARGE"
				})).Return(nil)
			},
		},
		{
			name:         "No variants",
			input:        entities.CreateProduct{Name: "Margherita", Sku: "MARG"},
			mockBehavior: func(repo *mocks.MockProductRepo) {},
			wantErr:      entities.ErrNoVariants,
		},
		{
			name: "Too many variants",
			input: entities.CreateProduct{
				Name:     "Margherita",
				Sku:      "MARG",
				Variants: make([]entities.CreateVariant, entities.MaxVariants+1),
			},
			mockBehavior: func(repo *mocks.MockProductRepo) {},
			wantErr:      entities.ErrTooManyVariants,
		},
		{
			name: "Duplicate size",
			input: entities.CreateProduct{
				Name:     "Margherita",
				Sku:      "MARG",
				Variants: []entities.CreateVariant{variant(entities.SizeSmall), variant(entities.SizeSmall)},
			},
			mockBehavior: func(repo *mocks.MockProductRepo) {},
			wantErr:      entities.ErrDuplicateVariant,
		},
		{
			name: "Product exists",
			input: entities.CreateProduct{
				Name:     "Margherita",
				Sku:      "MARG",
				Variants: []entities.CreateVariant{variant(entities.SizeSmall)},
			},
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().SaveProduct(mock.Anything, "MARG", "Margherita").Return(entities.ErrProductExists)
			},
			wantErr: entities.ErrProductExists,
		},
		{
			name: "SaveVariants fails",
			input: entities.CreateProduct{
				Name:     "Margherita",
				Sku:      "MARG",
				Variants: []entities.CreateVariant{variant(entities.SizeSmall)},
			},
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().SaveProduct(mock.Anything, "MARG", "Margherita").Return(nil)
				repo.EXPECT().SaveVariants(mock.Anything, mock.Anything).Return(dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					}).Maybe()

			tc.mockBehavior(repo)

			svc := service.NewProductService(newTestLogger(), tx, repo, cache)
			product, err := svc.CreateProduct(context.Background(), tc.input)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "MARG", product.BaseSku)
		})
	}
}

func TestProductService_GetVariant(t *testing.T) {
	v := entities.ProductVariant{
		BaseSku:    "MARG",
		VariantSku: "MARG_SMALL",
		Price:      decimal.RequireFromString("9.99"),
		Size:       entities.SizeSmall,
	}
	data, err := v.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		mockBehavior func(repo *mocks.MockProductRepo, cache *mocks.MockCache)
		wantErr      error
	}{
		{
			name: "Cache hit",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("MARG/MARG_SMALL").Return(data, true)
			},
		},
		{
			name: "Cache miss",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("MARG/MARG_SMALL").Return(nil, false)
				repo.EXPECT().GetVariant(mock.Anything, "MARG", "MARG_SMALL").Return(v, nil)
				cache.EXPECT().Set("MARG/MARG_SMALL", data).Return()
			},
		},
		{
			name: "Corrupted cache entry",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("MARG/MARG_SMALL").Return([]byte("garbage"), true)
				repo.EXPECT().GetVariant(mock.Anything, "MARG", "MARG_SMALL").Return(v, nil)
				cache.EXPECT().Set("MARG/MARG_SMALL", mock.Anything).Return()
			},
		},
		{
			name: "Not found",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("MARG/MARG_SMALL").Return(nil, false)
				repo.EXPECT().GetVariant(mock.Anything, "MARG", "MARG_SMALL").
					Return(entities.ProductVariant{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			cache := mocks.NewMockCache(t)
			tc.mockBehavior(repo, cache)

			svc := service.NewProductService(newTestLogger(), txMocks.NewMockManager(t), repo, cache)
			got, err := svc.GetVariant(context.Background(), "MARG", "MARG_SMALL")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, v.VariantSku, got.VariantSku)
			assert.True(t, v.Price.Equal(got.Price))
		})
	}
}

func TestProductService_UpdateAndDeleteInvalidateCache(t *testing.T) {
	price := decimal.RequireFromString("12.00")

	repo := mocks.NewMockProductRepo(t)
	cache := mocks.NewMockCache(t)

	repo.EXPECT().UpdateVariant(mock.Anything, "MARG", "MARG_SMALL", entities.VariantUpdate{Price: &price}).Return(nil)
	cache.EXPECT().Delete("MARG/MARG_SMALL").Return()
	repo.EXPECT().DeleteProduct(mock.Anything, "MARG").Return(nil)
	cache.EXPECT().DeletePrefix("MARG/").Return()
	repo.EXPECT().DeleteProduct(mock.Anything, "GONE").Return(entities.ErrProductNotFound)

	svc := service.NewProductService(newTestLogger(), txMocks.NewMockManager(t), repo, cache)

	require.NoError(t, svc.UpdateVariant(context.Background(), "MARG", "MARG_SMALL", entities.VariantUpdate{Price: &price}))
	require.NoError(t, svc.DeleteProduct(context.Background(), "MARG"))
	assert.ErrorIs(t, svc.DeleteProduct(context.Background(), "GONE"), entities.ErrProductNotFound)
}

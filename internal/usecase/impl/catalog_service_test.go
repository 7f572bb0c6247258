package impl

import (
	"context"
	"testing"

	"luxe/internal/domain/entity"
	domainerrors "luxe/internal/domain/errors"
	"luxe/internal/domain/repository"
	mockRepo "luxe/internal/mocks/repository"
	"luxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestCatalogService_BrowseProducts_PassesFilterThrough(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	minPrice := 10.0
	expected := repository.ProductFilter{
		Search:       "scarf",
		Category:     "accessories",
		MinPrice:     &minPrice,
		FeaturedOnly: true,
		InStockOnly:  true,
		Sort:         repository.SortPriceAsc,
	}

	fx.productRepo.EXPECT().ListProducts(ctx, expected).Return([]*entity.Product{{ID: uuid.New()}}, 1, nil)

	out, err := fx.service.BrowseProducts(ctx, usecase.BrowseProductsInput{
		Search:       "scarf",
		Category:     "accessories",
		MinPrice:     &minPrice,
		FeaturedOnly: true,
		InStockOnly:  true,
		Sort:         "price_asc",
	})
	require.NoError(t, err)
	assert.Len(t, out.Products, 1)
	assert.Equal(t, int64(1), out.Total)
}

func TestCatalogService_BrowseProducts_UnknownSortFallsBackToNewest(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		ListProducts(ctx, repository.ProductFilter{Sort: repository.SortNewest}).
		Return([]*entity.Product{}, 0, nil)

	_, err := fx.service.BrowseProducts(ctx, usecase.BrowseProductsInput{Sort: "bogus"})
	require.NoError(t, err)
}

func TestCatalogService_GetProduct_WithRelated(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "Silk Tie", Category: "accessories"}
	related := []*entity.Product{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	fx.productRepo.EXPECT().FindRelated(ctx, "accessories", productID, usecase.RelatedProductLimit).Return(related, nil)

	out, err := fx.service.GetProduct(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, productID, out.Product.ID)
	assert.Len(t, out.Related, 2)
}

func TestCatalogService_GetProduct_RelatedFailureIsNotFatal(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{ID: productID, Category: "accessories"}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	fx.productRepo.EXPECT().FindRelated(ctx, "accessories", productID, usecase.RelatedProductLimit).Return(nil, errors.New("timeout"))

	out, err := fx.service.GetProduct(ctx, productID)
	require.NoError(t, err)
	assert.Nil(t, out.Related)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, productID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ListCategories(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().ListCategories(ctx).Return([]*entity.Category{{Name: "accessories"}}, nil)

	categories, err := fx.service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

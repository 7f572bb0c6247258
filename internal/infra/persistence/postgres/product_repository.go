package postgres

import (
	"context"

	"luxe/internal/domain/entity"
	"luxe/internal/domain/repository"
	"luxe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// ListProducts retrieves products matching the filter along with the total match count.
func (repo *productRepository) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}
	if filter.InStockOnly {
		query = query.Where("stock > ?", 0)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := query.Order(orderClause(filter.Sort)).Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindRelated retrieves up to limit products sharing a category, excluding the given product.
func (repo *productRepository) FindRelated(ctx context.Context, category string, exclude uuid.UUID, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("category = ? AND id <> ?", category, exclude).
		Order("created_at DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find related products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// ListCategories retrieves all catalog categories ordered by name.
func (repo *productRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, &entity.Category{
			ID:        categoryM.ID,
			Name:      categoryM.Name,
			CreatedAt: categoryM.CreatedAt,
		})
	}

	return categories, nil
}

// RefreshRatingStats recomputes a product's avg_rating and review_count from its full review set.
// The aggregate runs in a single UPDATE so concurrent review writes never leave partial stats.
func (repo *productRepository) RefreshRatingStats(ctx context.Context, productID uuid.UUID) error {
	query := `
		UPDATE products
		SET avg_rating = COALESCE(stats.avg_rating, 0),
		    review_count = COALESCE(stats.review_count, 0),
		    updated_at = NOW()
		FROM (
		    SELECT AVG(rating)::decimal(3,2) AS avg_rating, COUNT(*) AS review_count
		    FROM reviews
		    WHERE product_id = ?
		) AS stats
		WHERE products.id = ?
	`

	result := repo.db.WithContext(ctx).Exec(query, productID, productID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to refresh product rating stats")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// orderClause maps a sort key to its SQL ordering. Unknown keys fall back to
// newest. Price filtering and sorting use the base price column; the catalog
// lists by list price even while a product is on sale.
func orderClause(sort repository.SortKey) string {
	switch sort {
	case repository.SortPriceAsc:
		return "price ASC"
	case repository.SortPriceDesc:
		return "price DESC"
	case repository.SortRating:
		return "avg_rating DESC, created_at DESC"
	case repository.SortPopular:
		return "review_count DESC, created_at DESC"
	default:
		return "created_at DESC"
	}
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		SalePrice:   data.SalePrice,
		Stock:       data.Stock,
		Category:    data.Category,
		ImageURL:    data.ImageURL,
		AvgRating:   data.AvgRating,
		ReviewCount: data.ReviewCount,
		IsFeatured:  data.IsFeatured,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

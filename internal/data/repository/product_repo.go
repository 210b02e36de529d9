package repository

import (
	"context"
	"fmt"
	"strings"

	"bakerist/internal/data/entity"
	"bakerist/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProductRepository interface {
	FindAvailable(ctx context.Context, category, search string) ([]*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (*entity.Product, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*entity.Product, error)
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

// availableProductsQuery builds the storefront listing query: only
// available rows, optional exact category match ("all" or empty disables
// it), optional case-insensitive %term% search on name, ordered by name.
func availableProductsQuery(category, search string) (string, []interface{}) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, name, category, price, stock, description, options, available, created_at
		FROM products
		WHERE available = true
	`)

	args := []interface{}{}
	argCount := 1

	if category != "" && category != "all" {
		queryBuilder.WriteString(fmt.Sprintf(" AND category = $%d", argCount))
		args = append(args, category)
		argCount++
	}

	if search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND name ILIKE $%d", argCount))
		args = append(args, "%"+search+"%")
		argCount++
	}

	queryBuilder.WriteString(" ORDER BY name")

	return queryBuilder.String(), args
}

// FindAvailable lists storefront products. No pagination.
func (r *productRepository) FindAvailable(ctx context.Context, category, search string) ([]*entity.Product, error) {
	query, args := availableProductsQuery(category, search)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find available products",
			zap.Error(err),
			zap.String("category", category),
			zap.String("search", search),
		)
		return nil, fmt.Errorf("find available products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, category, price, stock, description, options, available, created_at
		FROM products
		ORDER BY category, name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all products", zap.Error(err))
		return nil, fmt.Errorf("find all products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// Update replaces every mutable field of the product.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := `
		UPDATE products
		SET name = $2, category = $3, price = $4, stock = $5,
		    description = $6, options = $7, available = $8
		WHERE id = $1
		RETURNING id, name, category, price, stock, description, options, available, created_at
	`

	var updated entity.Product
	err := r.db.QueryRow(ctx, query,
		product.ID,
		product.Name,
		product.Category,
		product.Price,
		product.Stock,
		product.Description,
		product.Options,
		product.Available,
	).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Category,
		&updated.Price,
		&updated.Stock,
		&updated.Description,
		&updated.Options,
		&updated.Available,
		&updated.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", product.ID.String()),
		)
		return nil, fmt.Errorf("update product %s: %w", product.ID.String(), err)
	}

	return &updated, nil
}

// SetAvailability flips exactly one field; everything else stays untouched.
func (r *productRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*entity.Product, error) {
	query := `
		UPDATE products
		SET available = $2
		WHERE id = $1
		RETURNING id, name, category, price, stock, description, options, available, created_at
	`

	var updated entity.Product
	err := r.db.QueryRow(ctx, query, id, available).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Category,
		&updated.Price,
		&updated.Stock,
		&updated.Description,
		&updated.Options,
		&updated.Available,
		&updated.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to toggle product availability",
			zap.Error(err),
			zap.String("product_id", id.String()),
			zap.Bool("available", available),
		)
		return nil, fmt.Errorf("set availability for product %s: %w", id.String(), err)
	}

	return &updated, nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Category,
			&product.Price,
			&product.Stock,
			&product.Description,
			&product.Options,
			&product.Available,
			&product.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products rows: %w", err)
	}

	return products, nil
}

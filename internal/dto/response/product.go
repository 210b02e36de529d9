package response

import (
	"time"

	"bakerist/internal/data/entity"
)

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Description string    `json:"description,omitempty"`
	Options     string    `json:"options,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Category:    product.Category,
		Price:       product.Price,
		Stock:       product.Stock,
		Description: product.Description,
		Options:     product.Options,
		Available:   product.Available,
		CreatedAt:   product.CreatedAt,
	}
}

func ProductsToResponse(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductToResponse(p))
	}
	return out
}

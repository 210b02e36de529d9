package request

// UpdateProductRequest replaces every mutable product field. Price and
// stock are typed numbers: a non-numeric JSON value fails decoding and
// surfaces as a 400 instead of reaching the database.
type UpdateProductRequest struct {
	ID          string  `json:"id" validate:"required,uuid"`
	Name        string  `json:"name" validate:"required,max=150"`
	Category    string  `json:"category" validate:"required,max=100"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Description string  `json:"description"`
	Options     string  `json:"options"`
	Available   bool    `json:"available"`
}

type ToggleProductRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Available *bool  `json:"available" validate:"required"`
}

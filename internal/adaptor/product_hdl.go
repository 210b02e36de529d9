package adaptor

import (
	"encoding/json"
	"net/http"

	"bakerist/internal/dto/request"
	"bakerist/internal/usecase"
	"bakerist/pkg/utils"

	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewProductHandler(service usecase.CatalogService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// GetProducts handles GET /api/products (public storefront listing)
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	category := query.Get("category")
	search := query.Get("search")

	products, err := h.service.ListAvailable(r.Context(), category, search)
	if err != nil {
		handleServiceError(w, h.log, err, "list products")
		return
	}

	utils.ResponseSuccess(w, "success", products)
}

// GetAdminProducts handles GET /api/admin/products (all rows, any availability)
func (h *ProductHandler) GetAdminProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list admin products")
		return
	}

	utils.ResponseSuccess(w, "success", products)
}

// UpdateProduct handles POST /api/admin/products/update
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateProductRequest

	// a non-numeric price or stock fails here with a 400
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	product, err := h.service.Update(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "Product updated successfully", product)
}

// ToggleProduct handles POST /api/admin/products/toggle
func (h *ProductHandler) ToggleProduct(w http.ResponseWriter, r *http.Request) {
	var req request.ToggleProductRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	product, err := h.service.SetAvailability(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "toggle product")
		return
	}

	message := "Product disabled successfully"
	if product.Available {
		message = "Product enabled successfully"
	}

	utils.ResponseSuccess(w, message, product)
}

package adaptor

import (
	"net/http"

	"bakerist/internal/usecase"
	"bakerist/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetCustomers handles GET /api/admin/customers
func (h *UserHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list customers")
		return
	}

	utils.ResponseSuccess(w, "success", customers)
}

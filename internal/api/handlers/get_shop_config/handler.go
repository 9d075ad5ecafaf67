package get_shop_config

import (
	"net/http"

	"github.com/m04kA/table-reservation/internal/api/handlers"
	"github.com/m04kA/table-reservation/internal/domain"
)

type Handler struct {
	response *ShopConfigResponse
	logger   Logger
}

// NewHandler конфигурация неизменна, поэтому ответ собирается один раз
func NewHandler(cfg *domain.ShopConfig, logger Logger) *Handler {
	return &Handler{
		response: FromDomain(cfg),
		logger:   logger,
	}
}

// Handle GET /api/v1/shop
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /shop - Config retrieved: name=%s", h.response.Name)
	handlers.RespondJSON(w, http.StatusOK, h.response)
}

package http

import (
	"log/slog"
	"net/http"

	"github.com/TrioProject-10/Smart-Buy-Main/internal/service"
	"github.com/TrioProject-10/Smart-Buy-Main/pkg/httputil"
)

// AdminHandler handles HTTP requests for the admin dashboard endpoints.
type AdminHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewAdminHandler creates a new admin HTTP handler.
func NewAdminHandler(catalog *service.CatalogService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// Stats handles GET /api/v1/admin/stats
// @Summary Store statistics
// @Description Returns product, category and brand counts for the admin dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/admin/stats [get]
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.catalog.Stats(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: stats})
}

package handler

import (
	"net/http"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	seed *service.SeedService
}

func NewAdminHandler(seed *service.SeedService) *AdminHandler {
	return &AdminHandler{seed: seed}
}

// Seed godoc
// @Summary Reconcile seed hubs, routes and the demo admin
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} apierror.APIError
// @Router /api/admin/seed [post]
func (h *AdminHandler) Seed(c *gin.Context) {
	created, err := h.seed.SeedRoutes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.seed.EnsureDemoAdmin(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "routes_created": created})
}

package handler

import (
	"net/http"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/service"

	"github.com/gin-gonic/gin"
)

type ComprasHandler struct {
	compras *service.ComprasService
}

func NewComprasHandler(compras *service.ComprasService) *ComprasHandler {
	return &ComprasHandler{compras: compras}
}

// List godoc
// @Summary Purchase line items of a hub
// @Tags compras
// @Produce json
// @Security BearerAuth
// @Param hub path string true "Hub name"
// @Success 200 {object} dto.ComprasListResponse
// @Router /api/hubs/{hub}/compras [get]
func (h *ComprasHandler) List(c *gin.Context) {
	resp, err := h.compras.List(c.Request.Context(), c.Param("hub"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Add creates a purchase line item.
func (h *ComprasHandler) Add(c *gin.Context) {
	var req dto.AddCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}

	item, err := h.compras.Add(c.Request.Context(), c.Param("hub"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// Update patches a line item; only present fields change.
func (h *ComprasHandler) Update(c *gin.Context) {
	itemID, ok := uintParam(c, "item_id")
	if !ok {
		return
	}
	var req dto.UpdateCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}

	item, err := h.compras.Update(c.Request.Context(), c.Param("hub"), itemID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// Delete removes a line item for real.
func (h *ComprasHandler) Delete(c *gin.Context) {
	itemID, ok := uintParam(c, "item_id")
	if !ok {
		return
	}

	if err := h.compras.Delete(c.Request.Context(), c.Param("hub"), itemID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/service"

	"github.com/gin-gonic/gin"
)

type RepartoHandler struct {
	reparto *service.RepartoService
}

func NewRepartoHandler(reparto *service.RepartoService) *RepartoHandler {
	return &RepartoHandler{reparto: reparto}
}

// ListClientes godoc
// @Summary Delivery clients of one route
// @Tags reparto
// @Produce json
// @Security BearerAuth
// @Param hub path string true "Hub name"
// @Param route_id query int false "Settlement route id"
// @Success 200 {object} dto.RepartoClientesResponse
// @Router /api/hubs/{hub}/reparto/clientes [get]
func (h *RepartoHandler) ListClientes(c *gin.Context) {
	var routeID uint
	if raw := c.Query("route_id"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 32); err == nil {
			routeID = uint(v)
		}
	}

	resp, err := h.reparto.ListClientes(c.Request.Context(), c.Param("hub"), routeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddCliente creates a delivery client, geocoding the address when no
// coordinates arrive. Reactivation of a soft-deleted codigo answers 200.
func (h *RepartoHandler) AddCliente(c *gin.Context) {
	var req dto.AddRepartoClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}

	item, reactivated, err := h.reparto.AddCliente(c.Request.Context(), c.Param("hub"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if reactivated {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"item": item})
}

// UpdateCliente patches a delivery client; only present fields change.
func (h *RepartoHandler) UpdateCliente(c *gin.Context) {
	clienteID, ok := uintParam(c, "cliente_id")
	if !ok {
		return
	}
	var req dto.UpdateRepartoClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}

	item, err := h.reparto.UpdateCliente(c.Request.Context(), c.Param("hub"), clienteID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteCliente soft-deletes a delivery client.
func (h *RepartoHandler) DeleteCliente(c *gin.Context) {
	clienteID, ok := uintParam(c, "cliente_id")
	if !ok {
		return
	}

	if err := h.reparto.DeleteCliente(c.Request.Context(), c.Param("hub"), clienteID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListMotos answers the delivery-moto panel. Fleet integration is pending;
// the contract is an empty item list until then.
func (h *RepartoHandler) ListMotos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": []any{}})
}

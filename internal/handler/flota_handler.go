package handler

import (
	"net/http"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/service"

	"github.com/gin-gonic/gin"
)

type FlotaHandler struct {
	flota *service.FlotaService
}

func NewFlotaHandler(flota *service.FlotaService) *FlotaHandler {
	return &FlotaHandler{flota: flota}
}

// List godoc
// @Summary Active fleet of a hub
// @Tags flota
// @Produce json
// @Security BearerAuth
// @Param hub path string true "Hub name"
// @Success 200 {object} dto.FlotaListResponse
// @Router /api/hubs/{hub}/flota [get]
func (h *FlotaHandler) List(c *gin.Context) {
	resp, err := h.flota.ListVehiculos(c.Request.Context(), c.Param("hub"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Add registers a vehicle; re-adding a soft-deleted plate reactivates it
// (200) instead of creating a new row (201).
func (h *FlotaHandler) Add(c *gin.Context) {
	var req dto.AddVehiculoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	vehiculo, reactivated, err := h.flota.AddVehiculo(c.Request.Context(), c.Param("hub"), req.Matricula, req.Tipo)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if reactivated {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"vehiculo": vehiculo})
}

// Delete soft-deletes a vehicle.
func (h *FlotaHandler) Delete(c *gin.Context) {
	vehiculoID, ok := uintParam(c, "vehiculo_id")
	if !ok {
		return
	}

	if err := h.flota.DeleteVehiculo(c.Request.Context(), c.Param("hub"), vehiculoID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListIncidencias returns a vehicle's incident history, newest first.
func (h *FlotaHandler) ListIncidencias(c *gin.Context) {
	vehiculoID, ok := uintParam(c, "vehiculo_id")
	if !ok {
		return
	}

	resp, err := h.flota.ListIncidencias(c.Request.Context(), c.Param("hub"), vehiculoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddIncidencia logs an incident against a vehicle.
func (h *FlotaHandler) AddIncidencia(c *gin.Context) {
	vehiculoID, ok := uintParam(c, "vehiculo_id")
	if !ok {
		return
	}
	var req dto.AddIncidenciaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	item, err := h.flota.AddIncidencia(c.Request.Context(), c.Param("hub"), vehiculoID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// UpdateIncidencia patches an incident; only present fields change.
func (h *FlotaHandler) UpdateIncidencia(c *gin.Context) {
	vehiculoID, ok := uintParam(c, "vehiculo_id")
	if !ok {
		return
	}
	incID, ok := uintParam(c, "inc_id")
	if !ok {
		return
	}
	var req dto.UpdateIncidenciaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	item, err := h.flota.UpdateIncidencia(c.Request.Context(), c.Param("hub"), vehiculoID, incID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteIncidencia removes an incident for real.
func (h *FlotaHandler) DeleteIncidencia(c *gin.Context) {
	vehiculoID, ok := uintParam(c, "vehiculo_id")
	if !ok {
		return
	}
	incID, ok := uintParam(c, "inc_id")
	if !ok {
		return
	}

	if err := h.flota.DeleteIncidencia(c.Request.Context(), c.Param("hub"), vehiculoID, incID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

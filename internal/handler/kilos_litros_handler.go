package handler

import (
	"net/http"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/service"

	"github.com/gin-gonic/gin"
)

type KilosLitrosHandler struct {
	kilosLitros *service.KilosLitrosService
}

func NewKilosLitrosHandler(kilosLitros *service.KilosLitrosService) *KilosLitrosHandler {
	return &KilosLitrosHandler{kilosLitros: kilosLitros}
}

// List godoc
// @Summary Daily route metrics of a hub
// @Tags kiloslitros
// @Produce json
// @Security BearerAuth
// @Param hub path string true "Hub name"
// @Param year query int false "Filter year"
// @Param month query int false "Filter month"
// @Success 200 {object} dto.KilosLitrosListResponse
// @Router /api/hubs/{hub}/kiloslitros [get]
func (h *KilosLitrosHandler) List(c *gin.Context) {
	year, ok := intQuery(c, "year")
	if !ok {
		return
	}
	month, ok := intQuery(c, "month")
	if !ok {
		return
	}

	resp, err := h.kilosLitros.List(c.Request.Context(), c.Param("hub"), year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Add records one route's metrics for one day.
func (h *KilosLitrosHandler) Add(c *gin.Context) {
	var req dto.AddKilosLitrosRequest
	if !bindAndValidate(c, &req) {
		return
	}

	item, err := h.kilosLitros.Add(c.Request.Context(), c.Param("hub"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// Update replaces a record's mutable fields.
func (h *KilosLitrosHandler) Update(c *gin.Context) {
	itemID, ok := uintParam(c, "item_id")
	if !ok {
		return
	}
	var req dto.UpdateKilosLitrosRequest
	if !bindAndValidate(c, &req) {
		return
	}

	item, err := h.kilosLitros.Update(c.Request.Context(), c.Param("hub"), itemID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// Delete removes a record for real.
func (h *KilosLitrosHandler) Delete(c *gin.Context) {
	itemID, ok := uintParam(c, "item_id")
	if !ok {
		return
	}

	if err := h.kilosLitros.Delete(c.Request.Context(), c.Param("hub"), itemID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

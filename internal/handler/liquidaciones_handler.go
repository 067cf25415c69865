package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/service"

	"github.com/gin-gonic/gin"
)

type LiquidacionesHandler struct {
	liquidaciones *service.LiquidacionesService
}

func NewLiquidacionesHandler(liquidaciones *service.LiquidacionesService) *LiquidacionesHandler {
	return &LiquidacionesHandler{liquidaciones: liquidaciones}
}

// Routes godoc
// @Summary Active settlement routes of a hub
// @Tags liquidaciones
// @Produce json
// @Security BearerAuth
// @Param hub path string true "Hub name"
// @Success 200 {object} dto.RoutesResponse
// @Router /api/hubs/{hub}/liquidaciones/routes [get]
func (h *LiquidacionesHandler) Routes(c *gin.Context) {
	resp, err := h.liquidaciones.ListRoutes(c.Request.Context(), c.Param("hub"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateRoute registers a route code; re-adding a soft-deleted code
// reactivates it (200) instead of creating a new row (201).
func (h *LiquidacionesHandler) CreateRoute(c *gin.Context) {
	var req dto.CreateRouteRequest
	if !bindAndValidate(c, &req) {
		return
	}

	route, reactivated, err := h.liquidaciones.CreateRoute(c.Request.Context(), c.Param("hub"), req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if reactivated {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"route": route})
}

// Month returns the settlement sheet of one route for one month.
func (h *LiquidacionesHandler) Month(c *gin.Context) {
	now := time.Now()
	year, ok := intQueryDefault(c, "year", now.Year())
	if !ok {
		return
	}
	month, ok := intQueryDefault(c, "month", int(now.Month()))
	if !ok {
		return
	}

	var routeID uint
	if raw := c.Query("route_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, apierror.New("route_id invalido"))
			return
		}
		routeID = uint(v)
	}

	resp, err := h.liquidaciones.MonthGrid(c.Request.Context(), c.Param("hub"), year, month, routeID, c.Query("route_code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SaveMonth bulk-saves the sheet; fully empty rows delete their day's entry.
func (h *LiquidacionesHandler) SaveMonth(c *gin.Context) {
	var req dto.SaveMonthRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.liquidaciones.SaveMonth(c.Request.Context(), c.Param("hub"), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// SetComment stores a single day comment without resending the whole sheet.
func (h *LiquidacionesHandler) SetComment(c *gin.Context) {
	var req dto.SetCommentRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.liquidaciones.SetComment(c.Request.Context(), c.Param("hub"), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

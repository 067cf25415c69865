package handler

import (
	"net/http"
	"time"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/middleware"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/service"

	"github.com/gin-gonic/gin"
)

type AsistenciasHandler struct {
	asistencias *service.AsistenciasService
	employees   *service.EmployeeService
}

func NewAsistenciasHandler(asistencias *service.AsistenciasService, employees *service.EmployeeService) *AsistenciasHandler {
	return &AsistenciasHandler{asistencias: asistencias, employees: employees}
}

// Month godoc
// @Summary Attendance sheet of a hub for one month
// @Tags asistencias
// @Produce json
// @Security BearerAuth
// @Param hub path string true "Hub name"
// @Param year query int false "Year (default current)"
// @Param month query int false "Month (default current)"
// @Success 200 {object} dto.AsistenciasMonthResponse
// @Router /api/hubs/{hub}/asistencias [get]
func (h *AsistenciasHandler) Month(c *gin.Context) {
	now := time.Now()
	year, ok := intQueryDefault(c, "year", now.Year())
	if !ok {
		return
	}
	month, ok := intQueryDefault(c, "month", int(now.Month()))
	if !ok {
		return
	}

	claims := middleware.GetClaims(c)
	resp, err := h.asistencias.MonthGrid(c.Request.Context(), c.Param("hub"), year, month, claims.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SetDay writes one attendance cell; empty code clears it.
func (h *AsistenciasHandler) SetDay(c *gin.Context) {
	employeeID, ok := uintParam(c, "employee_id")
	if !ok {
		return
	}
	var req dto.SetDayRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.asistencias.SetDay(c.Request.Context(), c.Param("hub"), employeeID, req.Date, req.Code); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// SetExtraHours writes one overtime cell; empty hours clears it.
func (h *AsistenciasHandler) SetExtraHours(c *gin.Context) {
	employeeID, ok := uintParam(c, "employee_id")
	if !ok {
		return
	}
	var req dto.SetExtraHoursRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.asistencias.SetExtraHours(c.Request.Context(), c.Param("hub"), employeeID, req.Date, req.Hours); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// SaveComments stores the month's start/end sheet comments.
func (h *AsistenciasHandler) SaveComments(c *gin.Context) {
	var req dto.SaveCommentsRequest
	if !bindAndValidate(c, &req) {
		return
	}

	now := time.Now()
	if req.Year == 0 {
		req.Year = now.Year()
	}
	if req.Month == 0 {
		req.Month = int(now.Month())
	}

	if err := h.asistencias.SaveComments(c.Request.Context(), c.Param("hub"), req.Year, req.Month, req.Start, req.End); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/service"

	"github.com/gin-gonic/gin"
)

type EmployeesHandler struct {
	employees *service.EmployeeService
}

func NewEmployeesHandler(employees *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{employees: employees}
}

type createEmployeeRequest struct {
	Name string `json:"name" validate:"required"`
}

// Create godoc
// @Summary Add an employee to a hub
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hub path string true "Hub name"
// @Success 201 {object} map[string]dto.EmployeeDTO
// @Failure 409 {object} apierror.APIError
// @Router /api/hubs/{hub}/employees [post]
func (h *EmployeesHandler) Create(c *gin.Context) {
	var req createEmployeeRequest
	if !bindAndValidate(c, &req) {
		return
	}

	emp, err := h.employees.Create(c.Request.Context(), c.Param("hub"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"employee": dto.EmployeeDTO{
		ID:   strconv.FormatUint(uint64(emp.ID), 10),
		Name: emp.Name,
	}})
}

// Delete soft-deletes an employee; attendance history stays attached to the
// id for a later reactivation.
func (h *EmployeesHandler) Delete(c *gin.Context) {
	employeeID, ok := uintParam(c, "employee_id")
	if !ok {
		return
	}

	if err := h.employees.Delete(c.Request.Context(), c.Param("hub"), employeeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

package handler

import (
	"net/http"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactosHandler struct {
	contactos *service.ContactosService
}

func NewContactosHandler(contactos *service.ContactosService) *ContactosHandler {
	return &ContactosHandler{contactos: contactos}
}

// List godoc
// @Summary Contacts of a hub
// @Tags contactos
// @Produce json
// @Security BearerAuth
// @Param hub path string true "Hub name"
// @Success 200 {object} dto.ContactosListResponse
// @Router /api/hubs/{hub}/contactos [get]
func (h *ContactosHandler) List(c *gin.Context) {
	resp, err := h.contactos.List(c.Request.Context(), c.Param("hub"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Add creates a contact; re-adding a soft-deleted phone reactivates it (200)
// instead of creating a new row (201).
func (h *ContactosHandler) Add(c *gin.Context) {
	var req dto.AddContactoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	item, reactivated, err := h.contactos.Add(c.Request.Context(), c.Param("hub"), &req)
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

// Update patches a contact; only present fields change.
func (h *ContactosHandler) Update(c *gin.Context) {
	contactoID, ok := uintParam(c, "contacto_id")
	if !ok {
		return
	}
	var req dto.UpdateContactoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	item, err := h.contactos.Update(c.Request.Context(), c.Param("hub"), contactoID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// Delete soft-deletes a contact.
func (h *ContactosHandler) Delete(c *gin.Context) {
	contactoID, ok := uintParam(c, "contacto_id")
	if !ok {
		return
	}

	if err := h.contactos.Delete(c.Request.Context(), c.Param("hub"), contactoID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

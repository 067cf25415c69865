package handler

import (
	"net/http"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/middleware"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register godoc
// @Summary Create a user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /api/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Name, req.LastName, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Cuenta creada correctamente",
		"user":    dto.UserDTO{Email: user.Email, Name: user.Name},
	})
}

// Login godoc
// @Summary Authenticate and obtain an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Bienvenido, " + user.Name,
		User:    dto.UserDTO{Email: user.Email, Name: user.Name},
		Token:   token,
	})
}

// Me godoc
// @Summary Current account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]dto.UserDTO
// @Failure 404 {object} apierror.APIError
// @Router /api/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)

	user, err := h.auth.Me(c.Request.Context(), claims.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.UserDTO{Email: user.Email, Name: user.Name}})
}

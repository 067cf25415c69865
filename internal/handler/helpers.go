package handler

import (
	"net/http"
	"strconv"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate decodes the JSON body into dst and runs struct validation.
// On failure it writes the 400 response itself and returns false.
func bindAndValidate(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(dst); err != nil {
		fields := map[string]string{}
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError translates a service error into its HTTP response. Internal
// errors are attached to the context for the error middleware and never leak
// their message.
func respondError(c *gin.Context, err error) {
	status := apierror.Status(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.AbortWithStatusJSON(status, apierror.New("Error interno del servidor"))
		return
	}
	c.AbortWithStatusJSON(status, apierror.New(err.Error()))
}

// uintParam parses a numeric path parameter; 0 with false means junk input.
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, apierror.New(name+" invalido"))
		return 0, false
	}
	return uint(v), true
}

// intQuery reads an optional integer query parameter.
func intQuery(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, apierror.New(name+" invalido"))
		return nil, false
	}
	return &v, true
}

// intQueryDefault reads an integer query parameter, falling back to def only
// when the parameter is absent. Unparsable input is a 400, never a silent
// default.
func intQueryDefault(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, apierror.New(name+" invalido"))
		return 0, false
	}
	return v, true
}
